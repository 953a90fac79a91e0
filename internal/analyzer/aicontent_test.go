package analyzer

import (
	"strings"
	"testing"

	"github.com/zombar/searchintel/internal/models"
)

func TestDetectAIContentShortText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   \n  "},
		{"below minimum", "A short headline"},
		{"just below minimum", strings.Repeat("a", aiContentMinTextLength-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectAIContent(tt.text)
			if got.Label != models.AIContentInsufficientData {
				t.Errorf("label = %s, want %s", got.Label, models.AIContentInsufficientData)
			}
			if got.Color != models.AIColorGray {
				t.Errorf("color = %s, want %s", got.Color, models.AIColorGray)
			}
			if got.Probability != 0 {
				t.Errorf("probability = %.2f, want 0", got.Probability)
			}
		})
	}
}

func TestDetectAIContentStockPhrases(t *testing.T) {
	text := "In today's fast-paced world, it is important to note that this comprehensive guide " +
		"delves into the ever-evolving landscape. Furthermore, it plays a crucial role. " +
		"Moreover, we unlock the potential of every robust solution."

	got := DetectAIContent(text)
	if got.Probability <= aiBaseProbability {
		t.Errorf("stock-phrase heavy text scored %.2f, want above base %.2f", got.Probability, aiBaseProbability)
	}
	if got.Label == models.AIContentInsufficientData {
		t.Error("long text must not report insufficient data")
	}
}

func TestDetectAIContentPersonalVoice(t *testing.T) {
	human := "Honestly, I remember my first marathon like it was yesterday. I was terrified at the start line. " +
		"My husband kept telling me I'd be fine, and in my experience he's usually right about these things."

	robotic := "It is important to note that marathon training requires preparation. Furthermore, a comprehensive guide " +
		"plays a crucial role in the process. Moreover, hydration is a testament to proper planning in the realm of endurance sport."

	humanScore := DetectAIContent(human).Probability
	roboticScore := DetectAIContent(robotic).Probability

	if humanScore >= roboticScore {
		t.Errorf("personal-voice text scored %.2f, should be below stock-phrase text %.2f", humanScore, roboticScore)
	}
}

func TestDetectAIContentProbabilityRange(t *testing.T) {
	texts := []string{
		strings.Repeat("furthermore moreover additionally it is important to note ", 20),
		strings.Repeat("honestly i think lol my friend i was gonna kinda ", 20),
		strings.Repeat("the quick brown fox jumps over the lazy dog. ", 10),
	}

	for _, text := range texts {
		got := DetectAIContent(text)
		if got.Probability < 0 || got.Probability > 1 {
			t.Errorf("probability %.2f out of [0, 1]", got.Probability)
		}
	}
}

func TestSentenceLengthUniformity(t *testing.T) {
	uniform := "The cat sat on the mat today. The dog ran in the park today. The bird flew over the house today."
	varied := "Yes. The committee met on Tuesday to discuss the seventeen proposed amendments in exhaustive detail. No further comment."

	if got, ok := sentenceLengthUniformity(uniform); !ok || !got {
		t.Errorf("uniform sentences: got (%v, %v), want (true, true)", got, ok)
	}
	if got, ok := sentenceLengthUniformity(varied); !ok || got {
		t.Errorf("varied sentences: got (%v, %v), want (false, true)", got, ok)
	}
	if _, ok := sentenceLengthUniformity("Only one sentence here."); ok {
		t.Error("one sentence should not be enough to judge uniformity")
	}
}
