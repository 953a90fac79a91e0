package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/zombar/searchintel/internal/models"
)

// AI-content heuristic weights. Part of the tested scoring contract.
const (
	// Below this many characters the detector refuses to guess.
	aiContentMinTextLength = 80

	aiBaseProbability       = 0.2
	aiStockPhraseWeight     = 0.12
	aiStockPhraseCap        = 0.35
	aiHedgingWeight         = 0.05
	aiHedgingCap            = 0.15
	aiUniformityBonus       = 0.2
	aiUniformityMaxStdDev   = 3.0
	aiUniformityMinSentence = 3
	aiPersonalVoiceWeight   = 0.1
	aiPersonalVoiceCap      = 0.3
)

var (
	aiStockPhrases       = getAIStockPhrases()
	hedgingPhrases       = getHedgingPhrases()
	personalVoiceMarkers = getPersonalVoiceMarkers()

	sentenceSplitRe = regexp.MustCompile(`[^.!?]+[.!?]?`)
)

// DetectAIContent estimates the probability that text is machine-generated
// from stock-phrase frequency, sentence-length uniformity, hedging
// constructs, and absence of personal voice. Text below the minimum length
// returns the insufficient-data label rather than a spurious score.
func DetectAIContent(text string) models.AIContentDetection {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < aiContentMinTextLength {
		return models.AIContentDetection{
			Probability: 0,
			Label:       models.AIContentInsufficientData,
			Color:       models.AIColorGray,
		}
	}

	lower := strings.ToLower(trimmed)

	p := aiBaseProbability
	p += math.Min(aiStockPhraseCap, float64(countPhraseHits(lower, aiStockPhrases))*aiStockPhraseWeight)
	p += math.Min(aiHedgingCap, float64(countPhraseHits(lower, hedgingPhrases))*aiHedgingWeight)

	if uniform, ok := sentenceLengthUniformity(trimmed); ok && uniform {
		p += aiUniformityBonus
	}

	p -= math.Min(aiPersonalVoiceCap, float64(countPhraseHits(lower, personalVoiceMarkers))*aiPersonalVoiceWeight)

	p = math.Max(0, math.Min(1, p))

	return models.AIContentDetection{
		Probability: math.Round(p*100) / 100,
		Label:       models.AIContentLabelForProbability(p),
		Color:       models.AIContentColorForProbability(p),
	}
}

// sentenceLengthUniformity reports whether sentence word counts have
// suspiciously low variance. ok is false when there are too few sentences to
// judge.
func sentenceLengthUniformity(text string) (uniform, ok bool) {
	var lengths []float64
	for _, s := range sentenceSplitRe.FindAllString(text, -1) {
		if n := len(strings.Fields(s)); n > 0 {
			lengths = append(lengths, float64(n))
		}
	}
	if len(lengths) < aiUniformityMinSentence {
		return false, false
	}

	mean := 0.0
	for _, l := range lengths {
		mean += l
	}
	mean /= float64(len(lengths))

	variance := 0.0
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(lengths))

	return math.Sqrt(variance) < aiUniformityMaxStdDev, true
}
