package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/zombar/searchintel/internal/models"
)

// fakeGenerator returns a canned response or error.
type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func annotatedResults(n int) []models.AnnotatedResult {
	results := make([]models.AnnotatedResult, n)
	for i := range results {
		results[i] = models.AnnotatedResult{
			Result: models.SearchResult{
				Title:       fmt.Sprintf("Title %d", i),
				Description: fmt.Sprintf("Description %d", i),
				URL:         fmt.Sprintf("https://example.com/%d", i),
			},
			Credibility: models.CredibilityScore{Score: 80, Label: models.CredibilityHigh},
		}
	}
	return results
}

func TestGenerateCitedSummary(t *testing.T) {
	client := &fakeGenerator{
		response: "Women-led initiatives grew significantly [1]. Funding doubled last year [3].",
	}
	g := New(client)

	got := g.Generate(context.Background(), "women in business", annotatedResults(5))

	if got.Perspective != models.PerspectiveWomenFirst {
		t.Errorf("perspective = %s, want %s", got.Perspective, models.PerspectiveWomenFirst)
	}
	expected := []string{"https://example.com/0", "https://example.com/2"}
	if len(got.Sources) != len(expected) {
		t.Fatalf("sources = %v, want %v", got.Sources, expected)
	}
	for i := range expected {
		if got.Sources[i] != expected[i] {
			t.Errorf("source %d = %s, want %s", i, got.Sources[i], expected[i])
		}
	}
}

func TestGenerateOutOfRangeCitationsDropped(t *testing.T) {
	client := &fakeGenerator{
		response: "Claims here [1] and here [9] and here [0].",
	}
	g := New(client)

	got := g.Generate(context.Background(), "q", annotatedResults(3))

	if len(got.Sources) != 1 || got.Sources[0] != "https://example.com/0" {
		t.Errorf("sources = %v, want only the valid [1]", got.Sources)
	}
}

func TestGenerateNoCitations(t *testing.T) {
	client := &fakeGenerator{response: "A summary without any citation markers."}
	g := New(client)

	got := g.Generate(context.Background(), "q", annotatedResults(3))

	if got.Sources == nil {
		t.Error("sources must be an empty slice, not nil")
	}
	if len(got.Sources) != 0 {
		t.Errorf("sources = %v, want empty", got.Sources)
	}
}

func TestGenerateTruncatesParagraphs(t *testing.T) {
	client := &fakeGenerator{
		response: "Para one [1].\n\nPara two [2].\n\nPara three [1].\n\nPara four [2].\n\nPara five [1].",
	}
	g := New(client)

	got := g.Generate(context.Background(), "q", annotatedResults(3))

	if n := len(splitParagraphs(got.Summary)); n > maxParagraphs {
		t.Errorf("summary has %d paragraphs, want at most %d", n, maxParagraphs)
	}
	if strings.Contains(got.Summary, "Para four") {
		t.Error("truncated paragraphs must not appear")
	}
}

func TestGenerateEmptyResults(t *testing.T) {
	client := &fakeGenerator{response: "should not be called"}
	g := New(client)

	got := g.Generate(context.Background(), "nothing", nil)

	if len(client.prompts) != 0 {
		t.Error("model must not be called with no results")
	}
	if got.Summary == "" {
		t.Error("fallback summary must not be empty")
	}
	if len(got.Sources) != 0 {
		t.Errorf("sources = %v, want empty", got.Sources)
	}
}

func TestGenerateNilClientFallback(t *testing.T) {
	g := New(nil)

	got := g.Generate(context.Background(), "q", annotatedResults(2))

	if !strings.Contains(got.Summary, "not configured") {
		t.Errorf("summary = %q, want the unconfigured fallback text", got.Summary)
	}
	if len(got.Sources) != 0 {
		t.Errorf("sources = %v, want empty", got.Sources)
	}
	if got.Perspective != models.PerspectiveWomenFirst {
		t.Errorf("perspective = %s, want %s", got.Perspective, models.PerspectiveWomenFirst)
	}
}

func TestGenerateProviderErrorFallback(t *testing.T) {
	client := &fakeGenerator{err: errors.New("connection refused")}
	g := New(client)

	got := g.Generate(context.Background(), "q", annotatedResults(3))

	if !strings.Contains(got.Summary, "Unable to summarize") {
		t.Errorf("summary = %q, want the unable-to-summarize fallback text", got.Summary)
	}
	if len(got.Sources) != 0 {
		t.Errorf("sources = %v, want empty", got.Sources)
	}
}

func TestWithPerspectiveBalanced(t *testing.T) {
	client := &fakeGenerator{response: "Summary [1]."}
	g := New(client).WithPerspective(models.PerspectiveBalanced)

	got := g.Generate(context.Background(), "q", annotatedResults(2))

	if got.Perspective != models.PerspectiveBalanced {
		t.Errorf("perspective = %s, want %s", got.Perspective, models.PerspectiveBalanced)
	}
	if !strings.Contains(client.prompts[0], "balanced perspective") {
		t.Error("prompt must carry the balanced instruction")
	}

	if g2 := g.WithPerspective("sideways"); g2.perspective != models.PerspectiveBalanced {
		t.Errorf("unrecognized value must keep the current perspective, got %s", g2.perspective)
	}
}

func TestGenerateTopKLimit(t *testing.T) {
	client := &fakeGenerator{response: "Summary [1]."}
	g := New(client)

	g.Generate(context.Background(), "q", annotatedResults(10))

	if len(client.prompts) != 1 {
		t.Fatalf("expected one model call, got %d", len(client.prompts))
	}
	prompt := client.prompts[0]
	if !strings.Contains(prompt, "[5]") {
		t.Error("prompt should include the fifth source")
	}
	if strings.Contains(prompt, "[6]") {
		t.Error("prompt must not include sources beyond the top five")
	}
}

func TestExtractCitations(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		count    int
		expected []int
	}{
		{"simple", "a [1] b [2]", 5, []int{1, 2}},
		{"deduplicated in order", "[2] then [1] then [2]", 5, []int{2, 1}},
		{"out of range dropped", "[1] [6] [0]", 5, []int{1}},
		{"no markers", "plain text", 5, []int{}},
		{"not a citation", "array[3] of int", 5, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCitations(tt.text, tt.count)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, want %v", got, tt.expected)
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("index %d: got %d, want %d", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestValidateSummary(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"valid", "One paragraph with a citation [1].", true},
		{"three paragraphs", "A [1].\n\nB [2].\n\nC [1].", true},
		{"four paragraphs", "A [1].\n\nB.\n\nC.\n\nD.", false},
		{"no citations", "Text without markers.", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateSummary(tt.text); got != tt.expected {
				t.Errorf("ValidateSummary(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}
