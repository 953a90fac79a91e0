package analyzer

import (
	"testing"

	"github.com/zombar/searchintel/internal/models"
)

func TestCalculateSustainabilityNoSignal(t *testing.T) {
	got := CalculateSustainability(models.SearchResult{
		Title:       "City council approves new parking rules",
		Description: "The changes take effect next month",
		URL:         "https://example.xyz",
	})
	if got != nil {
		t.Errorf("no-signal result must be nil, got %+v", got)
	}
}

func TestCalculateSustainabilityKeywordSignal(t *testing.T) {
	got := CalculateSustainability(models.SearchResult{
		Title:       "Sustainable fashion brand goes carbon neutral",
		Description: "The company uses recycled, fair trade materials in a zero waste process",
		URL:         "https://example.com",
	})
	if got == nil {
		t.Fatal("keyword-rich result must score, got nil")
	}
	if got.Score <= 0 || got.Score > 100 {
		t.Errorf("score %.1f out of (0, 100]", got.Score)
	}
	if got.Label != models.SustainabilityLabelForScore(got.Score) {
		t.Errorf("label %s inconsistent with score %.1f", got.Label, got.Score)
	}
}

func TestCalculateSustainabilityDomainBonus(t *testing.T) {
	listed := CalculateSustainability(models.SearchResult{
		Title:       "Organic certification explained",
		Description: "",
		URL:         "https://fairtrade.net/guide",
	})
	unlisted := CalculateSustainability(models.SearchResult{
		Title:       "Organic certification explained",
		Description: "",
		URL:         "https://example.xyz/guide",
	})

	if listed == nil || unlisted == nil {
		t.Fatal("both results carry the organic keyword and must score")
	}
	if listed.Score <= unlisted.Score {
		t.Errorf("listed domain %.1f should outscore unlisted %.1f", listed.Score, unlisted.Score)
	}
}

func TestCalculateSustainabilityDomainOnly(t *testing.T) {
	// A listed domain scores even with no keywords in the text.
	got := CalculateSustainability(models.SearchResult{
		Title:       "Annual report released",
		Description: "Highlights from the past year",
		URL:         "https://greenpeace.org/report",
	})
	if got == nil {
		t.Fatal("listed domain must score without keywords")
	}
	if got.Score != sustainabilityDomainBonus {
		t.Errorf("score = %.1f, want domain bonus %.1f", got.Score, sustainabilityDomainBonus)
	}
}

func TestCalculateSustainabilityCapped(t *testing.T) {
	got := CalculateSustainability(models.SearchResult{
		Title: "sustainable eco-friendly carbon neutral net zero renewable energy recycled",
		Description: "compostable zero waste fair trade ethically sourced organic biodegradable " +
			"circular economy climate positive green energy plastic-free",
		URL: "https://greenpeace.org",
	})
	if got == nil {
		t.Fatal("expected a score")
	}
	if got.Score != 100 {
		t.Errorf("score = %.1f, want capped 100", got.Score)
	}
	if got.Label != models.SustainabilityStrong {
		t.Errorf("label = %s, want %s", got.Label, models.SustainabilityStrong)
	}
}
