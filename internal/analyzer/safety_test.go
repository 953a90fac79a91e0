package analyzer

import (
	"testing"

	"github.com/zombar/searchintel/internal/models"
)

func hasFlag(flags []models.SafetyFlag, category models.SafetyCategory) bool {
	for _, f := range flags {
		if f.Category == category {
			return true
		}
	}
	return false
}

func TestAnalyzeSafetyVerifiedContent(t *testing.T) {
	result := models.SearchResult{URL: "https://www.cdc.gov/topic"}
	cred := CalculateCredibility(result)

	flags := AnalyzeSafety(result, cred)
	if !hasFlag(flags, models.SafetyVerifiedContent) {
		t.Errorf("high-credibility source should carry verified-content, got %+v", flags)
	}
}

func TestAnalyzeSafetyWomenLed(t *testing.T) {
	result := models.SearchResult{URL: "https://leanin.org/story"}
	cred := CalculateCredibility(result)

	flags := AnalyzeSafety(result, cred)
	if !hasFlag(flags, models.SafetyWomenLed) {
		t.Errorf("women-focused domain should carry women-led, got %+v", flags)
	}
}

func TestAnalyzeSafetyScamDetection(t *testing.T) {
	result := models.SearchResult{
		Title:       "Guaranteed returns! Double your money fast",
		Description: "Risk-free investment, wire transfer only, claim your prize today",
		URL:         "https://totally-legit.xyz",
	}
	cred := CalculateCredibility(result)

	flags := AnalyzeSafety(result, cred)
	if !hasFlag(flags, models.SafetyScamWarning) {
		t.Errorf("scam copy should carry scam-warning, got %+v", flags)
	}
}

func TestAnalyzeSafetyScamFlaggedOnCredibleSource(t *testing.T) {
	// Scam language overrides source reputation.
	result := models.SearchResult{
		Title:       "Crypto giveaway: guaranteed returns for readers",
		Description: "Double your money with this risk-free investment",
		URL:         "https://reuters.com/sponsored",
	}
	cred := CalculateCredibility(result)

	flags := AnalyzeSafety(result, cred)
	if !hasFlag(flags, models.SafetyScamWarning) {
		t.Errorf("scam markers must flag regardless of credibility, got %+v", flags)
	}
	if !hasFlag(flags, models.SafetyVerifiedContent) {
		t.Errorf("verified-content and scam-warning are not mutually exclusive, got %+v", flags)
	}
}

func TestAnalyzeSafetySafeSpaceAndConcern(t *testing.T) {
	flags := AnalyzeSafety(models.SearchResult{
		Title:       "Survivor support group offers a judgment-free safe space",
		Description: "Moderated community with confidential helpline for harassment and stalking victims",
		URL:         "https://example.org",
	}, models.CredibilityScore{Score: 40})

	if !hasFlag(flags, models.SafetySafeSpace) {
		t.Errorf("expected safe-space flag, got %+v", flags)
	}
	if !hasFlag(flags, models.SafetyConcern) {
		t.Errorf("expected safety-concern flag from danger keywords, got %+v", flags)
	}
}

func TestAnalyzeSafetyNoFlags(t *testing.T) {
	flags := AnalyzeSafety(models.SearchResult{
		Title:       "Weekly farmers market schedule",
		Description: "Fresh produce available every Saturday morning",
		URL:         "https://example.xyz",
	}, models.CredibilityScore{Score: 40})

	if len(flags) != 0 {
		t.Errorf("expected no flags, got %+v", flags)
	}
	if flags == nil {
		t.Error("flags must be an empty slice, not nil")
	}
}

func TestAnalyzeSafetyDeterministicReasons(t *testing.T) {
	result := models.SearchResult{
		Title:       "Guaranteed returns on this risk-free investment",
		Description: "Wire transfer only",
		URL:         "https://example.xyz",
	}
	cred := CalculateCredibility(result)

	first := AnalyzeSafety(result, cred)
	second := AnalyzeSafety(result, cred)
	if len(first) != len(second) {
		t.Fatalf("flag counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("flag %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
