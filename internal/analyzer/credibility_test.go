package analyzer

import (
	"testing"

	"github.com/zombar/searchintel/internal/models"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"full url", "https://www.example.com/path?q=1", "example.com"},
		{"no scheme", "example.org/about", "example.org"},
		{"subdomain kept", "https://blog.example.com", "blog.example.com"},
		{"uppercase host", "HTTPS://WWW.Example.COM", "example.com"},
		{"port stripped", "http://example.com:8080/x", "example.com"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDomain(tt.url); got != tt.expected {
				t.Errorf("ExtractDomain(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}

func TestDomainTypeFor(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		expected models.DomainType
	}{
		{"gov", "cdc.gov", models.DomainGov},
		{"gov country variant", "nhs.gov.uk", models.DomainGov},
		{"edu", "mit.edu", models.DomainEdu},
		{"verified news", "reuters.com", models.DomainNewsVerified},
		{"women focused", "leanin.org", models.DomainWomenFocused},
		{"commercial com", "randomshop.com", models.DomainCommercial},
		{"commercial shop", "deals.shop", models.DomainCommercial},
		{"unknown tld", "example.xyz", models.DomainUnknown},
		{"empty", "", models.DomainUnknown},
		{"www prefix ignored", "www.reuters.com", models.DomainNewsVerified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainTypeFor(tt.domain); got != tt.expected {
				t.Errorf("DomainTypeFor(%q) = %s, want %s", tt.domain, got, tt.expected)
			}
		})
	}
}

func TestCalculateCredibility(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		expectedScore float64
		expectedLabel models.CredibilityLabel
		expectedType  models.DomainType
	}{
		{"gov source", "https://www.cdc.gov/topic", 95, models.CredibilityExcellent, models.DomainGov},
		{"edu source", "https://mit.edu/research", 90, models.CredibilityExcellent, models.DomainEdu},
		{"verified news", "https://reuters.com/article", 80, models.CredibilityHigh, models.DomainNewsVerified},
		{"women focused org", "https://leanin.org/story", 75, models.CredibilityHigh, models.DomainWomenFocused},
		{"commercial", "https://randomshop.com", 50, models.CredibilityModerate, models.DomainCommercial},
		{"unknown", "https://example.xyz", 40, models.CredibilityModerate, models.DomainUnknown},
		{"malformed url", "://bad", 40, models.CredibilityModerate, models.DomainUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCredibility(models.SearchResult{URL: tt.url})
			if got.Score != tt.expectedScore {
				t.Errorf("score = %.1f, want %.1f", got.Score, tt.expectedScore)
			}
			if got.Label != tt.expectedLabel {
				t.Errorf("label = %s, want %s", got.Label, tt.expectedLabel)
			}
			if got.DomainType != tt.expectedType {
				t.Errorf("domain type = %s, want %s", got.DomainType, tt.expectedType)
			}
		})
	}
}

func TestCredibilityWomenFocusedBonus(t *testing.T) {
	womenFocused := CalculateCredibility(models.SearchResult{URL: "https://leanin.org"})
	plain := CalculateCredibility(models.SearchResult{URL: "https://example.xyz"})

	if !womenFocused.IsWomenFocused {
		t.Fatal("leanin.org should be flagged women-focused")
	}
	if womenFocused.Score <= plain.Score {
		t.Errorf("women-focused score %.1f should exceed unknown-domain score %.1f",
			womenFocused.Score, plain.Score)
	}
	// Base 60 plus the bonus.
	if womenFocused.Score != baseScoreWomenFocused+womenFocusedBonus {
		t.Errorf("score = %.1f, want %.1f", womenFocused.Score, baseScoreWomenFocused+womenFocusedBonus)
	}
}

func TestCredibilityScoreCapped(t *testing.T) {
	// womenshealth.gov is both gov (base 95) and on the women-focused list.
	got := CalculateCredibility(models.SearchResult{URL: "https://womenshealth.gov"})
	if got.Score > maxCredibilityScore {
		t.Errorf("score %.1f exceeds cap %.1f", got.Score, maxCredibilityScore)
	}
	if got.Score != maxCredibilityScore {
		t.Errorf("score = %.1f, want capped %.1f", got.Score, maxCredibilityScore)
	}
}

func TestCredibilityPrefersExplicitDomain(t *testing.T) {
	got := CalculateCredibility(models.SearchResult{
		URL:    "https://tracker.example.com/redirect",
		Domain: "reuters.com",
	})
	if got.DomainType != models.DomainNewsVerified {
		t.Errorf("explicit domain should win over URL host, got %s", got.DomainType)
	}
}

func TestCredibilityDeterministic(t *testing.T) {
	result := models.SearchResult{URL: "https://www.bbc.com/news/article"}
	first := CalculateCredibility(result)
	for i := 0; i < 10; i++ {
		if got := CalculateCredibility(result); got != first {
			t.Fatalf("run %d differed: %+v vs %+v", i, got, first)
		}
	}
}
