package analyzer

import (
	"math"

	"github.com/zombar/searchintel/internal/models"
)

// Sustainability scoring weights. Part of the tested scoring contract.
const (
	sustainabilityKeywordWeight = 12.0
	sustainabilityDomainBonus   = 40.0
)

var (
	sustainabilityKeywords = getSustainabilityKeywords()
	sustainabilityDomains  = getSustainabilityDomains()
)

// CalculateSustainability rates eco/ethical-business signal strength from
// keyword density plus a static allowlist of sustainability-focused domains.
// Returns nil when zero signal is found; nil is a distinct state from a low
// score and must be preserved end to end.
func CalculateSustainability(result models.SearchResult) *models.SustainabilityScore {
	lower := normalizeText(result.Title + " " + result.Description)
	hits := countPhraseHits(lower, sustainabilityKeywords)

	domain := result.Domain
	if domain == "" {
		domain = ExtractDomain(result.URL)
	}
	domainListed := sustainabilityDomains[normalizeDomain(domain)]

	if hits == 0 && !domainListed {
		return nil
	}

	score := float64(hits) * sustainabilityKeywordWeight
	if domainListed {
		score += sustainabilityDomainBonus
	}
	score = math.Min(100, score)

	return &models.SustainabilityScore{
		Score: score,
		Label: models.SustainabilityLabelForScore(score),
	}
}
