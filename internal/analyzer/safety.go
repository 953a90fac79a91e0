package analyzer

import (
	"fmt"

	"github.com/zombar/searchintel/internal/models"
)

var (
	safeSpaceKeywords = getSafeSpaceKeywords()
	scamKeywords      = getScamKeywords()
	dangerKeywords    = getDangerKeywords()
)

// AnalyzeSafety derives zero or more safety flags for a result. Flags are
// not mutually exclusive and every reason string is deterministic for the
// same input.
func AnalyzeSafety(result models.SearchResult, credibility models.CredibilityScore) []models.SafetyFlag {
	flags := []models.SafetyFlag{}
	lower := normalizeText(result.Title + " " + result.Description)

	if credibility.Score >= models.CredibilityHighThreshold {
		flags = append(flags, models.SafetyFlag{
			Category: models.SafetyVerifiedContent,
			Reason: fmt.Sprintf("source credibility %.0f meets the verified threshold of %.0f",
				credibility.Score, models.CredibilityHighThreshold),
		})
	}

	if credibility.IsWomenFocused {
		flags = append(flags, models.SafetyFlag{
			Category: models.SafetyWomenLed,
			Reason:   "domain is on the curated women-focused allowlist",
		})
	}

	if hits := countPhraseHits(lower, safeSpaceKeywords); hits > 0 {
		flags = append(flags, models.SafetyFlag{
			Category: models.SafetySafeSpace,
			Reason:   fmt.Sprintf("matched %d community/support-space marker(s)", hits),
		})
	}

	// Scam markers are flagged regardless of source credibility.
	if hits := countPhraseHits(lower, scamKeywords); hits > 0 {
		flags = append(flags, models.SafetyFlag{
			Category: models.SafetyScamWarning,
			Reason:   fmt.Sprintf("matched %d scam/fraud marker(s)", hits),
		})
	}

	if hits := countPhraseHits(lower, dangerKeywords); hits > 0 {
		flags = append(flags, models.SafetyFlag{
			Category: models.SafetyConcern,
			Reason:   fmt.Sprintf("matched %d danger/harassment marker(s)", hits),
		})
	}

	return flags
}
