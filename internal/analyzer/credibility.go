package analyzer

import (
	"net/url"
	"strings"

	"github.com/zombar/searchintel/internal/models"
)

// Base credibility scores by domain type, plus the women-focused bonus.
// These are part of the tested scoring contract.
const (
	baseScoreGov          = 95.0
	baseScoreEdu          = 90.0
	baseScoreNewsVerified = 80.0
	baseScoreWomenFocused = 60.0
	baseScoreCommercial   = 50.0
	baseScoreUnknown      = 40.0

	womenFocusedBonus   = 15.0
	maxCredibilityScore = 100.0
)

var (
	verifiedNewsDomains = getVerifiedNewsDomains()
	womenFocusedDomains = getWomenFocusedDomains()
)

// ExtractDomain parses the hostname out of a URL. Malformed URLs yield an
// empty string rather than an error; credibility scoring treats that as an
// unknown domain.
func ExtractDomain(rawURL string) string {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	return host
}

// IsWomenFocused reports membership in the curated women-focused domain
// allowlist. Shared by credibility scoring and the safety analyzer.
func IsWomenFocused(domain string) bool {
	return womenFocusedDomains[normalizeDomain(domain)]
}

// DomainTypeFor classifies a domain into the closed DomainType set using
// suffix and allowlist matching.
func DomainTypeFor(domain string) models.DomainType {
	d := normalizeDomain(domain)
	if d == "" {
		return models.DomainUnknown
	}

	switch {
	case strings.HasSuffix(d, ".gov") || strings.Contains(d, ".gov."):
		return models.DomainGov
	case strings.HasSuffix(d, ".edu") || strings.Contains(d, ".edu."):
		return models.DomainEdu
	case verifiedNewsDomains[d]:
		return models.DomainNewsVerified
	case womenFocusedDomains[d]:
		return models.DomainWomenFocused
	case strings.HasSuffix(d, ".com") || strings.HasSuffix(d, ".net") ||
		strings.HasSuffix(d, ".biz") || strings.HasSuffix(d, ".shop"):
		return models.DomainCommercial
	default:
		return models.DomainUnknown
	}
}

// CalculateCredibility rates a result's source for trustworthiness. Pure,
// deterministic, offline string matching against static lists.
func CalculateCredibility(result models.SearchResult) models.CredibilityScore {
	domain := result.Domain
	if domain == "" {
		domain = ExtractDomain(result.URL)
	}
	domain = normalizeDomain(domain)

	domainType := DomainTypeFor(domain)
	womenFocused := IsWomenFocused(domain)

	score := baseScoreFor(domainType)
	if womenFocused {
		score += womenFocusedBonus
	}
	if score > maxCredibilityScore {
		score = maxCredibilityScore
	}

	return models.CredibilityScore{
		Score:          score,
		Label:          models.CredibilityLabelForScore(score),
		DomainType:     domainType,
		IsWomenFocused: womenFocused,
	}
}

func baseScoreFor(domainType models.DomainType) float64 {
	switch domainType {
	case models.DomainGov:
		return baseScoreGov
	case models.DomainEdu:
		return baseScoreEdu
	case models.DomainNewsVerified:
		return baseScoreNewsVerified
	case models.DomainWomenFocused:
		return baseScoreWomenFocused
	case models.DomainCommercial:
		return baseScoreCommercial
	default:
		return baseScoreUnknown
	}
}

func normalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimPrefix(d, "www.")
}
