package analyzer

import (
	"math"
	"strings"

	"github.com/zombar/searchintel/internal/models"
)

// Weights for the bias heuristics. Part of the tested scoring contract.
const (
	// Each net gender phrase match moves the -1..1 score by this much.
	genderPhraseWeight = 0.25

	// Commercial match weights on the 0-100 density scale.
	ctaMatchWeight         = 15.0
	pricingMatchWeight     = 10.0
	superlativeMatchWeight = 10.0

	// Sensational-marker density per word for each tone step.
	toneBalancedDensity    = 0.02
	toneEmotionalDensity   = 0.05
	toneSensationalDensity = 0.12
)

var (
	womenPositivePhrases = getWomenPositivePhrases()
	genderBiasPhrases    = getGenderBiasPhrases()
	politicalLexicon     = getPoliticalLexicon()
	callToActionPhrases  = getCallToActionPhrases()
	pricingPhrases       = getPricingPhrases()
	marketingSuperlative = getMarketingSuperlatives()
	sensationalWords     = getSensationalWords()
	factualMarkers       = getFactualMarkers()
)

// AnalyzeBias runs all four bias dimensions over a result's title and
// description. Each sub-analysis is independently callable.
func AnalyzeBias(result models.SearchResult) models.BiasAnalysis {
	text := result.Title + " " + result.Description

	return models.BiasAnalysis{
		Gender:     AnalyzeGenderBias(text),
		Political:  AnalyzePoliticalBias(text),
		Commercial: AnalyzeCommercialBias(text),
		Tone:       AnalyzeEmotionalTone(text),
	}
}

// AnalyzeGenderBias scores the balance of women-positive indicator phrases
// against bias-indicator phrases. Zero net signal maps to neutral.
func AnalyzeGenderBias(text string) models.GenderBiasAnalysis {
	lower := normalizeText(text)
	if lower == "" {
		return models.GenderBiasAnalysis{Score: 0, Label: models.GenderNeutral}
	}

	positive := countPhraseHits(lower, womenPositivePhrases)
	negative := countPhraseHits(lower, genderBiasPhrases)

	score := float64(positive-negative) * genderPhraseWeight
	score = math.Max(-1.0, math.Min(1.0, score))

	return models.GenderBiasAnalysis{
		Score: score,
		Label: models.GenderBiasLabelForScore(score),
	}
}

// AnalyzePoliticalBias matches marker phrases per point on the ordinal
// scale. No markers at all yields unknown; markers that balance out yield
// center. The analyzer never guesses a direction from a tie.
func AnalyzePoliticalBias(text string) models.PoliticalBiasAnalysis {
	lower := normalizeText(text)
	if lower == "" {
		return models.PoliticalBiasAnalysis{Indicator: models.PoliticalUnknown}
	}

	weights := map[string]float64{
		"far-left":  -2,
		"left":      -1,
		"center":    0,
		"right":     1,
		"far-right": 2,
	}

	total := 0
	weighted := 0.0
	for scale, phrases := range politicalLexicon {
		hits := countPhraseHits(lower, phrases)
		total += hits
		weighted += weights[scale] * float64(hits)
	}

	if total == 0 {
		return models.PoliticalBiasAnalysis{Indicator: models.PoliticalUnknown}
	}

	avg := weighted / float64(total)
	var indicator models.PoliticalBiasIndicator
	switch {
	case avg <= -1.5:
		indicator = models.PoliticalFarLeft
	case avg <= -0.5:
		indicator = models.PoliticalLeft
	case avg < 0.5:
		indicator = models.PoliticalCenter
	case avg < 1.5:
		indicator = models.PoliticalRight
	default:
		indicator = models.PoliticalFarRight
	}

	return models.PoliticalBiasAnalysis{Indicator: indicator}
}

// AnalyzeCommercialBias detects promotional/sales language: imperative
// calls-to-action, pricing and discount phrases, and superlative marketing
// adjectives. IsPromotional is a threshold over the density score.
func AnalyzeCommercialBias(text string) models.CommercialBiasAnalysis {
	lower := normalizeText(text)
	if lower == "" {
		return models.CommercialBiasAnalysis{IsPromotional: false, Score: 0}
	}

	cta := countPhraseHits(lower, callToActionPhrases)
	pricing := countPhraseHits(lower, pricingPhrases)
	superlatives := countPhraseHits(lower, marketingSuperlative)

	score := ctaMatchWeight*float64(cta) +
		pricingMatchWeight*float64(pricing) +
		superlativeMatchWeight*float64(superlatives)
	score = math.Min(100, score)

	return models.CommercialBiasAnalysis{
		IsPromotional: score >= models.CommercialPromotionalThreshold,
		Score:         score,
	}
}

// AnalyzeEmotionalTone rates text from factual to sensational using charged
// words, excessive punctuation, and shouting, weighed against neutral
// reporting markers.
func AnalyzeEmotionalTone(text string) models.EmotionalTone {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	words := strings.Fields(lower)
	if len(words) == 0 {
		return models.ToneFactual
	}

	markers := countPhraseHits(lower, sensationalWords)

	// Exclamation marks beyond the first suggest sensational punctuation.
	if ex := strings.Count(trimmed, "!"); ex > 1 {
		markers += ex - 1
	}

	// Shouted words (3+ letters, all caps).
	for _, w := range strings.Fields(trimmed) {
		upper := strings.Trim(w, ".,!?:;\"'")
		if len(upper) >= 3 && upper == strings.ToUpper(upper) && upper != strings.ToLower(upper) {
			markers++
		}
	}

	// Factual reporting markers offset sensational ones.
	markers -= countPhraseHits(lower, factualMarkers)
	if markers < 0 {
		markers = 0
	}

	density := float64(markers) / float64(len(words))
	switch {
	case density >= toneSensationalDensity:
		return models.ToneSensational
	case density >= toneEmotionalDensity:
		return models.ToneEmotional
	case density >= toneBalancedDensity:
		return models.ToneBalanced
	default:
		return models.ToneFactual
	}
}

// countPhraseHits counts total occurrences of every phrase in lowercased text.
func countPhraseHits(lower string, phrases []string) int {
	hits := 0
	for _, phrase := range phrases {
		hits += strings.Count(lower, phrase)
	}
	return hits
}

// normalizeText lowercases and trims input for case- and
// whitespace-insensitive matching.
func normalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
