package models

import "time"

// SearchResult is a single raw result from an external search provider.
// Domain may be supplied by the provider or derived from URL.
type SearchResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Domain      string `json:"domain,omitempty"`
}

// Metric identifies one analysis axis.
type Metric string

const (
	MetricCredibility    Metric = "credibility"
	MetricBias           Metric = "bias"
	MetricAIContent      Metric = "ai_content"
	MetricSafety         Metric = "safety"
	MetricSustainability Metric = "sustainability"
)

// Metrics lists every analysis axis in evaluation order.
func Metrics() []Metric {
	return []Metric{MetricCredibility, MetricBias, MetricAIContent, MetricSafety, MetricSustainability}
}

// Provenance records how a metric value was produced, so callers can
// distinguish AI output from heuristic output and from AI-failure fallback.
type Provenance string

const (
	ProvenanceLocal         Provenance = "local"
	ProvenanceAI            Provenance = "ai"
	ProvenanceLocalFallback Provenance = "local_fallback"
)

// GenderBiasLabel is the closed label set for gender-bias scoring.
type GenderBiasLabel string

const (
	GenderWomenPositive     GenderBiasLabel = "women-positive"
	GenderInclusive         GenderBiasLabel = "inclusive"
	GenderNeutral           GenderBiasLabel = "neutral"
	GenderSubtleBias        GenderBiasLabel = "subtle-bias"
	GenderPotentiallyBiased GenderBiasLabel = "potentially-biased"
)

// GenderBiasAnalysis scores text on a -1..1 axis where positive values
// indicate women-positive framing.
type GenderBiasAnalysis struct {
	Score float64         `json:"score"` // -1.0 to 1.0
	Label GenderBiasLabel `json:"label"`
}

// PoliticalBiasIndicator is an ordinal scale. Center and Unknown are
// distinct: unknown means no political markers matched at all, center means
// markers matched and balanced out.
type PoliticalBiasIndicator string

const (
	PoliticalFarLeft  PoliticalBiasIndicator = "far-left"
	PoliticalLeft     PoliticalBiasIndicator = "left"
	PoliticalCenter   PoliticalBiasIndicator = "center"
	PoliticalRight    PoliticalBiasIndicator = "right"
	PoliticalFarRight PoliticalBiasIndicator = "far-right"
	PoliticalUnknown  PoliticalBiasIndicator = "unknown"
)

// PoliticalBiasAnalysis holds the detected position on the ordinal scale.
type PoliticalBiasAnalysis struct {
	Indicator PoliticalBiasIndicator `json:"indicator"`
}

// CommercialBiasAnalysis flags promotional/sales language.
type CommercialBiasAnalysis struct {
	IsPromotional bool    `json:"is_promotional"`
	Score         float64 `json:"score"` // 0-100 promotional language density
}

// EmotionalTone is the ordinal tone scale from factual to sensational.
type EmotionalTone string

const (
	ToneFactual     EmotionalTone = "factual"
	ToneBalanced    EmotionalTone = "balanced"
	ToneEmotional   EmotionalTone = "emotional"
	ToneSensational EmotionalTone = "sensational"
)

// BiasAnalysis aggregates the four independent bias dimensions. The
// dimensions are never combined into a single overall score.
type BiasAnalysis struct {
	Gender     GenderBiasAnalysis     `json:"gender"`
	Political  PoliticalBiasAnalysis  `json:"political"`
	Commercial CommercialBiasAnalysis `json:"commercial"`
	Tone       EmotionalTone          `json:"tone"`
}

// DomainType classifies a source domain.
type DomainType string

const (
	DomainGov          DomainType = "gov"
	DomainEdu          DomainType = "edu"
	DomainNewsVerified DomainType = "news-verified"
	DomainWomenFocused DomainType = "women-focused"
	DomainCommercial   DomainType = "commercial"
	DomainUnknown      DomainType = "unknown"
)

// CredibilityLabel buckets the 0-100 credibility score.
type CredibilityLabel string

const (
	CredibilityLow       CredibilityLabel = "low"
	CredibilityModerate  CredibilityLabel = "moderate"
	CredibilityHigh      CredibilityLabel = "high"
	CredibilityExcellent CredibilityLabel = "excellent"
)

// CredibilityScore is a 0-100 trust estimate for a content source.
type CredibilityScore struct {
	Score          float64          `json:"score"` // 0-100
	Label          CredibilityLabel `json:"label"`
	DomainType     DomainType       `json:"domain_type"`
	IsWomenFocused bool             `json:"is_women_focused"`
}

// AIContentLabel buckets the AI-generated-content probability.
type AIContentLabel string

const (
	AIContentVeryUnlikely     AIContentLabel = "very-unlikely"
	AIContentUnlikely         AIContentLabel = "unlikely"
	AIContentLikely           AIContentLabel = "likely"
	AIContentVeryLikely       AIContentLabel = "very-likely"
	AIContentInsufficientData AIContentLabel = "insufficient-data"
)

// AIContentColor is a presentation hint derived from the same thresholds as
// the label; it carries no independent semantics.
type AIContentColor string

const (
	AIColorGreen  AIContentColor = "green"
	AIColorYellow AIContentColor = "yellow"
	AIColorOrange AIContentColor = "orange"
	AIColorRed    AIContentColor = "red"
	AIColorGray   AIContentColor = "gray"
)

// AIContentDetection estimates the probability that text is machine-generated.
type AIContentDetection struct {
	Probability float64        `json:"probability"` // 0.0 to 1.0
	Label       AIContentLabel `json:"label"`
	Color       AIContentColor `json:"color"`
}

// SafetyCategory is the closed set of safety flag categories.
type SafetyCategory string

const (
	SafetyVerifiedContent SafetyCategory = "verified-content"
	SafetyWomenLed        SafetyCategory = "women-led"
	SafetySafeSpace       SafetyCategory = "safe-space"
	SafetyScamWarning     SafetyCategory = "scam-warning"
	SafetyConcern         SafetyCategory = "safety-concern"
)

// SafetyFlag is one safety annotation with a human-readable justification.
// Flags are not mutually exclusive.
type SafetyFlag struct {
	Category SafetyCategory `json:"category"`
	Reason   string         `json:"reason"`
}

// SustainabilityLabel buckets the 0-100 sustainability score.
type SustainabilityLabel string

const (
	SustainabilityEmerging SustainabilityLabel = "emerging"
	SustainabilityModerate SustainabilityLabel = "moderate"
	SustainabilityStrong   SustainabilityLabel = "strong"
)

// SustainabilityScore rates eco/ethical-business signal strength. A nil
// *SustainabilityScore means no signal was detected, which is a distinct
// state from a low score.
type SustainabilityScore struct {
	Score float64             `json:"score"` // 0-100
	Label SustainabilityLabel `json:"label"`
}

// AnnotatedResult bundles a source result with the output of all five
// analyzers. Provenance records, per metric, whether the value came from the
// local heuristic, an AI provider, or local fallback after an AI failure.
type AnnotatedResult struct {
	Result         SearchResult          `json:"result"`
	Credibility    CredibilityScore      `json:"credibility"`
	Bias           BiasAnalysis          `json:"bias"`
	AIContent      AIContentDetection    `json:"ai_content"`
	SafetyFlags    []SafetyFlag          `json:"safety_flags"`
	Sustainability *SustainabilityScore  `json:"sustainability,omitempty"`
	Provenance     map[Metric]Provenance `json:"provenance"`
}

// Summary perspectives.
const (
	PerspectiveWomenFirst = "women-first"
	PerspectiveBalanced   = "balanced"
)

// SummaryResponse is a short cited synthesis over the top-ranked results.
// Sources is always a subset of the URLs passed to the summarizer.
type SummaryResponse struct {
	Summary     string    `json:"summary"`
	Sources     []string  `json:"sources"`
	Perspective string    `json:"perspective"`
	GeneratedAt time.Time `json:"generated_at"`
}

// AnalysisJob is a stored batch analysis request with its outcome.
type AnalysisJob struct {
	ID        string            `json:"id"`
	Query     string            `json:"query"`
	Results   []SearchResult    `json:"results"`
	Annotated []AnnotatedResult `json:"annotated,omitempty"`
	Summary   *SummaryResponse  `json:"summary,omitempty"`
	Status    string            `json:"status"` // queued, completed, failed
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Job status values.
const (
	JobStatusQueued    = "queued"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Threshold constants are the public, tested contract for every
// label-mapping function. They live here so tests target a single source of
// truth.
const (
	// Credibility score buckets (0-100 scale).
	CredibilityModerateThreshold  = 40.0
	CredibilityHighThreshold      = 70.0
	CredibilityExcellentThreshold = 90.0

	// Gender-bias score buckets (-1..1 scale).
	GenderWomenPositiveThreshold = 0.5
	GenderInclusiveThreshold     = 0.1
	GenderSubtleBiasThreshold    = -0.1
	GenderBiasedThreshold        = -0.5

	// AI-content probability buckets (0..1 scale).
	AIContentUnlikelyThreshold   = 0.25
	AIContentLikelyThreshold     = 0.50
	AIContentVeryLikelyThreshold = 0.75

	// Commercial promotional-language density threshold (0-100 scale).
	CommercialPromotionalThreshold = 40.0

	// Sustainability score buckets (0-100 scale).
	SustainabilityModerateThreshold = 40.0
	SustainabilityStrongThreshold   = 70.0
)

// CredibilityLabelForScore maps a 0-100 credibility score to its label.
func CredibilityLabelForScore(score float64) CredibilityLabel {
	switch {
	case score >= CredibilityExcellentThreshold:
		return CredibilityExcellent
	case score >= CredibilityHighThreshold:
		return CredibilityHigh
	case score >= CredibilityModerateThreshold:
		return CredibilityModerate
	default:
		return CredibilityLow
	}
}

// GenderBiasLabelForScore maps a -1..1 gender-bias score to its label. A
// zero-signal score maps to neutral, never to an extreme.
func GenderBiasLabelForScore(score float64) GenderBiasLabel {
	switch {
	case score >= GenderWomenPositiveThreshold:
		return GenderWomenPositive
	case score >= GenderInclusiveThreshold:
		return GenderInclusive
	case score > GenderSubtleBiasThreshold:
		return GenderNeutral
	case score > GenderBiasedThreshold:
		return GenderSubtleBias
	default:
		return GenderPotentiallyBiased
	}
}

// AIContentLabelForProbability maps a 0..1 probability to its label.
func AIContentLabelForProbability(p float64) AIContentLabel {
	switch {
	case p >= AIContentVeryLikelyThreshold:
		return AIContentVeryLikely
	case p >= AIContentLikelyThreshold:
		return AIContentLikely
	case p >= AIContentUnlikelyThreshold:
		return AIContentUnlikely
	default:
		return AIContentVeryUnlikely
	}
}

// AIContentColorForProbability maps a 0..1 probability to its rendering
// color. Buckets match AIContentLabelForProbability exactly.
func AIContentColorForProbability(p float64) AIContentColor {
	switch {
	case p >= AIContentVeryLikelyThreshold:
		return AIColorRed
	case p >= AIContentLikelyThreshold:
		return AIColorOrange
	case p >= AIContentUnlikelyThreshold:
		return AIColorYellow
	default:
		return AIColorGreen
	}
}

// SustainabilityLabelForScore maps a 0-100 sustainability score to its label.
func SustainabilityLabelForScore(score float64) SustainabilityLabel {
	switch {
	case score >= SustainabilityStrongThreshold:
		return SustainabilityStrong
	case score >= SustainabilityModerateThreshold:
		return SustainabilityModerate
	default:
		return SustainabilityEmerging
	}
}
