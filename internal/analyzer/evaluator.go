package analyzer

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/zombar/searchintel/internal/metrics"
	"github.com/zombar/searchintel/internal/models"
	"github.com/zombar/searchintel/internal/ollama"
)

// AIProvider is the external generative-language capability the AI-backed
// evaluator needs. *ollama.Client satisfies it; tests substitute fakes.
type AIProvider interface {
	ScoreBias(ctx context.Context, text string) (*ollama.BiasResult, error)
	DetectAIContent(ctx context.Context, text string) (*ollama.AIDetectionResult, error)
	ScoreSustainability(ctx context.Context, text string) (*ollama.SustainabilityResult, error)
}

// metricEvaluator is the per-metric strategy: one implementation runs the
// local heuristics, the other calls the AI provider and composes the local
// evaluator for its fallback path.
type metricEvaluator interface {
	bias(ctx context.Context, result models.SearchResult) (models.BiasAnalysis, models.Provenance)
	aiContent(ctx context.Context, result models.SearchResult) (models.AIContentDetection, models.Provenance)
	sustainability(ctx context.Context, result models.SearchResult) (*models.SustainabilityScore, models.Provenance)
}

// localEvaluator runs the deterministic heuristics. It never suspends.
type localEvaluator struct{}

func (localEvaluator) bias(_ context.Context, result models.SearchResult) (models.BiasAnalysis, models.Provenance) {
	return AnalyzeBias(result), models.ProvenanceLocal
}

func (localEvaluator) aiContent(_ context.Context, result models.SearchResult) (models.AIContentDetection, models.Provenance) {
	return DetectAIContent(resultText(result)), models.ProvenanceLocal
}

func (localEvaluator) sustainability(_ context.Context, result models.SearchResult) (*models.SustainabilityScore, models.Provenance) {
	return CalculateSustainability(result), models.ProvenanceLocal
}

// aiEvaluator calls the provider with a per-call timeout behind a rate
// limiter. On any failure it degrades: to the composed local evaluator when
// fallback is configured, otherwise to a neutral/unknown value. Either way
// the returned provenance is local_fallback so callers never see degraded
// output claiming AI provenance.
type aiEvaluator struct {
	provider   AIProvider
	local      localEvaluator
	fallback   bool
	timeout    time.Duration
	limiter    *rate.Limiter
	waitBudget time.Duration
}

// acquire gates an AI call on the provider rate ceiling. It queues up to
// waitBudget, then reports failure so the caller degrades instead of
// erroring the batch.
func (e aiEvaluator) acquire(ctx context.Context) bool {
	waitCtx, cancel := context.WithTimeout(ctx, e.waitBudget)
	defer cancel()
	return e.limiter.Wait(waitCtx) == nil
}

func (e aiEvaluator) bias(ctx context.Context, result models.SearchResult) (models.BiasAnalysis, models.Provenance) {
	if !e.acquire(ctx) {
		return e.biasFallback(ctx, result, "rate_limited")
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	providerResult, err := e.provider.ScoreBias(callCtx, resultText(result))
	if err != nil {
		return e.biasFallback(ctx, result, "error")
	}
	return biasFromProvider(providerResult), models.ProvenanceAI
}

func (e aiEvaluator) biasFallback(ctx context.Context, result models.SearchResult, reason string) (models.BiasAnalysis, models.Provenance) {
	metrics.AIFallbacksTotal.WithLabelValues(string(models.MetricBias), reason).Inc()
	if e.fallback {
		value, _ := e.local.bias(ctx, result)
		return value, models.ProvenanceLocalFallback
	}
	return neutralBias(), models.ProvenanceLocalFallback
}

func (e aiEvaluator) aiContent(ctx context.Context, result models.SearchResult) (models.AIContentDetection, models.Provenance) {
	if !e.acquire(ctx) {
		return e.aiContentFallback(ctx, result, "rate_limited")
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	providerResult, err := e.provider.DetectAIContent(callCtx, resultText(result))
	if err != nil {
		return e.aiContentFallback(ctx, result, "error")
	}

	p := providerResult.Probability
	return models.AIContentDetection{
		Probability: p,
		Label:       models.AIContentLabelForProbability(p),
		Color:       models.AIContentColorForProbability(p),
	}, models.ProvenanceAI
}

func (e aiEvaluator) aiContentFallback(ctx context.Context, result models.SearchResult, reason string) (models.AIContentDetection, models.Provenance) {
	metrics.AIFallbacksTotal.WithLabelValues(string(models.MetricAIContent), reason).Inc()
	if e.fallback {
		value, _ := e.local.aiContent(ctx, result)
		return value, models.ProvenanceLocalFallback
	}
	return neutralAIContent(), models.ProvenanceLocalFallback
}

func (e aiEvaluator) sustainability(ctx context.Context, result models.SearchResult) (*models.SustainabilityScore, models.Provenance) {
	if !e.acquire(ctx) {
		return e.sustainabilityFallback(ctx, result, "rate_limited")
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	providerResult, err := e.provider.ScoreSustainability(callCtx, resultText(result))
	if err != nil {
		return e.sustainabilityFallback(ctx, result, "error")
	}

	if !providerResult.HasSignal {
		return nil, models.ProvenanceAI
	}
	return &models.SustainabilityScore{
		Score: providerResult.Score,
		Label: models.SustainabilityLabelForScore(providerResult.Score),
	}, models.ProvenanceAI
}

func (e aiEvaluator) sustainabilityFallback(ctx context.Context, result models.SearchResult, reason string) (*models.SustainabilityScore, models.Provenance) {
	metrics.AIFallbacksTotal.WithLabelValues(string(models.MetricSustainability), reason).Inc()
	if e.fallback {
		value, _ := e.local.sustainability(ctx, result)
		return value, models.ProvenanceLocalFallback
	}
	return nil, models.ProvenanceLocalFallback
}

// biasFromProvider converts a provider bias assessment into the domain
// model, validating enum values so malformed output degrades to
// unknown/neutral rather than leaking arbitrary labels.
func biasFromProvider(r *ollama.BiasResult) models.BiasAnalysis {
	indicator := models.PoliticalBiasIndicator(r.PoliticalIndicator)
	switch indicator {
	case models.PoliticalFarLeft, models.PoliticalLeft, models.PoliticalCenter,
		models.PoliticalRight, models.PoliticalFarRight:
	default:
		indicator = models.PoliticalUnknown
	}

	tone := models.EmotionalTone(r.Tone)
	switch tone {
	case models.ToneFactual, models.ToneBalanced, models.ToneEmotional, models.ToneSensational:
	default:
		slog.Debug("provider returned unknown tone, defaulting to factual", "tone", r.Tone)
		tone = models.ToneFactual
	}

	return models.BiasAnalysis{
		Gender: models.GenderBiasAnalysis{
			Score: r.GenderScore,
			Label: models.GenderBiasLabelForScore(r.GenderScore),
		},
		Political: models.PoliticalBiasAnalysis{Indicator: indicator},
		Commercial: models.CommercialBiasAnalysis{
			IsPromotional: r.IsPromotional,
			Score:         r.CommercialScore,
		},
		Tone: tone,
	}
}

func neutralBias() models.BiasAnalysis {
	return models.BiasAnalysis{
		Gender:     models.GenderBiasAnalysis{Score: 0, Label: models.GenderNeutral},
		Political:  models.PoliticalBiasAnalysis{Indicator: models.PoliticalUnknown},
		Commercial: models.CommercialBiasAnalysis{IsPromotional: false, Score: 0},
		Tone:       models.ToneFactual,
	}
}

func neutralAIContent() models.AIContentDetection {
	return models.AIContentDetection{
		Probability: 0,
		Label:       models.AIContentInsufficientData,
		Color:       models.AIColorGray,
	}
}

func resultText(result models.SearchResult) string {
	return result.Title + " " + result.Description
}
