// Package analyzer implements the content analysis core: five independent
// heuristic analyzers over search-result text plus the orchestrating engine
// that bundles their output per result, with a pluggable local/AI mode per
// metric.
package analyzer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/zombar/searchintel/internal/metrics"
	"github.com/zombar/searchintel/internal/models"
)

// Engine runs all analyzers per result according to the per-metric
// configuration table.
type Engine struct {
	cfg      Config
	provider AIProvider
	cache    *resultCache
	limiter  *rate.Limiter

	// A missing provider while a metric is in AI mode is a permanent
	// provider-unavailable condition for the run; it is logged once, not
	// per result.
	unavailableOnce sync.Once
}

// New creates an engine without an AI provider; every metric runs its local
// heuristic regardless of configured mode.
func New(cfg Config) *Engine {
	return NewWithProvider(cfg, nil)
}

// NewWithProvider creates an engine that can evaluate AI-mode metrics
// through the given provider.
func NewWithProvider(cfg Config, provider AIProvider) *Engine {
	cfg = cfg.normalized()
	return &Engine{
		cfg:      cfg,
		provider: provider,
		cache:    newResultCache(),
		limiter:  rate.NewLimiter(rate.Limit(cfg.AIRateLimit), cfg.AIBurst),
	}
}

// Analyze computes the full score bundle for every result. Output is a 1:1,
// order-preserving map over the input even though per-result work fans out
// concurrently; reordering by score is the caller's responsibility. One
// result's failure never aborts analysis of the others.
func (e *Engine) Analyze(ctx context.Context, results []models.SearchResult, query string) []models.AnnotatedResult {
	start := time.Now()
	defer func() {
		metrics.BatchDuration.Observe(time.Since(start).Seconds())
	}()

	out := make([]models.AnnotatedResult, len(results))
	if len(results) == 0 {
		return out
	}

	slog.Info("analyzing batch", "results", len(results), "query", query)

	sem := make(chan struct{}, e.cfg.MaxConcurrency)
	var wg sync.WaitGroup
	for i, result := range results {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, result models.SearchResult) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = e.annotate(ctx, result)
		}(i, result)
	}
	wg.Wait()

	return out
}

func (e *Engine) annotate(ctx context.Context, result models.SearchResult) models.AnnotatedResult {
	provenance := make(map[models.Metric]models.Provenance)
	annotated := models.AnnotatedResult{Result: result, Provenance: provenance}

	// Credibility first: the safety analyzer consumes it.
	if mc := e.cfg.Metrics[models.MetricCredibility]; mc.Enabled {
		annotated.Credibility, provenance[models.MetricCredibility] = e.cachedCredibility(result, mc)
	}

	if mc := e.cfg.Metrics[models.MetricBias]; mc.Enabled {
		annotated.Bias, provenance[models.MetricBias] = e.cachedBias(ctx, result, mc)
	} else {
		annotated.Bias = neutralBias()
	}

	if mc := e.cfg.Metrics[models.MetricAIContent]; mc.Enabled {
		annotated.AIContent, provenance[models.MetricAIContent] = e.cachedAIContent(ctx, result, mc)
	} else {
		annotated.AIContent = neutralAIContent()
	}

	if mc := e.cfg.Metrics[models.MetricSafety]; mc.Enabled {
		annotated.SafetyFlags = AnalyzeSafety(result, annotated.Credibility)
		provenance[models.MetricSafety] = models.ProvenanceLocal
	} else {
		annotated.SafetyFlags = []models.SafetyFlag{}
	}

	if mc := e.cfg.Metrics[models.MetricSustainability]; mc.Enabled {
		annotated.Sustainability, provenance[models.MetricSustainability] = e.cachedSustainability(ctx, result, mc)
	}

	for metric, p := range provenance {
		metrics.AnalysesTotal.WithLabelValues(string(metric), string(p)).Inc()
	}

	return annotated
}

// evaluatorFor selects the strategy for one metric. AI mode without a
// configured provider degrades to the local heuristic marked as fallback.
func (e *Engine) evaluatorFor(metric models.Metric, mc MetricConfig) metricEvaluator {
	if mc.Mode != ModeAI {
		return localEvaluator{}
	}
	if e.provider == nil {
		e.unavailableOnce.Do(func() {
			slog.Warn("AI mode requested but no provider is configured, using local heuristics",
				"metric", metric)
		})
		metrics.AIFallbacksTotal.WithLabelValues(string(metric), "unconfigured").Inc()
		return unavailableEvaluator{}
	}
	return aiEvaluator{
		provider:   e.provider,
		local:      localEvaluator{},
		fallback:   mc.FallbackToLocal,
		timeout:    e.cfg.AITimeout,
		limiter:    e.limiter,
		waitBudget: e.cfg.AIWaitBudget,
	}
}

// unavailableEvaluator runs the local heuristics but reports fallback
// provenance, so callers can tell the metric did not run in its configured
// AI mode.
type unavailableEvaluator struct {
	local localEvaluator
}

func (e unavailableEvaluator) bias(ctx context.Context, result models.SearchResult) (models.BiasAnalysis, models.Provenance) {
	value, _ := e.local.bias(ctx, result)
	return value, models.ProvenanceLocalFallback
}

func (e unavailableEvaluator) aiContent(ctx context.Context, result models.SearchResult) (models.AIContentDetection, models.Provenance) {
	value, _ := e.local.aiContent(ctx, result)
	return value, models.ProvenanceLocalFallback
}

func (e unavailableEvaluator) sustainability(ctx context.Context, result models.SearchResult) (*models.SustainabilityScore, models.Provenance) {
	value, _ := e.local.sustainability(ctx, result)
	return value, models.ProvenanceLocalFallback
}

func (e *Engine) cachedCredibility(result models.SearchResult, mc MetricConfig) (models.CredibilityScore, models.Provenance) {
	if !mc.CacheResults {
		return CalculateCredibility(result), models.ProvenanceLocal
	}

	key := cacheKey(result, models.MetricCredibility, mc.Mode)
	if v, p, ok := e.cache.get(key); ok {
		metrics.CacheHits.WithLabelValues(string(models.MetricCredibility)).Inc()
		return v.(models.CredibilityScore), p
	}
	metrics.CacheMisses.WithLabelValues(string(models.MetricCredibility)).Inc()

	value := CalculateCredibility(result)
	e.cache.set(key, value, models.ProvenanceLocal, mc.CacheTTL)
	return value, models.ProvenanceLocal
}

func (e *Engine) cachedBias(ctx context.Context, result models.SearchResult, mc MetricConfig) (models.BiasAnalysis, models.Provenance) {
	ev := e.evaluatorFor(models.MetricBias, mc)
	if !mc.CacheResults {
		return ev.bias(ctx, result)
	}

	key := cacheKey(result, models.MetricBias, mc.Mode)
	if v, p, ok := e.cache.get(key); ok {
		metrics.CacheHits.WithLabelValues(string(models.MetricBias)).Inc()
		return v.(models.BiasAnalysis), p
	}
	metrics.CacheMisses.WithLabelValues(string(models.MetricBias)).Inc()

	value, p := ev.bias(ctx, result)
	e.cache.set(key, value, p, mc.CacheTTL)
	return value, p
}

func (e *Engine) cachedAIContent(ctx context.Context, result models.SearchResult, mc MetricConfig) (models.AIContentDetection, models.Provenance) {
	ev := e.evaluatorFor(models.MetricAIContent, mc)
	if !mc.CacheResults {
		return ev.aiContent(ctx, result)
	}

	key := cacheKey(result, models.MetricAIContent, mc.Mode)
	if v, p, ok := e.cache.get(key); ok {
		metrics.CacheHits.WithLabelValues(string(models.MetricAIContent)).Inc()
		return v.(models.AIContentDetection), p
	}
	metrics.CacheMisses.WithLabelValues(string(models.MetricAIContent)).Inc()

	value, p := ev.aiContent(ctx, result)
	e.cache.set(key, value, p, mc.CacheTTL)
	return value, p
}

func (e *Engine) cachedSustainability(ctx context.Context, result models.SearchResult, mc MetricConfig) (*models.SustainabilityScore, models.Provenance) {
	ev := e.evaluatorFor(models.MetricSustainability, mc)
	if !mc.CacheResults {
		return ev.sustainability(ctx, result)
	}

	key := cacheKey(result, models.MetricSustainability, mc.Mode)
	if v, p, ok := e.cache.get(key); ok {
		metrics.CacheHits.WithLabelValues(string(models.MetricSustainability)).Inc()
		return v.(*models.SustainabilityScore), p
	}
	metrics.CacheMisses.WithLabelValues(string(models.MetricSustainability)).Inc()

	value, p := ev.sustainability(ctx, result)
	e.cache.set(key, value, p, mc.CacheTTL)
	return value, p
}
