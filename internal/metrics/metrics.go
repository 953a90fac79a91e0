// Package metrics defines the Prometheus business metrics for the analysis
// pipeline. Collectors are registered once on the default registry and
// exposed via the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesTotal counts per-metric evaluations by provenance
	// (local, ai, local_fallback).
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "searchintel",
		Name:      "analyses_total",
		Help:      "Metric evaluations by metric name and provenance.",
	}, []string{"metric", "provenance"})

	// AIFallbacksTotal counts AI-mode calls that degraded to the local
	// heuristic, by reason (error, timeout, rate_limited, unconfigured).
	AIFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "searchintel",
		Name:      "ai_fallbacks_total",
		Help:      "AI-mode evaluations that fell back to the local heuristic.",
	}, []string{"metric", "reason"})

	// BatchDuration observes wall time for whole-batch analysis.
	BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "searchintel",
		Name:      "batch_duration_seconds",
		Help:      "Duration of batch analysis runs.",
		Buckets:   prometheus.DefBuckets,
	})

	// CacheHits and CacheMisses track the per-metric score cache.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "searchintel",
		Name:      "cache_hits_total",
		Help:      "Score cache hits by metric.",
	}, []string{"metric"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "searchintel",
		Name:      "cache_misses_total",
		Help:      "Score cache misses by metric.",
	}, []string{"metric"})

	// SummariesTotal counts summary generations by outcome
	// (generated, fallback, error_fallback).
	SummariesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "searchintel",
		Name:      "summaries_total",
		Help:      "Summary generations by outcome.",
	}, []string{"outcome"})
)
