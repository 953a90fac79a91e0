package analyzer

import (
	"time"

	"github.com/zombar/searchintel/internal/models"
)

// Mode selects how a metric is evaluated.
type Mode string

const (
	ModeLocal Mode = "local"
	ModeAI    Mode = "ai"
)

// MetricConfig is the per-metric configuration table entry.
type MetricConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Mode            Mode          `yaml:"mode"`
	FallbackToLocal bool          `yaml:"fallbackToLocal"`
	CacheResults    bool          `yaml:"cacheResults"`
	CacheTTL        time.Duration `yaml:"cacheTTL"`
}

// Config configures the orchestrator. Mode is selected independently per
// metric; AI settings apply to every AI-mode call.
type Config struct {
	Metrics map[models.Metric]MetricConfig `yaml:"metrics"`

	// AITimeout bounds each individual AI-mode call.
	AITimeout time.Duration `yaml:"aiTimeout"`

	// AIRateLimit is the provider rate ceiling in calls per second;
	// AIBurst is the burst allowance. AIWaitBudget bounds how long an
	// AI-mode call may queue on the limiter before degrading to the
	// local heuristic.
	AIRateLimit  float64       `yaml:"aiRateLimit"`
	AIBurst      int           `yaml:"aiBurst"`
	AIWaitBudget time.Duration `yaml:"aiWaitBudget"`

	// MaxConcurrency bounds the per-batch fan-out.
	MaxConcurrency int `yaml:"maxConcurrency"`
}

// DefaultMetricConfig is the table entry used for any metric the caller
// leaves unconfigured.
func DefaultMetricConfig() MetricConfig {
	return MetricConfig{
		Enabled:         true,
		Mode:            ModeLocal,
		FallbackToLocal: true,
		CacheResults:    false,
		CacheTTL:        5 * time.Minute,
	}
}

// DefaultConfig returns a fully-local configuration with every metric
// enabled.
func DefaultConfig() Config {
	metrics := make(map[models.Metric]MetricConfig, len(models.Metrics()))
	for _, m := range models.Metrics() {
		metrics[m] = DefaultMetricConfig()
	}

	return Config{
		Metrics:        metrics,
		AITimeout:      30 * time.Second,
		AIRateLimit:    5,
		AIBurst:        5,
		AIWaitBudget:   2 * time.Second,
		MaxConcurrency: 8,
	}
}

// normalized fills gaps with defaults and enforces structural rules:
// credibility is pure offline classification and safety derives from it, so
// both modes are always forced back to local.
func (c Config) normalized() Config {
	out := c
	out.Metrics = make(map[models.Metric]MetricConfig, len(models.Metrics()))
	for _, m := range models.Metrics() {
		mc, ok := c.Metrics[m]
		if !ok {
			mc = DefaultMetricConfig()
		}
		if mc.Mode != ModeAI {
			mc.Mode = ModeLocal
		}
		if m == models.MetricCredibility || m == models.MetricSafety {
			mc.Mode = ModeLocal
		}
		if mc.CacheTTL <= 0 {
			mc.CacheTTL = DefaultMetricConfig().CacheTTL
		}
		out.Metrics[m] = mc
	}

	if out.AITimeout <= 0 {
		out.AITimeout = 30 * time.Second
	}
	if out.AIRateLimit <= 0 {
		out.AIRateLimit = 5
	}
	if out.AIBurst <= 0 {
		out.AIBurst = 5
	}
	if out.AIWaitBudget <= 0 {
		out.AIWaitBudget = 2 * time.Second
	}
	if out.MaxConcurrency <= 0 {
		out.MaxConcurrency = 8
	}
	return out
}
