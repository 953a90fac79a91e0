package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const (
	DefaultModel   = "gpt-oss:20b"
	DefaultTimeout = 120 * time.Second
)

// Client wraps the Ollama API client.
type Client struct {
	client  *api.Client
	model   string
	timeout time.Duration
}

// New creates a new Ollama client.
func New(ollamaURL, model string) (*Client, error) {
	if ollamaURL == "" {
		ollamaURL = "http://localhost:11434"
	}
	if model == "" {
		model = DefaultModel
	}

	baseURL, err := url.Parse(ollamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	client := api.NewClient(baseURL, http.DefaultClient)

	return &Client{
		client:  client,
		model:   model,
		timeout: DefaultTimeout,
	}, nil
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// GenerateResponse generates a response from the LLM.
func (c *Client) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	slog.Debug("ollama request", "model", c.model, "timeout", c.timeout, "prompt_length", len(prompt))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &api.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: new(bool), // false
	}

	var response strings.Builder
	err := c.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		response.WriteString(resp.Response)
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	result := strings.TrimSpace(response.String())
	slog.Debug("ollama response received", "chars", len(result))
	return result, nil
}

// BiasResult is the provider's assessment across all four bias dimensions.
type BiasResult struct {
	GenderScore        float64 `json:"gender_score"`        // -1.0 to 1.0
	PoliticalIndicator string  `json:"political_indicator"` // far-left..far-right, center, unknown
	CommercialScore    float64 `json:"commercial_score"`    // 0-100
	IsPromotional      bool    `json:"is_promotional"`
	Tone               string  `json:"tone"` // factual, balanced, emotional, sensational
}

// ScoreBias asks the model to rate text along the four bias dimensions.
func (c *Client) ScoreBias(ctx context.Context, text string) (*BiasResult, error) {
	prompt := fmt.Sprintf(`Analyze the following search-result text for bias along four independent dimensions.

Return ONLY a JSON object with these fields:
- gender_score: -1.0 to 1.0 where positive means women-positive framing and negative means gender-biased framing
- political_indicator: one of "far-left", "left", "center", "right", "far-right", or "unknown" when no political markers exist
- commercial_score: 0-100 density of promotional/sales language (calls to action, pricing, marketing superlatives)
- is_promotional: true when the text is primarily promotional
- tone: one of "factual", "balanced", "emotional", "sensational"

Do not combine the dimensions; rate each independently.

Text:
%s

JSON object:`, text)

	response, err := c.GenerateResponse(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result BiasResult
	if err := unmarshalJSONObject(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse bias JSON: %w", err)
	}

	result.GenderScore = clamp(result.GenderScore, -1, 1)
	result.CommercialScore = clamp(result.CommercialScore, 0, 100)
	return &result, nil
}

// AIDetectionResult is the provider's machine-generated-text estimate.
type AIDetectionResult struct {
	Probability float64  `json:"probability"` // 0.0 to 1.0
	Indicators  []string `json:"indicators"`
}

// DetectAIContent asks the model whether the text was machine-generated.
func (c *Client) DetectAIContent(ctx context.Context, text string) (*AIDetectionResult, error) {
	prompt := fmt.Sprintf(`Estimate the probability that the following text was generated by an AI language model rather than written by a human. Consider stock transition phrases, uniform sentence structure, hedging, and absence of personal voice.

Return ONLY a JSON object:
- probability: 0.0 (definitely human) to 1.0 (definitely AI)
- indicators: array of short strings naming the markers you found

Text:
%s

JSON object:`, text)

	response, err := c.GenerateResponse(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result AIDetectionResult
	if err := unmarshalJSONObject(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse AI detection JSON: %w", err)
	}

	result.Probability = clamp(result.Probability, 0, 1)
	if result.Indicators == nil {
		result.Indicators = []string{}
	}
	return &result, nil
}

// SustainabilityResult is the provider's eco/ethical-business assessment.
// HasSignal false means no sustainability signal at all, which callers must
// keep distinct from a low score.
type SustainabilityResult struct {
	HasSignal bool    `json:"has_signal"`
	Score     float64 `json:"score"` // 0-100, meaningful only when has_signal
}

// ScoreSustainability asks the model to rate eco/ethical-business signal
// strength.
func (c *Client) ScoreSustainability(ctx context.Context, text string) (*SustainabilityResult, error) {
	prompt := fmt.Sprintf(`Rate the strength of sustainability signals (environmental, eco-friendly, ethical-business practices) in the following text.

Return ONLY a JSON object:
- has_signal: false when the text contains no sustainability signal whatsoever
- score: 0-100 signal strength, only meaningful when has_signal is true

Text:
%s

JSON object:`, text)

	response, err := c.GenerateResponse(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result SustainabilityResult
	if err := unmarshalJSONObject(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse sustainability JSON: %w", err)
	}

	result.Score = clamp(result.Score, 0, 100)
	return &result, nil
}

// unmarshalJSONObject extracts the first JSON object island from a model
// response and unmarshals it.
func unmarshalJSONObject(response string, v any) error {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON object found in response")
	}
	return json.Unmarshal([]byte(response[start:end+1]), v)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
