// Package summary generates a short, cited synthesis over the top-ranked
// results of a batch analysis. Every claim in the output is traceable to a
// provided result URL; the generator never invents sources and never fails
// a request, degrading to a deterministic fallback response instead.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zombar/searchintel/internal/metrics"
	"github.com/zombar/searchintel/internal/models"
)

const (
	defaultTopK   = 5
	maxParagraphs = 3
)

// TextGenerator is the generative capability the summarizer needs.
// *ollama.Client satisfies it.
type TextGenerator interface {
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

// Generator builds cited summaries. A nil client is valid and always
// produces the unconfigured fallback response.
type Generator struct {
	client      TextGenerator
	topK        int
	perspective string
}

func New(client TextGenerator) *Generator {
	return &Generator{
		client:      client,
		topK:        defaultTopK,
		perspective: models.PerspectiveWomenFirst,
	}
}

// WithPerspective returns a copy of the generator that writes from the
// given perspective. Unrecognized values keep the current perspective.
func (g *Generator) WithPerspective(perspective string) *Generator {
	out := *g
	if perspective == models.PerspectiveWomenFirst || perspective == models.PerspectiveBalanced {
		out.perspective = perspective
	}
	return &out
}

// Generate summarizes the top-ranked results for a query. Input order is
// the ranking; only the first topK results are offered to the model as
// citable context. Sources in the response are always a subset of the
// input URLs. Generate never returns an error: missing configuration and
// provider failures yield deterministic fallback responses with empty
// sources.
func (g *Generator) Generate(ctx context.Context, query string, results []models.AnnotatedResult) models.SummaryResponse {
	top := results
	if len(top) > g.topK {
		top = top[:g.topK]
	}

	if len(top) == 0 {
		metrics.SummariesTotal.WithLabelValues("fallback").Inc()
		return g.response(fmt.Sprintf("No results were available to summarize for %q.", query), nil)
	}

	if g.client == nil {
		metrics.SummariesTotal.WithLabelValues("fallback").Inc()
		return g.response(fmt.Sprintf("Summarization is not configured; results for %q were returned without a synthesis.", query), nil)
	}

	raw, err := g.client.GenerateResponse(ctx, g.prompt(query, top))
	if err != nil {
		slog.Warn("summary generation failed", "error", err)
		metrics.SummariesTotal.WithLabelValues("error_fallback").Inc()
		return g.response(fmt.Sprintf("Unable to summarize results for %q.", query), nil)
	}

	urls := make([]string, len(top))
	for i, r := range top {
		urls[i] = r.Result.URL
	}

	text := truncateParagraphs(strings.TrimSpace(raw), maxParagraphs)
	metrics.SummariesTotal.WithLabelValues("generated").Inc()
	return g.response(text, CitedSources(text, urls))
}

// prompt enumerates the citable context so the model can only refer to
// sources by bracketed index.
func (g *Generator) prompt(query string, top []models.AnnotatedResult) string {
	var b strings.Builder
	b.WriteString("You are a research assistant summarizing search results")
	if g.perspective == models.PerspectiveBalanced {
		b.WriteString(" with a balanced perspective: ")
		b.WriteString("give every viewpoint present in the sources proportionate weight.\n\n")
	} else {
		b.WriteString(" with a women-first perspective: ")
		b.WriteString("center women's experiences, achievements, and perspectives where the sources support it.\n\n")
	}
	fmt.Fprintf(&b, "Query: %s\n\nSources:\n", query)
	for i, r := range top {
		fmt.Fprintf(&b, "[%d] %s\n%s\n(credibility: %s)\n\n", i+1, r.Result.Title, r.Result.Description, r.Credibility.Label)
	}
	fmt.Fprintf(&b, "Write a summary of at most %d short paragraphs. ", maxParagraphs)
	b.WriteString("Cite every claim with the bracketed source number, e.g. [1]. ")
	b.WriteString("Only cite the numbered sources above. Do not add a source list.")
	return b.String()
}

func (g *Generator) response(text string, sources []string) models.SummaryResponse {
	if sources == nil {
		sources = []string{}
	}
	return models.SummaryResponse{
		Summary:     text,
		Sources:     sources,
		Perspective: g.perspective,
		GeneratedAt: time.Now().UTC(),
	}
}

func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	paragraphs := []string{}
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func truncateParagraphs(text string, max int) string {
	paragraphs := splitParagraphs(text)
	if len(paragraphs) <= max {
		return text
	}
	return strings.Join(paragraphs[:max], "\n\n")
}
