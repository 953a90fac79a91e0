// Package queue enqueues and processes asynchronous batch analysis jobs on
// Redis via Asynq.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zombar/searchintel/internal/models"
)

// Task type constants
const (
	TypeAnalyzeBatch = "searchintel:analyze_batch"
)

// AnalyzeBatchPayload is the payload for an asynchronous batch analysis job.
type AnalyzeBatchPayload struct {
	JobID       string                `json:"job_id"`
	Query       string                `json:"query"`
	Results     []models.SearchResult `json:"results"`
	WantSummary bool                  `json:"want_summary"`
	// Tracing and timing fields
	TraceID    string `json:"trace_id,omitempty"`
	SpanID     string `json:"span_id,omitempty"`
	EnqueuedAt int64  `json:"enqueued_at"` // Unix timestamp in nanoseconds
}

// Client wraps the Asynq client for enqueueing tasks
type Client struct {
	client *asynq.Client
}

// ClientConfig contains configuration for the queue client
type ClientConfig struct {
	RedisAddr string
}

// NewClient creates a new queue client
func NewClient(cfg ClientConfig) *Client {
	redisOpt := asynq.RedisClientOpt{
		Addr: cfg.RedisAddr,
	}

	return &Client{
		client: asynq.NewClient(redisOpt),
	}
}

// EnqueueAnalyzeBatch enqueues a batch analysis job. The task ID is the job
// ID, so re-enqueueing the same job is a no-op while the first run is
// pending.
func (c *Client) EnqueueAnalyzeBatch(ctx context.Context, jobID, query string, results []models.SearchResult, wantSummary bool) (string, error) {
	payload := AnalyzeBatchPayload{
		JobID:       jobID,
		Query:       query,
		Results:     results,
		WantSummary: wantSummary,
		EnqueuedAt:  time.Now().UnixNano(), // Record enqueue time for queue wait metrics
	}

	// Add tracing context if available
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		spanCtx := span.SpanContext()
		payload.TraceID = spanCtx.TraceID().String()
		payload.SpanID = spanCtx.SpanID().String()

		span.AddEvent("task_enqueued", trace.WithAttributes(
			attribute.String("task.type", TypeAnalyzeBatch),
			attribute.String("job.id", jobID),
			attribute.Int("result_count", len(results)),
			attribute.Int64("enqueued_at", payload.EnqueuedAt),
		))
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TypeAnalyzeBatch, payloadBytes, asynq.TaskID(jobID))

	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(10 * time.Minute),
		asynq.Queue("analysis"),
		asynq.Retention(7 * 24 * time.Hour), // Keep completed tasks for 7 days
	}

	info, err := c.client.Enqueue(task, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue analyze batch task: %w", err)
	}

	return info.ID, nil
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}
