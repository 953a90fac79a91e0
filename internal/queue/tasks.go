package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zombar/searchintel/internal/database"
	"github.com/zombar/searchintel/internal/models"
)

// handleAnalyzeBatch runs the full analysis pipeline for a stored job:
// annotate every result, optionally generate the cited summary, and persist
// the outcome. Only infrastructure errors are surfaced to Asynq for retry;
// analysis itself degrades per metric and never fails a job.
func (w *Worker) handleAnalyzeBatch(ctx context.Context, t *asynq.Task) error {
	var payload AnalyzeBatchPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	retryCount, _ := asynq.GetRetryCount(ctx)
	queueWait := time.Duration(0)
	if payload.EnqueuedAt > 0 {
		queueWait = time.Since(time.Unix(0, payload.EnqueuedAt))
	}

	w.logger.Info("processing analyze batch task",
		"job_id", payload.JobID,
		"query", payload.Query,
		"result_count", len(payload.Results),
		"retry_count", retryCount,
		"queue_wait_seconds", queueWait.Seconds(),
	)

	// Recreate trace context from payload if available
	var span trace.Span
	if payload.TraceID != "" && payload.SpanID != "" {
		traceID, err := trace.TraceIDFromHex(payload.TraceID)
		if err == nil {
			spanID, err := trace.SpanIDFromHex(payload.SpanID)
			if err == nil {
				remoteSpanCtx := trace.NewSpanContext(trace.SpanContextConfig{
					TraceID:    traceID,
					SpanID:     spanID,
					TraceFlags: trace.FlagsSampled,
					Remote:     true,
				})
				ctx = trace.ContextWithRemoteSpanContext(ctx, remoteSpanCtx)

				ctx, span = otel.Tracer("searchintel").Start(ctx, "asynq.task.process",
					trace.WithSpanKind(trace.SpanKindConsumer),
					trace.WithAttributes(
						attribute.String("task.type", TypeAnalyzeBatch),
						attribute.String("job.id", payload.JobID),
						attribute.Int("result_count", len(payload.Results)),
						attribute.Int("retry_count", retryCount),
					),
				)
				defer span.End()
			}
		}
	}

	job, err := w.db.GetJob(payload.JobID)
	if err != nil {
		if errors.Is(err, database.ErrJobNotFound) {
			// The job row is gone; retrying cannot bring it back.
			w.logger.Error("job not found, dropping task", "job_id", payload.JobID)
			return fmt.Errorf("job %s not found: %w", payload.JobID, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to load job %s: %w", payload.JobID, err)
	}

	job.Annotated = w.engine.Analyze(ctx, payload.Results, payload.Query)
	if payload.WantSummary {
		s := w.summarizer.Generate(ctx, payload.Query, job.Annotated)
		job.Summary = &s
	}
	job.Status = models.JobStatusCompleted

	if err := w.db.UpdateJobOutcome(job); err != nil {
		if isRetriableError(err) {
			w.logger.Warn("retriable error saving job outcome, will retry",
				"job_id", payload.JobID,
				"error", err,
				"retry_count", retryCount,
			)
			return err // Let Asynq retry
		}

		w.logger.Error("permanent error saving job outcome",
			"job_id", payload.JobID,
			"error", err,
		)
		w.markJobFailed(job)
		if span != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		return fmt.Errorf("failed to save job outcome: %v: %w", err, asynq.SkipRetry)
	}

	w.logger.Info("analyze batch task completed",
		"job_id", payload.JobID,
		"result_count", len(job.Annotated),
		"has_summary", job.Summary != nil,
	)

	return nil
}

func (w *Worker) markJobFailed(job *models.AnalysisJob) {
	job.Status = models.JobStatusFailed
	job.Annotated = nil
	job.Summary = nil
	if err := w.db.UpdateJobOutcome(job); err != nil {
		w.logger.Error("failed to mark job failed", "job_id", job.ID, "error", err)
	}
}

// isRetriableError determines if an error is retriable (connection/timeout)
// vs permanent (invalid input)
func isRetriableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	retriablePatterns := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"temporary failure",
		"service unavailable",
		"bad gateway",
		"gateway timeout",
		"too many requests",
		"context deadline exceeded",
		"context canceled",
		"i/o timeout",
		"no such host",
		"network is unreachable",
		"database is locked",
	}

	for _, pattern := range retriablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}
