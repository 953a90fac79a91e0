package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/zombar/searchintel/internal/analyzer"
	"github.com/zombar/searchintel/internal/database"
	"github.com/zombar/searchintel/internal/summary"
)

// Worker wraps the Asynq server for processing tasks
type Worker struct {
	server      *asynq.Server
	mux         *asynq.ServeMux
	db          *database.DB
	engine      *analyzer.Engine
	summarizer  *summary.Generator
	concurrency int
	logger      *slog.Logger
}

// WorkerConfig contains configuration for the queue worker
type WorkerConfig struct {
	RedisAddr   string
	Concurrency int
}

// NewWorker creates a new queue worker
func NewWorker(
	cfg WorkerConfig,
	db *database.DB,
	engine *analyzer.Engine,
	summarizer *summary.Generator,
) *Worker {
	redisOpt := asynq.RedisClientOpt{
		Addr: cfg.RedisAddr,
	}

	serverCfg := asynq.Config{
		Concurrency: cfg.Concurrency,

		Queues: map[string]int{
			"analysis": 5,
		},

		RetryDelayFunc: retryDelay,

		ShutdownTimeout: 30 * time.Second,

		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, _ := asynq.GetMaxRetry(ctx)

			slog.Error("task processing error",
				"task_type", task.Type(),
				"error", err,
				"retry_count", retried,
				"max_retries", maxRetry,
			)
		}),
	}

	w := &Worker{
		server:      asynq.NewServer(redisOpt, serverCfg),
		mux:         asynq.NewServeMux(),
		db:          db,
		engine:      engine,
		summarizer:  summarizer,
		concurrency: cfg.Concurrency,
		logger:      slog.Default(),
	}

	w.mux.HandleFunc(TypeAnalyzeBatch, w.handleAnalyzeBatch)

	return w
}

// retryDelay backs off aggressively because retries are almost always
// waiting out an unavailable AI provider.
func retryDelay(n int, err error, task *asynq.Task) time.Duration {
	delays := []time.Duration{
		30 * time.Second,
		1 * time.Minute,
		2 * time.Minute,
		5 * time.Minute,
		10 * time.Minute,
	}
	if n < len(delays) {
		return delays[n]
	}
	return delays[len(delays)-1]
}

// Start starts the worker to begin processing tasks
func (w *Worker) Start() error {
	w.logger.Info("starting asynq worker",
		"concurrency", w.concurrency,
		"queues", map[string]int{"analysis": 5},
	)

	// Run is blocking - starts processing tasks
	if err := w.server.Run(w.mux); err != nil {
		return fmt.Errorf("asynq server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the worker
func (w *Worker) Shutdown() {
	w.logger.Info("shutting down asynq worker")
	w.server.Shutdown()
}
