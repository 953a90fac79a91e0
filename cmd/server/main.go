package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zombar/searchintel/internal/analyzer"
	"github.com/zombar/searchintel/internal/api"
	"github.com/zombar/searchintel/internal/config"
	"github.com/zombar/searchintel/internal/database"
	"github.com/zombar/searchintel/internal/ollama"
	"github.com/zombar/searchintel/internal/queue"
	"github.com/zombar/searchintel/internal/summary"
	"github.com/zombar/searchintel/internal/tracing"
	"github.com/zombar/searchintel/pkg/logging"
)

func main() {
	// Setup structured logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("searchintel service initializing", "version", "1.0.0")

	// Load .env if present; real environment wins
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded environment from .env")
	}

	configPath := flag.String("config", getEnv("CONFIG_PATH", "config.yaml"), "Config file path (env: CONFIG_PATH)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err, "config_path", *configPath)
		os.Exit(1)
	}

	// Initialize tracing
	tp, err := tracing.InitTracer("searchintel")
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("error shutting down tracer", "error", err)
			}
		}()
		logger.Info("tracing initialized successfully")
	}

	// Initialize database
	db, err := database.New(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to initialize database", "error", err, "database_path", cfg.Database.Path)
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize the analysis engine, with the AI provider when enabled
	var engine *analyzer.Engine
	var ollamaClient *ollama.Client
	if cfg.Ollama.Enabled {
		ollamaClient, err = ollama.New(cfg.Ollama.URL, cfg.Ollama.Model)
		if err != nil {
			logger.Warn("failed to initialize Ollama client, falling back to local heuristics",
				"error", err,
				"ollama_url", cfg.Ollama.URL,
				"ollama_model", cfg.Ollama.Model,
			)
			engine = analyzer.New(cfg.Analyzer)
		} else {
			logger.Info("Ollama client initialized", "model", cfg.Ollama.Model, "url", cfg.Ollama.URL)
			engine = analyzer.NewWithProvider(cfg.Analyzer, ollamaClient)
		}
	} else {
		logger.Info("Ollama disabled, using local heuristics")
		engine = analyzer.New(cfg.Analyzer)
	}

	// Summarizer degrades to its deterministic fallback when Ollama is unavailable
	var summarizer *summary.Generator
	if ollamaClient != nil {
		summarizer = summary.New(ollamaClient)
	} else {
		summarizer = summary.New(nil)
	}

	// Initialize the queue client and worker when Redis is enabled
	var queueClient *queue.Client
	if cfg.Redis.Enabled {
		queueClient = queue.NewClient(queue.ClientConfig{RedisAddr: cfg.Redis.Addr})
		defer queueClient.Close()

		worker := queue.NewWorker(queue.WorkerConfig{
			RedisAddr:   cfg.Redis.Addr,
			Concurrency: cfg.Analyzer.MaxConcurrency,
		}, db, engine, summarizer)

		go func() {
			if err := worker.Start(); err != nil {
				logger.Error("queue worker failed", "error", err)
				os.Exit(1)
			}
		}()
		defer worker.Shutdown()
	} else {
		logger.Info("Redis disabled, async analysis unavailable")
	}

	// Initialize API handler
	var apiHandler http.Handler
	if queueClient != nil {
		apiHandler = api.NewHandler(db, engine, summarizer, queueClient)
	} else {
		apiHandler = api.NewHandler(db, engine, summarizer, nil)
	}

	// Wrap handler with middleware chain: HTTP logging -> tracing -> handlers
	handler := logging.HTTPLoggingMiddleware(logger)(
		tracing.HTTPMiddleware("searchintel")(apiHandler),
	)

	// Create server with extended timeouts for AI processing
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 420 * time.Second, // 7 minutes for AI analysis
		IdleTimeout:  120 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("searchintel service starting",
			"port", cfg.Server.Port,
			"database", cfg.Database.Path,
			"redis_enabled", cfg.Redis.Enabled,
			"ollama_enabled", cfg.Ollama.Enabled,
			"ollama_url", cfg.Ollama.URL,
			"ollama_model", cfg.Ollama.Model,
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
