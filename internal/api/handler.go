// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zombar/searchintel/internal/analyzer"
	"github.com/zombar/searchintel/internal/database"
	"github.com/zombar/searchintel/internal/models"
	"github.com/zombar/searchintel/internal/summary"
)

const maxBatchSize = 100

// BatchEnqueuer enqueues asynchronous batch analysis jobs. *queue.Client
// satisfies it; a nil enqueuer disables the async endpoint.
type BatchEnqueuer interface {
	EnqueueAnalyzeBatch(ctx context.Context, jobID, query string, results []models.SearchResult, wantSummary bool) (string, error)
}

// Handler handles HTTP requests
type Handler struct {
	db          *database.DB
	engine      *analyzer.Engine
	summarizer  *summary.Generator
	queueClient BatchEnqueuer
	mux         *http.ServeMux
}

// NewHandler creates a new API handler with CORS support and metrics
func NewHandler(db *database.DB, engine *analyzer.Engine, summarizer *summary.Generator, queueClient BatchEnqueuer) http.Handler {
	h := &Handler{
		db:          db,
		engine:      engine,
		summarizer:  summarizer,
		queueClient: queueClient,
		mux:         http.NewServeMux(),
	}

	h.setupRoutes()

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(h.mux)
}

// setupRoutes configures all API routes
func (h *Handler) setupRoutes() {
	h.mux.Handle("/metrics", promhttp.Handler()) // Prometheus metrics endpoint
	h.mux.HandleFunc("/api/analyze", h.handleAnalyze)
	h.mux.HandleFunc("/api/analyze/async", h.handleAnalyzeAsync)
	h.mux.HandleFunc("/api/jobs/", h.handleJobStatus)
	h.mux.HandleFunc("/api/analyses", h.handleListAnalyses)
	h.mux.HandleFunc("/api/summary", h.handleSummary)
	h.mux.HandleFunc("/health", h.handleHealth)
}

// analyzeRequest is the shared request body for the sync and async
// endpoints.
type analyzeRequest struct {
	Query       string                `json:"query"`
	Results     []models.SearchResult `json:"results"`
	WantSummary bool                  `json:"want_summary,omitempty"`
}

func decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (*analyzeRequest, bool) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}

	if len(req.Results) > maxBatchSize {
		respondError(w, fmt.Sprintf("Batch size exceeds maximum of %d results", maxBatchSize), http.StatusBadRequest)
		return nil, false
	}

	for i, result := range req.Results {
		if result.URL == "" {
			respondError(w, fmt.Sprintf("Result %d is missing a URL", i), http.StatusBadRequest)
			return nil, false
		}
	}

	return &req, true
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleAnalyze analyzes a batch of search results synchronously.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, ok := decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		span.SetAttributes(
			attribute.Int("batch.size", len(req.Results)),
			attribute.Bool("batch.want_summary", req.WantSummary),
		)
	}

	annotated := h.engine.Analyze(ctx, req.Results, req.Query)

	response := map[string]interface{}{
		"query":   req.Query,
		"results": annotated,
	}
	if req.WantSummary {
		response["summary"] = h.summarizer.Generate(ctx, req.Query, annotated)
	}

	respondJSON(w, response, http.StatusOK)
}

// handleAnalyzeAsync enqueues a batch analysis job and returns immediately.
func (h *Handler) handleAnalyzeAsync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.queueClient == nil {
		respondError(w, "Asynchronous analysis is not enabled", http.StatusServiceUnavailable)
		return
	}

	req, ok := decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	jobID := generateID()
	now := time.Now().UTC()
	job := &models.AnalysisJob{
		ID:        jobID,
		Query:     req.Query,
		Results:   req.Results,
		Status:    models.JobStatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.db.SaveJob(job); err != nil {
		respondError(w, fmt.Sprintf("Failed to save job: %v", err), http.StatusInternalServerError)
		return
	}

	taskID, err := h.queueClient.EnqueueAnalyzeBatch(r.Context(), jobID, req.Query, req.Results, req.WantSummary)
	if err != nil {
		respondError(w, fmt.Sprintf("Failed to enqueue analysis: %v", err), http.StatusInternalServerError)
		return
	}

	respondJSON(w, map[string]interface{}{
		"job_id":  jobID,
		"task_id": taskID,
		"status":  models.JobStatusQueued,
		"message": "Analysis queued for processing",
	}, http.StatusAccepted)
}

// handleJobStatus handles job status requests
func (h *Handler) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Extract job ID from path
	jobID := r.URL.Path[len("/api/jobs/"):]
	if idx := strings.Index(jobID, "/"); idx != -1 {
		jobID = jobID[:idx]
	}

	if jobID == "" {
		respondError(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	job, err := h.db.GetJob(jobID)
	if err != nil {
		if errors.Is(err, database.ErrJobNotFound) {
			respondJSON(w, map[string]interface{}{
				"job_id":  jobID,
				"status":  "not_found",
				"message": "Job not found - it may have expired",
			}, http.StatusNotFound)
			return
		}
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"job_id":     job.ID,
		"status":     job.Status,
		"created_at": job.CreatedAt,
		"updated_at": job.UpdatedAt,
	}
	if job.Status == models.JobStatusCompleted {
		response["results"] = job.Annotated
		if job.Summary != nil {
			response["summary"] = job.Summary
		}
	}

	respondJSON(w, response, http.StatusOK)
}

// handleListAnalyses lists stored jobs with pagination.
func (h *Handler) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 10
	offset := 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	jobs, err := h.db.ListJobs(limit, offset)
	if err != nil {
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, jobs, http.StatusOK)
}

// handleSummary generates a cited summary for already-annotated results.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Query       string                   `json:"query"`
		Results     []models.AnnotatedResult `json:"results"`
		Perspective string                   `json:"perspective,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	g := h.summarizer
	if req.Perspective != "" {
		g = g.WithPerspective(req.Perspective)
	}

	respondJSON(w, g.Generate(r.Context(), req.Query, req.Results), http.StatusOK)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// generateID generates a UUID for a job
func generateID() string {
	uuid := make([]byte, 16)
	_, err := rand.Read(uuid)
	if err != nil {
		// Fallback to timestamp-based ID if random generation fails
		return time.Now().Format("20060102150405") + "-" + strconv.FormatInt(time.Now().UnixNano()%1000000, 10)
	}

	// Set version (4) and variant bits according to RFC 4122
	uuid[6] = (uuid[6] & 0x0f) | 0x40 // Version 4
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // Variant bits

	// Format as standard UUID string: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
	return fmt.Sprintf("%s-%s-%s-%s-%s",
		hex.EncodeToString(uuid[0:4]),
		hex.EncodeToString(uuid[4:6]),
		hex.EncodeToString(uuid[6:8]),
		hex.EncodeToString(uuid[8:10]),
		hex.EncodeToString(uuid[10:16]))
}
