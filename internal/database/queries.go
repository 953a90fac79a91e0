package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zombar/searchintel/internal/models"
)

// ErrJobNotFound is returned when no job exists for the requested ID.
var ErrJobNotFound = errors.New("job not found")

// SaveJob inserts a new analysis job.
func (db *DB) SaveJob(job *models.AnalysisJob) error {
	resultsJSON, err := json.Marshal(job.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	annotatedJSON, summaryJSON, err := marshalOutcome(job)
	if err != nil {
		return err
	}

	_, err = db.conn.Exec(`
		INSERT INTO jobs (id, query, results, annotated, summary, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, job.ID, job.Query, string(resultsJSON), annotatedJSON, summaryJSON, job.Status, job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	return nil
}

// UpdateJobOutcome records the result of a finished job: annotated results,
// optional summary, and terminal status.
func (db *DB) UpdateJobOutcome(job *models.AnalysisJob) error {
	annotatedJSON, summaryJSON, err := marshalOutcome(job)
	if err != nil {
		return err
	}

	res, err := db.conn.Exec(`
		UPDATE jobs SET annotated = ?, summary = ?, status = ?, updated_at = ?
		WHERE id = ?
	`, annotatedJSON, summaryJSON, job.Status, time.Now().UTC(), job.ID)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// GetJob retrieves a job by ID.
func (db *DB) GetJob(id string) (*models.AnalysisJob, error) {
	var (
		job           models.AnalysisJob
		resultsJSON   string
		annotatedJSON sql.NullString
		summaryJSON   sql.NullString
	)

	err := db.conn.QueryRow(`
		SELECT id, query, results, annotated, summary, status, created_at, updated_at
		FROM jobs
		WHERE id = ?
	`, id).Scan(&job.ID, &job.Query, &resultsJSON, &annotatedJSON, &summaryJSON, &job.Status, &job.CreatedAt, &job.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if err := unmarshalOutcome(&job, resultsJSON, annotatedJSON, summaryJSON); err != nil {
		return nil, err
	}

	return &job, nil
}

// ListJobs returns jobs newest first, paginated.
func (db *DB) ListJobs(limit, offset int) ([]*models.AnalysisJob, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := db.conn.Query(`
		SELECT id, query, results, annotated, summary, status, created_at, updated_at
		FROM jobs
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*models.AnalysisJob{}
	for rows.Next() {
		var (
			job           models.AnalysisJob
			resultsJSON   string
			annotatedJSON sql.NullString
			summaryJSON   sql.NullString
		)

		if err := rows.Scan(&job.ID, &job.Query, &resultsJSON, &annotatedJSON, &summaryJSON, &job.Status, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		if err := unmarshalOutcome(&job, resultsJSON, annotatedJSON, summaryJSON); err != nil {
			return nil, err
		}

		jobs = append(jobs, &job)
	}

	return jobs, rows.Err()
}

// CountJobs returns the total number of stored jobs.
func (db *DB) CountJobs() (int, error) {
	var count int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM jobs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

func marshalOutcome(job *models.AnalysisJob) (annotated, summary sql.NullString, err error) {
	if job.Annotated != nil {
		b, err := json.Marshal(job.Annotated)
		if err != nil {
			return annotated, summary, fmt.Errorf("failed to marshal annotated results: %w", err)
		}
		annotated = sql.NullString{String: string(b), Valid: true}
	}
	if job.Summary != nil {
		b, err := json.Marshal(job.Summary)
		if err != nil {
			return annotated, summary, fmt.Errorf("failed to marshal summary: %w", err)
		}
		summary = sql.NullString{String: string(b), Valid: true}
	}
	return annotated, summary, nil
}

func unmarshalOutcome(job *models.AnalysisJob, resultsJSON string, annotatedJSON, summaryJSON sql.NullString) error {
	if err := json.Unmarshal([]byte(resultsJSON), &job.Results); err != nil {
		return fmt.Errorf("failed to unmarshal results: %w", err)
	}
	if annotatedJSON.Valid {
		if err := json.Unmarshal([]byte(annotatedJSON.String), &job.Annotated); err != nil {
			return fmt.Errorf("failed to unmarshal annotated results: %w", err)
		}
	}
	if summaryJSON.Valid {
		job.Summary = &models.SummaryResponse{}
		if err := json.Unmarshal([]byte(summaryJSON.String), job.Summary); err != nil {
			return fmt.Errorf("failed to unmarshal summary: %w", err)
		}
	}
	return nil
}
