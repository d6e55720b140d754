package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// jobRepo is the concrete implementation of JobRepository
type jobRepo struct {
	db *database.DB
}

// NewJobRepo creates a new job repository
func NewJobRepo(db *database.DB) JobRepository {
	return &jobRepo{db: db}
}

// Create inserts a new job
func (r *jobRepo) Create(ctx context.Context, job *models.SyncJob) error {
	kindsJSON, err := json.Marshal(job.Kinds)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sync_jobs (id, status, kinds, total_documents, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.ExecContext(ctx, query,
		job.ID, job.Status, kindsJSON, job.TotalDocs, job.CreatedAt,
	)
	return err
}

// Update updates job status and counters
func (r *jobRepo) Update(ctx context.Context, job *models.SyncJob) error {
	query := `
		UPDATE sync_jobs SET
			status = $1, total_documents = $2, unchanged_count = $3, upserted_count = $4,
			pruned_count = $5, failed_count = $6, duration_ms = $7, docs_per_sec = $8,
			error_message = $9, started_at = $10, completed_at = $11
		WHERE id = $12
	`
	_, err := r.db.ExecContext(ctx, query,
		job.Status, job.TotalDocs, job.Unchanged, job.Upserted,
		job.Pruned, job.FailedCount, job.DurationMs, job.DocsPerSec,
		nullString(job.ErrorMessage), job.StartedAt, job.CompletedAt, job.ID,
	)
	return err
}

// GetByID retrieves a job by ID, or nil when it does not exist
func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.SyncJob, error) {
	query := `
		SELECT id, status, kinds, total_documents, unchanged_count, upserted_count,
			pruned_count, failed_count, duration_ms, docs_per_sec, error_message,
			created_at, started_at, completed_at
		FROM sync_jobs WHERE id = $1
	`

	var job models.SyncJob
	var kindsJSON []byte
	var errorMessage sql.NullString
	var startedAt, completedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.Status, &kindsJSON, &job.TotalDocs, &job.Unchanged, &job.Upserted,
		&job.Pruned, &job.FailedCount, &job.DurationMs, &job.DocsPerSec, &errorMessage,
		&job.CreatedAt, &startedAt, &completedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(kindsJSON, &job.Kinds); err != nil {
		return nil, fmt.Errorf("failed to decode job kinds: %w", err)
	}
	job.ErrorMessage = errorMessage.String
	if startedAt.Valid {
		job.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		job.CompletedAt = &completedAt.Time
	}

	return &job, nil
}

// AddErrors adds validation errors using the COPY protocol
func (r *jobRepo) AddErrors(ctx context.Context, jobID string, errors []models.ValidationError) error {
	if len(errors) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("sync_errors",
		"job_id", "path", "field", "message", "value",
	))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range errors {
		if _, err := stmt.ExecContext(ctx, jobID, e.Path, e.Field, e.Message, valueString(e.Value)); err != nil {
			return err
		}
	}

	// Flush the COPY buffer
	if _, err := stmt.ExecContext(ctx); err != nil {
		return err
	}

	return tx.Commit()
}

// GetErrors retrieves validation errors for a job
func (r *jobRepo) GetErrors(ctx context.Context, jobID string, limit int) ([]models.ValidationError, error) {
	query := `SELECT path, field, message, value FROM sync_errors WHERE job_id = $1 ORDER BY id`

	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+" LIMIT $2", jobID, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query, jobID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errors []models.ValidationError
	for rows.Next() {
		var e models.ValidationError
		var value sql.NullString
		if err := rows.Scan(&e.Path, &e.Field, &e.Message, &value); err != nil {
			return nil, err
		}
		if value.Valid && value.String != "" {
			e.Value = value.String
		}
		errors = append(errors, e)
	}

	return errors, rows.Err()
}

// CountErrors returns the number of validation errors stored for a job
func (r *jobRepo) CountErrors(ctx context.Context, jobID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sync_errors WHERE job_id = $1`, jobID).Scan(&n)
	return n, err
}

// helper to convert empty string to NULL
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// valueString renders an offending value for storage
func valueString(v interface{}) sql.NullString {
	switch val := v.(type) {
	case nil:
		return sql.NullString{}
	case string:
		return nullString(val)
	default:
		return sql.NullString{String: fmt.Sprint(val), Valid: true}
	}
}
