package models

import (
	"time"
)

// JobStatus represents the status of a sync job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// SyncJob records one run mirroring the content directory into the database
type SyncJob struct {
	ID           string     `json:"job_id" db:"id"`
	Status       JobStatus  `json:"status" db:"status"`
	Kinds        []string   `json:"kinds" db:"kinds"`
	TotalDocs    int        `json:"total_documents" db:"total_documents"`
	Unchanged    int        `json:"unchanged" db:"unchanged_count"`
	Upserted     int        `json:"upserted" db:"upserted_count"`
	Pruned       int        `json:"pruned" db:"pruned_count"`
	FailedCount  int        `json:"failed" db:"failed_count"`
	DurationMs   int64      `json:"duration_ms,omitempty" db:"duration_ms"`
	DocsPerSec   float64    `json:"docs_per_sec,omitempty" db:"docs_per_sec"`
	ErrorMessage string     `json:"error,omitempty" db:"error_message"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	StartedAt    *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// ValidationError represents a single validation problem in a document
type ValidationError struct {
	Path    string      `json:"path"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// JobResponse is the API response for job status
type JobResponse struct {
	SyncJob
	Errors     []ValidationError `json:"errors,omitempty"`
	ErrorCount int               `json:"error_count,omitempty"`
}
