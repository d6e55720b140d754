package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/metrics"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/rs/zerolog"
)

// Sync document results
const (
	resultUnchanged = "unchanged"
	resultUpserted  = "upserted"
	resultFailed    = "failed"
)

// maxReportedErrors caps the validation errors returned with a job
const maxReportedErrors = 100

// finalizeTimeout bounds the closing job writes, which run even when the
// sync context is cancelled
const finalizeTimeout = 5 * time.Second

// syncService is the concrete implementation of SyncService
type syncService struct {
	source  content.Source
	docs    repository.DocumentRepository
	jobRepo repository.JobRepository
	log     zerolog.Logger
	now     func() time.Time
}

// NewSyncService creates a SyncService reading from source
func NewSyncService(source content.Source, repos *repository.Repositories, log zerolog.Logger) SyncService {
	return &syncService{
		source:  source,
		docs:    repos.Document,
		jobRepo: repos.Job,
		log:     log.With().Str("service", "sync").Logger(),
		now:     time.Now,
	}
}

// Run mirrors every document of kinds into the database. Unchanged
// documents (same checksum) are skipped, and mirrored documents whose file
// is gone are pruned. Documents that fail validation are still mirrored;
// malformed JSON is not.
func (s *syncService) Run(ctx context.Context, kinds []string) (*models.SyncJob, error) {
	if len(kinds) == 0 {
		kinds = content.Kinds
	}

	job := &models.SyncJob{
		ID:        uuid.New().String(),
		Status:    models.JobStatusPending,
		Kinds:     kinds,
		CreatedAt: s.now(),
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create sync job: %w", err)
	}

	startedAt := s.now()
	job.Status = models.JobStatusProcessing
	job.StartedAt = &startedAt
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to start sync job: %w", err)
	}

	s.log.Info().Str("job_id", job.ID).Strs("kinds", kinds).Msg("Starting content sync")

	auditor := NewAuditor(s.source, s.log)
	var validationErrors []models.ValidationError
	var runErr error

	for _, kind := range kinds {
		errs, err := s.syncKind(ctx, job, auditor, kind)
		validationErrors = append(validationErrors, errs...)
		if err != nil {
			runErr = err
			break
		}
	}

	finalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	if err := s.jobRepo.AddErrors(finalCtx, job.ID, validationErrors); err != nil {
		s.log.Error().Err(err).Str("job_id", job.ID).Msg("Failed to store sync errors")
	}

	s.complete(job, startedAt, runErr)
	if err := s.jobRepo.Update(finalCtx, job); err != nil {
		return job, fmt.Errorf("failed to update sync job: %w", err)
	}

	if runErr != nil {
		return job, runErr
	}
	return job, nil
}

func (s *syncService) syncKind(ctx context.Context, job *models.SyncJob, auditor *Auditor, kind string) ([]models.ValidationError, error) {
	// A missing kind directory prunes everything; any other listing
	// failure must not reach DeleteMissing
	slugs, err := s.source.List(ctx, kind)
	if errors.Is(err, content.ErrNotFound) {
		slugs = []string{}
	} else if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	job.TotalDocs += len(slugs)

	existing, err := s.docs.GetChecksums(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to read checksums for %s: %w", kind, err)
	}

	var errs []models.ValidationError
	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return errs, err
		}

		path := content.Join(kind, slug)
		data, err := s.source.Read(ctx, path)
		if err == nil && !json.Valid(data) {
			err = errors.New("malformed JSON")
		}
		if err != nil {
			job.FailedCount++
			metrics.ObserveSyncDocument(kind, resultFailed)
			errs = append(errs, models.ValidationError{Path: path, Field: "document", Message: err.Error()})
			continue
		}

		errs = append(errs, auditor.Check(kind, slug, data)...)

		checksum := Checksum(data)
		if existing[slug] == checksum {
			job.Unchanged++
			metrics.ObserveSyncDocument(kind, resultUnchanged)
			continue
		}

		doc := &models.Document{Kind: kind, Slug: slug, Body: data, Checksum: checksum, SyncedAt: s.now()}
		if err := s.docs.Upsert(ctx, doc); err != nil {
			return errs, fmt.Errorf("failed to upsert %s: %w", path, err)
		}
		job.Upserted++
		metrics.ObserveSyncDocument(kind, resultUpserted)
	}

	pruned, err := s.docs.DeleteMissing(ctx, kind, slugs)
	if err != nil {
		return errs, fmt.Errorf("failed to prune %s: %w", kind, err)
	}
	job.Pruned += pruned

	s.log.Info().
		Str("kind", kind).
		Int("documents", len(slugs)).
		Int("pruned", pruned).
		Msg("Kind synced")

	return errs, nil
}

func (s *syncService) complete(job *models.SyncJob, startedAt time.Time, runErr error) {
	completedAt := s.now()
	job.CompletedAt = &completedAt
	job.DurationMs = completedAt.Sub(startedAt).Milliseconds()

	seconds := completedAt.Sub(startedAt).Seconds()
	if seconds > 0 {
		job.DocsPerSec = float64(job.TotalDocs) / seconds
	}
	metrics.ObserveSync(seconds)

	if runErr != nil {
		job.Status = models.JobStatusFailed
		job.ErrorMessage = runErr.Error()
		s.log.Error().Err(runErr).Str("job_id", job.ID).Msg("Content sync failed")
		return
	}

	job.Status = models.JobStatusCompleted
	s.log.Info().
		Str("job_id", job.ID).
		Int("total", job.TotalDocs).
		Int("upserted", job.Upserted).
		Int("unchanged", job.Unchanged).
		Int("pruned", job.Pruned).
		Int("failed", job.FailedCount).
		Int64("duration_ms", job.DurationMs).
		Msg("Content sync completed")
}

// GetJob returns a job with its first validation errors, or
// content.ErrNotFound
func (s *syncService) GetJob(ctx context.Context, id string) (*models.JobResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("sync job %q: %w", id, content.ErrNotFound)
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("sync job %q: %w", id, content.ErrNotFound)
	}

	errs, err := s.jobRepo.GetErrors(ctx, id, maxReportedErrors)
	if err != nil {
		return nil, err
	}

	count, err := s.jobRepo.CountErrors(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.JobResponse{
		SyncJob:    *job,
		Errors:     errs,
		ErrorCount: count,
	}, nil
}

// Checksum returns the hex SHA-256 of a document body
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
