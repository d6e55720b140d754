package repository

import (
	"context"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// DocumentRepository defines the interface for mirrored content documents
type DocumentRepository interface {
	Upsert(ctx context.Context, doc *models.Document) error
	GetBody(ctx context.Context, kind, slug string) ([]byte, error)
	GetChecksums(ctx context.Context, kind string) (map[string]string, error)
	ListSlugs(ctx context.Context, kind string) ([]string, error)
	DeleteMissing(ctx context.Context, kind string, keep []string) (int, error)
	Count(ctx context.Context, kind string) (int, error)
}

// JobRepository defines the interface for sync job records
type JobRepository interface {
	Create(ctx context.Context, job *models.SyncJob) error
	Update(ctx context.Context, job *models.SyncJob) error
	GetByID(ctx context.Context, id string) (*models.SyncJob, error)
	AddErrors(ctx context.Context, jobID string, errors []models.ValidationError) error
	GetErrors(ctx context.Context, jobID string, limit int) ([]models.ValidationError, error)
	CountErrors(ctx context.Context, jobID string) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Document DocumentRepository
	Job      JobRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Document: NewDocumentRepo(db),
		Job:      NewJobRepo(db),
	}
}
