package mocks

import (
	"context"
	"sort"

	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
)

// MockDocumentRepository is a mock implementation of DocumentRepository
type MockDocumentRepository struct {
	Docs        map[string]map[string]*models.Document
	UpsertError error
	UpsertCalls int
}

// Verify interface compliance
var _ repository.DocumentRepository = (*MockDocumentRepository)(nil)

func NewMockDocumentRepository() *MockDocumentRepository {
	return &MockDocumentRepository{
		Docs: make(map[string]map[string]*models.Document),
	}
}

func (m *MockDocumentRepository) Upsert(ctx context.Context, doc *models.Document) error {
	m.UpsertCalls++
	if m.UpsertError != nil {
		return m.UpsertError
	}
	if m.Docs[doc.Kind] == nil {
		m.Docs[doc.Kind] = make(map[string]*models.Document)
	}
	stored := *doc
	m.Docs[doc.Kind][doc.Slug] = &stored
	return nil
}

func (m *MockDocumentRepository) GetBody(ctx context.Context, kind, slug string) ([]byte, error) {
	doc := m.Docs[kind][slug]
	if doc == nil {
		return nil, nil
	}
	return doc.Body, nil
}

func (m *MockDocumentRepository) GetChecksums(ctx context.Context, kind string) (map[string]string, error) {
	checksums := make(map[string]string)
	for slug, doc := range m.Docs[kind] {
		checksums[slug] = doc.Checksum
	}
	return checksums, nil
}

func (m *MockDocumentRepository) ListSlugs(ctx context.Context, kind string) ([]string, error) {
	slugs := make([]string, 0, len(m.Docs[kind]))
	for slug := range m.Docs[kind] {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs, nil
}

func (m *MockDocumentRepository) DeleteMissing(ctx context.Context, kind string, keep []string) (int, error) {
	keepSet := make(map[string]bool, len(keep))
	for _, slug := range keep {
		keepSet[slug] = true
	}
	deleted := 0
	for slug := range m.Docs[kind] {
		if !keepSet[slug] {
			delete(m.Docs[kind], slug)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MockDocumentRepository) Count(ctx context.Context, kind string) (int, error) {
	return len(m.Docs[kind]), nil
}

// MockJobRepository is a mock implementation of JobRepository
type MockJobRepository struct {
	Jobs        map[string]*models.SyncJob
	Errors      map[string][]models.ValidationError
	CreateError error
	UpdateError error
	Updates     int

	// UpdateCtxErr is the context error seen by the latest Update
	UpdateCtxErr error
}

// Verify interface compliance
var _ repository.JobRepository = (*MockJobRepository)(nil)

func NewMockJobRepository() *MockJobRepository {
	return &MockJobRepository{
		Jobs:   make(map[string]*models.SyncJob),
		Errors: make(map[string][]models.ValidationError),
	}
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.SyncJob) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Jobs[job.ID] = job
	return nil
}

func (m *MockJobRepository) Update(ctx context.Context, job *models.SyncJob) error {
	m.Updates++
	m.UpdateCtxErr = ctx.Err()
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.Jobs[job.ID] = job
	return nil
}

func (m *MockJobRepository) GetByID(ctx context.Context, id string) (*models.SyncJob, error) {
	return m.Jobs[id], nil
}

func (m *MockJobRepository) AddErrors(ctx context.Context, jobID string, errors []models.ValidationError) error {
	m.Errors[jobID] = append(m.Errors[jobID], errors...)
	return nil
}

func (m *MockJobRepository) GetErrors(ctx context.Context, jobID string, limit int) ([]models.ValidationError, error) {
	errors := m.Errors[jobID]
	if limit > 0 && len(errors) > limit {
		return errors[:limit], nil
	}
	return errors, nil
}

func (m *MockJobRepository) CountErrors(ctx context.Context, jobID string) (int, error) {
	return len(m.Errors[jobID]), nil
}

// NewMockRepositories bundles fresh mock repositories
func NewMockRepositories() (*repository.Repositories, *MockDocumentRepository, *MockJobRepository) {
	docs := NewMockDocumentRepository()
	jobs := NewMockJobRepository()
	return &repository.Repositories{Document: docs, Job: jobs}, docs, jobs
}
