package mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/service"
)

// MockBlogService is a mock implementation of BlogService backed by a
// fixed, already sorted slice of posts
type MockBlogService struct {
	Posts []models.BlogPost
	Err   error
}

// Verify interface compliance
var _ service.BlogService = (*MockBlogService)(nil)

func NewMockBlogService() *MockBlogService {
	return &MockBlogService{Posts: []models.BlogPost{}}
}

func (m *MockBlogService) AllPosts(ctx context.Context) ([]models.BlogPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Posts, nil
}

func (m *MockBlogService) LatestPosts(ctx context.Context, n int) ([]models.BlogPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if n >= 0 && n < len(m.Posts) {
		return m.Posts[:n], nil
	}
	return m.Posts, nil
}

func (m *MockBlogService) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Posts {
		if m.Posts[i].Slug == slug {
			return &m.Posts[i], nil
		}
	}
	return nil, fmt.Errorf("blog post %q: %w", slug, content.ErrNotFound)
}

func (m *MockBlogService) PostsByCategory(ctx context.Context, category string) ([]models.BlogPost, error) {
	return m.filter(func(p *models.BlogPost) bool { return p.InCategory(category) })
}

func (m *MockBlogService) PostsByTag(ctx context.Context, tag string) ([]models.BlogPost, error) {
	return m.filter(func(p *models.BlogPost) bool { return p.HasTag(tag) })
}

func (m *MockBlogService) Categories(ctx context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	seen := map[string]bool{}
	out := []string{}
	for _, p := range m.Posts {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (m *MockBlogService) Tags(ctx context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	seen := map[string]bool{}
	out := []string{}
	for _, p := range m.Posts {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (m *MockBlogService) Search(ctx context.Context, query string) ([]models.BlogPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return service.SearchPosts(m.Posts, query), nil
}

func (m *MockBlogService) filter(keep func(*models.BlogPost) bool) ([]models.BlogPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := []models.BlogPost{}
	for i := range m.Posts {
		if keep(&m.Posts[i]) {
			out = append(out, m.Posts[i])
		}
	}
	return out, nil
}

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	Projects []models.Project
	Err      error
}

// Verify interface compliance
var _ service.ProjectService = (*MockProjectService)(nil)

func NewMockProjectService() *MockProjectService {
	return &MockProjectService{Projects: []models.Project{}}
}

func (m *MockProjectService) AllProjects(ctx context.Context) ([]models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Projects, nil
}

func (m *MockProjectService) FeaturedProjects(ctx context.Context) ([]models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := []models.Project{}
	for _, p := range m.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockProjectService) ProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Projects {
		if m.Projects[i].Slug == slug {
			return &m.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", slug, content.ErrNotFound)
}

// MockPageService is a mock implementation of PageService
type MockPageService struct {
	HeroContent    *models.HeroContent
	AboutContent   *models.AboutContent
	ContactContent *models.ContactFormContent
	Documents      map[string]json.RawMessage
	Err            error
}

// Verify interface compliance
var _ service.PageService = (*MockPageService)(nil)

func NewMockPageService() *MockPageService {
	return &MockPageService{Documents: make(map[string]json.RawMessage)}
}

func (m *MockPageService) Hero(ctx context.Context) (*models.HeroContent, error) {
	return pageOrNotFound(m.HeroContent, m.Err, models.HeroPath)
}

func (m *MockPageService) About(ctx context.Context) (*models.AboutContent, error) {
	return pageOrNotFound(m.AboutContent, m.Err, models.AboutPath)
}

func (m *MockPageService) ContactForm(ctx context.Context) (*models.ContactFormContent, error) {
	return pageOrNotFound(m.ContactContent, m.Err, models.ContactPath)
}

func (m *MockPageService) Document(ctx context.Context, path string) (json.RawMessage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	doc, ok := m.Documents[strings.Trim(path, "/")]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, content.ErrNotFound)
	}
	return doc, nil
}

func pageOrNotFound[T any](page *T, err error, path string) (*T, error) {
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("%s: %w", path, content.ErrNotFound)
	}
	return page, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	Result models.ContentStats
	Err    error
}

// Verify interface compliance
var _ service.StatsService = (*MockStatsService)(nil)

func (m *MockStatsService) Stats(ctx context.Context) (*models.ContentStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := m.Result
	return &result, nil
}

// MockSyncService is a mock implementation of SyncService
type MockSyncService struct {
	Jobs    map[string]*models.JobResponse
	RunFunc func(ctx context.Context, kinds []string) (*models.SyncJob, error)
}

// Verify interface compliance
var _ service.SyncService = (*MockSyncService)(nil)

func NewMockSyncService() *MockSyncService {
	return &MockSyncService{Jobs: make(map[string]*models.JobResponse)}
}

func (m *MockSyncService) Run(ctx context.Context, kinds []string) (*models.SyncJob, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, kinds)
	}
	return &models.SyncJob{ID: "test-job-id", Status: models.JobStatusCompleted, Kinds: kinds}, nil
}

func (m *MockSyncService) GetJob(ctx context.Context, id string) (*models.JobResponse, error) {
	job, ok := m.Jobs[id]
	if !ok {
		return nil, fmt.Errorf("sync job %q: %w", id, content.ErrNotFound)
	}
	return job, nil
}
