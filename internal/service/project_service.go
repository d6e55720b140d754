package service

import (
	"context"
	"fmt"

	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/models"
	"github.com/rs/zerolog"
)

// projectService is the concrete implementation of ProjectService
type projectService struct {
	loader      *content.Loader
	lister      *content.Lister
	concurrency int
	log         zerolog.Logger
}

// newProjectService creates a new ProjectService
func newProjectService(loader *content.Loader, lister *content.Lister, concurrency int, log zerolog.Logger) *projectService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &projectService{
		loader:      loader,
		lister:      lister,
		concurrency: concurrency,
		log:         log.With().Str("service", "projects").Logger(),
	}
}

// AllProjects returns every loadable project in file name order
func (s *projectService) AllProjects(ctx context.Context) ([]models.Project, error) {
	slugs := s.lister.Slugs(ctx, content.KindProjects)
	return loadCollection(ctx, s.loader, content.KindProjects, slugs, s.concurrency, s.fixSlug)
}

// FeaturedProjects returns the projects flagged as featured
func (s *projectService) FeaturedProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.AllProjects(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]models.Project, 0)
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// ProjectBySlug returns a single project or content.ErrNotFound
func (s *projectService) ProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var project models.Project
	if !s.loader.LoadInto(ctx, content.Join(content.KindProjects, slug), &project) {
		s.log.Debug().Str("slug", slug).Msg("Project not found")
		return nil, fmt.Errorf("project %q: %w", slug, content.ErrNotFound)
	}
	s.fixSlug(&project, slug)
	return &project, nil
}

func (s *projectService) fixSlug(project *models.Project, slug string) {
	if project.Slug != "" && project.Slug != slug {
		s.log.Warn().
			Str("file_slug", slug).
			Str("document_slug", project.Slug).
			Msg("Project slug does not match file name")
	}
	project.Slug = slug
}
