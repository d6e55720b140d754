package service

import (
	"context"

	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/models"
)

type statsService struct {
	blog     BlogService
	projects ProjectService
	loader   *content.Loader
}

func newStatsService(blog BlogService, projects ProjectService, loader *content.Loader) *statsService {
	return &statsService{blog: blog, projects: projects, loader: loader}
}

// Stats counts posts, projects, categories and tags
func (s *statsService) Stats(ctx context.Context) (*models.ContentStats, error) {
	posts, err := s.blog.AllPosts(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.AllProjects(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.blog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := s.blog.Tags(ctx)
	if err != nil {
		return nil, err
	}

	featured := 0
	for _, p := range projects {
		if p.Featured {
			featured++
		}
	}

	return &models.ContentStats{
		Posts:            len(posts),
		Projects:         len(projects),
		FeaturedProjects: featured,
		Categories:       len(categories),
		Tags:             len(tags),
		CachedDocuments:  s.loader.Cached(),
	}, nil
}
