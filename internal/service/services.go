package service

import (
	"context"
	"encoding/json"

	"github.com/portfolio-content-api/internal/config"
	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/rs/zerolog"
)

// BlogService defines the blog collection accessors and search
type BlogService interface {
	AllPosts(ctx context.Context) ([]models.BlogPost, error)
	LatestPosts(ctx context.Context, n int) ([]models.BlogPost, error)
	PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	PostsByCategory(ctx context.Context, category string) ([]models.BlogPost, error)
	PostsByTag(ctx context.Context, tag string) ([]models.BlogPost, error)
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) ([]models.BlogPost, error)
}

// ProjectService defines the project collection accessors
type ProjectService interface {
	AllProjects(ctx context.Context) ([]models.Project, error)
	FeaturedProjects(ctx context.Context) ([]models.Project, error)
	ProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
}

// PageService defines access to static page content
type PageService interface {
	Hero(ctx context.Context) (*models.HeroContent, error)
	About(ctx context.Context) (*models.AboutContent, error)
	ContactForm(ctx context.Context) (*models.ContactFormContent, error)
	Document(ctx context.Context, path string) (json.RawMessage, error)
}

// StatsService reports collection sizes
type StatsService interface {
	Stats(ctx context.Context) (*models.ContentStats, error)
}

// SyncService mirrors the content directory into the database
type SyncService interface {
	Run(ctx context.Context, kinds []string) (*models.SyncJob, error)
	GetJob(ctx context.Context, id string) (*models.JobResponse, error)
}

// Services holds all service interfaces. Sync is nil when no database is
// configured.
type Services struct {
	Blog     BlogService
	Projects ProjectService
	Pages    PageService
	Stats    StatsService
	Sync     SyncService
}

// NewServices creates all services over a content loader and lister.
// repos may be nil when the database mirror is disabled.
func NewServices(loader *content.Loader, lister *content.Lister, repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	blogSvc := newBlogService(loader, lister, cfg.Content.LoadConcurrency, log)
	projectSvc := newProjectService(loader, lister, cfg.Content.LoadConcurrency, log)

	services := &Services{
		Blog:     blogSvc,
		Projects: projectSvc,
		Pages:    newPageService(loader, log),
		Stats:    newStatsService(blogSvc, projectSvc, loader),
	}

	if repos != nil {
		source := content.NewFileSource(cfg.Content.Dir, cfg.Content.Extension)
		services.Sync = NewSyncService(source, repos, log)
	}

	return services
}
