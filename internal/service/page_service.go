package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// pageService is the concrete implementation of PageService
type pageService struct {
	loader *content.Loader
	log    zerolog.Logger
}

// newPageService creates a new PageService
func newPageService(loader *content.Loader, log zerolog.Logger) *pageService {
	return &pageService{
		loader: loader,
		log:    log.With().Str("service", "pages").Logger(),
	}
}

// Hero returns the home page hero section
func (s *pageService) Hero(ctx context.Context) (*models.HeroContent, error) {
	return decodePage(ctx, s, models.HeroPath, validation.DecodeHero)
}

// About returns the about page
func (s *pageService) About(ctx context.Context) (*models.AboutContent, error) {
	return decodePage(ctx, s, models.AboutPath, validation.DecodeAbout)
}

// ContactForm returns the contact form definition
func (s *pageService) ContactForm(ctx context.Context) (*models.ContactFormContent, error) {
	return decodePage(ctx, s, models.ContactPath, validation.DecodeContactForm)
}

// Document returns the raw document at path
func (s *pageService) Document(ctx context.Context, path string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, ok := s.loader.Load(ctx, path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, content.ErrNotFound)
	}
	return doc, nil
}

// decodePage loads path and decodes it against its page schema. A page that
// fails its schema is reported as not found.
func decodePage[T any](ctx context.Context, s *pageService, path string, decode func([]byte) (*T, error)) (*T, error) {
	doc, err := s.Document(ctx, path)
	if err != nil {
		return nil, err
	}

	page, err := decode(doc)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("Page content does not match schema")
		return nil, fmt.Errorf("%s: %w", path, content.ErrNotFound)
	}
	return page, nil
}
