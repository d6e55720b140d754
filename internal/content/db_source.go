package content

import (
	"context"
	"fmt"
)

// DocumentStore is the subset of the document repository used as a source
type DocumentStore interface {
	GetBody(ctx context.Context, kind, slug string) ([]byte, error)
	ListSlugs(ctx context.Context, kind string) ([]string, error)
}

// DatabaseSource serves documents mirrored into the database by a sync job.
// A nil body from the store means the document does not exist.
type DatabaseSource struct {
	store DocumentStore
}

// NewDatabaseSource creates a Source backed by store
func NewDatabaseSource(store DocumentStore) *DatabaseSource {
	return &DatabaseSource{store: store}
}

// Read returns the body of the mirrored document
func (s *DatabaseSource) Read(ctx context.Context, logicalPath string) ([]byte, error) {
	clean, err := CleanPath(logicalPath)
	if err != nil {
		return nil, err
	}
	kind, slug, ok := SplitPath(clean)
	if !ok {
		return nil, fmt.Errorf("%s: %w", clean, ErrNotFound)
	}

	body, err := s.store.GetBody(ctx, kind, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", clean, err)
	}
	if body == nil {
		return nil, fmt.Errorf("%s: %w", clean, ErrNotFound)
	}
	return body, nil
}

// List returns the mirrored slugs of a kind. An empty kind is reported as
// ErrNotFound so callers treat it like a missing directory.
func (s *DatabaseSource) List(ctx context.Context, kind string) ([]string, error) {
	slugs, err := s.store.ListSlugs(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	if len(slugs) == 0 {
		return nil, fmt.Errorf("%s: %w", kind, ErrNotFound)
	}
	return slugs, nil
}
