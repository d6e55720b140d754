package content

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Lister enumerates the slugs available for a content kind
type Lister struct {
	source Source
	log    zerolog.Logger
}

// NewLister creates a Lister over source
func NewLister(source Source, log zerolog.Logger) *Lister {
	return &Lister{
		source: source,
		log:    log.With().Str("component", "content_lister").Logger(),
	}
}

// Slugs returns the slugs of kind in file name order. A missing kind
// directory yields an empty slice.
func (l *Lister) Slugs(ctx context.Context, kind string) []string {
	slugs, err := l.source.List(ctx, kind)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			l.log.Debug().Str("kind", kind).Msg("Content directory missing")
		} else {
			l.log.Error().Err(err).Str("kind", kind).Msg("Error listing content")
		}
		return []string{}
	}
	return slugs
}
