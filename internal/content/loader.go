package content

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/portfolio-content-api/internal/metrics"
	"github.com/rs/zerolog"
)

// Loader reads documents from a Source and memoizes them in a Cache.
// It never returns errors: a missing, unreadable or malformed document is
// logged and reported as absent.
type Loader struct {
	source Source
	cache  Cache
	log    zerolog.Logger
}

// NewLoader creates a Loader. A nil cache gets a fresh MemoryCache.
func NewLoader(source Source, cache Cache, log zerolog.Logger) *Loader {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Loader{
		source: source,
		cache:  cache,
		log:    log.With().Str("component", "content_loader").Logger(),
	}
}

// Load returns the raw JSON document at logicalPath and whether it exists.
// Only successful loads are memoized, so a document added after startup is
// picked up on the next request.
func (l *Loader) Load(ctx context.Context, logicalPath string) (json.RawMessage, bool) {
	clean, err := CleanPath(logicalPath)
	if err != nil {
		metrics.LoadFailures.WithLabelValues(metrics.ReasonInvalid).Inc()
		l.log.Warn().Str("path", logicalPath).Msg("Rejected content path")
		return nil, false
	}

	if doc, ok := l.cache.Get(clean); ok {
		return doc, true
	}

	data, err := l.source.Read(ctx, clean)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			metrics.LoadFailures.WithLabelValues(metrics.ReasonNotFound).Inc()
			l.log.Debug().Str("path", clean).Msg("Content not found")
		} else {
			metrics.LoadFailures.WithLabelValues(metrics.ReasonRead).Inc()
			l.log.Error().Err(err).Str("path", clean).Msg("Error reading content")
		}
		return nil, false
	}

	if !json.Valid(data) {
		metrics.LoadFailures.WithLabelValues(metrics.ReasonMalformed).Inc()
		l.log.Error().Str("path", clean).Int("bytes", len(data)).Msg("Malformed JSON in content file")
		return nil, false
	}

	doc := json.RawMessage(data)
	l.cache.Put(clean, doc)
	return doc, true
}

// LoadInto loads the document at logicalPath and decodes it into v
func (l *Loader) LoadInto(ctx context.Context, logicalPath string, v interface{}) bool {
	doc, ok := l.Load(ctx, logicalPath)
	if !ok {
		return false
	}
	if err := json.Unmarshal(doc, v); err != nil {
		metrics.LoadFailures.WithLabelValues(metrics.ReasonMalformed).Inc()
		l.log.Error().Err(err).Str("path", logicalPath).Msg("Content does not match expected shape")
		return false
	}
	return true
}

// Cached returns the number of memoized documents
func (l *Loader) Cached() int {
	return l.cache.Len()
}
