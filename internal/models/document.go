package models

import (
	"encoding/json"
	"time"
)

// Document is a raw content document mirrored into the database
type Document struct {
	Kind     string          `json:"kind" db:"kind"`
	Slug     string          `json:"slug" db:"slug"`
	Body     json.RawMessage `json:"body" db:"body"`
	Checksum string          `json:"checksum" db:"checksum"`
	SyncedAt time.Time       `json:"synced_at" db:"synced_at"`
}

// ContentStats summarizes the served content
type ContentStats struct {
	Posts            int `json:"posts"`
	Projects         int `json:"projects"`
	FeaturedProjects int `json:"featured_projects"`
	Categories       int `json:"categories"`
	Tags             int `json:"tags"`
	CachedDocuments  int `json:"cached_documents"`
}
