package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// documentRepo is the concrete implementation of DocumentRepository
type documentRepo struct {
	db *database.DB
}

// NewDocumentRepo creates a new document repository
func NewDocumentRepo(db *database.DB) DocumentRepository {
	return &documentRepo{db: db}
}

// Upsert inserts a document or replaces the body of an existing one
func (r *documentRepo) Upsert(ctx context.Context, doc *models.Document) error {
	if doc.SyncedAt.IsZero() {
		doc.SyncedAt = time.Now()
	}

	query := `
		INSERT INTO content_documents (kind, slug, body, checksum, synced_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (kind, slug) DO UPDATE SET
			body = EXCLUDED.body,
			checksum = EXCLUDED.checksum,
			synced_at = EXCLUDED.synced_at
	`
	_, err := r.db.ExecContext(ctx, query,
		doc.Kind, doc.Slug, []byte(doc.Body), doc.Checksum, doc.SyncedAt,
	)
	return err
}

// GetBody retrieves only the JSON body, or nil when it does not exist
func (r *documentRepo) GetBody(ctx context.Context, kind, slug string) ([]byte, error) {
	var body []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT body FROM content_documents WHERE kind = $1 AND slug = $2`, kind, slug,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return body, err
}

// GetChecksums returns slug -> checksum for every document of kind
func (r *documentRepo) GetChecksums(ctx context.Context, kind string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slug, checksum FROM content_documents WHERE kind = $1`, kind,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checksums := make(map[string]string)
	for rows.Next() {
		var slug, checksum string
		if err := rows.Scan(&slug, &checksum); err != nil {
			return nil, err
		}
		checksums[slug] = checksum
	}
	return checksums, rows.Err()
}

// ListSlugs returns the slugs of kind ordered by slug
func (r *documentRepo) ListSlugs(ctx context.Context, kind string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slug FROM content_documents WHERE kind = $1 ORDER BY slug`, kind,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, err
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// DeleteMissing removes documents of kind whose slug is not in keep
func (r *documentRepo) DeleteMissing(ctx context.Context, kind string, keep []string) (int, error) {
	if keep == nil {
		keep = []string{}
	}
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM content_documents WHERE kind = $1 AND NOT (slug = ANY($2))`,
		kind, pq.Array(keep),
	)
	if err != nil {
		return 0, err
	}
	n, _ := result.RowsAffected()
	return int(n), nil
}

// Count returns the number of documents of kind
func (r *documentRepo) Count(ctx context.Context, kind string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM content_documents WHERE kind = $1`, kind,
	).Scan(&count)
	return count, err
}
