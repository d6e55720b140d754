// Package content reads the JSON content tree: one document per entity,
// grouped by kind into blog/, projects/, home/ and pages/.
package content

import (
	"context"
	"errors"
	"path"
	"strings"
)

// Content kinds. Each kind is a subdirectory of the content root.
const (
	KindBlog     = "blog"
	KindProjects = "projects"
	KindHome     = "home"
	KindPages    = "pages"
)

// Kinds lists every kind in the content layout
var Kinds = []string{KindBlog, KindProjects, KindHome, KindPages}

var (
	// ErrNotFound is returned when a document or kind directory does not exist
	ErrNotFound = errors.New("content not found")
	// ErrInvalidPath is returned for logical paths that escape the content root
	ErrInvalidPath = errors.New("invalid content path")
)

// Source provides raw documents by logical path ("blog/my-post") and the
// slugs available for a kind.
type Source interface {
	Read(ctx context.Context, logicalPath string) ([]byte, error)
	List(ctx context.Context, kind string) ([]string, error)
}

// CleanPath normalizes a logical content path. It rejects absolute paths,
// parent references and empty paths.
func CleanPath(p string) (string, error) {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	if p == "" || strings.HasPrefix(p, "/") {
		return "", ErrInvalidPath
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", ErrInvalidPath
		}
	}
	cleaned := path.Clean(p)
	if cleaned == "." {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

// Join builds the logical path of a slug within a kind
func Join(kind, slug string) string {
	return kind + "/" + slug
}

// SplitPath splits a logical path into its kind and the remaining slug
func SplitPath(p string) (kind, slug string, ok bool) {
	kind, slug, ok = strings.Cut(p, "/")
	if !ok || kind == "" || slug == "" {
		return "", "", false
	}
	return kind, slug, true
}
