package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileSource reads documents from a directory tree on disk
type FileSource struct {
	root string
	ext  string
}

// NewFileSource creates a FileSource rooted at dir. ext is the document
// file extension including the dot.
func NewFileSource(dir, ext string) *FileSource {
	return &FileSource{root: dir, ext: ext}
}

// Root returns the content root directory
func (s *FileSource) Root() string {
	return s.root
}

// Extension returns the document file extension
func (s *FileSource) Extension() string {
	return s.ext
}

// FilePath maps a logical path to its file on disk
func (s *FileSource) FilePath(logicalPath string) string {
	return filepath.Join(s.root, filepath.FromSlash(logicalPath)+s.ext)
}

// Read returns the bytes of the document at logicalPath
func (s *FileSource) Read(ctx context.Context, logicalPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean, err := CleanPath(logicalPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.FilePath(clean))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", clean, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", clean, err)
	}
	return data, nil
}

// List returns the slugs of all documents directly inside the kind directory,
// sorted by file name. Subdirectories and other extensions are skipped.
func (s *FileSource) List(ctx context.Context, kind string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean, err := CleanPath(kind)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.root, filepath.FromSlash(clean))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", clean, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, s.ext) {
			continue
		}
		slug := strings.TrimSuffix(name, s.ext)
		if slug == "" || strings.HasPrefix(slug, ".") {
			continue
		}
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs, nil
}

// EnsureDirectories creates the content root and every kind directory
func EnsureDirectories(root string) error {
	for _, kind := range Kinds {
		if err := os.MkdirAll(filepath.Join(root, kind), 0o755); err != nil {
			return fmt.Errorf("failed to create content directory %s: %w", kind, err)
		}
	}
	return nil
}
