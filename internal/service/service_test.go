package service_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/portfolio-content-api/internal/config"
	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// writeJSON writes v as root/<logicalPath>.json
func writeJSON(t testing.TB, root, logicalPath string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	writeRaw(t, root, logicalPath, string(data))
}

func writeRaw(t testing.TB, root, logicalPath, body string) {
	t.Helper()
	file := filepath.Join(root, filepath.FromSlash(logicalPath)+".json")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))
}

func testConfig(root string) *config.Config {
	return &config.Config{
		Content: config.ContentConfig{
			Dir:             root,
			Extension:       ".json",
			Source:          config.SourceFS,
			LoadConcurrency: 4,
		},
	}
}

// newServices builds services over a file-backed content root
func newServices(t testing.TB, root string) (*service.Services, *content.Loader) {
	t.Helper()
	cfg := testConfig(root)
	source := content.NewFileSource(cfg.Content.Dir, cfg.Content.Extension)
	loader := content.NewLoader(source, content.NewMemoryCache(), zerolog.Nop())
	lister := content.NewLister(source, zerolog.Nop())
	return service.NewServices(loader, lister, nil, cfg, zerolog.Nop()), loader
}

func post(slug, date, category string, tags ...string) models.BlogPost {
	return models.BlogPost{
		Title:    "Post " + slug,
		Slug:     slug,
		Date:     date,
		Author:   "Evan Schultz",
		Excerpt:  "About " + slug,
		Content:  []models.ContentBlock{{Type: models.BlockParagraph, Content: "Body of " + slug}},
		Image:    "/" + slug + ".png",
		Tags:     tags,
		Category: category,
	}
}

func slugsOf(posts []models.BlogPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

func ctx() context.Context {
	return context.Background()
}
