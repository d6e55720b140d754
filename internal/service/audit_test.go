package service_test

import (
	"testing"

	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestAuditor_CleanContent(t *testing.T) {
	root := scenarioRoot(t)
	writeJSON(t, root, "projects/alpha", project("alpha", true))
	writeRaw(t, root, "home/hero", `{"title": "Hello"}`)

	auditor := service.NewAuditor(content.NewFileSource(root, ".json"), zerolog.Nop())
	assert.Empty(t, auditor.Audit(ctx(), nil))
}

func TestAuditor_ReportsProblems(t *testing.T) {
	root := t.TempDir()
	mismatched := post("other-slug", "2020-01-01", "X")
	writeJSON(t, root, "blog/real-slug", mismatched)
	writeRaw(t, root, "blog/broken", `{`)

	badProject := project("bad", false)
	badProject.GitHub = "github.com/no-scheme"
	writeJSON(t, root, "projects/bad", badProject)

	writeRaw(t, root, "pages/contact", `{"title": "Contact", "fields": [{"name": "x", "label": "X", "type": "date"}]}`)

	auditor := service.NewAuditor(content.NewFileSource(root, ".json"), zerolog.Nop())
	problems := auditor.Audit(ctx(), nil)

	byPath := make(map[string][]string)
	for _, p := range problems {
		byPath[p.Path] = append(byPath[p.Path], p.Field)
	}

	assert.Contains(t, byPath["blog/broken"], "document")
	assert.Contains(t, byPath["blog/real-slug"], "slug")
	assert.Contains(t, byPath["projects/bad"], "github")
	assert.NotEmpty(t, byPath["pages/contact"])
}

func TestAuditor_UnknownPagesPassUnchecked(t *testing.T) {
	auditor := service.NewAuditor(content.NewFileSource(t.TempDir(), ".json"), zerolog.Nop())
	assert.Empty(t, auditor.Check(content.KindPages, "faq", []byte(`{"anything": 1}`)))
}
