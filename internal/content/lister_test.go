package content

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLister_Slugs(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, KindProjects, "zeta", `{}`)
	writeDoc(t, root, KindProjects, "alpha", `{}`)

	lister := NewLister(NewFileSource(root, ".json"), zerolog.Nop())
	assert.Equal(t, []string{"alpha", "zeta"}, lister.Slugs(context.Background(), KindProjects))
}

func TestLister_MissingDirectoryIsEmpty(t *testing.T) {
	lister := NewLister(NewFileSource(t.TempDir(), ".json"), zerolog.Nop())

	slugs := lister.Slugs(context.Background(), KindBlog)
	assert.NotNil(t, slugs)
	assert.Empty(t, slugs)
}

func TestLister_SourceErrorIsEmpty(t *testing.T) {
	lister := NewLister(errSource{}, zerolog.Nop())
	assert.Empty(t, lister.Slugs(context.Background(), KindBlog))
}
