package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeDoc writes a content file under root/kind/slug.json
func writeDoc(t testing.TB, root, kind, slug, body string) {
	t.Helper()
	dir := filepath.Join(root, kind)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".json"), []byte(body), 0o644))
}
