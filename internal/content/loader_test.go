package content

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource wraps a Source and counts reads
type countingSource struct {
	Source
	reads atomic.Int64
}

func (s *countingSource) Read(ctx context.Context, p string) ([]byte, error) {
	s.reads.Add(1)
	return s.Source.Read(ctx, p)
}

func TestLoader_LoadMemoizes(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, KindBlog, "hello", `{"title":"Hello","tags":["Go"]}`)

	src := &countingSource{Source: NewFileSource(root, ".json")}
	loader := NewLoader(src, nil, zerolog.Nop())
	ctx := context.Background()

	first, ok := loader.Load(ctx, "blog/hello")
	require.True(t, ok)

	// Changing the file after the first load must not change the result
	writeDoc(t, root, KindBlog, "hello", `{"title":"Changed"}`)

	second, ok := loader.Load(ctx, "blog/hello")
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), src.reads.Load())
	assert.Equal(t, 1, loader.Cached())
}

func TestLoader_MissingDocument(t *testing.T) {
	root := t.TempDir()
	src := &countingSource{Source: NewFileSource(root, ".json")}
	loader := NewLoader(src, nil, zerolog.Nop())
	ctx := context.Background()

	doc, ok := loader.Load(ctx, "blog/nope")
	assert.False(t, ok)
	assert.Nil(t, doc)

	// Misses are not memoized: a file added later becomes visible
	writeDoc(t, root, KindBlog, "nope", `{"title":"Now here"}`)
	doc, ok = loader.Load(ctx, "blog/nope")
	require.True(t, ok)
	assert.JSONEq(t, `{"title":"Now here"}`, string(doc))
	assert.Equal(t, int64(2), src.reads.Load())
}

func TestLoader_MalformedJSON(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, KindProjects, "broken", `{"title": "oops",`)
	loader := NewLoader(NewFileSource(root, ".json"), nil, zerolog.Nop())

	doc, ok := loader.Load(context.Background(), "projects/broken")
	assert.False(t, ok)
	assert.Nil(t, doc)
	assert.Equal(t, 0, loader.Cached())
}

func TestLoader_RejectsTraversal(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(filepath.Dir(root), "secret.json")
	require.NoError(t, os.WriteFile(outside, []byte(`{"secret":true}`), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	loader := NewLoader(NewFileSource(root, ".json"), nil, zerolog.Nop())
	_, ok := loader.Load(context.Background(), "../secret")
	assert.False(t, ok)
}

type errSource struct{}

func (errSource) Read(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}
func (errSource) List(context.Context, string) ([]string, error) {
	return nil, errors.New("disk on fire")
}

func TestLoader_ReadErrorIsSwallowed(t *testing.T) {
	loader := NewLoader(errSource{}, nil, zerolog.Nop())
	_, ok := loader.Load(context.Background(), "blog/any")
	assert.False(t, ok)
}

func TestLoader_LoadInto(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, KindHome, "hero", `{"title":"Hi","count":3}`)
	writeDoc(t, root, KindHome, "list", `[1,2,3]`)
	loader := NewLoader(NewFileSource(root, ".json"), nil, zerolog.Nop())
	ctx := context.Background()

	var hero struct {
		Title string `json:"title"`
		Count int    `json:"count"`
	}
	require.True(t, loader.LoadInto(ctx, "home/hero", &hero))
	assert.Equal(t, "Hi", hero.Title)
	assert.Equal(t, 3, hero.Count)

	// Valid JSON of the wrong shape is reported as absent
	assert.False(t, loader.LoadInto(ctx, "home/list", &hero))
	assert.False(t, loader.LoadInto(ctx, "home/missing", &hero))
}

func TestLoader_InjectedCache(t *testing.T) {
	cache := NewMemoryCache()
	cache.Put("pages/about", json.RawMessage(`{"title":"From cache"}`))

	// The source is empty; the document must come from the injected cache
	loader := NewLoader(NewFileSource(t.TempDir(), ".json"), cache, zerolog.Nop())
	doc, ok := loader.Load(context.Background(), "pages/about")
	require.True(t, ok)
	assert.JSONEq(t, `{"title":"From cache"}`, string(doc))
}

func TestLoader_NopCacheAlwaysReads(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, KindBlog, "a", `{"v":1}`)
	src := &countingSource{Source: NewFileSource(root, ".json")}
	loader := NewLoader(src, NopCache{}, zerolog.Nop())

	loader.Load(context.Background(), "blog/a")
	loader.Load(context.Background(), "blog/a")
	assert.Equal(t, int64(2), src.reads.Load())
}

func TestLoader_ConcurrentLoads(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, KindBlog, "a", `{"title":"A"}`)
	writeDoc(t, root, KindBlog, "b", `{"title":"B"}`)
	loader := NewLoader(NewFileSource(root, ".json"), nil, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := "blog/a"
			if i%2 == 0 {
				p = "blog/b"
			}
			_, ok := loader.Load(context.Background(), p)
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 2, loader.Cached())
}

// BenchmarkLoader_CachedLoad benchmarks memoized loads of one document
func BenchmarkLoader_CachedLoad(b *testing.B) {
	root := b.TempDir()
	writeDoc(b, root, KindBlog, "hooks", `{"title":"Hooks","slug":"hooks"}`)
	loader := NewLoader(NewFileSource(root, ".json"), nil, zerolog.Nop())
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, ok := loader.Load(ctx, "blog/hooks"); !ok {
			b.Fatal("document not loaded")
		}
	}
}

// BenchmarkLoader_Uncached benchmarks loads that always hit the file system
func BenchmarkLoader_Uncached(b *testing.B) {
	root := b.TempDir()
	writeDoc(b, root, KindBlog, "hooks", `{"title":"Hooks","slug":"hooks"}`)
	loader := NewLoader(NewFileSource(root, ".json"), NopCache{}, zerolog.Nop())
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, ok := loader.Load(ctx, "blog/hooks"); !ok {
			b.Fatal("document not loaded")
		}
	}
}
