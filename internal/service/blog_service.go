package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/models"
	"github.com/rs/zerolog"
)

// blogService is the concrete implementation of BlogService
type blogService struct {
	loader      *content.Loader
	lister      *content.Lister
	concurrency int
	log         zerolog.Logger
}

// newBlogService creates a new BlogService
func newBlogService(loader *content.Loader, lister *content.Lister, concurrency int, log zerolog.Logger) *blogService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &blogService{
		loader:      loader,
		lister:      lister,
		concurrency: concurrency,
		log:         log.With().Str("service", "blog").Logger(),
	}
}

// AllPosts returns every loadable post, newest first. Posts with equal dates
// keep file name order; posts with unparseable dates sort last.
func (s *blogService) AllPosts(ctx context.Context) ([]models.BlogPost, error) {
	slugs := s.lister.Slugs(ctx, content.KindBlog)

	posts, err := loadCollection(ctx, s.loader, content.KindBlog, slugs, s.concurrency, s.fixSlug)
	if err != nil {
		return nil, err
	}

	sortByDateDesc(posts)
	return posts, nil
}

// LatestPosts returns the n newest posts
func (s *blogService) LatestPosts(ctx context.Context, n int) ([]models.BlogPost, error) {
	posts, err := s.AllPosts(ctx)
	if err != nil {
		return nil, err
	}
	if n >= 0 && n < len(posts) {
		posts = posts[:n]
	}
	return posts, nil
}

// PostBySlug returns a single post or content.ErrNotFound
func (s *blogService) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var post models.BlogPost
	if !s.loader.LoadInto(ctx, content.Join(content.KindBlog, slug), &post) {
		return nil, fmt.Errorf("blog post %q: %w", slug, content.ErrNotFound)
	}
	s.fixSlug(&post, slug)
	return &post, nil
}

// PostsByCategory returns posts whose category equals category, ignoring case
func (s *blogService) PostsByCategory(ctx context.Context, category string) ([]models.BlogPost, error) {
	return s.filter(ctx, func(p *models.BlogPost) bool {
		return p.InCategory(category)
	})
}

// PostsByTag returns posts tagged with tag, ignoring case
func (s *blogService) PostsByTag(ctx context.Context, tag string) ([]models.BlogPost, error) {
	return s.filter(ctx, func(p *models.BlogPost) bool {
		return p.HasTag(tag)
	})
}

// Categories returns the distinct categories in first-seen order
func (s *blogService) Categories(ctx context.Context) ([]string, error) {
	posts, err := s.AllPosts(ctx)
	if err != nil {
		return nil, err
	}

	var values []string
	for i := range posts {
		values = append(values, posts[i].Category)
	}
	return distinct(values), nil
}

// Tags returns the distinct tags in first-seen order
func (s *blogService) Tags(ctx context.Context) ([]string, error) {
	posts, err := s.AllPosts(ctx)
	if err != nil {
		return nil, err
	}

	var values []string
	for i := range posts {
		values = append(values, posts[i].Tags...)
	}
	return distinct(values), nil
}

// Search returns posts matching query; see MatchesQuery
func (s *blogService) Search(ctx context.Context, query string) ([]models.BlogPost, error) {
	if query == "" {
		return []models.BlogPost{}, nil
	}
	posts, err := s.AllPosts(ctx)
	if err != nil {
		return nil, err
	}
	return SearchPosts(posts, query), nil
}

func (s *blogService) filter(ctx context.Context, keep func(*models.BlogPost) bool) ([]models.BlogPost, error) {
	posts, err := s.AllPosts(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.BlogPost, 0)
	for i := range posts {
		if keep(&posts[i]) {
			matched = append(matched, posts[i])
		}
	}
	return matched, nil
}

// fixSlug makes the file name authoritative for the post slug
func (s *blogService) fixSlug(post *models.BlogPost, slug string) {
	if post.Slug != "" && post.Slug != slug {
		s.log.Warn().
			Str("file_slug", slug).
			Str("document_slug", post.Slug).
			Msg("Blog post slug does not match file name")
	}
	post.Slug = slug
}

// sortByDateDesc sorts posts newest first, stable for equal dates
func sortByDateDesc(posts []models.BlogPost) {
	type entry struct {
		post models.BlogPost
		ok   bool
		at   time.Time
	}
	entries := make([]entry, len(posts))
	for i := range posts {
		at, ok := posts[i].PublishedAt()
		entries[i] = entry{post: posts[i], ok: ok, at: at}
	}

	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].ok != entries[b].ok {
			return entries[a].ok
		}
		return entries[a].at.After(entries[b].at)
	})

	for i := range entries {
		posts[i] = entries[i].post
	}
}

// distinct removes empty and repeated values, keeping first-seen order
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
