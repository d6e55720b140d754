package service

import (
	"strings"

	"github.com/portfolio-content-api/internal/models"
)

// MatchesQuery reports whether query is a case-insensitive substring of the
// post's title, excerpt, category or any tag. The body is not searched.
func MatchesQuery(post *models.BlogPost, query string) bool {
	return matches(post, models.Fold(query))
}

// SearchPosts filters posts by a case-insensitive substring query, keeping
// their order. An empty query matches nothing.
func SearchPosts(posts []models.BlogPost, query string) []models.BlogPost {
	results := make([]models.BlogPost, 0)
	if query == "" {
		return results
	}

	q := models.Fold(query)
	for i := range posts {
		if matches(&posts[i], q) {
			results = append(results, posts[i])
		}
	}
	return results
}

// matches expects q already folded
func matches(post *models.BlogPost, q string) bool {
	if strings.Contains(models.Fold(post.Title), q) ||
		strings.Contains(models.Fold(post.Excerpt), q) ||
		strings.Contains(models.Fold(post.Category), q) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(models.Fold(tag), q) {
			return true
		}
	}
	return false
}
