package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/service"
	"github.com/rs/zerolog"
)

// BlogHandler handles blog and search endpoints
type BlogHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(services *service.Services, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		services: services,
		log:      log.With().Str("handler", "blog").Logger(),
	}
}

// ListPosts handles GET /api/blog
// Query params: category, tag, limit
func (h *BlogHandler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()

	limit := -1
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	category := c.Query("category")
	tag := c.Query("tag")

	var posts []models.BlogPost
	var err error
	switch {
	case category != "":
		posts, err = h.services.Blog.PostsByCategory(ctx, category)
	case tag != "":
		posts, err = h.services.Blog.PostsByTag(ctx, tag)
	default:
		posts, err = h.services.Blog.AllPosts(ctx)
	}
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch blog posts")
		return
	}

	// Both filters given: narrow the category result by tag
	if category != "" && tag != "" {
		tagged := make([]models.BlogPost, 0, len(posts))
		for i := range posts {
			if posts[i].HasTag(tag) {
				tagged = append(tagged, posts[i])
			}
		}
		posts = tagged
	}

	if limit >= 0 && limit < len(posts) {
		posts = posts[:limit]
	}

	c.JSON(http.StatusOK, nonNil(posts))
}

// GetPost handles GET /api/blog/posts/:slug
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.services.Blog.PostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Categories handles GET /api/blog/categories
func (h *BlogHandler) Categories(c *gin.Context) {
	categories, err := h.services.Blog.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, nonNil(categories))
}

// Tags handles GET /api/blog/tags
func (h *BlogHandler) Tags(c *gin.Context) {
	tags, err := h.services.Blog.Tags(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch tags")
		return
	}
	c.JSON(http.StatusOK, nonNil(tags))
}

// Search handles GET /api/search?q=
func (h *BlogHandler) Search(c *gin.Context) {
	posts, err := h.services.Blog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.log, err, "Failed to search posts")
		return
	}
	c.JSON(http.StatusOK, nonNil(posts))
}

// nonNil keeps empty collections encoding as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
