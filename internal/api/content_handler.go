package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/service"
	"github.com/rs/zerolog"
)

// ContentHandler serves page content and raw documents
type ContentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(services *service.Services, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		services: services,
		log:      log.With().Str("handler", "content").Logger(),
	}
}

// Hero handles GET /api/pages/hero
func (h *ContentHandler) Hero(c *gin.Context) {
	page, err := h.services.Pages.Hero(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch content")
		return
	}
	c.JSON(http.StatusOK, page)
}

// About handles GET /api/pages/about
func (h *ContentHandler) About(c *gin.Context) {
	page, err := h.services.Pages.About(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch content")
		return
	}
	c.JSON(http.StatusOK, page)
}

// Contact handles GET /api/pages/contact
func (h *ContentHandler) Contact(c *gin.Context) {
	page, err := h.services.Pages.ContactForm(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch content")
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetDocument handles GET /api/content/*path
// The document is written back byte for byte.
func (h *ContentHandler) GetDocument(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	doc, err := h.services.Pages.Document(c.Request.Context(), path)
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch content")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
}
