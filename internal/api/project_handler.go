package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/service"
	"github.com/rs/zerolog"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(services *service.Services, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{
		services: services,
		log:      log.With().Str("handler", "projects").Logger(),
	}
}

// ListProjects handles GET /api/projects
// Query params: featured (bool)
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	featured := false
	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "featured must be a boolean"})
			return
		}
		featured = v
	}

	var projects []models.Project
	var err error
	if featured {
		projects, err = h.services.Projects.FeaturedProjects(c.Request.Context())
	} else {
		projects, err = h.services.Projects.AllProjects(c.Request.Context())
	}
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, nonNil(projects))
}

// GetProject handles GET /api/projects/:slug
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.services.Projects.ProjectBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch project")
		return
	}
	c.JSON(http.StatusOK, project)
}
