package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/service"
	"github.com/rs/zerolog"
)

// SyncHandler exposes database sync job status
type SyncHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(services *service.Services, log zerolog.Logger) *SyncHandler {
	return &SyncHandler{
		services: services,
		log:      log.With().Str("handler", "sync").Logger(),
	}
}

// GetJob handles GET /api/sync/jobs/:job_id
func (h *SyncHandler) GetJob(c *gin.Context) {
	job, err := h.services.Sync.GetJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch sync job")
		return
	}
	c.JSON(http.StatusOK, job)
}
