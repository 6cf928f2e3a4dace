package api

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/staff-data-intake/internal/config"
	"github.com/staff-data-intake/internal/service"
)

// ExportHandler handles export endpoints
type ExportHandler struct {
	services *service.Services
	filename string
	log      zerolog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		services: services,
		filename: filepath.Base(cfg.Storage.CSVPath),
		log:      log.With().Str("handler", "export").Logger(),
	}
}

// DownloadCSV handles GET /export
// The CSV is rendered in memory first so failures can still produce an error status.
func (h *ExportHandler) DownloadCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.services.Export.StreamCSV(c.Request.Context(), &buf); err != nil {
		h.log.Error().Err(err).Msg("Export failed")
		c.String(http.StatusInternalServerError, "Failed to export data")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
