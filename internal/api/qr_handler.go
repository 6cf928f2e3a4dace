package api

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/staff-data-intake/internal/config"
	"github.com/staff-data-intake/internal/service"
)

// QRHandler handles QR code endpoints
type QRHandler struct {
	services *service.Services
	imageURL string
	log      zerolog.Logger
}

// NewQRHandler creates a new QRHandler
func NewQRHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *QRHandler {
	return &QRHandler{
		services: services,
		imageURL: path.Join("/static", cfg.Static.QRFile),
		log:      log.With().Str("handler", "qr").Logger(),
	}
}

// TestQR handles GET /test-qr
// Regenerates the QR image for the app URL and embeds it.
func (h *QRHandler) TestQR(c *gin.Context) {
	url := h.services.QR.DefaultURL()
	h.log.Debug().Str("url", url).Msg("Regenerating QR code")

	if !h.services.QR.Generate(url) {
		c.String(http.StatusOK, "Failed to generate QR code")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`<img src="`+h.imageURL+`">`))
}
