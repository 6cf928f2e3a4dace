package service

import (
	"github.com/rs/zerolog"

	"github.com/staff-data-intake/internal/qrcode"
)

// qrService is the concrete implementation of QRService
type qrService struct {
	path       string
	opts       qrcode.Options
	defaultURL func() string
	log        zerolog.Logger
}

func newQRService(path string, opts qrcode.Options, defaultURL func() string, log zerolog.Logger) *qrService {
	return &qrService{
		path:       path,
		opts:       opts,
		defaultURL: defaultURL,
		log:        log.With().Str("component", "qr").Logger(),
	}
}

// Generate writes the QR image for url. Failures are logged, never returned.
func (s *qrService) Generate(url string) bool {
	if err := qrcode.WriteFile(url, s.path, s.opts); err != nil {
		s.log.Error().Err(err).Str("url", url).Msg("Failed to generate QR code")
		return false
	}
	s.log.Info().Str("url", url).Str("path", s.path).Msg("QR code generated")
	return true
}

// DefaultURL returns the URL the QR code should point at
func (s *qrService) DefaultURL() string {
	return s.defaultURL()
}

// Path returns the QR image location
func (s *qrService) Path() string {
	return s.path
}
