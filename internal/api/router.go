package api

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/staff-data-intake/internal/config"
	"github.com/staff-data-intake/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

const requestIDHeader = "X-Request-ID"

// HealthChecker reports whether the backing database is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router. db may be nil when SQLite is disabled.
func NewRouter(services *service.Services, db HealthChecker, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(recoveryMiddleware(log))

	// Handlers
	formHandler := NewFormHandler(services, log)
	exportHandler := NewExportHandler(services, cfg, log)
	qrHandler := NewQRHandler(services, cfg, log)

	router.GET("/", formHandler.ShowForm)
	router.POST("/submit", formHandler.Submit)
	router.GET("/success", formHandler.Success)
	router.GET("/test-qr", qrHandler.TestQR)
	router.GET("/export", exportHandler.DownloadCSV)
	router.Static("/static", cfg.Static.Dir)

	// Health check
	router.GET("/health", healthCheck(db))
	router.GET("/metrics", metricsHandler(services, log))

	return router
}

// healthCheck returns the health status
func healthCheck(db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		health := "healthy"
		database := "disabled"

		if db != nil {
			ctx, cancel := contextWithTimeout(c, 2*time.Second)
			defer cancel()

			database = "ok"
			if err := db.HealthCheck(ctx); err != nil {
				status = http.StatusServiceUnavailable
				health = "unhealthy"
				database = err.Error()
			}
		}

		c.JSON(status, gin.H{
			"status":    health,
			"database":  database,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "staff-data-intake",
		})
	}
}

// metricsHandler returns stored record counts
func metricsHandler(services *service.Services, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := services.Export.GetCount(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("Failed to count records")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count records"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"records":   count,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// requestIDMiddleware propagates X-Request-ID, generating one when absent
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("request_id", c.GetString("request_id")).
					Msg("Panic recovered")
				renderError(c, http.StatusInternalServerError, "An unexpected error occurred.")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}

// renderError renders the error page
func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Message":   message,
		"RequestID": c.GetString("request_id"),
	})
}

// contextWithTimeout creates a context with timeout for handlers
func contextWithTimeout(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
