// Package server exposes the trawl pipeline over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/export"
	"github.com/dramhound/dramhound/internal/repository"
	"github.com/dramhound/dramhound/internal/trawler"
)

// NewRouter wires the full API surface. All state mutation goes through the
// trawler service; reads go straight to the repositories.
func NewRouter(
	svc *trawler.Service,
	bars repository.BarRepository,
	listings repository.ListingRepository,
	exporter *export.Service,
	batchDelay time.Duration,
	logger *slog.Logger,
) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(requestID())
	router.Use(requestLogger(logger))
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := newHandler(svc, bars, listings, exporter, batchDelay, logger)

	v1 := router.Group("/v1")
	v1.POST("/bars", h.CreateBar)
	v1.GET("/bars/:id/menu", h.GetMenu)
	v1.GET("/bars/:id/menu/export", h.ExportMenu)
	v1.POST("/trawl", h.Trawl)
	v1.POST("/trawl/batch", h.TrawlBatch)
	v1.GET("/jobs/:id", h.GetJob)

	return router
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Request = c.Request.WithContext(common.WithRequestID(c.Request.Context(), reqID))
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("http.request",
			"req_id", common.RequestIDFromContext(c.Request.Context()),
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"client_ip", c.ClientIP(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}
