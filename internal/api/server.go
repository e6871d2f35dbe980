// Package api implements the HTTP API exposing extraction as a service.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/goimpressum/internal/domain"
	"github.com/jonesrussell/goimpressum/internal/logger"
)

// Runner runs the extraction pipeline over a set of URLs.
type Runner interface {
	Run(ctx context.Context, urls []string, maxWorkers int) []*domain.Record
}

// Server serves extraction requests over HTTP.
type Server struct {
	engine     *gin.Engine
	runner     Runner
	maxWorkers int
	log        logger.Interface
}

// NewServer creates the API server with its routes registered.
func NewServer(runner Runner, maxWorkers int, log logger.Interface) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:     engine,
		runner:     runner,
		maxWorkers: maxWorkers,
		log:        log,
	}

	engine.GET("/health", s.handleHealth)

	v1 := engine.Group("/api/v1")
	v1.POST("/extract", s.handleExtract)

	return s
}

// Handler returns the HTTP handler for mounting in an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// extractRequest is the POST /api/v1/extract request body.
type extractRequest struct {
	URLs []string `json:"urls" binding:"required,min=1"`
}

// extractResponse is the POST /api/v1/extract response body.
type extractResponse struct {
	Total   int              `json:"total"`
	Records []*domain.Record `json:"records"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleExtract runs the pipeline over the requested URLs and returns
// the ranked records.
func (s *Server) handleExtract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "urls must be a non-empty list"})
		return
	}

	s.log.Info("extract request received", "url_count", len(req.URLs))

	records := s.runner.Run(c.Request.Context(), req.URLs, s.maxWorkers)
	if records == nil {
		records = []*domain.Record{}
	}

	c.JSON(http.StatusOK, extractResponse{
		Total:   len(records),
		Records: records,
	})
}
