// Package server exposes the fraud analyzers over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server is the HTTP transport for fraud analysis requests
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// New creates a new HTTP server with all analysis routes registered
func New(handler *Handler, listenAddress, mode string, logger *zap.Logger) *Server {
	gin.SetMode(mode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/health", handler.Health)

	api := engine.Group("/api/analyze")
	{
		api.POST("/url", handler.AnalyzeURL)
		api.POST("/email", handler.AnalyzeEmail)
		api.POST("/phone", handler.AnalyzePhone)
		api.POST("/image", handler.AnalyzeImage)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:    listenAddress,
			Handler: engine,
		},
		logger: logger,
	}
}

// Start serves requests until the listener fails or the server is stopped
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("address", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the listener down
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
