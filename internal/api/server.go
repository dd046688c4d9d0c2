// Package api wires the configured router: CORS, request logging, and
// the check endpoints on top of the service layer.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/NolanFinn/Check-Splitter/internal/api/handlers"
	"github.com/NolanFinn/Check-Splitter/internal/api/middleware"
	"github.com/NolanFinn/Check-Splitter/internal/application/service"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Server is the HTTP API server.
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
	svc        *service.CheckService
}

// NewServer creates a new API server around the check service.
func NewServer(cfg Config, svc *service.CheckService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		config: cfg,
		router: gin.New(),
		logger: logger,
		svc:    svc,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestLogger(s.logger))
	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check (no /api prefix - for load balancers)
	s.router.GET("/health", handlers.Health)

	checkHandler := handlers.NewCheckHandler(s.svc)
	itemsHandler := handlers.NewItemsHandler(s.svc)
	peopleHandler := handlers.NewPeopleHandler(s.svc)

	api := s.router.Group("/api")
	{
		api.GET("/check", checkHandler.Get)
		api.POST("/check/reset", checkHandler.Reset)
		api.PUT("/check/surcharges", checkHandler.SetSurcharges)
		api.PUT("/check/payer", peopleHandler.SetPayer)

		api.POST("/check/items", itemsHandler.Add)
		api.PUT("/check/items/:id", itemsHandler.Update)
		api.DELETE("/check/items/:id", itemsHandler.Remove)
		api.POST("/check/items/:id/assignees/:person", itemsHandler.ToggleAssignee)

		api.POST("/check/people", peopleHandler.Add)
		api.DELETE("/check/people/:name", peopleHandler.Remove)
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting API server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")

	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// Router returns the gin engine for testing.
func (s *Server) Router() http.Handler {
	return s.router
}
