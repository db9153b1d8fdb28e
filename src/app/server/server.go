// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"bookrec/src/app/http/handler"
	"bookrec/src/app/middleware"
	"bookrec/src/core/ports"
	"bookrec/src/core/usecase"
	"bookrec/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	healthHandler *handler.HealthHandler
	bookHandler   *handler.BookHandler
	userHandler   *handler.UserHandler
	recHandler    *handler.RecommendationHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, books ports.BookRepository, users ports.UserRepository) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	bookService := usecase.NewBookService(books, log)
	userService := usecase.NewUserService(users, log)
	recService := usecase.NewRecommendationService(userService, books, log)
	healthService := usecase.NewHealthService(books, log)

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        router,
		healthHandler: handler.NewHealthHandler(healthService),
		bookHandler:   handler.NewBookHandler(bookService),
		userHandler:   handler.NewUserHandler(userService),
		recHandler:    handler.NewRecommendationHandler(recService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	// API v1 routes
	v1 := s.router.Group("/v1")
	{
		// Books
		v1.POST("/books", s.bookHandler.Create)
		v1.GET("/books", s.bookHandler.List)
		v1.GET("/books/:book_id", s.bookHandler.Get)
		v1.GET("/books/by-title/:title", s.bookHandler.GetByTitle)
		v1.POST("/books/:book_id/genres", s.bookHandler.AddGenre)
		v1.PUT("/books/:book_id/genres", s.bookHandler.UpdateGenres)
		v1.DELETE("/books/:book_id", s.bookHandler.Delete)

		// Users
		v1.POST("/users", s.userHandler.Create)
		v1.GET("/users", s.userHandler.List)
		v1.GET("/users/:user_id", s.userHandler.Get)
		v1.PATCH("/users/:user_id", s.userHandler.Update)
		v1.PUT("/users/:user_id/genres", s.userHandler.UpdatePreferredGenres)
		v1.PUT("/users/:user_id/read/:book_id", s.userHandler.MarkRead)
		v1.DELETE("/users/:user_id/read/:book_id", s.userHandler.UnmarkRead)
		v1.DELETE("/users/:user_id", s.userHandler.Delete)

		// Recommendations
		v1.GET("/users/:user_id/recommendations", s.recHandler.Recommend)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
