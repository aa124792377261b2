package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"microblog/internal/core/service"
	"microblog/internal/web/handler"
	"microblog/internal/web/middleware"
	"microblog/pkg/config"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer wires the HTTP surface: global middleware, templates, static
// assets and the route table.
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	postService *service.PostService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.IdentityMiddleware(authService))

	router.LoadHTMLGlob(cfg.TemplateGlob)
	router.Static("/static", cfg.StaticDir)

	// Initialize handlers
	pageHandler := handler.NewPageHandler(postService)
	authHandler := handler.NewAuthHandler(authService, cfg.SecureCookies)
	postHandler := handler.NewPostHandler(postService)

	// Public routes
	router.GET("/", pageHandler.Home)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.POST("/register", authHandler.Register)
	router.GET("/post/:id", postHandler.Show)

	// Protected routes (auth required)
	posts := router.Group("/")
	posts.Use(middleware.RequireAuth())
	{
		posts.GET("/create-post", postHandler.New)
		posts.POST("/create-post", postHandler.Create)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := s.config.Addr()

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
