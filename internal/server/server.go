// Package server wires the Fiber app: middleware, the /graphql endpoint and
// operational routes.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bulletin/internal/config"
	"bulletin/internal/database"
	"bulletin/internal/graph"
	"bulletin/internal/middleware"
	"bulletin/internal/repository"
	"bulletin/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/graphql-go/graphql"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	promMiddleware *fiberprometheus.FiberPrometheus
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	postService    *service.PostService
	commentService *service.CommentService
	schema         graphql.Schema
}

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// initMetrics registers the Prometheus collectors once per process so test
// setups creating multiple servers do not trip duplicate registration.
func initMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(serviceName)
	})
	return prom
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db)
}

// NewServerWithDeps creates a Server using an already-initialized database
// handle. Use this in tests or when a bootstrap layer establishes the DB.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) (*Server, error) {
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	hasher := service.NewBcryptHasher()

	postService := service.NewPostService(postRepo, hasher)
	commentService := service.NewCommentService(commentRepo, postRepo, hasher)

	schema, err := graph.NewSchema(graph.NewResolver(postService, commentService))
	if err != nil {
		return nil, fmt.Errorf("schema construction failed: %w", err)
	}

	return &Server{
		config:         cfg,
		db:             db,
		promMiddleware: initMetrics("bulletin-api"),
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		postService:    postService,
		commentService: commentService,
		schema:         schema,
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for correlating log lines
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before middlewares that can short-circuit, so browser clients
	// still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// GraphQL endpoint plus an in-browser IDE on GET
	app.Post("/graphql", s.GraphQL)
	app.Get("/graphql", s.Playground)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
