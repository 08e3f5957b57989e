// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"fmt"
	"time"

	"vietchronicle/internal/ai"
	"vietchronicle/internal/cache"
	"vietchronicle/internal/config"
	"vietchronicle/internal/content"
	"vietchronicle/internal/database"
	"vietchronicle/internal/media"
	"vietchronicle/internal/middleware"
	"vietchronicle/internal/repository"
	"vietchronicle/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Version is the API version reported by the health/version blurbs.
const Version = "1.0.0"

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	postRepo         repository.PostRepository
	commentRepo      repository.CommentRepository
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	statsRepo        repository.StatsRepository

	contentStore *content.Store
	aiClient     *ai.Client
	uploader     media.Uploader

	postService         *service.PostService
	engagementService   *service.EngagementService
	commentService      *service.CommentService
	notificationService *service.NotificationService
	statsService        *service.StatsService
	authService         *service.AuthService
	seedService         *service.SeedService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use this with an in-memory database and miniredis (or nil).
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		promMiddleware:   middleware.InitMetrics("vietchronicle-api"),
		postRepo:         repository.NewPostRepository(db),
		commentRepo:      repository.NewCommentRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
		userRepo:         repository.NewUserRepository(db),
		statsRepo:        repository.NewStatsRepository(db),
		contentStore:     content.NewStore(cfg.EventsFile, cfg.PostsFile, cfg.SystemPromptFile),
		aiClient: ai.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel,
			ai.WithLogger(middleware.Logger)),
		uploader: media.NewClient(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret,
			media.WithLogger(middleware.Logger)),
	}

	server.postService = service.NewPostService(server.postRepo)
	server.engagementService = service.NewEngagementService(server.postRepo, server.notificationRepo, middleware.Logger)
	server.commentService = service.NewCommentService(server.commentRepo, server.postRepo, server.notificationRepo, middleware.Logger)
	server.notificationService = service.NewNotificationService(server.notificationRepo)
	server.statsService = service.NewStatsService(server.statsRepo)
	server.authService = service.NewAuthService(server.userRepo)
	server.seedService = service.NewSeedService(server.postRepo, server.contentStore, middleware.Logger)

	return server, nil
}

// Shutdown releases server-held resources (database pool, Redis client).
func (s *Server) Shutdown(ctx context.Context) error {
	var firstErr error

	if sqlDB, err := s.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	cache.Close()

	return firstErr
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and viewer ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before middlewares that can short-circuit, so browser clients
	// still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (300 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Quá nhiều yêu cầu / Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)
	api.Get("/", s.VersionBlurb)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Post routes. Fixed paths before the generic /:id routes, or Fiber
	// would route /posts/like to the detail handler.
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", s.CreatePost)
	posts.Post("/like", s.ToggleLike)
	posts.Get("/like", s.GetLikeStatus)
	posts.Post("/comment", s.CreateComment)
	posts.Get("/comment", s.GetComments)
	posts.Delete("/comment", s.DeleteComment)
	posts.Get("/:id", s.GetPostDetail)
	posts.Delete("/:id", s.DeletePost)

	// Notification routes
	api.Get("/notifications", s.GetNotifications)
	api.Post("/notifications", s.CreateNotification)
	api.Put("/notifications", s.MarkNotificationsRead)
	api.Delete("/notifications", s.DeleteNotifications)

	// Stats routes
	api.Get("/stats", s.GetStats)
	api.Post("/stats", s.UpdateStats)

	// Seed routes (destructive, demo/dev)
	api.Post("/seed", middleware.RateLimit(
		s.redis, 2, time.Minute, "seed"), s.RunSeed)
	api.Get("/seed", s.GetSeedStatus)

	// Static event routes
	events := api.Group("/events")
	events.Get("/", s.GetEvents)
	events.Get("/:id", s.GetEvent)
	events.Post("/:id/ai-explain", middleware.RateLimit(
		s.redis, 10, time.Minute, "ai_explain"), s.ExplainEvent)

	// AI routes
	api.Post("/learn-more", middleware.RateLimit(
		s.redis, 10, time.Minute, "learn_more"), s.LearnMore)
	api.Post("/generate", middleware.RateLimit(
		s.redis, 10, time.Minute, "generate"), s.GenerateFeed)
	api.Get("/generate", s.VersionBlurb)

	// Upload route
	api.Post("/upload", middleware.RateLimit(
		s.redis, 20, time.Minute, "upload"), s.UploadImage)
}

// VersionBlurb reports that the API is alive, bilingual like the rest of
// the user-facing strings.
func (s *Server) VersionBlurb(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "ok",
		"message":     "Việt Sử Ký / VietChronicle API đang hoạt động - API is running",
		"version":     Version,
		"description": "Lịch Sử Việt Nam / Vietnamese History",
	})
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The database is required;
// Redis is reported but the service runs degraded without it.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  overallStatus,
		"version": Version,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}
