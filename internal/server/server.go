// Package server contains HTTP handlers for the admin console API.
package server

import (
	"context"
	"fmt"
	"time"

	"socialecho/internal/cache"
	"socialecho/internal/config"
	"socialecho/internal/database"
	"socialecho/internal/middleware"
	"socialecho/internal/repository"
	"socialecho/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	communityRepo repository.CommunityRepository
	contentRepo   repository.ContentRepository
	userRepo      repository.UserRepository
	adminRepo     repository.AdminRepository
	logRepo       repository.LogRepository
	prefRepo      repository.PreferenceRepository

	communityService  *service.CommunityService
	moderatorService  *service.ModeratorService
	cascade           *service.CascadeCoordinator
	adminViewService  *service.AdminViewService
	authService       *service.AuthService
	logService        *service.LogService
	preferenceService *service.PreferenceService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	communityRepo := repository.NewCommunityRepository(db)
	contentRepo := repository.NewContentRepository(db)
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	logRepo := repository.NewLogRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)

	prom := middleware.InitMetrics("socialecho-admin-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		communityRepo:  communityRepo,
		contentRepo:    contentRepo,
		userRepo:       userRepo,
		adminRepo:      adminRepo,
		logRepo:        logRepo,
		prefRepo:       prefRepo,
	}

	locks := service.NewCommunityLocks()
	server.communityService = service.NewCommunityService(communityRepo)
	server.moderatorService = service.NewModeratorService(communityRepo, userRepo, locks)
	server.cascade = service.NewCascadeCoordinator(communityRepo, contentRepo, locks, middleware.Logger)
	server.adminViewService = service.NewAdminViewService(communityRepo, contentRepo, userRepo, redisClient, middleware.Logger)
	server.authService = service.NewAuthService(adminRepo, logRepo, cfg)
	server.logService = service.NewLogService(logRepo)
	server.preferenceService = service.NewPreferenceService(prefRepo)

	middleware.InitMiddleware(cfg)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and admin ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
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
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "SocialEcho Admin Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Sign-in is the only unauthenticated admin route and must be registered
	// before the guarded group.
	api.Post("/admin/signin", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "admin_signin"), s.SignIn)

	admin := api.Group("/admin", middleware.AdminAuthRequired)

	// Community store
	admin.Get("/communities", s.GetCommunities)
	admin.Post("/community", s.CreateCommunity)
	admin.Get("/community/:communityId", s.GetCommunity)
	admin.Put("/community/:communityId", s.UpdateCommunity)
	admin.Delete("/community/:communityId", middleware.RateLimit(
		s.redis, 5, time.Minute, "delete_community"), s.DeleteCommunity)

	// Moderator assignment
	admin.Get("/moderators", s.GetModerators)
	admin.Patch("/add-moderators", s.AddModerator)
	admin.Patch("/remove-moderators", s.RemoveModerator)

	// Activity log
	admin.Get("/logs", s.GetLogs)
	admin.Delete("/logs", s.ClearLogs)

	// Service preferences
	admin.Get("/preferences", s.GetPreferences)
	admin.Put("/preferences", s.UpdatePreferences)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
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
		// The console works without Redis, degraded to uncached reads.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown gracefully releases server resources
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}

	middleware.Logger.InfoContext(ctx, "server shutdown complete")
	return nil
}
