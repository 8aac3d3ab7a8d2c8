package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"socialecho/internal/config"
	"socialecho/internal/models"
	"socialecho/internal/repository"
	"socialecho/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Community{},
		&models.Rule{},
		&models.Post{},
		&models.Comment{},
		&models.LogEntry{},
		&models.ServicePreference{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// newTestServer wires repositories and services onto a sqlite store without
// touching Prometheus or Redis.
func newTestServer(t *testing.T, db *gorm.DB) *Server {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: "test-secret-key-at-least-32-chars!!",
		Env:       "test",
	}

	communityRepo := repository.NewCommunityRepository(db)
	contentRepo := repository.NewContentRepository(db)
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	logRepo := repository.NewLogRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	locks := service.NewCommunityLocks()

	s := &Server{
		config:        cfg,
		db:            db,
		communityRepo: communityRepo,
		contentRepo:   contentRepo,
		userRepo:      userRepo,
		adminRepo:     adminRepo,
		logRepo:       logRepo,
		prefRepo:      prefRepo,
	}
	s.communityService = service.NewCommunityService(communityRepo)
	s.moderatorService = service.NewModeratorService(communityRepo, userRepo, locks)
	s.cascade = service.NewCascadeCoordinator(communityRepo, contentRepo, locks, logger)
	s.adminViewService = service.NewAdminViewService(communityRepo, contentRepo, userRepo, nil, logger)
	s.authService = service.NewAuthService(adminRepo, logRepo, cfg)
	s.logService = service.NewLogService(logRepo)
	s.preferenceService = service.NewPreferenceService(prefRepo)

	return s
}

// newTestApp returns a Fiber app with an authenticated admin already in
// request locals, mirroring what the auth middleware provides.
func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("adminID", uint(1))
		return c.Next()
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, target, strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
