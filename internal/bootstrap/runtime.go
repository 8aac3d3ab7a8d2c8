// Package bootstrap wires runtime dependencies for the server and tools.
package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"socialecho/internal/cache"
	"socialecho/internal/config"
	"socialecho/internal/database"
	"socialecho/internal/models"
	"socialecho/internal/validation"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SkipRedis bool
}

// InitRuntime connects to the database and Redis and performs the optional
// development admin bootstrap.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	var r *redis.Client
	if !opts.SkipRedis {
		// May leave a nil client when Redis is unreachable; callers degrade
		// to uncached reads.
		cache.InitRedis(cfg.RedisURL)
		r = cache.GetClient()
	}

	if err := ensureDevAdmin(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap development admin: %w", err)
	}

	return db, r, nil
}

// ensureDevAdmin creates or refreshes the development admin account. It only
// runs in the development environment with the bootstrap flag set.
func ensureDevAdmin(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") || !cfg.DevBootstrapAdmin {
		return nil
	}

	username := strings.TrimSpace(cfg.DevAdminUsername)
	if username == "" {
		username = "admin"
	}
	if err := validation.ValidateAdminUsername(username); err != nil {
		return fmt.Errorf("invalid DEV_ADMIN_USERNAME: %w", err)
	}

	password := cfg.DevAdminPassword
	if password == "" {
		return fmt.Errorf("DEV_ADMIN_PASSWORD must be set when DEV_BOOTSTRAP_ADMIN is enabled")
	}
	if err := validation.ValidateAdminPassword(password); err != nil {
		return fmt.Errorf("invalid DEV_ADMIN_PASSWORD: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var admin models.Admin
		findErr := tx.Where("username = ?", username).First(&admin).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			admin = models.Admin{Username: username, Password: string(hashed)}
			return tx.Create(&admin).Error
		case findErr != nil:
			return findErr
		default:
			return tx.Model(&models.Admin{}).Where("id = ?", admin.ID).
				Update("password", string(hashed)).Error
		}
	})
}
