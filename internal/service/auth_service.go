package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"socialecho/internal/config"
	"socialecho/internal/models"
	"socialecho/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// adminTokenTTL is the lifetime of an admin session token.
const adminTokenTTL = 6 * time.Hour

// AuthService handles admin sign-in and token issuance.
type AuthService struct {
	adminRepo repository.AdminRepository
	logRepo   repository.LogRepository
	cfg       *config.Config
}

// NewAuthService returns a new AuthService.
func NewAuthService(adminRepo repository.AdminRepository, logRepo repository.LogRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		logRepo:   logRepo,
		cfg:       cfg,
	}
}

// SignIn verifies the credentials and returns a signed token plus the admin
// record. Every attempt, successful or not, is written to the activity log.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (string, *models.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if repository.IsNotFound(err) {
			s.logAttempt(ctx, username, "sign in rejected: unknown username", models.LogLevelError)
			return "", nil, models.NewValidationError("Invalid credentials")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		s.logAttempt(ctx, username, "sign in rejected: wrong password", models.LogLevelError)
		return "", nil, models.NewValidationError("Invalid credentials")
	}

	token, err := s.generateToken(admin.ID)
	if err != nil {
		return "", nil, err
	}

	s.logAttempt(ctx, username, "signed in", models.LogLevelInfo)
	return token, admin, nil
}

// CreateAdmin validates and stores a new admin account with a hashed password.
func (s *AuthService) CreateAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{Username: username, Password: string(hash)}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AuthService) generateToken(adminID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(adminID), 10),
		"exp": now.Add(adminTokenTTL).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

func (s *AuthService) logAttempt(ctx context.Context, username, message string, level models.LogLevel) {
	// Log writes are best effort and never fail the sign-in path.
	_ = s.logRepo.Create(ctx, &models.LogEntry{
		Email:   username,
		Context: "admin sign in",
		Message: message,
		Type:    "sign in",
		Level:   level,
	})
}
