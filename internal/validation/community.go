package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxCommunityNameLen        = 100
	maxCommunityDescriptionLen = 2000
)

var adminUsernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]{3,20}$`)

// ValidateCommunityName checks that a community name is non-empty after
// trimming and within the length cap. Uniqueness is enforced separately
// against the store.
func ValidateCommunityName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxCommunityNameLen {
		return fmt.Errorf("name must be at most %d characters", maxCommunityNameLen)
	}
	return nil
}

// ValidateCommunityDescription checks that a description is non-empty after
// trimming and within the length cap.
func ValidateCommunityDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	if len(description) > maxCommunityDescriptionLen {
		return fmt.Errorf("description must be at most %d characters", maxCommunityDescriptionLen)
	}
	return nil
}

// ValidateAdminUsername enforces the admin account username policy.
func ValidateAdminUsername(username string) error {
	if !adminUsernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-20 characters and contain only letters and numbers")
	}
	return nil
}

// ValidateAdminPassword enforces the admin account password policy.
func ValidateAdminPassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return fmt.Errorf("password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	return nil
}
