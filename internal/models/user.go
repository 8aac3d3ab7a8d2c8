package models

import "time"

// UserRole classifies a user in the directory.
type UserRole string

const (
	// RoleGeneral is a regular platform user.
	RoleGeneral UserRole = "general"
	// RoleModerator marks a user as eligible for moderator assignment.
	RoleModerator UserRole = "moderator"
)

// User is a directory entry. The admin core reads users only to resolve
// moderator candidates; their ids are treated opaquely everywhere else.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Avatar    string    `gorm:"size:512" json:"avatar,omitempty"`
	Role      UserRole  `gorm:"type:varchar(20);not null;default:'general'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
