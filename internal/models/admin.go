package models

import "time"

// Admin is a platform administrator account. Passwords are stored as bcrypt
// hashes; validation of the plaintext policy happens before hashing.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:20;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Admin) TableName() string {
	return "admins"
}
