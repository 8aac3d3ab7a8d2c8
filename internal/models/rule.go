package models

import "time"

// Rule is an independent community rule entity referenced by communities.
type Rule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Rule        string    `gorm:"size:200;not null" json:"rule"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Rule) TableName() string {
	return "rules"
}
