package models

import "time"

// LogLevel classifies a log entry for the admin activity view.
type LogLevel string

const (
	// LogLevelInfo is a routine event.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is a suspicious but non-fatal event.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is a failed operation.
	LogLevelError LogLevel = "error"
)

// LogEntry is a row in the admin activity log.
type LogEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	Context   string    `gorm:"size:255" json:"context,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"size:50" json:"type,omitempty"`
	Level     LogLevel  `gorm:"type:varchar(10);not null;default:'info'" json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (LogEntry) TableName() string {
	return "logs"
}
