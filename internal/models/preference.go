package models

import "time"

// ServicePreference is the singleton row of site-wide service toggles managed
// from the admin console. API keys are stored and passed through opaquely.
type ServicePreference struct {
	ID                               uint      `gorm:"primaryKey" json:"id"`
	UsePerspectiveAPI                bool      `gorm:"not null;default:false" json:"use_perspective_api"`
	CategoryFilteringServiceProvider string    `gorm:"size:100" json:"category_filtering_service_provider,omitempty"`
	CategoryFilteringRequestTimeout  int       `gorm:"not null;default:3000" json:"category_filtering_request_timeout"`
	UpdatedAt                        time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (ServicePreference) TableName() string {
	return "service_preferences"
}

// DefaultServicePreference returns the settings used when no row exists yet.
func DefaultServicePreference() ServicePreference {
	return ServicePreference{
		ID:                              1,
		UsePerspectiveAPI:               false,
		CategoryFilteringRequestTimeout: 3000,
	}
}
