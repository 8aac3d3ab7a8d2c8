package service

import (
	"context"

	"socialecho/internal/models"
	"socialecho/internal/repository"
)

// PreferenceInput carries the updatable service preference fields.
type PreferenceInput struct {
	UsePerspectiveAPI                *bool   `json:"use_perspective_api"`
	CategoryFilteringServiceProvider *string `json:"category_filtering_service_provider"`
	CategoryFilteringRequestTimeout  *int    `json:"category_filtering_request_timeout"`
}

// PreferenceService manages the singleton service preference row.
type PreferenceService struct {
	prefRepo repository.PreferenceRepository
}

// NewPreferenceService returns a new PreferenceService.
func NewPreferenceService(prefRepo repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefRepo: prefRepo}
}

// Get returns the current preferences, creating defaults on first read.
func (s *PreferenceService) Get(ctx context.Context) (*models.ServicePreference, error) {
	return s.prefRepo.Get(ctx)
}

// Update applies the provided fields over the stored preferences. Absent
// fields keep their current value.
func (s *PreferenceService) Update(ctx context.Context, input PreferenceInput) (*models.ServicePreference, error) {
	pref, err := s.prefRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.UsePerspectiveAPI != nil {
		pref.UsePerspectiveAPI = *input.UsePerspectiveAPI
	}
	if input.CategoryFilteringServiceProvider != nil {
		pref.CategoryFilteringServiceProvider = *input.CategoryFilteringServiceProvider
	}
	if input.CategoryFilteringRequestTimeout != nil {
		if *input.CategoryFilteringRequestTimeout <= 0 {
			return nil, models.NewValidationError("Request timeout must be a positive number of milliseconds")
		}
		pref.CategoryFilteringRequestTimeout = *input.CategoryFilteringRequestTimeout
	}

	if err := s.prefRepo.Update(ctx, pref); err != nil {
		return nil, err
	}
	return pref, nil
}
