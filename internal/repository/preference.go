package repository

import (
	"context"

	"socialecho/internal/models"

	"gorm.io/gorm"
)

// PreferenceRepository defines interface for service preference storage.
// Preferences are a singleton row created on first read.
type PreferenceRepository interface {
	Get(ctx context.Context) (*models.ServicePreference, error)
	Update(ctx context.Context, pref *models.ServicePreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new PreferenceRepository
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Get(ctx context.Context) (*models.ServicePreference, error) {
	pref := models.ServicePreference{ID: 1}
	err := r.db.WithContext(ctx).
		Where(models.ServicePreference{ID: 1}).
		Attrs(models.DefaultServicePreference()).
		FirstOrCreate(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) Update(ctx context.Context, pref *models.ServicePreference) error {
	pref.ID = 1
	return r.db.WithContext(ctx).Save(pref).Error
}
