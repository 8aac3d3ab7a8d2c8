package repository

import (
	"context"

	"socialecho/internal/models"

	"gorm.io/gorm"
)

// LogRepository defines interface for activity log persistence.
type LogRepository interface {
	Create(ctx context.Context, entry *models.LogEntry) error
	List(ctx context.Context, limit int) ([]*models.LogEntry, error)
	DeleteAll(ctx context.Context) error
}

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns the most recent entries first.
func (r *logRepository) List(ctx context.Context, limit int) ([]*models.LogEntry, error) {
	var entries []*models.LogEntry
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&entries).Error
	return entries, err
}

func (r *logRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM logs").Error
}
