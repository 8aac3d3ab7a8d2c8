package repository

import (
	"context"

	"socialecho/internal/models"

	"gorm.io/gorm"
)

// ContentRepository defines interface for community-scoped content operations.
type ContentRepository interface {
	DeleteAllByCommunity(ctx context.Context, communityID uint) error
	CountPostsByCommunity(ctx context.Context, communityID uint) (int64, error)
	CreatePost(ctx context.Context, post *models.Post) error
	CreateComment(ctx context.Context, comment *models.Comment) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// DeleteAllByCommunity removes every comment and post belonging to the
// community in a single transaction. Comments go first so a failure
// mid-purge never strands a comment whose post is gone.
func (r *contentRepository) DeleteAllByCommunity(ctx context.Context, communityID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM comments WHERE post_id IN (SELECT id FROM posts WHERE community_id = ?)",
			communityID,
		).Error; err != nil {
			return err
		}
		return tx.Where("community_id = ?", communityID).Delete(&models.Post{}).Error
	})
}

func (r *contentRepository) CountPostsByCommunity(ctx context.Context, communityID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("community_id = ?", communityID).
		Count(&count).Error
	return count, err
}

func (r *contentRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *contentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
