// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"socialecho/internal/models"

	"gorm.io/gorm"
)

// CommunityRepository defines interface for community store operations.
//
// The repository owns the members/moderators join tables and the denormalized
// count columns. Every mutation of a set recomputes the matching count from
// the join table inside the same transaction, so the two can never drift.
type CommunityRepository interface {
	Create(ctx context.Context, community *models.Community) error
	GetByID(ctx context.Context, id uint) (*models.Community, error)
	GetByName(ctx context.Context, name string) (*models.Community, error)
	List(ctx context.Context) ([]*models.Community, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error

	AddModerator(ctx context.Context, communityID, userID uint) error
	RemoveModerator(ctx context.Context, communityID, userID uint) error
	ListModerators(ctx context.Context, communityID uint) ([]*models.User, error)
	CountMembers(ctx context.Context, communityID uint) (int64, error)
	CountModerators(ctx context.Context, communityID uint) (int64, error)
	ClearLinks(ctx context.Context, communityID uint) error
}

type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(ctx context.Context, community *models.Community) error {
	return r.db.WithContext(ctx).Create(community).Error
}

func (r *communityRepository) GetByID(ctx context.Context, id uint) (*models.Community, error) {
	var community models.Community
	err := r.db.WithContext(ctx).
		Preload("Rules").
		First(&community, id).Error
	if err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *communityRepository) GetByName(ctx context.Context, name string) (*models.Community, error) {
	var community models.Community
	// Exact match; no case normalization.
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&community).Error
	if err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *communityRepository) List(ctx context.Context) ([]*models.Community, error) {
	var communities []*models.Community
	// Creation order is the stable listing order.
	err := r.db.WithContext(ctx).Order("id ASC").Find(&communities).Error
	return communities, err
}

func (r *communityRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.Community{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *communityRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Community{}, id).Error
}

// AddModerator inserts the (community, user) pair into the moderator set and
// refreshes moderator_count from the join table in one transaction. Adding a
// pair that is already present is a no-op.
func (r *communityRepository) AddModerator(ctx context.Context, communityID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"INSERT INTO community_moderators (community_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			communityID, userID,
		).Error; err != nil {
			return err
		}
		return syncModeratorCount(tx, communityID)
	})
}

// RemoveModerator deletes the (community, user) pair and refreshes
// moderator_count in one transaction. Removing an absent pair is a no-op.
func (r *communityRepository) RemoveModerator(ctx context.Context, communityID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM community_moderators WHERE community_id = ? AND user_id = ?",
			communityID, userID,
		).Error; err != nil {
			return err
		}
		return syncModeratorCount(tx, communityID)
	})
}

func syncModeratorCount(tx *gorm.DB, communityID uint) error {
	var count int64
	if err := tx.Table("community_moderators").
		Where("community_id = ?", communityID).
		Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&models.Community{}).
		Where("id = ?", communityID).
		Update("moderator_count", count).Error
}

func (r *communityRepository) ListModerators(ctx context.Context, communityID uint) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN community_moderators cm ON cm.user_id = users.id").
		Where("cm.community_id = ?", communityID).
		Order("users.id ASC").
		Find(&users).Error
	return users, err
}

func (r *communityRepository) CountMembers(ctx context.Context, communityID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("community_members").
		Where("community_id = ?", communityID).
		Count(&count).Error
	return count, err
}

func (r *communityRepository) CountModerators(ctx context.Context, communityID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("community_moderators").
		Where("community_id = ?", communityID).
		Count(&count).Error
	return count, err
}

// ClearLinks empties the membership and moderator sets and zeroes both counts
// as a single logical unit.
func (r *communityRepository) ClearLinks(ctx context.Context, communityID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM community_members WHERE community_id = ?", communityID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM community_moderators WHERE community_id = ?", communityID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Community{}).
			Where("id = ?", communityID).
			Updates(map[string]any{"member_count": 0, "moderator_count": 0}).Error
	})
}

// IsNotFound reports whether err represents a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
