package repository

import (
	"context"

	"socialecho/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines interface for user directory lookups.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	ListModeratorCandidates(ctx context.Context) ([]*models.User, error)
	Create(ctx context.Context, user *models.User) error
	AddMember(ctx context.Context, communityID, userID uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListModeratorCandidates returns every user holding the moderator role,
// regardless of which communities they already moderate.
func (r *userRepository) ListModeratorCandidates(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleModerator).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// AddMember inserts the user into the community member set and refreshes
// member_count in the same transaction.
func (r *userRepository) AddMember(ctx context.Context, communityID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"INSERT INTO community_members (community_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			communityID, userID,
		).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Table("community_members").
			Where("community_id = ?", communityID).
			Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&models.Community{}).
			Where("id = ?", communityID).
			Update("member_count", count).Error
	})
}
