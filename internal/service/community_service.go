package service

import (
	"context"
	"strings"

	"socialecho/internal/models"
	"socialecho/internal/repository"
	"socialecho/internal/validation"
)

// CreateCommunityInput carries the fields for a new community.
type CreateCommunityInput struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Banner      string        `json:"banner"`
	Category    string        `json:"category"`
	Rules       []models.Rule `json:"rules"`
}

// CommunityService provides community store business logic. Metadata writes
// are not serialized per community; conflicting field updates resolve last
// write wins and the set counts are never written through this path.
type CommunityService struct {
	communityRepo repository.CommunityRepository
}

// NewCommunityService returns a new CommunityService.
func NewCommunityService(communityRepo repository.CommunityRepository) *CommunityService {
	return &CommunityService{communityRepo: communityRepo}
}

// CreateCommunity validates the input, enforces name uniqueness, and stores
// the community with empty member and moderator sets.
func (s *CommunityService) CreateCommunity(ctx context.Context, input CreateCommunityInput) (*models.Community, error) {
	name := strings.TrimSpace(input.Name)
	if err := validation.ValidateCommunityName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateCommunityDescription(input.Description); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	// Uniqueness is exact match on the stored name.
	if _, err := s.communityRepo.GetByName(ctx, name); err == nil {
		return nil, models.NewValidationError("Community with this name already exists")
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	community := &models.Community{
		Name:        name,
		Description: input.Description,
		Banner:      input.Banner,
		Category:    input.Category,
		Rules:       input.Rules,
	}
	if err := s.communityRepo.Create(ctx, community); err != nil {
		return nil, err
	}
	return community, nil
}

// GetCommunity returns a community by ID.
func (s *CommunityService) GetCommunity(ctx context.Context, id uint) (*models.Community, error) {
	community, err := s.communityRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Community", id)
		}
		return nil, err
	}
	return community, nil
}

// ListCommunities returns all communities in creation order.
func (s *CommunityService) ListCommunities(ctx context.Context) ([]*models.Community, error) {
	return s.communityRepo.List(ctx)
}

// UpdateCommunity applies a partial update to the community's metadata fields.
// Absent fields are left untouched; concurrent updates of the same field
// resolve last write wins. The member and moderator sets and their counts are
// never touched by this path.
func (s *CommunityService) UpdateCommunity(ctx context.Context, id uint, patch models.CommunityPatch) (*models.Community, error) {
	existing, err := s.communityRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Community", id)
		}
		return nil, err
	}

	fields := map[string]any{}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if err := validation.ValidateCommunityName(name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if name != existing.Name {
			if _, err := s.communityRepo.GetByName(ctx, name); err == nil {
				return nil, models.NewValidationError("Community with this name already exists")
			} else if !repository.IsNotFound(err) {
				return nil, err
			}
		}
		fields["name"] = name
	}
	if patch.Description != nil {
		if err := validation.ValidateCommunityDescription(*patch.Description); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["description"] = *patch.Description
	}
	if patch.Banner != nil {
		fields["banner"] = *patch.Banner
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}

	if len(fields) > 0 {
		if err := s.communityRepo.UpdateFields(ctx, id, fields); err != nil {
			if repository.IsNotFound(err) {
				return nil, models.NewNotFoundError("Community", id)
			}
			return nil, err
		}
	}

	return s.GetCommunity(ctx, id)
}
