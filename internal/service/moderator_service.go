package service

import (
	"context"

	"socialecho/internal/models"
	"socialecho/internal/observability"
	"socialecho/internal/repository"
)

// ModeratorService manages the moderator set of a community.
//
// Every mutation names both the community and the user explicitly. There is
// no notion of a currently selected user carried across calls; a caller that
// wants to operate on a user must say which one, every time.
type ModeratorService struct {
	communityRepo repository.CommunityRepository
	userRepo      repository.UserRepository
	locks         *CommunityLocks
}

// NewModeratorService returns a new ModeratorService.
func NewModeratorService(communityRepo repository.CommunityRepository, userRepo repository.UserRepository, locks *CommunityLocks) *ModeratorService {
	return &ModeratorService{
		communityRepo: communityRepo,
		userRepo:      userRepo,
		locks:         locks,
	}
}

// AddModerator adds userID to the community's moderator set. The user must
// exist and hold the moderator role. Adding a user who is already a moderator
// succeeds without changing anything.
func (s *ModeratorService) AddModerator(ctx context.Context, communityID, userID uint) (*models.Community, error) {
	if communityID == 0 || userID == 0 {
		observability.ModeratorMutations.WithLabelValues("add", "rejected").Inc()
		return nil, models.NewValidationError("Community ID and user ID are required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			observability.ModeratorMutations.WithLabelValues("add", "rejected").Inc()
			return nil, models.NewNotFoundError("User", userID)
		}
		return nil, err
	}
	if user.Role != models.RoleModerator {
		observability.ModeratorMutations.WithLabelValues("add", "rejected").Inc()
		return nil, models.NewValidationError("User is not eligible to moderate")
	}

	unlock := s.locks.Lock(communityID)
	defer unlock()

	if _, err := s.communityRepo.GetByID(ctx, communityID); err != nil {
		if repository.IsNotFound(err) {
			observability.ModeratorMutations.WithLabelValues("add", "rejected").Inc()
			return nil, models.NewNotFoundError("Community", communityID)
		}
		return nil, err
	}

	if err := s.communityRepo.AddModerator(ctx, communityID, userID); err != nil {
		observability.ModeratorMutations.WithLabelValues("add", "error").Inc()
		return nil, err
	}
	observability.ModeratorMutations.WithLabelValues("add", "ok").Inc()

	return s.communityRepo.GetByID(ctx, communityID)
}

// RemoveModerator removes userID from the community's moderator set. Removing
// a user who is not in the set succeeds without changing anything.
func (s *ModeratorService) RemoveModerator(ctx context.Context, communityID, userID uint) (*models.Community, error) {
	if communityID == 0 || userID == 0 {
		observability.ModeratorMutations.WithLabelValues("remove", "rejected").Inc()
		return nil, models.NewValidationError("Community ID and user ID are required")
	}

	unlock := s.locks.Lock(communityID)
	defer unlock()

	if _, err := s.communityRepo.GetByID(ctx, communityID); err != nil {
		if repository.IsNotFound(err) {
			observability.ModeratorMutations.WithLabelValues("remove", "rejected").Inc()
			return nil, models.NewNotFoundError("Community", communityID)
		}
		return nil, err
	}

	if err := s.communityRepo.RemoveModerator(ctx, communityID, userID); err != nil {
		observability.ModeratorMutations.WithLabelValues("remove", "error").Inc()
		return nil, err
	}
	observability.ModeratorMutations.WithLabelValues("remove", "ok").Inc()

	return s.communityRepo.GetByID(ctx, communityID)
}
