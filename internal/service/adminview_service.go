package service

import (
	"context"
	"log/slog"
	"time"

	"socialecho/internal/cache"
	"socialecho/internal/models"
	"socialecho/internal/repository"

	"github.com/redis/go-redis/v9"
)

// eligibleModeratorsCacheKey holds the short-lived directory of users with
// the moderator role. Community views are never served from cache.
const (
	eligibleModeratorsCacheKey = "admin:eligible_moderators"
	eligibleModeratorsCacheTTL = 60 * time.Second
)

// AdminCommunityView is a community as rendered on the admin console:
// the record, its moderator roster, and counts recomputed from the
// association sets at read time rather than read from the stored columns.
type AdminCommunityView struct {
	models.Community
	Moderators []*models.User `json:"moderators"`
	PostCount  int64          `json:"post_count"`
}

// AdminViewService assembles read views for the admin console.
type AdminViewService struct {
	communityRepo repository.CommunityRepository
	contentRepo   repository.ContentRepository
	userRepo      repository.UserRepository
	rdb           *redis.Client
	logger        *slog.Logger
}

// NewAdminViewService returns a new AdminViewService.
func NewAdminViewService(communityRepo repository.CommunityRepository, contentRepo repository.ContentRepository, userRepo repository.UserRepository, rdb *redis.Client, logger *slog.Logger) *AdminViewService {
	return &AdminViewService{
		communityRepo: communityRepo,
		contentRepo:   contentRepo,
		userRepo:      userRepo,
		rdb:           rdb,
		logger:        logger,
	}
}

// GetAdminView returns the admin console view of one community. Counts are
// recomputed live from the sets; a mismatch against the stored columns is
// logged as drift and the live values win.
func (s *AdminViewService) GetAdminView(ctx context.Context, communityID uint) (*AdminCommunityView, error) {
	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Community", communityID)
		}
		return nil, err
	}

	memberCount, err := s.communityRepo.CountMembers(ctx, communityID)
	if err != nil {
		return nil, err
	}
	moderatorCount, err := s.communityRepo.CountModerators(ctx, communityID)
	if err != nil {
		return nil, err
	}
	moderators, err := s.communityRepo.ListModerators(ctx, communityID)
	if err != nil {
		return nil, err
	}
	postCount, err := s.contentRepo.CountPostsByCommunity(ctx, communityID)
	if err != nil {
		return nil, err
	}

	if int64(community.MemberCount) != memberCount || int64(community.ModeratorCount) != moderatorCount {
		s.logger.Warn("community count drift detected",
			slog.Uint64("community_id", uint64(communityID)),
			slog.Int("stored_members", community.MemberCount),
			slog.Int64("live_members", memberCount),
			slog.Int("stored_moderators", community.ModeratorCount),
			slog.Int64("live_moderators", moderatorCount))
	}
	community.MemberCount = int(memberCount)
	community.ModeratorCount = int(moderatorCount)

	return &AdminCommunityView{
		Community:  *community,
		Moderators: moderators,
		PostCount:  postCount,
	}, nil
}

// ListEligibleModerators returns every user holding the moderator role, from
// a short-lived cache when available. The list is a directory lookup and may
// lag role changes by up to the cache TTL.
func (s *AdminViewService) ListEligibleModerators(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := cache.CacheAside(ctx, s.rdb, eligibleModeratorsCacheKey, &users, eligibleModeratorsCacheTTL, func() error {
		var ferr error
		users, ferr = s.userRepo.ListModeratorCandidates(ctx)
		return ferr
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
