package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"socialecho/internal/models"
	"socialecho/internal/observability"
	"socialecho/internal/repository"
)

// CascadeState is the progress marker of a community deletion cascade.
type CascadeState string

const (
	CascadeRequested      CascadeState = "requested"
	CascadeContentPurging CascadeState = "content_purging"
	CascadeLinksCleared   CascadeState = "links_cleared"
	CascadeDeleted        CascadeState = "deleted"
	CascadeAborted        CascadeState = "aborted"
)

// cascadeTimeout bounds a single deletion cascade. Once started, a cascade
// runs to a terminal state on its own clock, detached from the caller.
const cascadeTimeout = 30 * time.Second

// CascadeCoordinator drives community deletion through its ordered steps:
// purge content, clear membership and moderator links, delete the record.
// A failure at any step stops the cascade and leaves the community record
// intact so the operation can be retried.
type CascadeCoordinator struct {
	communityRepo repository.CommunityRepository
	contentRepo   repository.ContentRepository
	locks         *CommunityLocks
	logger        *slog.Logger
}

// NewCascadeCoordinator returns a new CascadeCoordinator.
func NewCascadeCoordinator(communityRepo repository.CommunityRepository, contentRepo repository.ContentRepository, locks *CommunityLocks, logger *slog.Logger) *CascadeCoordinator {
	return &CascadeCoordinator{
		communityRepo: communityRepo,
		contentRepo:   contentRepo,
		locks:         locks,
		logger:        logger,
	}
}

// DeleteCommunity runs the deletion cascade for the community and returns its
// terminal state. On failure the returned error is always the single opaque
// deletion error; which step failed is logged, not exposed.
func (c *CascadeCoordinator) DeleteCommunity(ctx context.Context, communityID uint) (CascadeState, error) {
	state := CascadeRequested

	unlock := c.locks.Lock(communityID)
	defer unlock()

	if _, err := c.communityRepo.GetByID(ctx, communityID); err != nil {
		if repository.IsNotFound(err) {
			return CascadeAborted, models.NewNotFoundError("Community", communityID)
		}
		return CascadeAborted, err
	}

	// Past this point the cascade must reach a terminal state even if the
	// caller goes away mid-flight.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cascadeTimeout)
	defer cancel()

	state = CascadeContentPurging
	if err := c.contentRepo.DeleteAllByCommunity(ctx, communityID); err != nil {
		return c.abort(communityID, stepPurgeContent, err)
	}

	if err := c.communityRepo.ClearLinks(ctx, communityID); err != nil {
		return c.abort(communityID, stepClearLinks, err)
	}
	state = CascadeLinksCleared

	if err := c.communityRepo.Delete(ctx, communityID); err != nil {
		return c.abort(communityID, stepDeleteRecord, err)
	}
	state = CascadeDeleted

	observability.CascadeOutcomes.WithLabelValues(string(state)).Inc()
	c.logger.Info("community deleted",
		slog.Uint64("community_id", uint64(communityID)))
	return state, nil
}

// Step names for operator logs. These identify the step that failed, which
// the state marker cannot: the machine stays in the previous state until a
// step completes.
const (
	stepPurgeContent = "purge_content"
	stepClearLinks   = "clear_links"
	stepDeleteRecord = "delete_record"
)

func (c *CascadeCoordinator) abort(communityID uint, step string, err error) (CascadeState, error) {
	observability.CascadeOutcomes.WithLabelValues(string(CascadeAborted)).Inc()
	c.logger.Error("community deletion aborted",
		slog.Uint64("community_id", uint64(communityID)),
		slog.String("failed_at", step),
		slog.String("error", err.Error()))
	return CascadeAborted, models.NewDeletionFailedError(fmt.Errorf("step %s: %w", step, err))
}
