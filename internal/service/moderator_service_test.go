package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"socialecho/internal/models"
)

func TestAddModeratorRequiresBothIDs(t *testing.T) {
	svc := NewModeratorService(noopCommunityRepo(), noopUserRepo(), NewCommunityLocks())

	for _, pair := range [][2]uint{{0, 5}, {5, 0}, {0, 0}} {
		_, err := svc.AddModerator(context.Background(), pair[0], pair[1])
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("(%d, %d): expected validation app error, got %#v", pair[0], pair[1], err)
		}
	}
}

func TestAddModeratorRejectsGeneralUser(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Role: models.RoleGeneral}, nil
	}

	svc := NewModeratorService(noopCommunityRepo(), userRepo, NewCommunityLocks())
	_, err := svc.AddModerator(context.Background(), 1, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestAddModeratorUnknownUser(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return nil, errNotFound()
	}

	svc := NewModeratorService(noopCommunityRepo(), userRepo, NewCommunityLocks())
	_, err := svc.AddModerator(context.Background(), 1, 99)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestAddModeratorUnknownCommunity(t *testing.T) {
	communityRepo := noopCommunityRepo()
	communityRepo.getByIDFn = func(context.Context, uint) (*models.Community, error) {
		return nil, errNotFound()
	}

	svc := NewModeratorService(communityRepo, noopUserRepo(), NewCommunityLocks())
	_, err := svc.AddModerator(context.Background(), 404, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestAddModeratorTargetsExactUserGiven(t *testing.T) {
	communityRepo := noopCommunityRepo()
	var gotCommunity, gotUser uint
	communityRepo.addModeratorFn = func(_ context.Context, communityID, userID uint) error {
		gotCommunity, gotUser = communityID, userID
		return nil
	}

	svc := NewModeratorService(communityRepo, noopUserRepo(), NewCommunityLocks())
	if _, err := svc.AddModerator(context.Background(), 11, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCommunity != 11 || gotUser != 42 {
		t.Fatalf("mutation hit (%d, %d), want (11, 42)", gotCommunity, gotUser)
	}
}

func TestRemoveModeratorAbsentUserSucceeds(t *testing.T) {
	svc := NewModeratorService(noopCommunityRepo(), noopUserRepo(), NewCommunityLocks())
	if _, err := svc.RemoveModerator(context.Background(), 1, 12345); err != nil {
		t.Fatalf("removing an absent moderator should be a no-op, got %v", err)
	}
}

func TestModeratorMutationsSerializePerCommunity(t *testing.T) {
	communityRepo := noopCommunityRepo()

	var inFlight, maxInFlight int32
	communityRepo.addModeratorFn = func(context.Context, uint, uint) error {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			cur := atomic.LoadInt32(&maxInFlight)
			if n <= cur || atomic.CompareAndSwapInt32(&maxInFlight, cur, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return nil
	}

	locks := NewCommunityLocks()
	svc := NewModeratorService(communityRepo, noopUserRepo(), locks)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			if _, err := svc.AddModerator(context.Background(), 1, userID); err != nil {
				t.Errorf("add moderator: %v", err)
			}
		}(uint(i + 1))
	}
	wg.Wait()

	if got := atomic.LoadInt32(&maxInFlight); got != 1 {
		t.Fatalf("mutations for one community overlapped, max in flight = %d", got)
	}
}

func TestModeratorMutationsIndependentAcrossCommunities(t *testing.T) {
	communityRepo := noopCommunityRepo()

	release := make(chan struct{})
	started := make(chan struct{})
	communityRepo.addModeratorFn = func(_ context.Context, communityID, _ uint) error {
		if communityID == 1 {
			close(started)
			<-release
		}
		return nil
	}

	svc := NewModeratorService(communityRepo, noopUserRepo(), NewCommunityLocks())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := svc.AddModerator(context.Background(), 1, 2); err != nil {
			t.Errorf("add moderator: %v", err)
		}
	}()

	<-started
	// With community 1 mid-mutation, community 2 must not block.
	done := make(chan struct{})
	go func() {
		if _, err := svc.AddModerator(context.Background(), 2, 3); err != nil {
			t.Errorf("add moderator: %v", err)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("mutation for a different community blocked")
	}
	close(release)
	wg.Wait()
}
