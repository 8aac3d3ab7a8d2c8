package service

import (
	"context"

	"socialecho/internal/models"

	"gorm.io/gorm"
)

func errNotFound() error { return gorm.ErrRecordNotFound }

type communityRepoStub struct {
	createFn          func(context.Context, *models.Community) error
	getByIDFn         func(context.Context, uint) (*models.Community, error)
	getByNameFn       func(context.Context, string) (*models.Community, error)
	listFn            func(context.Context) ([]*models.Community, error)
	updateFieldsFn    func(context.Context, uint, map[string]any) error
	deleteFn          func(context.Context, uint) error
	addModeratorFn    func(context.Context, uint, uint) error
	removeModeratorFn func(context.Context, uint, uint) error
	listModeratorsFn  func(context.Context, uint) ([]*models.User, error)
	countMembersFn    func(context.Context, uint) (int64, error)
	countModeratorsFn func(context.Context, uint) (int64, error)
	clearLinksFn      func(context.Context, uint) error
}

func (s *communityRepoStub) Create(ctx context.Context, c *models.Community) error {
	return s.createFn(ctx, c)
}
func (s *communityRepoStub) GetByID(ctx context.Context, id uint) (*models.Community, error) {
	return s.getByIDFn(ctx, id)
}
func (s *communityRepoStub) GetByName(ctx context.Context, name string) (*models.Community, error) {
	return s.getByNameFn(ctx, name)
}
func (s *communityRepoStub) List(ctx context.Context) ([]*models.Community, error) {
	return s.listFn(ctx)
}
func (s *communityRepoStub) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return s.updateFieldsFn(ctx, id, fields)
}
func (s *communityRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *communityRepoStub) AddModerator(ctx context.Context, communityID, userID uint) error {
	return s.addModeratorFn(ctx, communityID, userID)
}
func (s *communityRepoStub) RemoveModerator(ctx context.Context, communityID, userID uint) error {
	return s.removeModeratorFn(ctx, communityID, userID)
}
func (s *communityRepoStub) ListModerators(ctx context.Context, communityID uint) ([]*models.User, error) {
	return s.listModeratorsFn(ctx, communityID)
}
func (s *communityRepoStub) CountMembers(ctx context.Context, communityID uint) (int64, error) {
	return s.countMembersFn(ctx, communityID)
}
func (s *communityRepoStub) CountModerators(ctx context.Context, communityID uint) (int64, error) {
	return s.countModeratorsFn(ctx, communityID)
}
func (s *communityRepoStub) ClearLinks(ctx context.Context, communityID uint) error {
	return s.clearLinksFn(ctx, communityID)
}

func noopCommunityRepo() *communityRepoStub {
	return &communityRepoStub{
		createFn:  func(context.Context, *models.Community) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Community, error) { return &models.Community{ID: id}, nil },
		getByNameFn: func(context.Context, string) (*models.Community, error) {
			return nil, errNotFound()
		},
		listFn:            func(context.Context) ([]*models.Community, error) { return nil, nil },
		updateFieldsFn:    func(context.Context, uint, map[string]any) error { return nil },
		deleteFn:          func(context.Context, uint) error { return nil },
		addModeratorFn:    func(context.Context, uint, uint) error { return nil },
		removeModeratorFn: func(context.Context, uint, uint) error { return nil },
		listModeratorsFn:  func(context.Context, uint) ([]*models.User, error) { return nil, nil },
		countMembersFn:    func(context.Context, uint) (int64, error) { return 0, nil },
		countModeratorsFn: func(context.Context, uint) (int64, error) { return 0, nil },
		clearLinksFn:      func(context.Context, uint) error { return nil },
	}
}

type contentRepoStub struct {
	deleteAllFn     func(context.Context, uint) error
	countPostsFn    func(context.Context, uint) (int64, error)
	createPostFn    func(context.Context, *models.Post) error
	createCommentFn func(context.Context, *models.Comment) error
}

func (s *contentRepoStub) DeleteAllByCommunity(ctx context.Context, communityID uint) error {
	return s.deleteAllFn(ctx, communityID)
}
func (s *contentRepoStub) CountPostsByCommunity(ctx context.Context, communityID uint) (int64, error) {
	return s.countPostsFn(ctx, communityID)
}
func (s *contentRepoStub) CreatePost(ctx context.Context, p *models.Post) error {
	return s.createPostFn(ctx, p)
}
func (s *contentRepoStub) CreateComment(ctx context.Context, c *models.Comment) error {
	return s.createCommentFn(ctx, c)
}

func noopContentRepo() *contentRepoStub {
	return &contentRepoStub{
		deleteAllFn:     func(context.Context, uint) error { return nil },
		countPostsFn:    func(context.Context, uint) (int64, error) { return 0, nil },
		createPostFn:    func(context.Context, *models.Post) error { return nil },
		createCommentFn: func(context.Context, *models.Comment) error { return nil },
	}
}

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	candidatesFn func(context.Context) ([]*models.User, error)
	createFn     func(context.Context, *models.User) error
	addMemberFn  func(context.Context, uint, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) ListModeratorCandidates(ctx context.Context) ([]*models.User, error) {
	return s.candidatesFn(ctx)
}
func (s *userRepoStub) Create(ctx context.Context, u *models.User) error {
	return s.createFn(ctx, u)
}
func (s *userRepoStub) AddMember(ctx context.Context, communityID, userID uint) error {
	return s.addMemberFn(ctx, communityID, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleModerator}, nil
		},
		candidatesFn: func(context.Context) ([]*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		addMemberFn:  func(context.Context, uint, uint) error { return nil },
	}
}
