package server

import (
	"fmt"
	"net/http"
	"testing"

	"socialecho/internal/models"
)

func seedModeratorFixture(t *testing.T, s *Server) (*models.Community, *models.User, *models.User) {
	t.Helper()

	community := models.Community{Name: "Gardening"}
	if err := s.db.Create(&community).Error; err != nil {
		t.Fatalf("seed community: %v", err)
	}
	modA := models.User{Name: "alice", Email: "alice@example.com", Role: models.RoleModerator}
	modB := models.User{Name: "walt", Email: "walt@example.com", Role: models.RoleModerator}
	for _, u := range []*models.User{&modA, &modB} {
		if err := s.db.Create(u).Error; err != nil {
			t.Fatalf("seed user %s: %v", u.Name, err)
		}
	}
	return &community, &modA, &modB
}

func TestAddModeratorHandler(t *testing.T) {
	t.Parallel()

	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)
	community, modA, _ := seedModeratorFixture(t, s)

	app := newTestApp()
	app.Patch("/admin/add-moderators", s.AddModerator)

	body := fmt.Sprintf(`{"community_id":%d,"user_id":%d}`, community.ID, modA.ID)
	resp := doJSON(t, app, http.MethodPatch, "/admin/add-moderators", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var updated models.Community
	decodeBody(t, resp, &updated)
	if updated.ModeratorCount != 1 {
		t.Fatalf("moderator count = %d, want 1", updated.ModeratorCount)
	}

	// Same assignment again is a no-op, not an error.
	resp = doJSON(t, app, http.MethodPatch, "/admin/add-moderators", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("repeat status = %d, want 200", resp.StatusCode)
	}
	decodeBody(t, resp, &updated)
	if updated.ModeratorCount != 1 {
		t.Fatalf("moderator count after repeat = %d, want 1", updated.ModeratorCount)
	}
}

func TestAddModeratorHandlerRequiresUserID(t *testing.T) {
	t.Parallel()

	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)
	community, _, _ := seedModeratorFixture(t, s)

	app := newTestApp()
	app.Patch("/admin/add-moderators", s.AddModerator)

	// A request naming only the community is rejected; nothing is inferred
	// from earlier calls.
	body := fmt.Sprintf(`{"community_id":%d}`, community.ID)
	resp := doJSON(t, app, http.MethodPatch, "/admin/add-moderators", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRemoveModeratorHandlerRemovesExactlyTheNamedUser(t *testing.T) {
	t.Parallel()

	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)
	community, modA, modB := seedModeratorFixture(t, s)

	app := newTestApp()
	app.Patch("/admin/add-moderators", s.AddModerator)
	app.Patch("/admin/remove-moderators", s.RemoveModerator)

	for _, u := range []*models.User{modA, modB} {
		body := fmt.Sprintf(`{"community_id":%d,"user_id":%d}`, community.ID, u.ID)
		resp := doJSON(t, app, http.MethodPatch, "/admin/add-moderators", body)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("add %s status = %d", u.Name, resp.StatusCode)
		}
		resp.Body.Close()
	}

	// Remove walt; alice must remain a moderator afterwards.
	body := fmt.Sprintf(`{"community_id":%d,"user_id":%d}`, community.ID, modB.ID)
	resp := doJSON(t, app, http.MethodPatch, "/admin/remove-moderators", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove status = %d, want 200", resp.StatusCode)
	}

	var updated models.Community
	decodeBody(t, resp, &updated)
	if updated.ModeratorCount != 1 {
		t.Fatalf("moderator count = %d, want 1", updated.ModeratorCount)
	}

	var remaining []models.User
	if err := db.
		Joins("JOIN community_moderators cm ON cm.user_id = users.id").
		Where("cm.community_id = ?", community.ID).
		Find(&remaining).Error; err != nil {
		t.Fatalf("query remaining moderators: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != modA.ID {
		t.Fatalf("wrong user removed, remaining: %#v", remaining)
	}
}

func TestGetModeratorsHandlerFiltersByRole(t *testing.T) {
	t.Parallel()

	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)
	seedModeratorFixture(t, s)
	if err := db.Create(&models.User{Name: "bob", Email: "bob@example.com", Role: models.RoleGeneral}).Error; err != nil {
		t.Fatalf("seed general user: %v", err)
	}

	app := newTestApp()
	app.Get("/admin/moderators", s.GetModerators)

	resp := doJSON(t, app, http.MethodGet, "/admin/moderators", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var users []models.User
	decodeBody(t, resp, &users)
	if len(users) != 2 {
		t.Fatalf("got %d eligible moderators, want 2", len(users))
	}
	for _, u := range users {
		if u.Role != models.RoleModerator {
			t.Fatalf("non-moderator in directory: %+v", u)
		}
	}
}
