package server

import (
	"socialecho/internal/models"

	"github.com/gofiber/fiber/v2"
)

// moderatorMutationRequest names both sides of a moderator assignment. Both
// IDs are mandatory on every call; there is no server-side memory of a
// previously selected user.
type moderatorMutationRequest struct {
	CommunityID uint `json:"community_id"`
	UserID      uint `json:"user_id"`
}

// GetModerators handles GET /api/admin/moderators.
// @Summary List eligible moderators
// @Description List every user holding the moderator role, regardless of assignment.
// @Tags admin-moderators
// @Produce json
// @Success 200 {array} models.User
// @Security BearerAuth
// @Router /admin/moderators [get]
func (s *Server) GetModerators(c *fiber.Ctx) error {
	users, err := s.adminViewService.ListEligibleModerators(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	if users == nil {
		users = []*models.User{}
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// AddModerator handles PATCH /api/admin/add-moderators.
// @Summary Add moderator to community
// @Tags admin-moderators
// @Accept json
// @Produce json
// @Param assignment body moderatorMutationRequest true "Community and user"
// @Success 200 {object} models.Community
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/add-moderators [patch]
func (s *Server) AddModerator(c *fiber.Ctx) error {
	var req moderatorMutationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	community, err := s.moderatorService.AddModerator(c.UserContext(), req.CommunityID, req.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(community)
}

// RemoveModerator handles PATCH /api/admin/remove-moderators.
// @Summary Remove moderator from community
// @Tags admin-moderators
// @Accept json
// @Produce json
// @Param assignment body moderatorMutationRequest true "Community and user"
// @Success 200 {object} models.Community
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/remove-moderators [patch]
func (s *Server) RemoveModerator(c *fiber.Ctx) error {
	var req moderatorMutationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	community, err := s.moderatorService.RemoveModerator(c.UserContext(), req.CommunityID, req.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(community)
}
