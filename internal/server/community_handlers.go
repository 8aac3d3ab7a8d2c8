package server

import (
	"socialecho/internal/models"
	"socialecho/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCommunities handles GET /api/admin/communities.
// @Summary List communities
// @Description List every community in creation order with stored counts.
// @Tags admin-communities
// @Produce json
// @Success 200 {array} models.Community
// @Security BearerAuth
// @Router /admin/communities [get]
func (s *Server) GetCommunities(c *fiber.Ctx) error {
	communities, err := s.communityService.ListCommunities(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(communities)
}

// GetCommunity handles GET /api/admin/community/:communityId.
// Counts in the response are recomputed from the association sets, not read
// from the stored columns.
// @Summary Get community admin view
// @Tags admin-communities
// @Produce json
// @Param communityId path int true "Community ID"
// @Success 200 {object} service.AdminCommunityView
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/community/{communityId} [get]
func (s *Server) GetCommunity(c *fiber.Ctx) error {
	id, err := s.parseID(c, "communityId", "community ID")
	if err != nil {
		return nil
	}

	view, err := s.adminViewService.GetAdminView(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// CreateCommunity handles POST /api/admin/community.
// @Summary Create community
// @Tags admin-communities
// @Accept json
// @Produce json
// @Param community body service.CreateCommunityInput true "New community"
// @Success 201 {object} models.Community
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/community [post]
func (s *Server) CreateCommunity(c *fiber.Ctx) error {
	var input service.CreateCommunityInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	community, err := s.communityService.CreateCommunity(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(community)
}

// UpdateCommunity handles PUT /api/admin/community/:communityId.
// Only fields present in the body are changed; the member and moderator sets
// are not reachable from this route.
// @Summary Update community metadata
// @Tags admin-communities
// @Accept json
// @Produce json
// @Param communityId path int true "Community ID"
// @Param patch body models.CommunityPatch true "Fields to change"
// @Success 200 {object} models.Community
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/community/{communityId} [put]
func (s *Server) UpdateCommunity(c *fiber.Ctx) error {
	id, err := s.parseID(c, "communityId", "community ID")
	if err != nil {
		return nil
	}

	var patch models.CommunityPatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	community, err := s.communityService.UpdateCommunity(c.UserContext(), id, patch)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(community)
}

// DeleteCommunity handles DELETE /api/admin/community/:communityId.
// Deletion cascades through content and membership links before removing the
// record; a failed cascade leaves the community in place.
// @Summary Delete community
// @Tags admin-communities
// @Produce json
// @Param communityId path int true "Community ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/community/{communityId} [delete]
func (s *Server) DeleteCommunity(c *fiber.Ctx) error {
	id, err := s.parseID(c, "communityId", "community ID")
	if err != nil {
		return nil
	}

	state, err := s.cascade.DeleteCommunity(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Community deleted",
		"state":   string(state),
	})
}
