package server

import (
	"socialecho/internal/models"
	"socialecho/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPreferences handles GET /api/admin/preferences.
// @Summary Get service preferences
// @Tags admin-preferences
// @Produce json
// @Success 200 {object} models.ServicePreference
// @Security BearerAuth
// @Router /admin/preferences [get]
func (s *Server) GetPreferences(c *fiber.Ctx) error {
	pref, err := s.preferenceService.Get(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(pref)
}

// UpdatePreferences handles PUT /api/admin/preferences.
// @Summary Update service preferences
// @Tags admin-preferences
// @Accept json
// @Produce json
// @Param preferences body service.PreferenceInput true "Fields to change"
// @Success 200 {object} models.ServicePreference
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/preferences [put]
func (s *Server) UpdatePreferences(c *fiber.Ctx) error {
	var input service.PreferenceInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	pref, err := s.preferenceService.Update(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(pref)
}
