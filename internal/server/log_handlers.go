package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetLogs handles GET /api/admin/logs.
// @Summary List activity log entries
// @Tags admin-logs
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} service.LogView
// @Security BearerAuth
// @Router /admin/logs [get]
func (s *Server) GetLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	views, err := s.logService.List(c.UserContext(), limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(views)
}

// ClearLogs handles DELETE /api/admin/logs.
// @Summary Clear the activity log
// @Tags admin-logs
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /admin/logs [delete]
func (s *Server) ClearLogs(c *fiber.Ctx) error {
	if err := s.logService.Clear(c.UserContext()); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "All logs deleted",
	})
}
