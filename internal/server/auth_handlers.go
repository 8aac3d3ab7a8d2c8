package server

import (
	"strings"

	"socialecho/internal/models"

	"github.com/gofiber/fiber/v2"
)

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signInResponse struct {
	AccessToken string        `json:"access_token"`
	Admin       *models.Admin `json:"admin"`
}

// SignIn handles POST /api/admin/signin.
// @Summary Admin sign in
// @Description Verify admin credentials and issue a session token.
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param credentials body signInRequest true "Admin credentials"
// @Success 200 {object} signInResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/signin [post]
func (s *Server) SignIn(c *fiber.Ctx) error {
	var req signInRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username and password are required"))
	}

	token, admin, err := s.authService.SignIn(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(signInResponse{
		AccessToken: token,
		Admin:       admin,
	})
}
