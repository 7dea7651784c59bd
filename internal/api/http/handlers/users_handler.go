package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/motor-mingle/server/internal/api/dto"
	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/service"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

// UsersHandler serves user profile endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Me handles GET /users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	user, err := h.users.Current(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// AdminStatus handles GET /users/:email/admin.
func (h *UsersHandler) AdminStatus(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	admin, err := h.users.IsAdmin(c.UserContext(), email, c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AdminStatusResponse{Admin: admin}})
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.ListMembers(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update handles PUT /users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.UserUpdateInput{
		Phone:               req.Phone,
		Address:             req.Address,
		VerificationRequest: req.VerificationRequest,
	}
	if req.VerifyStatus != nil {
		status := domain.VerifyStatus(*req.VerifyStatus)
		input.VerifyStatus = &status
	}

	user, err := h.users.UpdateProfile(c.UserContext(), email, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}
