package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/motor-mingle/server/internal/api/dto"
	"github.com/motor-mingle/server/internal/auth"
	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/service"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

// AuthHandler exposes token issuing, registration and login.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// IssueToken handles POST /jwt. The verified caller gets a fresh credential
// carrying the posted claims.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	claims := map[string]any{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&claims); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	cred, err := h.auth.IssueToken(email, auth.Claims(claims))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{Token: cred.Token, ExpiresAt: cred.ExpiresAt}})
}

// Register handles POST /users.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, cred, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": userResponse(user),
			"auth": dto.AuthResponse{Token: cred.Token, ExpiresAt: cred.ExpiresAt},
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, cred, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": userResponse(user),
			"auth": dto.AuthResponse{Token: cred.Token, ExpiresAt: cred.ExpiresAt},
		},
	})
}

// callerEmail returns the verified identity placed on the context by the auth middleware.
func callerEmail(c *fiber.Ctx) (string, error) {
	if _, ok := auth.ClaimsFromContext(c); !ok {
		return "", auth.ErrMissingCredential
	}
	email, ok := auth.CallerEmail(c)
	if !ok {
		return "", auth.ErrMalformedClaims
	}
	return email, nil
}

func userResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		PhotoURL:            u.PhotoURL,
		Role:                string(u.Role),
		Phone:               u.Phone,
		Address:             u.Address,
		VerificationRequest: u.VerificationRequest,
		VerifyStatus:        string(u.VerifyStatus),
		CreatedAt:           u.CreatedAt,
	}
}
