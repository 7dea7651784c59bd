package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/motor-mingle/server/internal/api/dto"
	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/service"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

// CartHandler serves the caller's cart.
type CartHandler struct {
	cart *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cart: cartService}
}

// Add handles POST /cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	var req dto.CartAddRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ProductID == "" {
		return apperrors.NewValidationError("product_id required", nil)
	}

	item, err := h.cart.Add(c.UserContext(), email, req.ProductID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": cartItemResponse(item)})
}

// List handles GET /cart.
func (h *CartHandler) List(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	items, err := h.cart.List(c.UserContext(), email)
	if err != nil {
		return err
	}
	out := make([]dto.CartItemResponse, 0, len(items))
	for i := range items {
		out = append(out, cartItemResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Remove handles DELETE /cart/:id.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	if err := h.cart.Remove(c.UserContext(), email, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func cartItemResponse(it *domain.CartItem) dto.CartItemResponse {
	return dto.CartItemResponse{
		ID:          it.ID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		BrandName:   it.BrandName,
		Price:       it.Price,
		PhotoURL:    it.PhotoURL,
		CreatedAt:   it.CreatedAt,
	}
}
