package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/motor-mingle/server/internal/api/dto"
	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/service"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

// SavedAdsHandler serves the caller's bookmarked listings.
type SavedAdsHandler struct {
	saved *service.SavedAdService
}

// NewSavedAdsHandler constructs handler.
func NewSavedAdsHandler(savedAdService *service.SavedAdService) *SavedAdsHandler {
	return &SavedAdsHandler{saved: savedAdService}
}

// Save handles POST /saved-ads.
func (h *SavedAdsHandler) Save(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	var req dto.SavedAdRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ListingID == "" {
		return apperrors.NewValidationError("listing_id required", nil)
	}
	ad, err := h.saved.Save(c.UserContext(), email, req.ListingID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": savedAdResponse(ad)})
}

// List handles GET /saved-ads.
func (h *SavedAdsHandler) List(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	ads, err := h.saved.List(c.UserContext(), email)
	if err != nil {
		return err
	}
	items := make([]dto.SavedAdResponse, 0, len(ads))
	for i := range ads {
		items = append(items, savedAdResponse(&ads[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /saved-ads/:listingId.
func (h *SavedAdsHandler) Get(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	ad, err := h.saved.Get(c.UserContext(), email, c.Params("listingId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": savedAdResponse(ad)})
}

// Remove handles DELETE /saved-ads/:listingId.
func (h *SavedAdsHandler) Remove(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	if err := h.saved.Remove(c.UserContext(), email, c.Params("listingId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func savedAdResponse(ad *domain.SavedAd) dto.SavedAdResponse {
	return dto.SavedAdResponse{
		ID:        ad.ID,
		ListingID: ad.ListingID,
		UserEmail: ad.UserEmail,
		CreatedAt: ad.CreatedAt,
	}
}
