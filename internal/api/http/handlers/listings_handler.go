package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/motor-mingle/server/internal/api/dto"
	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/service"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

// ListingsHandler serves cars posted by sellers.
type ListingsHandler struct {
	listings *service.ListingService
}

// NewListingsHandler constructs handler.
func NewListingsHandler(listingService *service.ListingService) *ListingsHandler {
	return &ListingsHandler{listings: listingService}
}

// Create handles POST /listings.
func (h *ListingsHandler) Create(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	input, err := parseListing(c)
	if err != nil {
		return err
	}
	listing, err := h.listings.Create(c.UserContext(), email, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": listingResponse(listing)})
}

// List handles GET /listings.
func (h *ListingsHandler) List(c *fiber.Ctx) error {
	listings, err := h.listings.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listingResponses(listings)})
}

// Home handles GET /listings/home.
func (h *ListingsHandler) Home(c *fiber.Ctx) error {
	listings, err := h.listings.Home(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listingResponses(listings)})
}

// Paginated handles GET /listings/paginated.
func (h *ListingsHandler) Paginated(c *fiber.Ctx) error {
	page, err := h.listings.Page(c.UserContext(), c.QueryInt("per_page", 0), c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ListingPageResponse{
		TotalPages: page.TotalPages,
		Listings:   listingResponses(page.Listings),
	}})
}

// Get handles GET /listings/:id.
func (h *ListingsHandler) Get(c *fiber.Ctx) error {
	listing, err := h.listings.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listingResponse(listing)})
}

// BySeller handles GET /sellers/:email/listings.
func (h *ListingsHandler) BySeller(c *fiber.Ctx) error {
	listings, err := h.listings.BySeller(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listingResponses(listings)})
}

// Update handles PUT /listings/:id.
func (h *ListingsHandler) Update(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	input, err := parseListing(c)
	if err != nil {
		return err
	}
	listing, err := h.listings.Update(c.UserContext(), email, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listingResponse(listing)})
}

// SetSellStatus handles PATCH /listings/:id/sell-status.
func (h *ListingsHandler) SetSellStatus(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	var req dto.SellStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	listing, err := h.listings.SetSellStatus(c.UserContext(), email, c.Params("id"), domain.SellStatus(req.SellStatus))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listingResponse(listing)})
}

// Delete handles DELETE /listings/:id.
func (h *ListingsHandler) Delete(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	if err := h.listings.Delete(c.UserContext(), email, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// SetSellerVerification handles PUT /sellers/:id/verification.
func (h *ListingsHandler) SetSellerVerification(c *fiber.Ctx) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	var req dto.SellerVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	updated, err := h.listings.SetSellerVerification(c.UserContext(), email, c.Params("id"), domain.VerifyStatus(req.VerifyStatus))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"seller_id":        c.Params("id"),
		"verify_status":    req.VerifyStatus,
		"listings_updated": updated,
	}})
}

func parseListing(c *fiber.Ctx) (service.ListingInput, error) {
	var req dto.ListingRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ListingInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	return service.ListingInput{
		SellerPhone:      req.SellerPhone,
		CarName:          req.CarName,
		CarBrand:         req.CarBrand,
		CarType:          req.CarType,
		Price:            req.Price,
		CarCondition:     req.CarCondition,
		PurchasingDate:   req.PurchasingDate,
		Description:      req.Description,
		PhotoURL:         req.PhotoURL,
		ManufactureYear:  req.ManufactureYear,
		EngineCapacity:   req.EngineCapacity,
		TotalRun:         req.TotalRun,
		FuelType:         req.FuelType,
		TransmissionType: req.TransmissionType,
		RegisteredYear:   req.RegisteredYear,
	}, nil
}

func listingResponse(l *domain.Listing) dto.ListingResponse {
	return dto.ListingResponse{
		ID:                       l.ID,
		SellerID:                 l.SellerID,
		SellerEmail:              l.SellerEmail,
		SellerName:               l.SellerName,
		SellerPhone:              l.SellerPhone,
		SellerVerificationStatus: string(l.SellerVerificationStatus),
		CarName:                  l.CarName,
		CarBrand:                 l.CarBrand,
		CarType:                  l.CarType,
		Price:                    l.Price,
		CarCondition:             l.CarCondition,
		PurchasingDate:           l.PurchasingDate,
		Description:              l.Description,
		PhotoURL:                 l.PhotoURL,
		ApprovalStatus:           string(l.ApprovalStatus),
		ManufactureYear:          l.ManufactureYear,
		EngineCapacity:           l.EngineCapacity,
		TotalRun:                 l.TotalRun,
		FuelType:                 l.FuelType,
		TransmissionType:         l.TransmissionType,
		RegisteredYear:           l.RegisteredYear,
		SellStatus:               string(l.SellStatus),
		CreatedAt:                l.CreatedAt,
		UpdatedAt:                l.UpdatedAt,
	}
}

func listingResponses(listings []domain.Listing) []dto.ListingResponse {
	items := make([]dto.ListingResponse, 0, len(listings))
	for i := range listings {
		items = append(items, listingResponse(&listings[i]))
	}
	return items
}
