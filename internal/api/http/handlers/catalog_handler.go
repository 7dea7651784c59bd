package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/motor-mingle/server/internal/api/dto"
	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/service"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

// CatalogHandler serves catalog products and brands.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// ListProducts handles GET /products.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.catalog.ListProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponses(products)})
}

// GetProduct handles GET /products/:id.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.catalog.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

// ListByBrand handles GET /brands/:brand/products.
func (h *CatalogHandler) ListByBrand(c *fiber.Ctx) error {
	products, err := h.catalog.ListByBrand(c.UserContext(), c.Params("brand"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponses(products)})
}

// ListBrands handles GET /brands.
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.catalog.ListBrands(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		items = append(items, dto.BrandResponse{ID: b.ID, Name: b.Name, ImageURL: b.ImageURL})
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateProduct handles POST /products.
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	input, err := parseProduct(c)
	if err != nil {
		return err
	}
	product, err := h.catalog.CreateProduct(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": productResponse(product)})
}

// UpdateProduct handles PUT /products/:id.
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	input, err := parseProduct(c)
	if err != nil {
		return err
	}
	product, err := h.catalog.UpdateProduct(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

// DeleteProduct handles DELETE /products/:id.
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.catalog.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseProduct(c *fiber.Ctx) (service.ProductInput, error) {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ProductInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	return service.ProductInput{
		Name:        req.Name,
		BrandName:   req.BrandName,
		CarType:     req.CarType,
		Price:       req.Price,
		Rating:      req.Rating,
		PhotoURL:    req.PhotoURL,
		Description: req.Description,
	}, nil
}

func productResponse(p *domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		BrandName:   p.BrandName,
		CarType:     p.CarType,
		Price:       p.Price,
		Rating:      p.Rating,
		PhotoURL:    p.PhotoURL,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func productResponses(products []domain.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, productResponse(&products[i]))
	}
	return items
}
