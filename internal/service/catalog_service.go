package service

import (
	"context"
	"strings"

	"github.com/motor-mingle/server/internal/cache"
	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/repository"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

// CatalogService serves the curated product catalog and its brands.
type CatalogService struct {
	products repository.ProductRepository
	brands   repository.BrandRepository
	cache    *cache.Cache
}

// ProductInput describes a catalog product write.
type ProductInput struct {
	Name        string
	BrandName   string
	CarType     string
	Price       float64
	Rating      float64
	PhotoURL    string
	Description string
}

// NewCatalogService builds the service. cache may be nil.
func NewCatalogService(products repository.ProductRepository, brands repository.BrandRepository, c *cache.Cache) *CatalogService {
	return &CatalogService{products: products, brands: brands, cache: c}
}

// ListProducts returns the whole catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return cache.Remember(ctx, s.cache, cache.KeyProductsAll, s.products.List)
}

// ListBrands returns all brands.
func (s *CatalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return cache.Remember(ctx, s.cache, cache.KeyBrandsAll, s.brands.List)
}

// ListByBrand returns the products of one brand.
func (s *CatalogService) ListByBrand(ctx context.Context, brand string) ([]domain.Product, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, apperrors.NewValidationError("brand required", nil)
	}
	return s.products.ListByBrand(ctx, brand)
}

// GetProduct returns one product.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if err := validID(id, "product"); err != nil {
		return nil, err
	}
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "product")
	}
	return product, nil
}

// CreateProduct adds a catalog product.
func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	product := in.apply(&domain.Product{})
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KeyProductsAll)
	return product, nil
}

// UpdateProduct replaces a product's fields.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ProductInput) (*domain.Product, error) {
	if err := validID(id, "product"); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	product := in.apply(&domain.Product{ID: id})
	if err := s.products.Update(ctx, product); err != nil {
		return nil, notFoundOr(err, "product")
	}
	s.cache.Invalidate(ctx, cache.KeyProductsAll)
	return product, nil
}

// DeleteProduct removes a product.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := validID(id, "product"); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return notFoundOr(err, "product")
	}
	s.cache.Invalidate(ctx, cache.KeyProductsAll)
	return nil
}

func (in ProductInput) validate() error {
	details := map[string]any{}
	if strings.TrimSpace(in.Name) == "" {
		details["name"] = "required"
	}
	if strings.TrimSpace(in.BrandName) == "" {
		details["brand_name"] = "required"
	}
	if in.Price < 0 {
		details["price"] = "must not be negative"
	}
	if in.Rating < 0 || in.Rating > 5 {
		details["rating"] = "must be between 0 and 5"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid product", details)
	}
	return nil
}

func (in ProductInput) apply(p *domain.Product) *domain.Product {
	p.Name = strings.TrimSpace(in.Name)
	p.BrandName = strings.TrimSpace(in.BrandName)
	p.CarType = strings.TrimSpace(in.CarType)
	p.Price = in.Price
	p.Rating = in.Rating
	p.PhotoURL = strings.TrimSpace(in.PhotoURL)
	p.Description = in.Description
	return p
}
