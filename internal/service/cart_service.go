package service

import (
	"context"

	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/repository"
)

// CartService manages the caller's cart.
type CartService struct {
	cart     repository.CartRepository
	products repository.ProductRepository
}

// NewCartService builds the service.
func NewCartService(cart repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{cart: cart, products: products}
}

// Add snapshots a catalog product into the caller's cart.
func (s *CartService) Add(ctx context.Context, email, productID string) (*domain.CartItem, error) {
	if err := validID(productID, "product"); err != nil {
		return nil, err
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, notFoundOr(err, "product")
	}

	item := &domain.CartItem{
		UserEmail:   email,
		ProductID:   product.ID,
		ProductName: product.Name,
		BrandName:   product.BrandName,
		Price:       product.Price,
		PhotoURL:    product.PhotoURL,
	}
	if err := s.cart.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns the caller's cart.
func (s *CartService) List(ctx context.Context, email string) ([]domain.CartItem, error) {
	return s.cart.ListByUser(ctx, email)
}

// Remove deletes one of the caller's cart items.
func (s *CartService) Remove(ctx context.Context, email, id string) error {
	if err := validID(id, "cart item"); err != nil {
		return err
	}
	return notFoundOr(s.cart.DeleteForUser(ctx, id, email), "cart item")
}
