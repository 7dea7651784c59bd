package dto

import "time"

// ProductRequest payload for catalog writes.
type ProductRequest struct {
	Name        string  `json:"name"`
	BrandName   string  `json:"brand_name"`
	CarType     string  `json:"car_type"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	PhotoURL    string  `json:"photo_url"`
	Description string  `json:"description"`
}

// ProductResponse is a catalog product.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	BrandName   string    `json:"brand_name"`
	CarType     string    `json:"car_type"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	PhotoURL    string    `json:"photo_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BrandResponse is a catalog brand.
type BrandResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// CartAddRequest adds a catalog product to the cart.
type CartAddRequest struct {
	ProductID string `json:"product_id"`
}

// CartItemResponse is one cart entry.
type CartItemResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	BrandName   string    `json:"brand_name"`
	Price       float64   `json:"price"`
	PhotoURL    string    `json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
}
