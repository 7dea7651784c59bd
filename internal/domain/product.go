package domain

import "time"

// Product is an entry of the curated new-car catalog.
type Product struct {
	ID          string
	Name        string
	BrandName   string
	CarType     string
	Price       float64
	Rating      float64
	PhotoURL    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Brand groups catalog products.
type Brand struct {
	ID       string
	Name     string
	ImageURL string
}
