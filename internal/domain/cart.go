package domain

import "time"

// CartItem is a catalog product placed in a user's cart.
type CartItem struct {
	ID          string
	UserEmail   string
	ProductID   string
	ProductName string
	BrandName   string
	Price       float64
	PhotoURL    string
	CreatedAt   time.Time
}
