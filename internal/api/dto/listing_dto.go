package dto

import "time"

// ListingRequest payload for creating or editing a listing. Seller identity
// is never taken from the body.
type ListingRequest struct {
	SellerPhone      string  `json:"seller_phone"`
	CarName          string  `json:"car_name"`
	CarBrand         string  `json:"car_brand"`
	CarType          string  `json:"car_type"`
	Price            float64 `json:"price"`
	CarCondition     string  `json:"car_condition"`
	PurchasingDate   string  `json:"purchasing_date"`
	Description      string  `json:"description"`
	PhotoURL         string  `json:"photo_url"`
	ManufactureYear  int     `json:"manufacture_year"`
	EngineCapacity   int     `json:"engine_capacity"`
	TotalRun         int     `json:"total_run"`
	FuelType         string  `json:"fuel_type"`
	TransmissionType string  `json:"transmission_type"`
	RegisteredYear   int     `json:"registered_year"`
}

// SellStatusRequest marks a listing available or sold.
type SellStatusRequest struct {
	SellStatus string `json:"sell_status"`
}

// ListingResponse is a used car listing.
type ListingResponse struct {
	ID                       string    `json:"id"`
	SellerID                 string    `json:"seller_id"`
	SellerEmail              string    `json:"seller_email"`
	SellerName               string    `json:"seller_name"`
	SellerPhone              string    `json:"seller_phone"`
	SellerVerificationStatus string    `json:"seller_verification_status"`
	CarName                  string    `json:"car_name"`
	CarBrand                 string    `json:"car_brand"`
	CarType                  string    `json:"car_type"`
	Price                    float64   `json:"price"`
	CarCondition             string    `json:"car_condition"`
	PurchasingDate           string    `json:"purchasing_date"`
	Description              string    `json:"description"`
	PhotoURL                 string    `json:"photo_url"`
	ApprovalStatus           string    `json:"approval_status"`
	ManufactureYear          int       `json:"manufacture_year"`
	EngineCapacity           int       `json:"engine_capacity"`
	TotalRun                 int       `json:"total_run"`
	FuelType                 string    `json:"fuel_type"`
	TransmissionType         string    `json:"transmission_type"`
	RegisteredYear           int       `json:"registered_year"`
	SellStatus               string    `json:"sell_status"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// ListingPageResponse is one page of listings.
type ListingPageResponse struct {
	TotalPages int               `json:"total_pages"`
	Listings   []ListingResponse `json:"listings"`
}

// SavedAdRequest bookmarks a listing.
type SavedAdRequest struct {
	ListingID string `json:"listing_id"`
}

// SavedAdResponse is a bookmarked listing.
type SavedAdResponse struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}
