package domain

import "time"

// SellStatus tracks whether a listed car is still for sale.
type SellStatus string

const (
	SellStatusAvailable SellStatus = "available"
	SellStatusSold      SellStatus = "sold"
)

// Valid reports whether s is a known sell status.
func (s SellStatus) Valid() bool {
	return s == SellStatusAvailable || s == SellStatusSold
}

// ApprovalStatus is the moderation state of a listing.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Listing is a used car posted for sale by a seller.
type Listing struct {
	ID                       string
	SellerID                 string
	SellerEmail              string
	SellerName               string
	SellerPhone              string
	SellerVerificationStatus VerifyStatus
	CarName                  string
	CarBrand                 string
	CarType                  string
	Price                    float64
	CarCondition             string
	PurchasingDate           string
	Description              string
	PhotoURL                 string
	ApprovalStatus           ApprovalStatus
	ManufactureYear          int
	EngineCapacity           int
	TotalRun                 int
	FuelType                 string
	TransmissionType         string
	RegisteredYear           int
	SellStatus               SellStatus
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// OwnedBy reports whether the listing belongs to the seller with the given email.
func (l *Listing) OwnedBy(email string) bool {
	return l != nil && email != "" && l.SellerEmail == email
}

// ListingPage is one page of listings plus the total page count.
type ListingPage struct {
	TotalPages int
	Listings   []Listing
}
