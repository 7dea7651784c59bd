package domain

import "time"

// SavedAd is a listing bookmarked by a user.
type SavedAd struct {
	ID        string
	ListingID string
	UserEmail string
	CreatedAt time.Time
}
