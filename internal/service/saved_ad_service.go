package service

import (
	"context"
	"errors"

	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/repository"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

// SavedAdService manages listings bookmarked by the caller.
type SavedAdService struct {
	saved    repository.SavedAdRepository
	listings repository.ListingRepository
}

// NewSavedAdService builds the service.
func NewSavedAdService(saved repository.SavedAdRepository, listings repository.ListingRepository) *SavedAdService {
	return &SavedAdService{saved: saved, listings: listings}
}

// Save bookmarks an existing listing. Saving the same listing twice is a conflict.
func (s *SavedAdService) Save(ctx context.Context, email, listingID string) (*domain.SavedAd, error) {
	if err := validID(listingID, "listing"); err != nil {
		return nil, err
	}
	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		return nil, notFoundOr(err, "listing")
	}

	ad := &domain.SavedAd{ListingID: listingID, UserEmail: email}
	if err := s.saved.Create(ctx, ad); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("listing already saved", map[string]any{"listing_id": listingID})
		}
		return nil, err
	}
	return ad, nil
}

// List returns the caller's saved ads.
func (s *SavedAdService) List(ctx context.Context, email string) ([]domain.SavedAd, error) {
	return s.saved.ListByUser(ctx, email)
}

// Get returns the caller's saved ad for a listing.
func (s *SavedAdService) Get(ctx context.Context, email, listingID string) (*domain.SavedAd, error) {
	if err := validID(listingID, "saved ad"); err != nil {
		return nil, err
	}
	ad, err := s.saved.Get(ctx, listingID, email)
	if err != nil {
		return nil, notFoundOr(err, "saved ad")
	}
	return ad, nil
}

// Remove drops the caller's bookmark of a listing.
func (s *SavedAdService) Remove(ctx context.Context, email, listingID string) error {
	if err := validID(listingID, "saved ad"); err != nil {
		return err
	}
	return notFoundOr(s.saved.Delete(ctx, listingID, email), "saved ad")
}
