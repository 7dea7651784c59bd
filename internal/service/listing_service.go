package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/motor-mingle/server/internal/cache"
	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/events"
	"github.com/motor-mingle/server/internal/repository"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

const (
	homeListingCount = 6
	defaultPerPage   = 10
	maxPerPage       = 100
)

// ListingService manages cars posted for sale by users.
type ListingService struct {
	listings   repository.ListingRepository
	users      repository.UserRepository
	cache      *cache.Cache
	dispatcher events.Dispatcher
	tx         *repository.Transactor
}

// ListingDependencies groups the collaborators of ListingService.
type ListingDependencies struct {
	ListingRepo repository.ListingRepository
	UserRepo    repository.UserRepository
	Cache       *cache.Cache
	Dispatcher  events.Dispatcher
	// Tx makes seller verification atomic across users and listings. Optional.
	Tx *repository.Transactor
}

// ListingInput carries the seller supplied fields of a listing.
type ListingInput struct {
	SellerPhone      string
	CarName          string
	CarBrand         string
	CarType          string
	Price            float64
	CarCondition     string
	PurchasingDate   string
	Description      string
	PhotoURL         string
	ManufactureYear  int
	EngineCapacity   int
	TotalRun         int
	FuelType         string
	TransmissionType string
	RegisteredYear   int
}

// NewListingService builds the service.
func NewListingService(deps ListingDependencies) *ListingService {
	return &ListingService{
		listings:   deps.ListingRepo,
		users:      deps.UserRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		tx:         deps.Tx,
	}
}

// Create posts a listing on behalf of the caller. Seller fields come from the
// caller's stored record, never from the request.
func (s *ListingService) Create(ctx context.Context, callerEmail string, in ListingInput) (*domain.Listing, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	seller, err := s.users.FindByEmail(ctx, callerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewForbidden("register before posting a listing")
		}
		return nil, err
	}

	listing := in.apply(&domain.Listing{
		SellerID:                 seller.ID,
		SellerEmail:              seller.Email,
		SellerName:               seller.Name,
		SellerVerificationStatus: seller.VerifyStatus,
		ApprovalStatus:           domain.ApprovalStatusPending,
		SellStatus:               domain.SellStatusAvailable,
	})
	if listing.SellerPhone == "" {
		listing.SellerPhone = seller.Phone
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.publish(ctx, events.New(events.EventListingCreated, listing.ID, callerEmail, events.ListingCreatedPayload{
		SellerEmail: listing.SellerEmail,
		CarName:     listing.CarName,
		CarBrand:    listing.CarBrand,
		Price:       listing.Price,
	}))
	return listing, nil
}

// List returns every listing, newest first.
func (s *ListingService) List(ctx context.Context) ([]domain.Listing, error) {
	return cache.Remember(ctx, s.cache, cache.KeyListingsAll, s.listings.List)
}

// Home returns the newest listings shown on the landing page.
func (s *ListingService) Home(ctx context.Context) ([]domain.Listing, error) {
	return cache.Remember(ctx, s.cache, cache.KeyListingsHome, func(ctx context.Context) ([]domain.Listing, error) {
		return s.listings.ListLatest(ctx, homeListingCount)
	})
}

// Page returns one page of listings. perPage defaults to 10 and is capped at
// 100; page is 1-based. Pages past the end come back empty.
func (s *ListingService) Page(ctx context.Context, perPage, page int) (*domain.ListingPage, error) {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	if page <= 0 {
		page = 1
	}
	if page > math.MaxInt/perPage {
		page = math.MaxInt / perPage
	}

	listings, total, err := s.listings.ListPage(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	return &domain.ListingPage{
		TotalPages: (total + perPage - 1) / perPage,
		Listings:   listings,
	}, nil
}

// Get returns one listing.
func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	if err := validID(id, "listing"); err != nil {
		return nil, err
	}
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "listing")
	}
	return listing, nil
}

// BySeller returns the listings posted by one seller.
func (s *ListingService) BySeller(ctx context.Context, email string) ([]domain.Listing, error) {
	return s.listings.ListBySeller(ctx, normalizeEmail(email))
}

// Update replaces the car details of a listing owned by the caller.
func (s *ListingService) Update(ctx context.Context, callerEmail, id string, in ListingInput) (*domain.Listing, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	listing, err := s.ownedListing(ctx, callerEmail, id)
	if err != nil {
		return nil, err
	}
	in.apply(listing)
	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, notFoundOr(err, "listing")
	}
	s.invalidate(ctx)
	return listing, nil
}

// SetSellStatus marks a listing available or sold.
func (s *ListingService) SetSellStatus(ctx context.Context, callerEmail, id string, status domain.SellStatus) (*domain.Listing, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid sell_status", map[string]any{"sell_status": status})
	}
	listing, err := s.ownedListing(ctx, callerEmail, id)
	if err != nil {
		return nil, err
	}
	if listing.SellStatus == status {
		return listing, nil
	}
	if err := s.listings.UpdateSellStatus(ctx, listing.ID, status); err != nil {
		return nil, notFoundOr(err, "listing")
	}
	listing.SellStatus = status
	s.invalidate(ctx)

	if status == domain.SellStatusSold {
		s.publish(ctx, events.New(events.EventListingSold, listing.ID, callerEmail, events.ListingSoldPayload{
			SellerEmail: listing.SellerEmail,
			CarName:     listing.CarName,
		}))
	}
	return listing, nil
}

// Delete removes a listing owned by the caller.
func (s *ListingService) Delete(ctx context.Context, callerEmail, id string) error {
	listing, err := s.ownedListing(ctx, callerEmail, id)
	if err != nil {
		return err
	}
	if err := s.listings.Delete(ctx, listing.ID); err != nil {
		return notFoundOr(err, "listing")
	}
	s.invalidate(ctx)
	return nil
}

// SetSellerVerification records an admin decision on a seller and copies it
// onto every listing the seller owns.
func (s *ListingService) SetSellerVerification(ctx context.Context, adminEmail, sellerID string, status domain.VerifyStatus) (int64, error) {
	if err := validID(sellerID, "user"); err != nil {
		return 0, err
	}
	if !status.Valid() {
		return 0, apperrors.NewValidationError("invalid verify_status", map[string]any{"verify_status": status})
	}

	apply := func(users repository.UserRepository, listings repository.ListingRepository) (int64, error) {
		if err := users.UpdateVerifyStatus(ctx, sellerID, status); err != nil {
			return 0, notFoundOr(err, "user")
		}
		return listings.UpdateSellerVerification(ctx, sellerID, status)
	}

	var updated int64
	var err error
	if s.tx == nil {
		updated, err = apply(s.users, s.listings)
	} else {
		err = s.tx.InTx(ctx, func(db repository.DBTX) error {
			var txErr error
			updated, txErr = apply(repository.NewUserRepository(db), repository.NewListingRepository(db))
			return txErr
		})
	}
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	s.publish(ctx, events.New(events.EventSellerVerificationChanged, sellerID, adminEmail, events.SellerVerificationChangedPayload{
		SellerID:        sellerID,
		Status:          status,
		ListingsUpdated: updated,
	}))
	return updated, nil
}

// ownedListing loads a listing and checks that the caller owns it or is an admin.
func (s *ListingService) ownedListing(ctx context.Context, callerEmail, id string) (*domain.Listing, error) {
	if err := validID(id, "listing"); err != nil {
		return nil, err
	}
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "listing")
	}
	if listing.OwnedBy(callerEmail) {
		return listing, nil
	}

	caller, err := s.users.FindByEmail(ctx, callerEmail)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if caller == nil || !caller.IsAdmin() {
		return nil, apperrors.NewForbidden("Forbidden access!")
	}
	return listing, nil
}

func (s *ListingService) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, cache.KeyListingsAll, cache.KeyListingsHome)
}

func (s *ListingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func (in ListingInput) validate() error {
	details := map[string]any{}
	if strings.TrimSpace(in.CarName) == "" {
		details["car_name"] = "required"
	}
	if strings.TrimSpace(in.CarBrand) == "" {
		details["car_brand"] = "required"
	}
	if in.Price < 0 {
		details["price"] = "must not be negative"
	}
	if in.TotalRun < 0 {
		details["total_run"] = "must not be negative"
	}
	if in.EngineCapacity < 0 {
		details["engine_capacity"] = "must not be negative"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid listing", details)
	}
	return nil
}

func (in ListingInput) apply(l *domain.Listing) *domain.Listing {
	if phone := strings.TrimSpace(in.SellerPhone); phone != "" {
		l.SellerPhone = phone
	}
	l.CarName = strings.TrimSpace(in.CarName)
	l.CarBrand = strings.TrimSpace(in.CarBrand)
	l.CarType = strings.TrimSpace(in.CarType)
	l.Price = in.Price
	l.CarCondition = strings.TrimSpace(in.CarCondition)
	l.PurchasingDate = strings.TrimSpace(in.PurchasingDate)
	l.Description = in.Description
	l.PhotoURL = strings.TrimSpace(in.PhotoURL)
	l.ManufactureYear = in.ManufactureYear
	l.EngineCapacity = in.EngineCapacity
	l.TotalRun = in.TotalRun
	l.FuelType = strings.TrimSpace(in.FuelType)
	l.TransmissionType = strings.TrimSpace(in.TransmissionType)
	l.RegisteredYear = in.RegisteredYear
	return l
}
