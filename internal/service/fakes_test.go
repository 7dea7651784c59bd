package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/events"
	"github.com/motor-mingle/server/internal/repository"
)

type fakeUsers struct {
	mu   sync.Mutex
	byID map[string]*domain.User
	err  error
}

func newFakeUsers(users ...*domain.User) *fakeUsers {
	f := &fakeUsers{byID: map[string]*domain.User{}}
	for _, u := range users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.byID[user.ID] = &cp
	return nil
}

func (f *fakeUsers) Update(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[user.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *user
	f.byID[user.ID] = &cp
	return nil
}

func (f *fakeUsers) UpdateVerifyStatus(_ context.Context, id string, status domain.VerifyStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.VerifyStatus = status
	u.VerificationRequest = false
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.User
	for _, u := range f.byID {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeListings struct {
	mu         sync.Mutex
	items      []*domain.Listing
	lastOffset int
}

func (f *fakeListings) find(id string) (*domain.Listing, bool) {
	for _, l := range f.items {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

func (f *fakeListings) Create(_ context.Context, l *domain.Listing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l.ID = uuid.NewString()
	l.CreatedAt = time.Now().Add(time.Duration(len(f.items)) * time.Millisecond)
	l.UpdatedAt = l.CreatedAt
	cp := *l
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeListings) Update(_ context.Context, l *domain.Listing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.find(l.ID)
	if !ok {
		return repository.ErrNotFound
	}
	*stored = *l
	return nil
}

func (f *fakeListings) UpdateSellStatus(_ context.Context, id string, status domain.SellStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.find(id)
	if !ok {
		return repository.ErrNotFound
	}
	stored.SellStatus = status
	return nil
}

func (f *fakeListings) UpdateSellerVerification(_ context.Context, sellerID string, status domain.VerifyStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, l := range f.items {
		if l.SellerID == sellerID {
			l.SellerVerificationStatus = status
			n++
		}
	}
	return n, nil
}

func (f *fakeListings) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.items {
		if l.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeListings) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.find(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *stored
	return &cp, nil
}

func (f *fakeListings) newest() []domain.Listing {
	out := make([]domain.Listing, 0, len(f.items))
	for _, l := range f.items {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeListings) List(_ context.Context) ([]domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.newest(), nil
}

func (f *fakeListings) ListLatest(_ context.Context, limit int) ([]domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.newest()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeListings) ListPage(_ context.Context, limit, offset int) ([]domain.Listing, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastOffset = offset
	all := f.newest()
	if offset < 0 {
		return nil, 0, fmt.Errorf("negative offset %d", offset)
	}
	if offset >= len(all) {
		return nil, len(all), nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], len(all), nil
}

func (f *fakeListings) ListBySeller(_ context.Context, email string) ([]domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Listing
	for _, l := range f.newest() {
		if l.SellerEmail == email {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeProducts struct {
	items map[string]*domain.Product
}

func newFakeProducts(products ...*domain.Product) *fakeProducts {
	f := &fakeProducts{items: map[string]*domain.Product{}}
	for _, p := range products {
		f.items[p.ID] = p
	}
	return f
}

func (f *fakeProducts) Create(_ context.Context, p *domain.Product) error {
	p.ID = uuid.NewString()
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProducts) Update(_ context.Context, p *domain.Product) error {
	if _, ok := f.items[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProducts) ListByBrand(_ context.Context, brand string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.items {
		if p.BrandName == brand {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeBrands struct {
	brands []domain.Brand
	calls  int
}

func (f *fakeBrands) List(context.Context) ([]domain.Brand, error) {
	f.calls++
	return f.brands, nil
}

type fakeCart struct {
	items []domain.CartItem
}

func (f *fakeCart) Create(_ context.Context, item *domain.CartItem) error {
	item.ID = uuid.NewString()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeCart) ListByUser(_ context.Context, email string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, it := range f.items {
		if it.UserEmail == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCart) DeleteForUser(_ context.Context, id, email string) error {
	for i, it := range f.items {
		if it.ID == id && it.UserEmail == email {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeSavedAds struct {
	items []domain.SavedAd
}

func (f *fakeSavedAds) Create(_ context.Context, ad *domain.SavedAd) error {
	for _, it := range f.items {
		if it.ListingID == ad.ListingID && it.UserEmail == ad.UserEmail {
			return repository.ErrDuplicate
		}
	}
	ad.ID = uuid.NewString()
	f.items = append(f.items, *ad)
	return nil
}

func (f *fakeSavedAds) Get(_ context.Context, listingID, email string) (*domain.SavedAd, error) {
	for _, it := range f.items {
		if it.ListingID == listingID && it.UserEmail == email {
			cp := it
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSavedAds) ListByUser(_ context.Context, email string) ([]domain.SavedAd, error) {
	var out []domain.SavedAd
	for _, it := range f.items {
		if it.UserEmail == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeSavedAds) Delete(_ context.Context, listingID, email string) error {
	for i, it := range f.items {
		if it.ListingID == listingID && it.UserEmail == email {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// recorder is a dispatcher that keeps every published event.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recorder) Subscribe(events.EventType, events.EventHandler) {}

func (r *recorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}
