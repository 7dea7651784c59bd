package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/motor-mingle/server/internal/domain"
)

// SavedAdRepository stores listings bookmarked by users.
type SavedAdRepository interface {
	Create(ctx context.Context, ad *domain.SavedAd) error
	Get(ctx context.Context, listingID, email string) (*domain.SavedAd, error)
	ListByUser(ctx context.Context, email string) ([]domain.SavedAd, error)
	Delete(ctx context.Context, listingID, email string) error
}

type savedAdRepository struct {
	db DBTX
}

// NewSavedAdRepository builds the repository.
func NewSavedAdRepository(db DBTX) SavedAdRepository {
	return &savedAdRepository{db: db}
}

func scanSavedAd(row pgx.Row) (*domain.SavedAd, error) {
	var ad domain.SavedAd
	if err := row.Scan(&ad.ID, &ad.ListingID, &ad.UserEmail, &ad.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &ad, nil
}

func (r *savedAdRepository) Create(ctx context.Context, ad *domain.SavedAd) error {
	const query = `
        INSERT INTO saved_ads (listing_id, user_email)
        VALUES ($1,$2)
        RETURNING id, created_at`
	return mapError(r.db.QueryRow(ctx, query, ad.ListingID, ad.UserEmail).Scan(&ad.ID, &ad.CreatedAt))
}

func (r *savedAdRepository) Get(ctx context.Context, listingID, email string) (*domain.SavedAd, error) {
	const query = `
        SELECT id, listing_id, user_email, created_at
        FROM saved_ads WHERE listing_id=$1 AND user_email=$2`
	return scanSavedAd(r.db.QueryRow(ctx, query, listingID, email))
}

func (r *savedAdRepository) ListByUser(ctx context.Context, email string) ([]domain.SavedAd, error) {
	const query = `
        SELECT id, listing_id, user_email, created_at
        FROM saved_ads WHERE user_email=$1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanSavedAd)
}

func (r *savedAdRepository) Delete(ctx context.Context, listingID, email string) error {
	return expectAffected(r.db.Exec(ctx, `DELETE FROM saved_ads WHERE listing_id=$1 AND user_email=$2`, listingID, email))
}
