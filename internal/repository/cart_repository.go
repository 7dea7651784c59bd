package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/motor-mingle/server/internal/domain"
)

// CartRepository stores cart items per user.
type CartRepository interface {
	Create(ctx context.Context, item *domain.CartItem) error
	ListByUser(ctx context.Context, email string) ([]domain.CartItem, error)
	DeleteForUser(ctx context.Context, id, email string) error
}

type cartRepository struct {
	db DBTX
}

// NewCartRepository builds the repository.
func NewCartRepository(db DBTX) CartRepository {
	return &cartRepository{db: db}
}

func scanCartItem(row pgx.Row) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := row.Scan(
		&item.ID,
		&item.UserEmail,
		&item.ProductID,
		&item.ProductName,
		&item.BrandName,
		&item.Price,
		&item.PhotoURL,
		&item.CreatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

func (r *cartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	const query = `
        INSERT INTO cart_items (user_email, product_id, product_name, brand_name, price, photo_url)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return mapError(r.db.QueryRow(ctx, query,
		item.UserEmail,
		item.ProductID,
		item.ProductName,
		item.BrandName,
		item.Price,
		item.PhotoURL,
	).Scan(&item.ID, &item.CreatedAt))
}

func (r *cartRepository) ListByUser(ctx context.Context, email string) ([]domain.CartItem, error) {
	const query = `
        SELECT id, user_email, product_id, product_name, brand_name, price, photo_url, created_at
        FROM cart_items WHERE user_email=$1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanCartItem)
}

func (r *cartRepository) DeleteForUser(ctx context.Context, id, email string) error {
	return expectAffected(r.db.Exec(ctx, `DELETE FROM cart_items WHERE id=$1 AND user_email=$2`, id, email))
}
