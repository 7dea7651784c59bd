package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/motor-mingle/server/internal/domain"
)

// ProductRepository manages the new-car catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByBrand(ctx context.Context, brand string) ([]domain.Product, error)
}

type productRepository struct {
	db DBTX
}

// NewProductRepository builds the repository.
func NewProductRepository(db DBTX) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, brand_name, car_type, price, rating, photo_url, description, created_at, updated_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.BrandName,
		&p.CarType,
		&p.Price,
		&p.Rating,
		&p.PhotoURL,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	const query = `
        INSERT INTO products (name, brand_name, car_type, price, rating, photo_url, description)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return mapError(r.db.QueryRow(ctx, query,
		p.Name,
		p.BrandName,
		p.CarType,
		p.Price,
		p.Rating,
		p.PhotoURL,
		p.Description,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt))
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	const query = `
        UPDATE products SET name=$1, brand_name=$2, car_type=$3, price=$4, rating=$5,
            photo_url=$6, description=$7, updated_at=NOW()
        WHERE id=$8
        RETURNING created_at, updated_at`
	return mapError(r.db.QueryRow(ctx, query,
		p.Name,
		p.BrandName,
		p.CarType,
		p.Price,
		p.Rating,
		p.PhotoURL,
		p.Description,
		p.ID,
	).Scan(&p.CreatedAt, &p.UpdatedAt))
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return expectAffected(r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id))
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.db.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProduct)
}

func (r *productRepository) ListByBrand(ctx context.Context, brand string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE LOWER(brand_name)=LOWER($1) ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, brand)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProduct)
}
