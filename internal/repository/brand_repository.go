package repository

import (
	"context"

	"github.com/motor-mingle/server/internal/domain"
)

// BrandRepository reads catalog brands.
type BrandRepository interface {
	List(ctx context.Context) ([]domain.Brand, error)
}

type brandRepository struct {
	db DBTX
}

// NewBrandRepository builds the repository.
func NewBrandRepository(db DBTX) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, image_url FROM brands ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Brand, 0)
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.ImageURL); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}
