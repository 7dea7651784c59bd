package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/motor-mingle/server/internal/domain"
)

// ListingRepository manages cars posted by sellers.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	Update(ctx context.Context, listing *domain.Listing) error
	UpdateSellStatus(ctx context.Context, id string, status domain.SellStatus) error
	UpdateSellerVerification(ctx context.Context, sellerID string, status domain.VerifyStatus) (int64, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]domain.Listing, error)
	ListLatest(ctx context.Context, limit int) ([]domain.Listing, error)
	ListPage(ctx context.Context, limit, offset int) ([]domain.Listing, int, error)
	ListBySeller(ctx context.Context, email string) ([]domain.Listing, error)
}

type listingRepository struct {
	db DBTX
}

// NewListingRepository builds the repository.
func NewListingRepository(db DBTX) ListingRepository {
	return &listingRepository{db: db}
}

const listingColumns = `id, seller_id, seller_email, seller_name, seller_phone, seller_verification_status,
        car_name, car_brand, car_type, price, car_condition, purchasing_date, description, photo_url,
        approval_status, manufacture_year, engine_capacity, total_run, fuel_type, transmission_type,
        registered_year, sell_status, created_at, updated_at`

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	if err := row.Scan(
		&l.ID,
		&l.SellerID,
		&l.SellerEmail,
		&l.SellerName,
		&l.SellerPhone,
		&l.SellerVerificationStatus,
		&l.CarName,
		&l.CarBrand,
		&l.CarType,
		&l.Price,
		&l.CarCondition,
		&l.PurchasingDate,
		&l.Description,
		&l.PhotoURL,
		&l.ApprovalStatus,
		&l.ManufactureYear,
		&l.EngineCapacity,
		&l.TotalRun,
		&l.FuelType,
		&l.TransmissionType,
		&l.RegisteredYear,
		&l.SellStatus,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &l, nil
}

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	const query = `
        INSERT INTO listings (seller_id, seller_email, seller_name, seller_phone, seller_verification_status,
            car_name, car_brand, car_type, price, car_condition, purchasing_date, description, photo_url,
            approval_status, manufacture_year, engine_capacity, total_run, fuel_type, transmission_type,
            registered_year, sell_status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
        RETURNING id, created_at, updated_at`
	return mapError(r.db.QueryRow(ctx, query,
		l.SellerID,
		l.SellerEmail,
		l.SellerName,
		l.SellerPhone,
		l.SellerVerificationStatus,
		l.CarName,
		l.CarBrand,
		l.CarType,
		l.Price,
		l.CarCondition,
		l.PurchasingDate,
		l.Description,
		l.PhotoURL,
		l.ApprovalStatus,
		l.ManufactureYear,
		l.EngineCapacity,
		l.TotalRun,
		l.FuelType,
		l.TransmissionType,
		l.RegisteredYear,
		l.SellStatus,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt))
}

func (r *listingRepository) Update(ctx context.Context, l *domain.Listing) error {
	const query = `
        UPDATE listings SET car_name=$1, car_brand=$2, car_type=$3, price=$4, car_condition=$5,
            purchasing_date=$6, description=$7, photo_url=$8, approval_status=$9, manufacture_year=$10,
            engine_capacity=$11, total_run=$12, fuel_type=$13, transmission_type=$14, registered_year=$15,
            seller_phone=$16, updated_at=NOW()
        WHERE id=$17`
	return expectAffected(r.db.Exec(ctx, query,
		l.CarName,
		l.CarBrand,
		l.CarType,
		l.Price,
		l.CarCondition,
		l.PurchasingDate,
		l.Description,
		l.PhotoURL,
		l.ApprovalStatus,
		l.ManufactureYear,
		l.EngineCapacity,
		l.TotalRun,
		l.FuelType,
		l.TransmissionType,
		l.RegisteredYear,
		l.SellerPhone,
		l.ID,
	))
}

func (r *listingRepository) UpdateSellStatus(ctx context.Context, id string, status domain.SellStatus) error {
	const query = `UPDATE listings SET sell_status=$1, updated_at=NOW() WHERE id=$2`
	return expectAffected(r.db.Exec(ctx, query, status, id))
}

func (r *listingRepository) UpdateSellerVerification(ctx context.Context, sellerID string, status domain.VerifyStatus) (int64, error) {
	const query = `UPDATE listings SET seller_verification_status=$1, updated_at=NOW() WHERE seller_id=$2`
	cmd, err := r.db.Exec(ctx, query, status, sellerID)
	if err != nil {
		return 0, mapError(err)
	}
	return cmd.RowsAffected(), nil
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	return expectAffected(r.db.Exec(ctx, `DELETE FROM listings WHERE id=$1`, id))
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id=$1`
	return scanListing(r.db.QueryRow(ctx, query, id))
}

func (r *listingRepository) List(ctx context.Context) ([]domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanListing)
}

func (r *listingRepository) ListLatest(ctx context.Context, limit int) ([]domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanListing)
}

func (r *listingRepository) ListPage(ctx context.Context, limit, offset int) ([]domain.Listing, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM listings`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	listings, err := collect(rows, scanListing)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *listingRepository) ListBySeller(ctx context.Context, email string) ([]domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE seller_email=$1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanListing)
}
