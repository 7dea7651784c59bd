package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/motor-mingle/server/internal/domain"
)

// UserRepository defines persistence access for marketplace users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	UpdateVerifyStatus(ctx context.Context, id string, status domain.VerifyStatus) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, photo_url, role, password_hash, phone, address,
        verification_request, verify_status, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PhotoURL,
		&user.Role,
		&user.PasswordHash,
		&user.Phone,
		&user.Address,
		&user.VerificationRequest,
		&user.VerifyStatus,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, photo_url, role, password_hash, verify_status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PhotoURL,
		user.Role,
		user.PasswordHash,
		user.VerifyStatus,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return mapError(err)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET name=$1, photo_url=$2, phone=$3, address=$4,
            verification_request=$5, verify_status=$6, updated_at=NOW()
        WHERE id=$7`

	return expectAffected(r.db.Exec(ctx, query,
		user.Name,
		user.PhotoURL,
		user.Phone,
		user.Address,
		user.VerificationRequest,
		user.VerifyStatus,
		user.ID,
	))
}

func (r *userRepository) UpdateVerifyStatus(ctx context.Context, id string, status domain.VerifyStatus) error {
	const query = `
        UPDATE users SET verify_status=$1, verification_request=FALSE, updated_at=NOW()
        WHERE id=$2`
	return expectAffected(r.db.Exec(ctx, query, status, id))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role=$1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUser)
}
