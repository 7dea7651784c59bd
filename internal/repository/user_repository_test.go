package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motor-mingle/server/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

var userColumnNames = []string{
	"id", "name", "email", "photo_url", "role", "password_hash", "phone", "address",
	"verification_request", "verify_status", "created_at", "updated_at",
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email=\$1`).
		WithArgs("boss@x.com").
		WillReturnRows(pgxmock.NewRows(userColumnNames).AddRow(
			"u-1", "Boss", "boss@x.com", "", domain.RoleAdmin, "", "", "",
			false, domain.VerifyStatusVerified, now, now,
		))

	user, err := NewUserRepository(mock).FindByEmail(context.Background(), "boss@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.True(t, user.IsAdmin())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email=\$1`).
		WithArgs("ghost@x.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := NewUserRepository(mock).FindByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_FindByEmail_DBError(t *testing.T) {
	mock := newMock(t)
	cause := errors.New("connection reset")

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email=\$1`).
		WithArgs("boss@x.com").
		WillReturnError(cause)

	_, err := NewUserRepository(mock).FindByEmail(context.Background(), "boss@x.com")
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice", "a@x.com", "", domain.RoleUser, "", domain.VerifyStatusUnverified).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("u-2", now, now))

	user := &domain.User{Name: "Alice", Email: "a@x.com", Role: domain.RoleUser, VerifyStatus: domain.VerifyStatusUnverified}
	require.NoError(t, NewUserRepository(mock).Create(context.Background(), user))
	assert.Equal(t, "u-2", user.ID)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice", "a@x.com", "", domain.RoleUser, "", domain.VerifyStatusUnverified).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	user := &domain.User{Name: "Alice", Email: "a@x.com", Role: domain.RoleUser, VerifyStatus: domain.VerifyStatusUnverified}
	err := NewUserRepository(mock).Create(context.Background(), user)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_UpdateVerifyStatus_Missing(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(`UPDATE users SET verify_status`).
		WithArgs(domain.VerifyStatusVerified, "u-404").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := NewUserRepository(mock).UpdateVerifyStatus(context.Background(), "u-404", domain.VerifyStatusVerified)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_ListByRole(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE role=\$1`).
		WithArgs(domain.RoleUser).
		WillReturnRows(pgxmock.NewRows(userColumnNames).
			AddRow("u-1", "A", "a@x.com", "", domain.RoleUser, "", "", "", false, domain.VerifyStatusUnverified, now, now).
			AddRow("u-2", "B", "b@x.com", "", domain.RoleUser, "", "", "", true, domain.VerifyStatusPending, now, now))

	users, err := NewUserRepository(mock).ListByRole(context.Background(), domain.RoleUser)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "b@x.com", users[1].Email)
	assert.True(t, users[1].VerificationRequest)
}

func TestListingRepository_ListPage_Empty(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM listings`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .+ FROM listings ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 20).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	listings, total, err := NewListingRepository(mock).ListPage(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, listings)
}

func TestCartRepository_DeleteForUser_NotOwned(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(`DELETE FROM cart_items WHERE id=\$1 AND user_email=\$2`).
		WithArgs("c-1", "a@x.com").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := NewCartRepository(mock).DeleteForUser(context.Background(), "c-1", "a@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users SET verify_status`).
		WithArgs(domain.VerifyStatusVerified, "u-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE listings SET seller_verification_status`).
		WithArgs(domain.VerifyStatusVerified, "u-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	mock.ExpectCommit()

	var updated int64
	err := NewTransactor(mock).InTx(context.Background(), func(db DBTX) error {
		if err := NewUserRepository(db).UpdateVerifyStatus(context.Background(), "u-1", domain.VerifyStatusVerified); err != nil {
			return err
		}
		var err error
		updated, err = NewListingRepository(db).UpdateSellerVerification(context.Background(), "u-1", domain.VerifyStatusVerified)
		return err
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, updated)
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users SET verify_status`).
		WithArgs(domain.VerifyStatusVerified, "u-404").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := NewTransactor(mock).InTx(context.Background(), func(db DBTX) error {
		return NewUserRepository(db).UpdateVerifyStatus(context.Background(), "u-404", domain.VerifyStatusVerified)
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactor_RollsBackOnPanic(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = NewTransactor(mock).InTx(context.Background(), func(DBTX) error {
			panic("boom")
		})
	})
}
