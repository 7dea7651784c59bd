package auth

import (
	"context"
	"errors"

	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/repository"
)

// UserLookup finds user records by their email identity. A missing record is
// reported either as (nil, nil) or as repository.ErrNotFound.
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Gate decides whether verified claims belong to a user holding a role.
type Gate struct {
	users UserLookup
}

// NewGate constructs a gate over the user store.
func NewGate(users UserLookup) *Gate {
	return &Gate{users: users}
}

// Authorize performs a single lookup by the claims email and compares roles.
func (g *Gate) Authorize(ctx context.Context, claims Claims, required domain.Role) error {
	email := claims.Email()
	if email == "" {
		return ErrMalformedClaims
	}

	user, err := g.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrForbidden
		}
		return LookupFailed(err)
	}
	if user == nil || user.Role != required {
		return ErrForbidden
	}
	return nil
}
