package service

import (
	"context"
	"errors"
	"strings"

	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/repository"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

// UserService serves profile reads and updates.
type UserService struct {
	users repository.UserRepository
}

// UserUpdateInput is a partial profile update; nil fields are left unchanged.
type UserUpdateInput struct {
	Phone               *string
	Address             *string
	VerificationRequest *bool
	VerifyStatus        *domain.VerifyStatus
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Current returns the record of the verified caller.
func (s *UserService) Current(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}

// IsAdmin reports whether target holds the admin role. Callers may only ask about themselves.
func (s *UserService) IsAdmin(ctx context.Context, callerEmail, target string) (bool, error) {
	callerEmail = normalizeEmail(callerEmail)
	if normalizeEmail(target) != callerEmail {
		return false, apperrors.NewForbidden("Forbidden access!")
	}
	user, err := s.users.FindByEmail(ctx, callerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

// ListMembers returns every account with the user role.
func (s *UserService) ListMembers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleUser)
}

// UpdateProfile applies a partial update. Callers may edit their own record;
// admins may edit any record and are the only ones allowed to set the verify status.
func (s *UserService) UpdateProfile(ctx context.Context, callerEmail, id string, in UserUpdateInput) (*domain.User, error) {
	if err := validID(id, "user"); err != nil {
		return nil, err
	}

	caller, err := s.users.FindByEmail(ctx, callerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewForbidden("Forbidden access!")
		}
		return nil, err
	}

	target := caller
	if caller.ID != id {
		if !caller.IsAdmin() {
			return nil, apperrors.NewForbidden("Forbidden access!")
		}
		target, err = s.users.GetByID(ctx, id)
		if err != nil {
			return nil, notFoundOr(err, "user")
		}
	}

	if in.VerifyStatus != nil {
		if !caller.IsAdmin() {
			return nil, apperrors.NewForbidden("only admins may change verification status")
		}
		if !in.VerifyStatus.Valid() {
			return nil, apperrors.NewValidationError("invalid verify_status", map[string]any{"verify_status": *in.VerifyStatus})
		}
		target.VerifyStatus = *in.VerifyStatus
	}
	if in.Phone != nil {
		target.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		target.Address = strings.TrimSpace(*in.Address)
	}
	if in.VerificationRequest != nil {
		target.VerificationRequest = *in.VerificationRequest
		if *in.VerificationRequest && target.VerifyStatus == domain.VerifyStatusUnverified {
			target.VerifyStatus = domain.VerifyStatusPending
		}
	}

	if err := s.users.Update(ctx, target); err != nil {
		return nil, notFoundOr(err, "user")
	}
	return target, nil
}
