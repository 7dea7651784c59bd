package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/motor-mingle/server/internal/auth"
	"github.com/motor-mingle/server/internal/config"
	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/events"
	"github.com/motor-mingle/server/internal/repository"
	apperrors "github.com/motor-mingle/server/pkg/util"
)

const minPasswordLength = 6

// AuthService coordinates registration, login and token issuing.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	passwords  *auth.PasswordHasher
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// RegisterInput describes a new account.
type RegisterInput struct {
	Name     string
	Email    string
	PhotoURL string
	Password string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokens:     auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		passwords:  auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		dispatcher: deps.Dispatcher,
	}
}

// IssueToken re-issues a credential for an already verified caller. Extra
// claims are carried over, but the identity is always the caller's own and
// the role claim is dropped.
func (s *AuthService) IssueToken(callerEmail string, claims auth.Claims) (auth.Credential, error) {
	callerEmail = normalizeEmail(callerEmail)
	if callerEmail == "" {
		return auth.Credential{}, auth.ErrMalformedClaims
	}
	if claims == nil {
		claims = auth.Claims{}
	}
	if requested := claims.Email(); requested != "" && requested != callerEmail {
		return auth.Credential{}, apperrors.NewForbidden("tokens can only be issued for the caller")
	}
	claims[auth.ClaimEmail] = callerEmail
	delete(claims, auth.ClaimRole)
	return s.issue(claims)
}

// Register creates a user account with the user role. Duplicate emails are rejected.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, auth.Credential, error) {
	email := normalizeEmail(in.Email)
	if err := validateEmail(email); err != nil {
		return nil, auth.Credential{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, auth.Credential{}, apperrors.NewValidationError("name required", nil)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, auth.Credential{}, apperrors.NewConflict("User already exists", map[string]any{"email": email})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, auth.Credential{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PhotoURL:     strings.TrimSpace(in.PhotoURL),
		Role:         domain.RoleUser,
		VerifyStatus: domain.VerifyStatusUnverified,
	}
	if len(in.Password) < minPasswordLength {
		return nil, auth.Credential{}, apperrors.NewValidationError("password must be at least 6 characters", nil)
	}
	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, auth.Credential{}, err
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, auth.Credential{}, apperrors.NewConflict("User already exists", map[string]any{"email": email})
		}
		return nil, auth.Credential{}, err
	}

	cred, err := s.issue(userClaims(user))
	if err != nil {
		return nil, auth.Credential{}, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventUserRegistered, user.ID, user.Email,
			events.UserRegisteredPayload{Email: user.Email, Name: user.Name}))
	}
	return user, cred, nil
}

// Login authenticates a user registered with a password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, auth.Credential, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.Credential{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, auth.Credential{}, err
	}
	if err := s.passwords.Compare(user.PasswordHash, password); err != nil {
		return nil, auth.Credential{}, apperrors.NewUnauthorized("invalid credentials")
	}

	cred, err := s.issue(userClaims(user))
	if err != nil {
		return nil, auth.Credential{}, err
	}
	return user, cred, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *AuthService) issue(claims auth.Claims) (auth.Credential, error) {
	cred, err := s.tokens.Issue(claims)
	if err != nil {
		return auth.Credential{}, apperrors.NewInternalError(err)
	}
	return cred, nil
}

func userClaims(user *domain.User) auth.Claims {
	return auth.Claims{
		auth.ClaimEmail: user.Email,
		auth.ClaimRole:  string(user.Role),
		"name":          user.Name,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return apperrors.NewValidationError("email required", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.NewValidationError("invalid email", map[string]any{"email": email})
	}
	return nil
}
