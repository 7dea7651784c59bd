package auth

import (
	"errors"
	"net/http"

	apperrors "github.com/motor-mingle/server/pkg/util"
)

// ErrSigningKeyMissing is returned by the issuer when no signing secret is configured.
var ErrSigningKeyMissing = errors.New("auth: signing secret not configured")

// Request rejection errors. They are rendered as-is by the HTTP error middleware.
var (
	ErrMissingCredential = apperrors.NewDomainError("UNAUTHORIZED", "Unauthorized: missing authorization header", http.StatusUnauthorized, nil)
	ErrInvalidCredential = apperrors.NewDomainError("UNAUTHORIZED", "Unauthorized: invalid or expired token", http.StatusUnauthorized, nil)
	ErrMalformedClaims   = apperrors.NewDomainError("MALFORMED_CLAIMS", "Forbidden access: token carries no identity", http.StatusForbidden, nil)
	ErrForbidden         = apperrors.NewDomainError("FORBIDDEN", "Forbidden access!", http.StatusForbidden, nil)
)

// LookupFailed wraps a user store failure hit while checking a role.
func LookupFailed(err error) error {
	return &apperrors.DomainError{
		Code:       "LOOKUP_FAILED",
		Message:    "unable to verify user role",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsLookupFailure reports whether err came from a failed role lookup.
func IsLookupFailure(err error) bool {
	var de *apperrors.DomainError
	return errors.As(err, &de) && de.Code == "LOOKUP_FAILED"
}
