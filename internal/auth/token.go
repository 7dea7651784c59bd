package auth

import (
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claim keys understood by the service.
const (
	ClaimEmail = "email"
	ClaimRole  = "role"

	claimIssuedAt  = "iat"
	claimExpiresAt = "exp"
)

// Claims is the decoded payload of a credential.
type Claims map[string]any

// Email returns the identity carried by the claims, trimmed and lowercased,
// or "" when absent.
func (c Claims) Email() string {
	v, _ := c[ClaimEmail].(string)
	return strings.ToLower(strings.TrimSpace(v))
}

// Credential is a signed token and the instant it stops being valid.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns the lifetime of issued credentials.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Issue signs claims into a credential valid from now for the configured TTL.
// Caller supplied iat/exp values are replaced.
func (tm *TokenManager) Issue(claims Claims) (Credential, error) {
	if len(tm.secret) == 0 {
		return Credential{}, ErrSigningKeyMissing
	}

	now := tm.now()
	issuedAt := jwt.NewNumericDate(now)
	expiresAt := jwt.NewNumericDate(now.Add(tm.ttl))

	payload := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		payload[k] = v
	}
	payload[claimIssuedAt] = issuedAt
	payload[claimExpiresAt] = expiresAt

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return Credential{}, fmt.Errorf("sign token: %w", err)
	}
	return Credential{Token: signed, ExpiresAt: expiresAt.Time}, nil
}

// Verify checks signature and expiry of a raw token and returns its claims
// without the registered iat/exp entries.
func (tm *TokenManager) Verify(tokenStr string) (Claims, error) {
	if len(tm.secret) == 0 || tokenStr == "" {
		return nil, ErrInvalidCredential
	}

	payload := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, payload, func(*jwt.Token) (interface{}, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredential
	}

	claims := make(Claims, len(payload))
	for k, v := range payload {
		if k == claimIssuedAt || k == claimExpiresAt {
			continue
		}
		claims[k] = v
	}
	return claims, nil
}

// VerifyHeader validates an Authorization header value of the form "Bearer <token>".
func (tm *TokenManager) VerifyHeader(header string) (Claims, error) {
	token, err := BearerToken(header)
	if err != nil {
		return nil, err
	}
	return tm.Verify(token)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingCredential
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidCredential
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrInvalidCredential
	}
	return token, nil
}
