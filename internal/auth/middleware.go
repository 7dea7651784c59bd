package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/motor-mingle/server/internal/domain"
)

const claimsKey = "auth_claims"

// Middleware turns the token verifier and role gate into fiber handlers.
type Middleware struct {
	tokens *TokenManager
	gate   *Gate
	logger *zap.Logger
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, gate *Gate, logger *zap.Logger) *Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Middleware{tokens: tokens, gate: gate, logger: logger}
}

// Gates returns the ordered handlers enforcing access. Public routes get none.
func (m *Middleware) Gates(access Access) []fiber.Handler {
	if !access.RequiresToken() {
		return nil
	}
	gates := []fiber.Handler{m.Authenticate}
	if role := access.Role(); role != "" {
		gates = append(gates, m.CheckRole(role))
	}
	return gates
}

// Authenticate verifies the bearer token and stores its claims for later gates and handlers.
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	claims, err := m.tokens.VerifyHeader(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return err
	}
	c.Locals(claimsKey, claims)
	return c.Next()
}

// CheckRole requires the verified caller to hold role. It only reads claims
// written by Authenticate.
func (m *Middleware) CheckRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return ErrMissingCredential
		}
		if err := m.gate.Authorize(c.UserContext(), claims, role); err != nil {
			if IsLookupFailure(err) {
				m.logger.Error("role lookup failed",
					zap.String("email", claims.Email()),
					zap.String("role", string(role)),
					zap.Error(err))
			}
			return err
		}
		return c.Next()
	}
}

// ClaimsFromContext retrieves the verified claims.
func ClaimsFromContext(c *fiber.Ctx) (Claims, bool) {
	claims, ok := c.Locals(claimsKey).(Claims)
	return claims, ok
}

// CallerEmail returns the verified identity of the caller.
func CallerEmail(c *fiber.Ctx) (string, bool) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		return "", false
	}
	email := claims.Email()
	return email, email != ""
}
