package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motor-mingle/server/internal/api/http/handlers"
	"github.com/motor-mingle/server/internal/auth"
	"github.com/motor-mingle/server/internal/config"
	"github.com/motor-mingle/server/internal/domain"
	"github.com/motor-mingle/server/internal/observability"
	"github.com/motor-mingle/server/internal/repository"
	"github.com/motor-mingle/server/internal/service"
)

type memoryUsers struct {
	byEmail map[string]*domain.User
}

func (m *memoryUsers) Create(context.Context, *domain.User) error { return errors.New("read only") }
func (m *memoryUsers) Update(context.Context, *domain.User) error { return errors.New("read only") }
func (m *memoryUsers) UpdateVerifyStatus(context.Context, string, domain.VerifyStatus) error {
	return errors.New("read only")
}

func (m *memoryUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUsers) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.byEmail {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

type testServer struct {
	app     *fiber.App
	authSvc *service.AuthService
}

func newTestServer(t *testing.T, deps map[string]handlers.Pinger) *testServer {
	t.Helper()

	users := &memoryUsers{byEmail: map[string]*domain.User{
		"boss@x.com":   {ID: "11111111-1111-1111-1111-111111111111", Name: "Boss", Email: "boss@x.com", Role: domain.RoleAdmin},
		"member@x.com": {ID: "22222222-2222-2222-2222-222222222222", Name: "Member", Email: "member@x.com", Role: domain.RoleUser},
	}}
	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "router-secret", BcryptCost: 4}}
	authSvc := service.NewAuthService(cfg, service.AuthDependencies{UserRepo: users})
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(nil, metrics)})
	RegisterMiddlewares(app, nil, metrics, MiddlewareConfig{AllowOrigins: "*"})
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("motor-mingle-test", "test", deps),
		Auth:           handlers.NewAuthHandler(authSvc),
		Users:          handlers.NewUsersHandler(service.NewUserService(users)),
		Metrics:        handlers.NewMetricsHandler(metrics),
		AuthMiddleware: auth.NewMiddleware(authSvc.TokenManager(), auth.NewGate(users), nil),
	})
	return &testServer{app: app, authSvc: authSvc}
}

func (s *testServer) do(t *testing.T, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func (s *testServer) token(t *testing.T, email string) string {
	t.Helper()
	cred, err := s.authSvc.TokenManager().Issue(auth.Claims{"email": email})
	require.NoError(t, err)
	return cred.Token
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func TestRoutes_Banner(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, handlers.Banner, string(raw))
}

func TestRoutes_ReissueTokenThenUseIt(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodPost, "/jwt", s.token(t, "member@x.com"), `{"name":"Member"}`)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	token := data["token"].(string)
	assert.NotEmpty(t, data["expires_at"])

	status, body = s.do(t, http.MethodGet, "/users/me", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "member@x.com", body["data"].(map[string]any)["email"])

	status, _ = s.do(t, http.MethodPost, "/jwt", token, "")
	assert.Equal(t, http.StatusOK, status)
}

func TestRoutes_AnonymousCannotMintAdminToken(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodPost, "/jwt", "", `{"email":"boss@x.com"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Nil(t, body["data"])

	status, _ = s.do(t, http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = s.do(t, http.MethodPost, "/jwt", s.token(t, "member@x.com"), `{"email":"boss@x.com"}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Nil(t, body["data"])

	status, body = s.do(t, http.MethodPost, "/jwt", s.token(t, "member@x.com"), `{"role":"admin"}`)
	require.Equal(t, http.StatusOK, status)
	token := body["data"].(map[string]any)["token"].(string)
	status, _ = s.do(t, http.MethodGet, "/users", token, "")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRoutes_AuthenticatedLevel(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodGet, "/users/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", errorCode(body))

	status, _ = s.do(t, http.MethodGet, "/users/me", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(t, http.MethodGet, "/users/me", s.token(t, "stranger@x.com"), "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRoutes_RoleLevel(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodGet, "/users", s.token(t, "member@x.com"), "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", errorCode(body))

	status, _ = s.do(t, http.MethodGet, "/users", s.token(t, "stranger@x.com"), "")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(t, http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = s.do(t, http.MethodGet, "/users", s.token(t, "boss@x.com"), "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, _ = s.do(t, http.MethodGet, "/metrics", s.token(t, "boss@x.com"), "")
	assert.Equal(t, http.StatusOK, status)
}

func TestRoutes_AdminStatusOnlyForSelf(t *testing.T) {
	s := newTestServer(t, nil)

	status, body := s.do(t, http.MethodGet, "/users/boss@x.com/admin", s.token(t, "boss@x.com"), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["data"].(map[string]any)["admin"])

	status, _ = s.do(t, http.MethodGet, "/users/boss@x.com/admin", s.token(t, "member@x.com"), "")
	assert.Equal(t, http.StatusForbidden, status)

	status, body = s.do(t, http.MethodGet, "/users/boss@x.com/admin", s.token(t, "Boss@X.com"), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["data"].(map[string]any)["admin"])
}

func TestRoutes_GatedRoutesRejectBeforeHandlers(t *testing.T) {
	s := newTestServer(t, nil)
	member := s.token(t, "member@x.com")

	for _, r := range Routes(RouteConfig{}) {
		if !r.Access.RequiresToken() {
			continue
		}
		path := strings.NewReplacer(":id", "x", ":email", "member@x.com", ":listingId", "x", ":brand", "x").Replace(r.Path)

		status, _ := s.do(t, r.Method, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, status, "%s %s", r.Method, r.Path)

		if r.Access.Role() == domain.RoleAdmin {
			status, _ = s.do(t, r.Method, path, member, "")
			assert.Equal(t, http.StatusForbidden, status, "%s %s", r.Method, r.Path)
		}
	}
}

func TestRoutes_AccessLevels(t *testing.T) {
	want := map[string]auth.Access{
		"GET /listings":                   auth.Public,
		"GET /listings/:id":               auth.Public,
		"POST /jwt":                       auth.Authenticated,
		"POST /users":                     auth.Public,
		"GET /users":                      auth.Admin,
		"POST /listings":                  auth.Authenticated,
		"GET /cart":                       auth.Authenticated,
		"DELETE /products/:id":            auth.Admin,
		"PUT /sellers/:id/verification":   auth.Admin,
		"GET /metrics":                    auth.Admin,
		"PATCH /listings/:id/sell-status": auth.Authenticated,
	}

	got := map[string]auth.Access{}
	for _, r := range Routes(RouteConfig{}) {
		key := r.Method + " " + r.Path
		_, dup := got[key]
		assert.False(t, dup, "duplicate route %s", key)
		got[key] = r.Access
	}
	for key, access := range want {
		assert.Equal(t, access.String(), got[key].String(), key)
	}
}

func TestRoutes_Health(t *testing.T) {
	s := newTestServer(t, nil)
	status, body := s.do(t, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])

	s = newTestServer(t, map[string]handlers.Pinger{"postgres": failingPinger{}})
	status, body = s.do(t, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "DEPENDENCY_UNAVAILABLE", errorCode(body))
}

func TestRoutes_UnknownPath(t *testing.T) {
	s := newTestServer(t, nil)
	status, body := s.do(t, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(body))
}
