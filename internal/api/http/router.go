package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/motor-mingle/server/internal/api/http/handlers"
	"github.com/motor-mingle/server/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Users    *handlers.UsersHandler
	Catalog  *handlers.CatalogHandler
	Cart     *handlers.CartHandler
	Listings *handlers.ListingsHandler
	SavedAds *handlers.SavedAdsHandler
	Metrics  *handlers.MetricsHandler

	AuthMiddleware *auth.Middleware
}

// Route is one entry of the route table.
type Route struct {
	Method  string
	Path    string
	Access  auth.Access
	Handler fiber.Handler
}

// Routes returns the route table. Static paths precede parameterized siblings.
func Routes(cfg RouteConfig) []Route {
	return []Route{
		{fiber.MethodGet, "/", auth.Public, cfg.Health.Root},
		{fiber.MethodGet, "/health/live", auth.Public, cfg.Health.Live},
		{fiber.MethodGet, "/health/ready", auth.Public, cfg.Health.Ready},
		{fiber.MethodGet, "/metrics", auth.Admin, cfg.Metrics.Snapshot},

		{fiber.MethodPost, "/jwt", auth.Authenticated, cfg.Auth.IssueToken},
		{fiber.MethodPost, "/auth/login", auth.Public, cfg.Auth.Login},

		{fiber.MethodPost, "/users", auth.Public, cfg.Auth.Register},
		{fiber.MethodGet, "/users", auth.Admin, cfg.Users.List},
		{fiber.MethodGet, "/users/me", auth.Authenticated, cfg.Users.Me},
		{fiber.MethodGet, "/users/:email/admin", auth.Authenticated, cfg.Users.AdminStatus},
		{fiber.MethodPut, "/users/:id", auth.Authenticated, cfg.Users.Update},

		{fiber.MethodGet, "/products", auth.Public, cfg.Catalog.ListProducts},
		{fiber.MethodGet, "/products/:id", auth.Public, cfg.Catalog.GetProduct},
		{fiber.MethodPost, "/products", auth.Admin, cfg.Catalog.CreateProduct},
		{fiber.MethodPut, "/products/:id", auth.Admin, cfg.Catalog.UpdateProduct},
		{fiber.MethodDelete, "/products/:id", auth.Admin, cfg.Catalog.DeleteProduct},
		{fiber.MethodGet, "/brands", auth.Public, cfg.Catalog.ListBrands},
		{fiber.MethodGet, "/brands/:brand/products", auth.Public, cfg.Catalog.ListByBrand},

		{fiber.MethodPost, "/cart", auth.Authenticated, cfg.Cart.Add},
		{fiber.MethodGet, "/cart", auth.Authenticated, cfg.Cart.List},
		{fiber.MethodDelete, "/cart/:id", auth.Authenticated, cfg.Cart.Remove},

		{fiber.MethodPost, "/listings", auth.Authenticated, cfg.Listings.Create},
		{fiber.MethodGet, "/listings", auth.Public, cfg.Listings.List},
		{fiber.MethodGet, "/listings/home", auth.Public, cfg.Listings.Home},
		{fiber.MethodGet, "/listings/paginated", auth.Public, cfg.Listings.Paginated},
		{fiber.MethodGet, "/listings/:id", auth.Public, cfg.Listings.Get},
		{fiber.MethodPut, "/listings/:id", auth.Authenticated, cfg.Listings.Update},
		{fiber.MethodPatch, "/listings/:id/sell-status", auth.Authenticated, cfg.Listings.SetSellStatus},
		{fiber.MethodDelete, "/listings/:id", auth.Authenticated, cfg.Listings.Delete},
		{fiber.MethodGet, "/sellers/:email/listings", auth.Authenticated, cfg.Listings.BySeller},
		{fiber.MethodPut, "/sellers/:id/verification", auth.Admin, cfg.Listings.SetSellerVerification},

		{fiber.MethodPost, "/saved-ads", auth.Authenticated, cfg.SavedAds.Save},
		{fiber.MethodGet, "/saved-ads", auth.Authenticated, cfg.SavedAds.List},
		{fiber.MethodGet, "/saved-ads/:listingId", auth.Authenticated, cfg.SavedAds.Get},
		{fiber.MethodDelete, "/saved-ads/:listingId", auth.Authenticated, cfg.SavedAds.Remove},
	}
}

// RegisterRoutes wires HTTP routes, placing the auth gates each route's
// access level requires in front of its handler.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	for _, r := range Routes(cfg) {
		chain := append(cfg.AuthMiddleware.Gates(r.Access), r.Handler)
		app.Add(r.Method, r.Path, chain...)
	}
}
