package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/svsdigitals/printshop-backend/api/controllers"
	"github.com/svsdigitals/printshop-backend/api/middleware"
	internalauth "github.com/svsdigitals/printshop-backend/internal/auth"
	"github.com/svsdigitals/printshop-backend/internal/cart"
	"github.com/svsdigitals/printshop-backend/internal/catalog"
	checkoutsvc "github.com/svsdigitals/printshop-backend/internal/checkout"
	"github.com/svsdigitals/printshop-backend/internal/customers"
	"github.com/svsdigitals/printshop-backend/internal/orders"
	"github.com/svsdigitals/printshop-backend/internal/settings"
	"github.com/svsdigitals/printshop-backend/pkg/auth/session"
	"github.com/svsdigitals/printshop-backend/pkg/config"
	"github.com/svsdigitals/printshop-backend/pkg/db"
	"github.com/svsdigitals/printshop-backend/pkg/logger"
	"github.com/svsdigitals/printshop-backend/pkg/metrics"
	"github.com/svsdigitals/printshop-backend/pkg/redis"
)

// Deps carries everything the HTTP surface needs wired in.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       *redis.Client
	Sessions    session.AccessSessionChecker
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer

	Auth      internalauth.Service
	Catalog   catalog.Service
	Cart      cart.Service
	Checkout  checkoutsvc.Service
	Orders    orders.Service
	Customers customers.Service
	Settings  settings.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ProductList(deps.Catalog, logg))
		r.Get("/products/{idOrSlug}", controllers.ProductDetail(deps.Catalog, logg))
		r.Get("/categories", controllers.CategoryList(deps.Catalog, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(deps.Cart, logg))
				r.Delete("/", controllers.CartClear(deps.Cart, logg))
				r.Get("/summary", controllers.CartSummary(deps.Checkout, logg))
				r.Post("/items", controllers.CartAddItem(deps.Cart, logg))
				r.Put("/items/{productId}", controllers.CartSetItem(deps.Cart, logg))
				r.Patch("/items/{productId}", controllers.CartUpdateQuantity(deps.Cart, logg))
				r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.Cart, logg))
			})

			r.Post("/checkout", controllers.Checkout(deps.Checkout, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).
				Post("/login", controllers.AuthLogin(deps.Auth, logg))
			r.Post("/logout", controllers.AuthLogout(deps.Auth, cfg.JWT, logg))
			if !cfg.App.IsProd() {
				r.Post("/register", controllers.AuthRegister(deps.Auth, logg))
			}
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.AdminProductList(deps.Catalog, logg))
			r.Post("/", controllers.AdminCreateProduct(deps.Catalog, logg))
			r.Put("/{productId}", controllers.AdminUpdateProduct(deps.Catalog, logg))
			r.Delete("/{productId}", controllers.AdminDeleteProduct(deps.Catalog, logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.CategoryList(deps.Catalog, logg))
			r.Post("/", controllers.AdminCreateCategory(deps.Catalog, logg))
			r.Put("/{categoryId}", controllers.AdminRenameCategory(deps.Catalog, logg))
			r.Delete("/{categoryId}", controllers.AdminDeleteCategory(deps.Catalog, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminOrderList(deps.Orders, logg))
			r.Get("/{orderId}", controllers.AdminOrderDetail(deps.Orders, logg))
			r.Patch("/{orderId}/status", controllers.AdminUpdateOrderStatus(deps.Orders, logg))
			r.Delete("/{orderId}", controllers.AdminDeleteOrder(deps.Orders, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.AdminCustomerList(deps.Customers, logg))
			r.Get("/{customerId}", controllers.AdminCustomerDetail(deps.Customers, logg))
			r.Put("/{customerId}", controllers.AdminUpdateCustomer(deps.Customers, logg))
			r.Delete("/{customerId}", controllers.AdminDeleteCustomer(deps.Customers, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.AdminSettingsGet(deps.Settings, logg))
			r.Put("/", controllers.AdminSettingsUpdate(deps.Settings, logg))
		})

		r.Get("/dashboard", controllers.AdminDashboard(deps.Orders, deps.Customers, logg))
	})

	return r
}
