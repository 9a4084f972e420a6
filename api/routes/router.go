package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emberoak/atelier-backend/api/controllers"
	"github.com/emberoak/atelier-backend/api/middleware"
	authsvc "github.com/emberoak/atelier-backend/internal/auth"
	"github.com/emberoak/atelier-backend/internal/bookings"
	checkoutsvc "github.com/emberoak/atelier-backend/internal/checkout"
	"github.com/emberoak/atelier-backend/internal/connect"
	"github.com/emberoak/atelier-backend/internal/posts"
	"github.com/emberoak/atelier-backend/internal/products"
	"github.com/emberoak/atelier-backend/internal/projects"
	"github.com/emberoak/atelier-backend/internal/settings"
	"github.com/emberoak/atelier-backend/pkg/config"
	"github.com/emberoak/atelier-backend/pkg/logger"
	"github.com/emberoak/atelier-backend/pkg/metrics"
	"github.com/emberoak/atelier-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DBPinger    controllers.Pinger
	RedisClient *redis.Client
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics

	AuthService     authsvc.Service
	ProductsService products.Service
	PostsService    posts.Service
	ProjectsService projects.Service
	BookingsService bookings.Service
	SettingsService settings.Service
	CheckoutService checkoutsvc.Service
	ConnectService  connect.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.Checkout.PublicBaseURL),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DBPinger, deps.RedisClient))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(deps.RedisClient, logg))

		r.Get("/products", controllers.ListPublishedProducts(deps.ProductsService, logg))
		r.Get("/posts", controllers.ListPublishedPosts(deps.PostsService, logg))
		r.Get("/projects", controllers.ListProjects(deps.ProjectsService, logg))
		r.Post("/bookings", controllers.CreateBooking(deps.BookingsService, logg))
		r.Post("/checkout", controllers.Checkout(deps.CheckoutService, deps.ProductsService, deps.SettingsService, logg))
		r.Get("/connect/callback", controllers.ConnectCallback(deps.ConnectService, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.RedisClient, logg)).
			Post("/auth/login", controllers.Login(deps.AuthService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Use(middleware.Idempotency(deps.RedisClient, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.ListAllProducts(deps.ProductsService, logg))
				r.Post("/", controllers.CreateProduct(deps.ProductsService, logg))
				r.Patch("/{id}", controllers.UpdateProduct(deps.ProductsService, logg))
				r.Delete("/{id}", controllers.DeleteProduct(deps.ProductsService, logg))
			})
			r.Route("/posts", func(r chi.Router) {
				r.Get("/", controllers.ListAllPosts(deps.PostsService, logg))
				r.Post("/", controllers.CreatePost(deps.PostsService, logg))
				r.Patch("/{id}", controllers.UpdatePost(deps.PostsService, logg))
				r.Delete("/{id}", controllers.DeletePost(deps.PostsService, logg))
			})
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", controllers.ListProjects(deps.ProjectsService, logg))
				r.Post("/", controllers.CreateProject(deps.ProjectsService, logg))
				r.Patch("/{id}", controllers.UpdateProject(deps.ProjectsService, logg))
				r.Delete("/{id}", controllers.DeleteProject(deps.ProjectsService, logg))
			})
			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", controllers.ListBookings(deps.BookingsService, logg))
				r.Post("/{id}/status", controllers.UpdateBookingStatus(deps.BookingsService, logg))
			})
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", controllers.GetSettings(deps.SettingsService, logg))
				r.Put("/", controllers.UpdateSettings(deps.SettingsService, logg))
			})
			r.Post("/connect/onboard", controllers.ConnectOnboard(deps.ConnectService, logg))
		})
	})

	return r
}
