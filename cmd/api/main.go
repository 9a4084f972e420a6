package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/emberoak/atelier-backend/api/routes"
	"github.com/emberoak/atelier-backend/internal/auth"
	"github.com/emberoak/atelier-backend/internal/bookings"
	"github.com/emberoak/atelier-backend/internal/checkout"
	"github.com/emberoak/atelier-backend/internal/connect"
	"github.com/emberoak/atelier-backend/internal/posts"
	"github.com/emberoak/atelier-backend/internal/products"
	"github.com/emberoak/atelier-backend/internal/projects"
	"github.com/emberoak/atelier-backend/internal/settings"
	"github.com/emberoak/atelier-backend/internal/users"
	"github.com/emberoak/atelier-backend/pkg/config"
	"github.com/emberoak/atelier-backend/pkg/db"
	"github.com/emberoak/atelier-backend/pkg/logger"
	"github.com/emberoak/atelier-backend/pkg/metrics"
	"github.com/emberoak/atelier-backend/pkg/migrate"
	"github.com/emberoak/atelier-backend/pkg/redis"
	pkgstripe "github.com/emberoak/atelier-backend/pkg/stripe"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	stripeClient, err := pkgstripe.NewClient(context.Background(), cfg.Stripe, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap payment provider", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	paymentMetrics := metrics.NewPaymentMetrics(registry)

	authService, err := auth.NewService(auth.ServiceParams{
		Users:  users.NewRepository(dbClient.DB()),
		JWTCfg: cfg.JWT,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	productsService, err := products.NewService(products.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create products service", err)
		os.Exit(1)
	}

	postsService, err := posts.NewService(posts.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create posts service", err)
		os.Exit(1)
	}

	projectsService, err := projects.NewService(projects.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create projects service", err)
		os.Exit(1)
	}

	bookingsService, err := bookings.NewService(bookings.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create bookings service", err)
		os.Exit(1)
	}

	settingsRepo := settings.NewRepository(dbClient.DB())
	settingsService, err := settings.NewService(settingsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	checkoutProvider, err := checkout.NewStripeProvider(stripeClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout provider", err)
		os.Exit(1)
	}
	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Provider:    checkoutProvider,
		CheckoutCfg: cfg.Checkout,
		Logger:      logg,
		Payments:    paymentMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	connectProvider, err := connect.NewStripeProvider(stripeClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create onboarding provider", err)
		os.Exit(1)
	}
	connectService, err := connect.NewService(connect.ServiceParams{
		Repo:        settingsRepo,
		Provider:    connectProvider,
		CheckoutCfg: cfg.Checkout,
		Logger:      logg,
		Payments:    paymentMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create onboarding service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":        cfg.App.Env,
		"addr":       addr,
		"stripe_env": stripeClient.Environment(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			DBPinger:    dbClient,
			RedisClient: redisClient,
			Registry:    registry,
			HTTPMetrics: httpMetrics,

			AuthService:     authService,
			ProductsService: productsService,
			PostsService:    postsService,
			ProjectsService: projectsService,
			BookingsService: bookingsService,
			SettingsService: settingsService,
			CheckoutService: checkoutService,
			ConnectService:  connectService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
