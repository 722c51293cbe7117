package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/craftroots/craftroots-backend/api/controllers"
	"github.com/craftroots/craftroots-backend/api/routes"
	"github.com/craftroots/craftroots-backend/internal/admin"
	"github.com/craftroots/craftroots-backend/internal/banners"
	"github.com/craftroots/craftroots-backend/internal/blogs"
	"github.com/craftroots/craftroots-backend/internal/catalog"
	"github.com/craftroots/craftroots-backend/internal/inquiries"
	"github.com/craftroots/craftroots-backend/internal/notify"
	"github.com/craftroots/craftroots-backend/internal/reels"
	"github.com/craftroots/craftroots-backend/internal/workshops"
	"github.com/craftroots/craftroots-backend/pkg/config"
	"github.com/craftroots/craftroots-backend/pkg/db"
	"github.com/craftroots/craftroots-backend/pkg/env"
	"github.com/craftroots/craftroots-backend/pkg/logger"
	"github.com/craftroots/craftroots-backend/pkg/metrics"
	"github.com/craftroots/craftroots-backend/pkg/migrate"
	"github.com/craftroots/craftroots-backend/pkg/redis"
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

	fulfillmentMetrics := metrics.NewFulfillmentMetrics(prometheus.DefaultRegisterer)
	dispatcher := notify.NewDispatcher(notify.NewWhatsAppClient(cfg.WhatsApp), logg)

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo, dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	inquiryService, err := inquiries.NewService(
		inquiries.NewRepository(dbClient.DB()),
		catalogRepo,
		catalog.NewStockLedger(),
		dbClient,
		dispatcher,
		fulfillmentMetrics,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create inquiry service", err)
		os.Exit(1)
	}

	blogService, err := blogs.NewService(blogs.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create blog service", err)
		os.Exit(1)
	}

	bannerService, err := banners.NewService(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create banner service", err)
		os.Exit(1)
	}

	reelService, err := reels.NewService(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create reel service", err)
		os.Exit(1)
	}

	workshopService, err := workshops.NewService(workshops.NewRepository(dbClient.DB()), dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create workshop service", err)
		os.Exit(1)
	}

	adminService := admin.NewService(cfg.Admin, cfg.JWT)

	router := routes.NewRouter(cfg, logg, routes.Services{
		Admin:     adminService,
		Catalog:   catalogService,
		Inquiries: inquiryService,
		Blogs:     blogService,
		Banners:   bannerService,
		Reels:     reelService,
		Workshops: workshopService,
	}, routes.Deps{
		Readiness: controllers.ReadinessDeps(dbClient, redisClient),
		Redis:     redisClient,
	})

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "api server shutting down gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "error during shutdown", err)
		}
	}
}
