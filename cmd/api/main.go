package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/landon-studio/Rm8-dash-sub001/api/routes"
	"github.com/landon-studio/Rm8-dash-sub001/internal/household"
	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/internal/settings"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/config"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/db"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/kvstore"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/migrate"
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

	kv, err := kvstore.New(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create kv store", err)
		os.Exit(1)
	}

	settingsManager, err := settings.NewManager(settings.ManagerParams{Logger: logg, KV: kv})
	if err != nil {
		logg.Error(context.Background(), "failed to create settings manager", err)
		os.Exit(1)
	}

	notificationStore, err := notifications.NewStore(context.Background(), notifications.StoreParams{
		Logger: logg,
		KV:     kv,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create notification store", err)
		os.Exit(1)
	}

	householdService, err := household.NewService(household.NewRepository(dbClient.DB()), nil)
	if err != nil {
		logg.Error(context.Background(), "failed to create household service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:        cfg,
			Logger:        logg,
			DB:            dbClient,
			Household:     householdService,
			Notifications: notificationStore,
			Settings:      settingsManager,
		}),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(shutdownCtx, "error shutting down api server", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "api server shutting down gracefully")
}
