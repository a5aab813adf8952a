package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/adapter/repo"
	"server/internal/auth"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/workflow"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	country, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		// Country tagging is best effort; the API runs without it.
		logger.Warn().Err(err).Msg("geoip database unavailable")
	}

	runner := infra.NewSQLRunner(dbpool, logger)
	store := repo.NewStore(runner)

	credentials := auth.NewService(auth.Config{
		JWTSecret:  cfg.JWTSecret,
		BcryptCost: cfg.BcryptCost,
		TokenTTL:   cfg.TokenTTL,
	})

	app := &handlers.App{
		Logger:       logger,
		Credentials:  credentials,
		Users:        store.Users,
		Events:       store.Events,
		Donations:    store.Donations,
		Applications: store.Applications,
		Contacts:     store.Contacts,
		Stats:        store.Stats,
		Registration: workflow.NewRegistrationService(store.Events, store.Registrations),
		Review:       workflow.NewApplicationService(store.Applications),
		Country:      country,
	}

	router := httpapi.NewRouter(app, logger, cfg.CORSAllowedOrigins)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
