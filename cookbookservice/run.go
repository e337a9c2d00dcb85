// Package cookbookservice boots the cookbook HTTP service.
package cookbookservice

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/hearthbook/hearthbook/internal/api"
	"github.com/hearthbook/hearthbook/internal/config"
	"github.com/hearthbook/hearthbook/internal/factory"
	"github.com/hearthbook/hearthbook/internal/logger"
	"github.com/hearthbook/hearthbook/internal/services"
	"github.com/hearthbook/hearthbook/internal/store/kvjson"
)

// logLevelFor maps the deployment environment to a log level: production
// stays at info, everything else gets debug.
func logLevelFor(cfg *config.Config) zerolog.Level {
	if cfg.IsProduction() {
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}

// Run starts the cookbook service HTTP server and blocks until shutdown or
// error.
func Run() error {
	log := logger.New("cookbook-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	log = log.Level(logLevelFor(cfg))

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("kv_driver", cfg.KVDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Cookbook service starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rawKV, err := factory.NewKV(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("KV store unavailable")
		return err
	}

	st := kvjson.New(rawKV, log)

	// Seed the default head account so a fresh install can sign in.
	authSvc := services.NewAuthService(st, services.NewFamilyService(st))
	if err := authSvc.EnsureDefaultHead(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to seed default head account")
		return err
	}

	router := api.NewRouter(st, rawKV)
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}
