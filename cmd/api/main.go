// Package main is the entry point for the canteen API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"github.com/campuscanteen/backend/internal/config"
	"github.com/campuscanteen/backend/internal/handler"
	"github.com/campuscanteen/backend/internal/logger"
	"github.com/campuscanteen/backend/internal/middleware"
	"github.com/campuscanteen/backend/internal/repo"
	"github.com/campuscanteen/backend/internal/service"
	"github.com/campuscanteen/backend/internal/view"
	"github.com/campuscanteen/backend/migrations"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet.
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	log, err := logger.New(logger.Config{
		Level:          cfg.LogLevel,
		Env:            cfg.Env,
		ServiceVersion: version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database ---------------------------------------------------------
	pool, err := repo.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info().Msg("database connection established")

	if cfg.AutoMigrate {
		if err := migrate(ctx, pool, log); err != nil {
			return err
		}
	}

	// --- Services ---------------------------------------------------------
	canteens := repo.NewCanteenRepo(pool)
	windows := repo.NewWindowRepo(pool)
	dishes := repo.NewDishRepo(pool)
	tags := repo.NewTagRepo(pool)
	remarks := repo.NewRemarkRepo(pool)

	auth := service.NewAuthService(repo.NewUserRepo(pool), repo.NewSessionRepo(pool), cfg.SessionTTL)
	if cfg.AdminUsername != "" {
		created, err := auth.EnsureSuperuser(ctx, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			return err
		}
		if created {
			log.Info().Str("username", cfg.AdminUsername).Msg("superuser created")
		}
	}

	renderer, err := view.New()
	if err != nil {
		return err
	}
	srv := handler.NewServer(handler.Services{
		Canteens: service.NewCanteenService(canteens),
		Windows:  service.NewWindowService(windows, canteens),
		Dishes:   service.NewDishService(dishes, windows, tags, remarks),
		Tags:     service.NewTagService(tags, dishes),
		Menu:     service.NewMenuService(canteens, windows, dishes, tags),
		Remarks:  service.NewRemarkService(remarks, dishes),
		Auth:     auth,
		Export:   service.NewExportService(repo.NewExportRepo(pool)),
		DB:       pool,
	}, renderer, handler.Options{
		CookieSecure:   cfg.CookieSecure,
		AllowedOrigins: cfg.CORSOrigins,
	})

	// --- Router -----------------------------------------------------------
	// RequestID must run before the request logger so every line carries it.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewRequestLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", srv.Routes())

	go sweepSessions(ctx, auth, cfg.SessionSweep, log)

	// --- HTTP Server ------------------------------------------------------
	// WriteTimeout stays zero so websocket connections are not cut off;
	// ordinary handlers are bounded by ReadHeaderTimeout and the DB.
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", httpSrv.Addr).Str("env", cfg.Env).Msg("server starting")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// migrate applies pending migrations through a database/sql handle that
// borrows connections from pool.
func migrate(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	n, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	log.Info().Int("applied", n).Msg("migrations up to date")
	return nil
}

// sweepSessions deletes expired sessions every interval until ctx ends.
func sweepSessions(ctx context.Context, auth *service.AuthService, every time.Duration, log zerolog.Logger) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := auth.PurgeExpired(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("session sweep failed")
				continue
			}
			if n > 0 {
				log.Debug().Int64("deleted", n).Msg("expired sessions removed")
			}
		}
	}
}
