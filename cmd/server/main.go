package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"viciolinks/internal/adapter/http"
	"viciolinks/internal/adapter/postgres"
	"viciolinks/internal/adapter/usecase"
	"viciolinks/internal/auth"
	"viciolinks/internal/config"
	"viciolinks/internal/db"
	"viciolinks/internal/logger"
	"viciolinks/internal/metrics"
)

// main is the entry point of the link backend. It loads configuration,
// optionally runs database migrations and the seed, bootstraps the first
// admin account and serves the HTTP API until SIGINT or SIGTERM.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		version, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return fmt.Errorf("migration error: %w", err)
		}
		log.Info("migrations applied", zap.Uint("version", version))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed error: %w", err)
		}
	}

	m := metrics.New()
	authSvc := usecase.NewAuthUseCase(postgres.NewUserRepository(pool), auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL))
	created, err := authSvc.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		log.Info("bootstrap admin created", zap.String("username", cfg.Auth.AdminUsername))
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Taxonomy: usecase.NewTaxonomyUseCase(postgres.NewTaxonomyRepository(pool)),
		Links:    usecase.NewLinkUseCase(postgres.NewLinkRepository(pool), m),
		Auth:     authSvc,
	}, log, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", zap.Uint16("port", cfg.HTTP.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		log.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
