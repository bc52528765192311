package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petclinic/internal/adapters/auth/jwtverifier"
	"petclinic/internal/config"
	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"
	"petclinic/internal/platform/otel"
	"petclinic/internal/ports/auth"
	"petclinic/internal/router"

	"golang.org/x/sync/errgroup"
)

// @title Petclinic Owner Endpoint API
// @version 1.0
// @description Endpoint remoto de owners: buscar por apellido, buscar por id y guardar.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("failed to load config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.SlogLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, cfg.OTelEndpoint, cfg.OTelServiceName)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	ownerRepo, closeStore, err := router.OpenOwners(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	var verifier auth.AuthVerifier // nil => modo dev
	if cfg.AuthJWTSecret != "" {
		v, err := jwtverifier.New(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
		if err != nil {
			return err
		}
		verifier = v
	}

	m := metrics.NewHTTPMetrics()

	handler := router.NewRouter(router.Options{
		AuthVerifier:   verifier,
		Owners:         ownerRepo,
		OwnerPolicy:    &middleware.Policy{AnonymousAllowed: cfg.OwnerEndpointAnonymousAllowed},
		Logger:         log,
		Metrics:        m,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	servers := []*http.Server{{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}}
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		servers = append(servers, &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			log.Info("starting server", map[string]any{
				"addr":                   srv.Addr,
				"store":                  string(cfg.StoreDriver),
				"owner_anonymous_access": cfg.OwnerEndpointAnonymousAllowed,
			})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down servers", nil)

		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(sctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
