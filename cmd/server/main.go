package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	aquariumhandler "aquaria/internal/aquarium/handler"
	aquariummetrics "aquaria/internal/aquarium/metrics"
	aquariumservice "aquaria/internal/aquarium/service"
	accessorystore "aquaria/internal/aquarium/store/accessory"
	aquariumstore "aquaria/internal/aquarium/store/aquarium"
	historystore "aquaria/internal/aquarium/store/history"
	inhabitantstore "aquaria/internal/aquarium/store/inhabitant"
	ornamentstore "aquaria/internal/aquarium/store/ornament"
	jwttoken "aquaria/internal/jwt_token"
	ownerhandler "aquaria/internal/owner/handler"
	ownermodels "aquaria/internal/owner/models"
	ownerservice "aquaria/internal/owner/service"
	lockoutstore "aquaria/internal/owner/store/lockout"
	ownerstore "aquaria/internal/owner/store/owner"
	"aquaria/internal/owner/store/revocation"
	"aquaria/internal/platform/config"
	"aquaria/internal/platform/database"
	"aquaria/internal/platform/health"
	"aquaria/internal/platform/logger"
	"aquaria/internal/platform/metrics"
	"aquaria/internal/platform/redis"
	"aquaria/internal/platform/tracing"
	httptransport "aquaria/internal/transport/http"
	"aquaria/migrations"
	auditpostgres "aquaria/pkg/platform/audit/store/postgres"
	"aquaria/pkg/platform/middleware/request"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Environment)
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("initializing aquaria",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"database", cfg.Database.URL != "",
		"redis", cfg.Redis.URL != "",
	)

	pool, err := database.New(ctx, cfg.Database)
	if err != nil {
		log.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer pool.Close() //nolint:errcheck // shutdown path
	if pool != nil {
		if err := migrations.Apply(ctx, pool.DB()); err != nil {
			log.Error("apply migrations", "error", err)
			os.Exit(1)
		}
		if err := pool.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
			log.Warn("database pool metrics unavailable", "error", err)
		}
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close() //nolint:errcheck // shutdown path
		go redisClient.ReportPoolStats(ctx, 15*time.Second)
	}

	healthHandler := health.New(cfg.Environment)
	if pool != nil {
		healthHandler.RegisterCheck("database", pool.Health)
	}
	if redisClient != nil {
		healthHandler.RegisterCheck("redis", redisClient.Health)
	}

	jwt := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	owners := buildOwnerService(pool, redisClient, jwt, log)
	aquariums := buildAquariumService(pool, log)

	router := httptransport.NewRouter(httptransport.Dependencies{
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
		RequestMetrics: request.NewMetrics(),
		Health:         healthHandler,
		Owners:         ownerhandler.New(owners, log),
		Aquariums:      aquariumhandler.New(aquariums, log),
		TokenValidator: jwttoken.NewJWTServiceAdapter(jwt),
		Revocations:    owners,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

func buildOwnerService(pool *database.Pool, redisClient *redis.Client, jwt *jwttoken.JWTService, log *slog.Logger) *ownerservice.Service {
	opts := []ownerservice.Option{
		ownerservice.WithLogger(log),
		ownerservice.WithMetrics(metrics.New()),
	}

	var store ownerservice.OwnerStore = ownerstore.New()
	if pool != nil {
		store = ownerstore.NewPostgres(pool.DB())
		opts = append(opts, ownerservice.WithAuditEmitter(auditpostgres.New(pool.DB())))
	}

	var trl ownerservice.TokenRevocationList = revocation.NewInMemoryTRL()
	var lockouts ownerservice.LockoutStore = lockoutstore.New()
	if redisClient != nil {
		trl = revocation.NewResilientTRL(revocation.NewRedisTRL(redisClient.Client), log)
		lockouts = lockoutstore.NewRedis(redisClient.Client)
	}
	opts = append(opts, ownerservice.WithLockout(lockouts, ownermodels.DefaultLockoutPolicy()))

	return ownerservice.New(store, jwt, trl, opts...)
}

func buildAquariumService(pool *database.Pool, log *slog.Logger) *aquariumservice.Service {
	opts := []aquariumservice.Option{
		aquariumservice.WithLogger(log),
		aquariumservice.WithMetrics(aquariummetrics.New()),
		aquariumservice.WithTracer(tracing.NewOTel("aquaria/aquarium")),
	}
	if pool == nil {
		return aquariumservice.New(aquariumservice.Stores{
			Aquariums:   aquariumstore.New(),
			Inhabitants: inhabitantstore.New(),
			Accessories: accessorystore.New(),
			Ornaments:   ornamentstore.New(),
			History:     historystore.New(),
		}, opts...)
	}

	db := pool.DB()
	opts = append(opts,
		aquariumservice.WithTx(newAquariumPostgresTx(db)),
		aquariumservice.WithAuditEmitter(auditpostgres.New(db)),
	)
	return aquariumservice.New(aquariumservice.Stores{
		Aquariums:   aquariumstore.NewPostgres(db),
		Inhabitants: inhabitantstore.NewPostgres(db),
		Accessories: accessorystore.NewPostgres(db),
		Ornaments:   ornamentstore.NewPostgres(db),
		History:     historystore.NewPostgres(db),
	}, opts...)
}
