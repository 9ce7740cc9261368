package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/srgjo27/event_ticketing/internal/adapter/audit"
	"github.com/srgjo27/event_ticketing/internal/adapter/cache"
	"github.com/srgjo27/event_ticketing/internal/adapter/handler"
	"github.com/srgjo27/event_ticketing/internal/adapter/repository/postgres"
	"github.com/srgjo27/event_ticketing/internal/adapter/session"
	"github.com/srgjo27/event_ticketing/internal/core/access"
	"github.com/srgjo27/event_ticketing/internal/core/ledger"
	"github.com/srgjo27/event_ticketing/internal/core/services"
	"github.com/srgjo27/event_ticketing/internal/platform/config"
	"github.com/srgjo27/event_ticketing/internal/platform/database"
	"github.com/srgjo27/event_ticketing/internal/platform/logger"
)

const auditBuffer = 256

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.Postgres, logg)
	if err != nil {
		logg.Fatal("failed to connect to db after retries", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logg.Fatal("failed to run migrations", zap.Error(err))
	}

	logg.Info("connecting to redis", zap.String("addr", cfg.Redis.Addr))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logg.Fatal("failed to connect to redis", zap.Error(err))
	}
	logg.Info("redis connected")

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	poolRepo := postgres.NewTicketPoolRepository(db)
	regRepo := postgres.NewRegistrationRepository(db)

	auditSink := audit.NewLogSink(logg, auditBuffer)
	auditCtx, stopAudit := context.WithCancel(context.Background())
	go auditSink.Run(auditCtx)

	gate := access.NewGate(auditSink)
	seats := ledger.New(poolRepo)
	availability := cache.NewAvailabilityCache(redisClient, cfg.Redis.AvailabilityTTL)
	sessions := session.NewRedisStore(redisClient)
	tokens := session.NewTokenIssuer(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.TTL)

	userService := services.NewUserService(userRepo, gate, logg, 0)
	authService := services.NewAuthService(userRepo, sessions, tokens, gate, logg, cfg.Session.TTL)
	eventService := services.NewEventService(eventRepo, poolRepo, regRepo, seats, gate, availability, logg)
	bookingService := services.NewBookingService(eventRepo, regRepo, seats, gate, availability, logg)

	if err := userService.EnsureBootstrapAdmin(ctx, services.UserInput{
		Name:     cfg.Bootstrap.Name,
		Email:    cfg.Bootstrap.Email,
		Password: cfg.Bootstrap.Password,
	}); err != nil {
		logg.Fatal("failed to bootstrap admin", zap.Error(err))
	}

	go eventService.RunSnapshotRefresh(ctx, cfg.SnapshotInterval)

	h := handler.NewHandler(authService, eventService, bookingService, userService, logg)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler.NewRouter(h, logg),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		logg.Info("server starting", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server startup failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logg.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error("server forced to shutdown", zap.Error(err))
	}

	stopAudit()
	auditSink.Wait()

	logg.Info("server exiting")
}
