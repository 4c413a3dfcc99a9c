package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/akosua/remitgh/internal/adapter/http"
	"github.com/akosua/remitgh/internal/adapter/http/handler"
	postgresRepo "github.com/akosua/remitgh/internal/adapter/repository/postgres"
	redisRepo "github.com/akosua/remitgh/internal/adapter/repository/redis"
	"github.com/akosua/remitgh/internal/infrastructure/auth"
	"github.com/akosua/remitgh/internal/infrastructure/config"
	"github.com/akosua/remitgh/internal/infrastructure/eventpublisher"
	"github.com/akosua/remitgh/internal/infrastructure/gateway"
	"github.com/akosua/remitgh/internal/infrastructure/logger"
	"github.com/akosua/remitgh/internal/infrastructure/logging"
	"github.com/akosua/remitgh/internal/infrastructure/postgres"
	"github.com/akosua/remitgh/internal/infrastructure/rates"
	"github.com/akosua/remitgh/internal/infrastructure/redis"
	"github.com/akosua/remitgh/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger
	zerolog.DefaultContextLogger = &appLogger

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	recipientRepo := postgresRepo.NewRecipientRepository(pool)
	txnRepo := postgresRepo.NewTransactionRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Payment gateway: sandbox provider wrapped with transport retries.
	sandbox := gateway.NewSandboxGateway(gateway.SandboxConfig{
		Latency: cfg.GatewayLatency,
		Logger:  appLogger,
	})
	paymentGateway := gateway.NewRetryingGateway(sandbox, cfg.GatewayMaxRetries, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Use cases
	rateUC := usecase.NewRateUseCase(rates.NewBoardProvider(nil), cache)
	userUC := usecase.NewUserUseCase(userRepo, cache, idGen, jwtManager)
	recipientUC := usecase.NewRecipientUseCase(recipientRepo, idGen)
	transferUC := usecase.NewTransferUseCase(rateUC, userRepo, txManager, txnRepo, outboxRepo, paymentGateway, idGen, nil)

	// Outbox worker delivers transfer events in the background.
	slogger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	worker := eventpublisher.NewWorker(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Sink:       eventpublisher.NewLogSink(slogger.Logger),
		Logger:     slogger.Logger,
		BatchSize:  cfg.PublisherBatchSize,
		Interval:   cfg.PublisherInterval,
	})

	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	go func() {
		if err := worker.Start(workerCtx); err != nil && workerCtx.Err() == nil {
			log.Error().Err(err).Msg("outbox worker stopped")
		}
	}()

	// Handlers
	authHandler := handler.NewAuthHandler(userUC)
	rateHandler := handler.NewRateHandler(rateUC)
	recipientHandler := handler.NewRecipientHandler(recipientUC)
	transferHandler := handler.NewTransferHandler(transferUC, recipientUC)
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"postgres": handler.PingerFunc(pool.Ping),
		"redis": handler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}),
	})

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:      authHandler,
		RateHandler:      rateHandler,
		RecipientHandler: recipientHandler,
		TransferHandler:  transferHandler,
		HealthHandler:    healthHandler,
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		Logger:           appLogger,
		RateLimit:        cfg.RateLimitRPS,
		RateBurst:        cfg.RateLimitBurst,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
