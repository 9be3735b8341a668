package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"backoffice.app/billing"
	"backoffice.app/billing/business/adjustment"
	"backoffice.app/billing/business/payment"
	"backoffice.app/billing/business/statement"
	"backoffice.app/billing/domain"
	"backoffice.app/billing/middleware/idempotency"
	"backoffice.app/billing/middleware/ratelimit"
	"backoffice.app/config"
	"backoffice.app/pkg/cache/redis"
	"backoffice.app/pkg/database/postgres"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./configs", "Path to the configuration directory")
	flag.Parse()

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool := mustInitPostgres(ctx, cfg.Postgres, logger)
	defer postgres.Close(pool)

	ledger := domain.NewBillLedger(pool, logger)
	service := billing.NewService(
		statement.NewStatementBusiness(ledger, logger),
		payment.NewPaymentBusiness(ledger, logger),
		adjustment.NewAdjustmentBusiness(ledger, logger),
		pool,
		logger,
	)

	var writeGuards []func(http.Handler) http.Handler
	if cfg.Server.RateLimitPerSecond > 0 {
		writeGuards = append(writeGuards, ratelimit.NewLimiter(cfg.Server.RateLimitPerSecond, logger).Handler)
	}
	if cfg.Idempotency.Enabled {
		rdb := mustInitRedis(cfg.Redis, logger)
		defer redis.Close(rdb)

		cache := idempotency.NewRedisCache(rdb, cfg.Redis.Prefix, cfg.Idempotency.TTL)
		writeGuards = append(writeGuards, idempotency.NewMiddleware(cache, logger).Handler)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      service.Router(cfg.Server.RequestTimeout, writeGuards...),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	select {
	case err := <-srvErr:
		if err != nil {
			logger.Error("HTTP server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during HTTP server shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

func mustInitPostgres(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) *pgxpool.Pool {
	pool, err := postgres.NewPostgresConnection(ctx, postgres.ConnectionInfo{
		Host:            cfg.Host,
		Port:            cfg.Port,
		Username:        cfg.User,
		DBName:          cfg.DBName,
		SSLMode:         cfg.SSLMode,
		Password:        cfg.Password,
		MaxConns:        cfg.MaxConns,
		MinConns:        cfg.MinConns,
		MaxConnLifetime: cfg.MaxConnLifetime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to postgres", zap.Error(err), zap.String("host", cfg.Host))
	}
	return pool
}

func mustInitRedis(cfg config.RedisConfig, logger *zap.Logger) *redis.Client {
	rdb, err := redis.NewRedisConnection(redis.ConnectionInfo{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		MaxRetries:  cfg.MaxRetries,
		DialTimeout: cfg.DialTimeout,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err), zap.String("addr", cfg.Addr))
	}
	return rdb
}
