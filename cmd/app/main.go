package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/api"
	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/events"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/redis"
	"storefront/internal/adapters/out/redis/cartrepo"
	"storefront/internal/adapters/out/whatsapp"
	"storefront/internal/core/ports"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("storefront stopped", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	if err = configs.Validate(); err != nil {
		return err
	}

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return err
	}

	redisClient, err := redis.NewClient(ctx, configs.RedisURL)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	publisher, err := newPublisher(ctx, configs, logger)
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, cmd.Dependencies{
		DB:        gormDB,
		Carts:     cartrepo.NewRedisCartStore(redisClient, configs.CartTTL),
		Publisher: publisher,
		Handoff:   whatsapp.NewLinkBuilder(configs.BusinessPhone),
		Logger:    logger,
	})

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs, logger)
}

func newPublisher(ctx context.Context, configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, error) {
	if configs.SNSTopicARN == "" {
		logger.Info("SNS_TOPIC_ARN is empty, events go to the log")
		return events.NewLogPublisher(logger), nil
	}
	return events.NewSNSPublisherFromEnv(ctx, configs.AWSRegion, configs.SNSTopicARN)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	doc, err := api.Load(ctx)
	if err != nil {
		return err
	}

	e, err := httpin.NewRouter(httpin.NewServer(app.HTTPHandlers(), logger), httpin.RouterConfig{
		JWTSecret:      []byte(configs.JWTSecret),
		OpenAPI:        doc,
		CheckoutLimits: httpin.NewLimiterStore(configs.CheckoutRatePerMinute, configs.CheckoutBurst, 3*time.Minute),
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", "port", configs.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
