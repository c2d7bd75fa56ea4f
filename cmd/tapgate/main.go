package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tapgate/config"
	"tapgate/internal/delivery"
	"tapgate/internal/delivery/api"
	"tapgate/internal/delivery/api/router/handler"
	"tapgate/internal/domain/repository"
	"tapgate/internal/domain/service"
	"tapgate/internal/infra/cache"
	logs "tapgate/internal/infra/log"
	"tapgate/internal/infra/metrics"
	"tapgate/internal/infra/notification"
	"tapgate/internal/infra/persistence/postgres"
	"tapgate/internal/infra/pubsub"
	"tapgate/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
		metrics.New,
		newLocation,
	)
}

// newLocation resolves the school's local timezone once at startup.
func newLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceDirectory,
			newIdentityDirectory,
			postgres.NewTapLedger,
			postgres.NewRecipientRepository,
			postgres.NewDeliveryLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

// newIdentityDirectory composes the Postgres directory with the optional
// Redis cache. With no Redis configured the decorator is a pass-through.
func newIdentityDirectory(db *gorm.DB, client *redis.Client, cfg *config.Config, logger *slog.Logger) repository.IdentityDirectory {
	var ttl time.Duration
	if cfg.Redis != nil {
		ttl = cfg.Redis.TTL
	}

	return cache.NewCachedIdentityDirectory(postgres.NewIdentityDirectory(db), client, ttl, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newMessenger,
			pubsub.NewEventPublisher,
		),
	)
}

// newMessenger creates the push provider: Firebase when configured, a
// log-only messenger otherwise.
func newMessenger(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Messenger, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, using log-only messenger")

		return notification.NewLogMessenger(logger), nil
	}

	messenger, err := notification.NewFirebaseMessenger(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase messenger: %w", err)
	}

	return messenger, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTapService,
			impl.NewDispatchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTapHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
