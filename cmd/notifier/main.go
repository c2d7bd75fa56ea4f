package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tapgate/config"
	"tapgate/internal/delivery"
	"tapgate/internal/delivery/worker"
	"tapgate/internal/delivery/worker/handler"
	"tapgate/internal/domain/service"
	logs "tapgate/internal/infra/log"
	"tapgate/internal/infra/metrics"
	"tapgate/internal/infra/notification"
	"tapgate/internal/infra/persistence/postgres"
	"tapgate/internal/usecase/impl"

	"go.uber.org/fx"
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
		metrics.New,
		newLocation,
	)
}

func newLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRecipientRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newMessenger,
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
			impl.NewDispatchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
