package pubsub

import (
	"context"
	"log/slog"

	"tapgate/config"
	"tapgate/internal/domain/constants"
	"tapgate/internal/domain/service"
	"tapgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Dispatch usecase.DispatchUsecase
}

// NewEventPublisher creates an EventPublisher based on configuration.
// With no dispatch section configured, taps are dispatched in-process.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Dispatch
	logger := params.Logger

	var publisher service.EventPublisher
	var err error

	provider := constants.DispatchProviderInproc
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case constants.DispatchProviderInproc:
		logger.Info("Using in-process tap dispatch")

		publisher = NewInprocPublisher(params.Dispatch, logger)

	case constants.DispatchProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for tap dispatch",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.DispatchProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for tap dispatch",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown dispatch provider: %s", provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
