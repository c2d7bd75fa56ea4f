package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"tapgate/internal/domain/service"
	"tapgate/internal/usecase"
)

// inprocPublisher implements EventPublisher by invoking the dispatch usecase
// directly on a goroutine. It is the single-binary deployment mode: no broker,
// but the tap response still never waits on notification delivery.
type inprocPublisher struct {
	dispatch usecase.DispatchUsecase
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewInprocPublisher creates a publisher that dispatches in-process.
func NewInprocPublisher(dispatch usecase.DispatchUsecase, logger *slog.Logger) service.EventPublisher {
	return &inprocPublisher{
		dispatch: dispatch,
		logger:   logger,
	}
}

// PublishTapAccepted hands the event to the dispatcher asynchronously.
func (p *inprocPublisher) PublishTapAccepted(ctx context.Context, event *service.TapAcceptedEvent) error {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		if err := p.dispatch.DispatchTapNotification(context.WithoutCancel(ctx), event); err != nil {
			// No redelivery in-process; the event stays pending on the ledger.
			p.logger.Error("[InprocPubSub] Dispatch failed",
				slog.String("tap_event_id", event.TapEventID),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Close waits for in-flight dispatches to finish.
func (p *inprocPublisher) Close() error {
	p.wg.Wait()

	return nil
}
