package usecase

import (
	"context"

	"tapgate/internal/domain/service"
)

// DispatchUsecase delivers notifications for one accepted tap and reconciles
// the delivery outcome onto the ledger entry.
type DispatchUsecase interface {
	// DispatchTapNotification resolves recipients, attempts delivery to each,
	// records per-recipient logs and sets the tap's notification outcome
	// exactly once. Provider failures are recorded, never propagated as
	// delivery errors; a returned error means the outcome could not be
	// persisted and the event may be redelivered.
	DispatchTapNotification(ctx context.Context, event *service.TapAcceptedEvent) error
}
