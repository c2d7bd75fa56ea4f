package impl

import (
	"context"
	"log/slog"
	"time"

	"tapgate/config"
	deliverycontext "tapgate/internal/delivery/context"
	"tapgate/internal/domain/entity"
	domainerrors "tapgate/internal/domain/errors"
	"tapgate/internal/domain/repository"
	"tapgate/internal/domain/service"
	"tapgate/internal/errors"
	"tapgate/internal/infra/metrics"
	"tapgate/internal/usecase"

	"github.com/google/uuid"
)

// Processing states of one tap request, carried in structured logs so a
// burst of interleaved taps can be traced per request.
type tapState string

const (
	stateReceived          tapState = "RECEIVED"
	stateResolvingDevice   tapState = "RESOLVING_DEVICE"
	stateResolvingIdentity tapState = "RESOLVING_IDENTITY"
	stateDebouncing        tapState = "DEBOUNCING"
	stateRejected          tapState = "REJECTED"
	stateAccepted          tapState = "ACCEPTED"
	stateNotifying         tapState = "NOTIFYING"
	stateDone              tapState = "DONE"
)

type tapService struct {
	devices    repository.DeviceDirectory
	identities repository.IdentityDirectory
	ledger     repository.TapLedger
	publisher  service.EventPublisher
	metrics    *metrics.Metrics
	logger     *slog.Logger

	loc           *time.Location
	defaultWindow time.Duration
	lockWait      time.Duration
	locks         *lockTable

	// now is swappable for tests.
	now func() time.Time
}

// NewTapService creates the tap processing engine.
func NewTapService(
	devices repository.DeviceDirectory,
	identities repository.IdentityDirectory,
	ledger repository.TapLedger,
	publisher service.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg *config.Config,
	loc *time.Location,
) usecase.TapUsecase {
	return &tapService{
		devices:       devices,
		identities:    identities,
		ledger:        ledger,
		publisher:     publisher,
		metrics:       m,
		logger:        logger,
		loc:           loc,
		defaultWindow: cfg.DefaultDebounce(),
		lockWait:      cfg.Tap.LockWait,
		locks:         newLockTable(),
		now:           time.Now,
	}
}

// ProcessTap runs one tap through resolution, the per-identity critical
// section, the debounce decision and the durable append. Once entered, a tap
// always reaches a terminal state; rejections come back as results, and only
// infrastructure failures return an error.
func (s *tapService) ProcessTap(ctx context.Context, req *usecase.TapRequest) (*usecase.TapResult, error) {
	started := s.now()
	now := started.In(s.loc)
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	s.logState(ctx, logger, stateReceived, req.DeviceCode)

	s.logState(ctx, logger, stateResolvingDevice, req.DeviceCode)
	device, err := s.devices.FindActiveByCode(ctx, req.DeviceCode)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			s.metrics.IncrementRejected(domainerrors.CodeDeviceNotFound)
			s.logState(ctx, logger, stateRejected, req.DeviceCode)

			return &usecase.TapResult{
				Accepted:   false,
				ReasonCode: domainerrors.CodeDeviceNotFound,
				Message:    domainerrors.ErrDeviceNotFound.Message(),
				TappedAt:   now,
			}, nil
		}

		return nil, domainerrors.ErrInternalError.WrapMessage("device lookup failed")
	}

	s.logState(ctx, logger, stateResolvingIdentity, req.DeviceCode)
	identity, err := s.resolveIdentity(ctx, req.CredentialUID, req.ClassHint)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			s.metrics.IncrementRejected(domainerrors.CodeIdentityNotFound)
			s.logState(ctx, logger, stateRejected, req.DeviceCode)

			return &usecase.TapResult{
				Accepted:      false,
				ReasonCode:    domainerrors.CodeIdentityNotFound,
				Message:       domainerrors.ErrIdentityNotFound.Message(),
				LocationLabel: device.LocationLabel,
				TappedAt:      now,
			}, nil
		}

		return nil, domainerrors.ErrInternalError.WrapMessage("identity lookup failed")
	}

	summary := &usecase.IdentitySummary{
		ID:    identity.ID,
		Class: identity.Class,
		Code:  identity.Code,
		Name:  identity.Name,
	}

	window := device.DebounceWindow
	if window <= 0 {
		window = s.defaultWindow
	}

	// The critical section covers read-decide-append for this identity only;
	// taps for other identities proceed in parallel.
	lockCtx := ctx
	if s.lockWait > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, s.lockWait)
		defer cancel()
	}

	lockStart := s.now()
	release, err := s.locks.Acquire(lockCtx, identity.Ref().Key())
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("identity busy, lock wait exceeded")
	}
	defer release()
	s.metrics.ObserveLockWait(s.now().Sub(lockStart))

	s.logState(ctx, logger, stateDebouncing, req.DeviceCode)
	result, err := s.decideAndAppend(ctx, logger, device, identity, window, now)
	if err != nil {
		return nil, err
	}
	result.Identity = summary
	result.LocationLabel = device.LocationLabel

	s.metrics.ObserveProcessLatency(s.now().Sub(started))

	return result, nil
}

// decideAndAppend holds steps that run inside the per-identity critical
// section: the two ledger reads, the decision and the durable append.
func (s *tapService) decideAndAppend(
	ctx context.Context,
	logger *slog.Logger,
	device *entity.Device,
	identity *entity.Identity,
	window time.Duration,
	now time.Time,
) (*usecase.TapResult, error) {
	ref := identity.Ref()

	lastAny, err := s.ledger.LastEvent(ctx, ref)
	if err != nil && !errors.Is(err, repository.ErrTapNotFound) {
		return nil, domainerrors.NewLedgerUnavailableError(err, "last event read failed")
	}

	dayStart, dayEnd := dayBounds(now, s.loc)
	lastToday, err := s.ledger.LastEventInRange(ctx, ref, dayStart, dayEnd)
	if err != nil && !errors.Is(err, repository.ErrTapNotFound) {
		return nil, domainerrors.NewLedgerUnavailableError(err, "today event read failed")
	}

	decision := resolveTap(lastAny, lastToday, window, now)
	if !decision.accepted {
		tooSoon := domainerrors.NewTooSoonError(decision.remaining)
		s.metrics.IncrementRejected(domainerrors.CodeTooSoon)
		s.logState(ctx, logger, stateRejected, device.Code)

		return &usecase.TapResult{
			Accepted:      false,
			ReasonCode:    domainerrors.CodeTooSoon,
			Message:       tooSoon.Message(),
			RemainingWait: decision.remaining,
			TappedAt:      now,
		}, nil
	}

	event := &entity.TapEvent{
		ID:                  uuid.New(),
		IdentityID:          identity.ID,
		IdentityClass:       identity.Class,
		DeviceID:            device.ID,
		Direction:           decision.direction,
		TappedAt:            now,
		NotificationOutcome: entity.OutcomePending,
	}

	// The append must be durable before the device hears "accepted".
	if err := s.ledger.Append(ctx, event); err != nil {
		return nil, domainerrors.NewLedgerUnavailableError(err, "append failed")
	}

	s.metrics.IncrementAccepted(string(decision.direction))
	s.logState(ctx, logger, stateAccepted, device.Code)

	// Hand off to the dispatcher on a detached goroutine: the device's
	// response never waits on notification delivery, and the goroutine does
	// not touch the per-identity slot.
	s.logState(ctx, logger, stateNotifying, device.Code)
	go s.publishAccepted(context.WithoutCancel(ctx), event, device, identity)

	s.logState(ctx, logger, stateDone, device.Code)

	return &usecase.TapResult{
		Accepted:   true,
		TapEventID: event.ID,
		Direction:  decision.direction,
		TappedAt:   now,
	}, nil
}

// resolveIdentity applies the two-step resolution policy: an explicit class
// hint pins the lookup; otherwise student credentials are checked first and
// teacher only on ErrIdentityNotFound. Infrastructure errors never trigger
// the fallback.
func (s *tapService) resolveIdentity(ctx context.Context, credentialUID, hint string) (*entity.Identity, error) {
	if hint != "" {
		return s.identities.FindActiveByCredential(ctx, entity.IdentityClass(hint), credentialUID)
	}

	identity, err := s.identities.FindActiveByCredential(ctx, entity.ClassStudent, credentialUID)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, err
	}

	return s.identities.FindActiveByCredential(ctx, entity.ClassTeacher, credentialUID)
}

func (s *tapService) publishAccepted(ctx context.Context, event *entity.TapEvent, device *entity.Device, identity *entity.Identity) {
	acceptedEvent := &service.TapAcceptedEvent{
		RequestID:          deliverycontext.GetRequestIDFromContext(ctx),
		TapEventID:         event.ID.String(),
		IdentityID:         identity.ID.String(),
		IdentityClass:      string(identity.Class),
		IdentityName:       identity.Name,
		IdentityCode:       identity.Code,
		DeviceCode:         device.Code,
		LocationLabel:      device.LocationLabel,
		Direction:          string(event.Direction),
		RequiresEscalation: device.RequiresEscalation,
		TappedAt:           event.TappedAt.Format(time.RFC3339),
	}

	// Best effort: a publish failure never unwinds the committed tap.
	if err := s.publisher.PublishTapAccepted(ctx, acceptedEvent); err != nil {
		s.logger.Warn("failed to publish accepted tap",
			slog.String("tap_event_id", acceptedEvent.TapEventID),
			slog.Any("error", err),
		)
	}
}

func (s *tapService) LastTap(ctx context.Context, ref entity.IdentityRef) (*entity.TapEvent, error) {
	event, err := s.ledger.LastEvent(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrTapNotFound) {
			return nil, domainerrors.ErrTapNotFound
		}

		return nil, domainerrors.NewLedgerUnavailableError(err, "last event read failed")
	}

	return event, nil
}

func (s *tapService) LastTapToday(ctx context.Context, ref entity.IdentityRef) (*entity.TapEvent, error) {
	dayStart, dayEnd := dayBounds(s.now().In(s.loc), s.loc)

	event, err := s.ledger.LastEventInRange(ctx, ref, dayStart, dayEnd)
	if err != nil {
		if errors.Is(err, repository.ErrTapNotFound) {
			return nil, domainerrors.ErrTapNotFound
		}

		return nil, domainerrors.NewLedgerUnavailableError(err, "today event read failed")
	}

	return event, nil
}

func (s *tapService) logState(ctx context.Context, logger *slog.Logger, state tapState, deviceCode string) {
	logger.LogAttrs(ctx, slog.LevelDebug, "tap state",
		slog.String("state", string(state)),
		slog.String("device_code", deviceCode),
	)
}
