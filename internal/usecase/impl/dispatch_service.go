package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tapgate/config"
	deliverycontext "tapgate/internal/delivery/context"
	"tapgate/internal/domain/entity"
	"tapgate/internal/domain/repository"
	"tapgate/internal/domain/service"
	"tapgate/internal/errors"
	"tapgate/internal/infra/metrics"
	"tapgate/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type dispatchService struct {
	recipients repository.RecipientRepository
	txManager  repository.TransactionManager
	messenger  service.Messenger
	metrics    *metrics.Metrics
	logger     *slog.Logger

	supervisorToken string
	supervisorLabel string
	fanout          int
	loc             *time.Location
}

// NewDispatchService creates the notification dispatcher.
func NewDispatchService(
	recipients repository.RecipientRepository,
	txManager repository.TransactionManager,
	messenger service.Messenger,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg *config.Config,
	loc *time.Location,
) usecase.DispatchUsecase {
	fanout := cfg.Notify.FanoutWorkers
	if fanout <= 0 {
		fanout = 4
	}

	return &dispatchService{
		recipients:      recipients,
		txManager:       txManager,
		messenger:       messenger,
		metrics:         m,
		logger:          logger,
		supervisorToken: cfg.Notify.SupervisorToken,
		supervisorLabel: cfg.Notify.SupervisorLabel,
		fanout:          fanout,
		loc:             loc,
	}
}

// deliveryAttempt is the result of one send to one recipient.
type deliveryAttempt struct {
	recipient         *entity.Recipient
	providerMessageID string
	err               error
}

// DispatchTapNotification delivers push messages for one accepted tap and
// reconciles the outcome onto the ledger entry. The outcome write happens in
// the same transaction as the per-recipient logs, so a crash before commit
// leaves the event pending for redelivery.
func (s *dispatchService) DispatchTapNotification(ctx context.Context, event *service.TapAcceptedEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("tap_event_id", event.TapEventID),
	)

	tapEventID, err := uuid.Parse(event.TapEventID)
	if err != nil {
		// Malformed event, redelivery cannot help.
		logger.Error("dropping event with invalid tap event id", slog.Any("error", err))

		return nil
	}

	recipients, err := s.resolveRecipients(ctx, event)
	if err != nil {
		return errors.Wrap(err, "failed to resolve recipients")
	}

	if len(recipients) == 0 {
		logger.Info("no enabled recipients, marking outcome none")

		return s.reconcile(ctx, logger, tapEventID, entity.OutcomeNone, nil)
	}

	title, body := renderMessage(event, s.loc)
	attempts := s.fanOut(ctx, event, recipients, title, body)

	logs := make([]*entity.DeliveryLog, 0, len(attempts))
	sent := 0
	for _, attempt := range attempts {
		log := &entity.DeliveryLog{
			ID:             uuid.New(),
			TapEventID:     tapEventID,
			RecipientLabel: attempt.recipient.Label,
			PushToken:      attempt.recipient.PushToken,
			Message:        body,
			SentAt:         time.Now(),
		}
		if attempt.err != nil {
			log.Status = entity.DeliveryStatusFailed
			log.ErrorMessage = attempt.err.Error()
			s.metrics.IncrementDelivery(entity.DeliveryStatusFailed)
			logger.Warn("push delivery failed",
				slog.String("recipient", attempt.recipient.Label),
				slog.Any("error", attempt.err),
			)
		} else {
			log.Status = entity.DeliveryStatusSent
			log.ProviderMessageID = attempt.providerMessageID
			sent++
			s.metrics.IncrementDelivery(entity.DeliveryStatusSent)
		}
		logs = append(logs, log)
	}

	outcome := entity.OutcomeFailed
	if sent > 0 {
		outcome = entity.OutcomeSent
	}

	return s.reconcile(ctx, logger, tapEventID, outcome, logs)
}

// resolveRecipients applies the recipient policy: guardians for students,
// the supervisor channel for teachers on escalation devices.
func (s *dispatchService) resolveRecipients(ctx context.Context, event *service.TapAcceptedEvent) ([]*entity.Recipient, error) {
	switch entity.IdentityClass(event.IdentityClass) {
	case entity.ClassStudent:
		identityID, err := uuid.Parse(event.IdentityID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid identity id")
		}

		return s.recipients.FindEnabledGuardians(ctx, identityID)
	case entity.ClassTeacher:
		if !event.RequiresEscalation || s.supervisorToken == "" {
			return nil, nil
		}

		return []*entity.Recipient{{
			Label:         s.supervisorLabel,
			PushToken:     s.supervisorToken,
			NotifyEnabled: true,
		}}, nil
	default:
		return nil, errors.Errorf("unknown identity class %q", event.IdentityClass)
	}
}

// fanOut sends to all recipients concurrently, bounded by the configured
// worker count. Every attempt records a result; a provider failure for one
// recipient never skips the others.
func (s *dispatchService) fanOut(
	ctx context.Context,
	event *service.TapAcceptedEvent,
	recipients []*entity.Recipient,
	title, body string,
) []deliveryAttempt {
	attempts := make([]deliveryAttempt, len(recipients))
	data := map[string]string{
		"tap_event_id": event.TapEventID,
		"direction":    event.Direction,
		"device_code":  event.DeviceCode,
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.fanout)

	for i, recipient := range recipients {
		group.Go(func() error {
			messageID, err := s.messenger.Send(groupCtx, recipient.PushToken, title, body, data)

			mu.Lock()
			attempts[i] = deliveryAttempt{
				recipient:         recipient,
				providerMessageID: messageID,
				err:               err,
			}
			mu.Unlock()

			// Failures are recorded per attempt, not propagated.
			return nil
		})
	}

	// Goroutines never return errors, so Wait only synchronizes.
	_ = group.Wait()

	return attempts
}

// reconcile persists delivery logs and the final outcome in one transaction.
func (s *dispatchService) reconcile(
	ctx context.Context,
	logger *slog.Logger,
	tapEventID uuid.UUID,
	outcome entity.NotificationOutcome,
	logs []*entity.DeliveryLog,
) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if len(logs) > 0 {
			if err := factory.NewDeliveryLogRepository().BatchCreate(ctx, logs); err != nil {
				return errors.Wrap(err, "failed to persist delivery logs")
			}
		}

		return factory.NewTapLedger().SetNotificationOutcome(ctx, tapEventID, outcome)
	})
	if err != nil {
		if errors.Is(err, repository.ErrOutcomeAlreadySet) {
			// Duplicate delivery of the event, the first dispatch won.
			logger.Warn("notification outcome already reconciled, skipping")

			return nil
		}
		if errors.Is(err, repository.ErrTapNotFound) {
			logger.Error("tap event missing during reconciliation")

			return nil
		}

		return errors.Wrap(err, "failed to reconcile notification outcome")
	}

	logger.Info("notification outcome reconciled", slog.String("outcome", string(outcome)))

	return nil
}

// renderMessage builds the push title and body from the event, with the tap
// time shown in the school's local timezone.
func renderMessage(event *service.TapAcceptedEvent, loc *time.Location) (string, string) {
	action := "arrived at"
	title := "Arrival"
	if event.Direction == string(entity.DirectionOut) {
		action = "left"
		title = "Departure"
	}

	when := event.TappedAt
	if t, err := time.Parse(time.RFC3339, event.TappedAt); err == nil {
		when = t.In(loc).Format("15:04")
	}

	body := fmt.Sprintf("%s (%s) %s %s at %s",
		event.IdentityName, event.IdentityCode, action, event.LocationLabel, when)

	return title, body
}
