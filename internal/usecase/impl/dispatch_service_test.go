package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tapgate/internal/domain/entity"
	"tapgate/internal/domain/repository"
	"tapgate/internal/domain/service"
	mockRepo "tapgate/internal/mocks/repository"
	mockService "tapgate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubRepositoryFactory hands the test's mocks to code running inside a
// transaction.
type stubRepositoryFactory struct {
	ledger      repository.TapLedger
	deliveryLog repository.DeliveryLogRepository
}

func (f *stubRepositoryFactory) NewTapLedger() repository.TapLedger {
	return f.ledger
}

func (f *stubRepositoryFactory) NewDeliveryLogRepository() repository.DeliveryLogRepository {
	return f.deliveryLog
}

// stubTransactionManager runs the callback directly; err simulates a
// transaction that cannot start.
type stubTransactionManager struct {
	factory repository.RepositoryFactory
	err     error
}

func (m *stubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.err != nil {
		return m.err
	}

	return fn(m.factory)
}

// dispatchServiceFixtures holds all test dependencies for dispatch tests.
type dispatchServiceFixtures struct {
	service     *dispatchService
	recipients  *mockRepo.MockRecipientRepository
	ledger      *mockRepo.MockTapLedger
	deliveryLog *mockRepo.MockDeliveryLogRepository
	messenger   *mockService.MockMessenger
	txManager   *stubTransactionManager
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	recipients := mockRepo.NewMockRecipientRepository(t)
	ledger := mockRepo.NewMockTapLedger(t)
	deliveryLog := mockRepo.NewMockDeliveryLogRepository(t)
	messenger := mockService.NewMockMessenger(t)

	txManager := &stubTransactionManager{
		factory: &stubRepositoryFactory{ledger: ledger, deliveryLog: deliveryLog},
	}

	service := &dispatchService{
		recipients:      recipients,
		txManager:       txManager,
		messenger:       messenger,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		supervisorToken: "supervisor-token",
		supervisorLabel: "Head of School",
		fanout:          4,
		loc:             time.UTC,
	}

	return dispatchServiceFixtures{
		service:     service,
		recipients:  recipients,
		ledger:      ledger,
		deliveryLog: deliveryLog,
		messenger:   messenger,
		txManager:   txManager,
	}
}

func testAcceptedEvent(class entity.IdentityClass, identityID uuid.UUID) *service.TapAcceptedEvent {
	return &service.TapAcceptedEvent{
		TapEventID:    uuid.New().String(),
		IdentityID:    identityID.String(),
		IdentityClass: string(class),
		IdentityName:  "Budi",
		IdentityCode:  "S-1001",
		DeviceCode:    "gate-01",
		LocationLabel: "Main Gate",
		Direction:     string(entity.DirectionIn),
		TappedAt:      time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
}

func testGuardian(identityID uuid.UUID, label, token string) *entity.Recipient {
	return &entity.Recipient{
		ID:            uuid.New(),
		IdentityID:    identityID,
		Label:         label,
		PushToken:     token,
		NotifyEnabled: true,
	}
}

func TestDispatchService_AllDeliveriesSucceed(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	studentID := uuid.New()
	event := testAcceptedEvent(entity.ClassStudent, studentID)
	tapEventID := uuid.MustParse(event.TapEventID)

	guardians := []*entity.Recipient{
		testGuardian(studentID, "Mother", "token-a"),
		testGuardian(studentID, "Father", "token-b"),
	}

	fx.recipients.EXPECT().
		FindEnabledGuardians(ctx, studentID).
		Return(guardians, nil)
	fx.messenger.EXPECT().
		Send(mock.Anything, "token-a", "Arrival", mock.AnythingOfType("string"), mock.Anything).
		Return("msg-a", nil)
	fx.messenger.EXPECT().
		Send(mock.Anything, "token-b", "Arrival", mock.AnythingOfType("string"), mock.Anything).
		Return("msg-b", nil)

	var persisted []*entity.DeliveryLog
	fx.deliveryLog.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		Run(func(_ context.Context, logs []*entity.DeliveryLog) {
			persisted = logs
		}).
		Return(nil)
	fx.ledger.EXPECT().
		SetNotificationOutcome(ctx, tapEventID, entity.OutcomeSent).
		Return(nil)

	err := fx.service.DispatchTapNotification(ctx, event)
	require.NoError(t, err)

	require.Len(t, persisted, 2)
	for _, log := range persisted {
		assert.Equal(t, tapEventID, log.TapEventID)
		assert.Equal(t, entity.DeliveryStatusSent, log.Status)
		assert.NotEmpty(t, log.ProviderMessageID)
		assert.Empty(t, log.ErrorMessage)
		assert.Contains(t, log.Message, "Budi (S-1001) arrived at Main Gate")
	}
}

func TestDispatchService_PartialFailureStillSent(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	studentID := uuid.New()
	event := testAcceptedEvent(entity.ClassStudent, studentID)
	tapEventID := uuid.MustParse(event.TapEventID)

	guardians := []*entity.Recipient{
		testGuardian(studentID, "Mother", "token-a"),
		testGuardian(studentID, "Father", "token-bad"),
	}

	fx.recipients.EXPECT().
		FindEnabledGuardians(ctx, studentID).
		Return(guardians, nil)
	fx.messenger.EXPECT().
		Send(mock.Anything, "token-a", mock.Anything, mock.Anything, mock.Anything).
		Return("msg-a", nil)
	fx.messenger.EXPECT().
		Send(mock.Anything, "token-bad", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("unregistered token"))

	var persisted []*entity.DeliveryLog
	fx.deliveryLog.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		Run(func(_ context.Context, logs []*entity.DeliveryLog) {
			persisted = logs
		}).
		Return(nil)
	fx.ledger.EXPECT().
		SetNotificationOutcome(ctx, tapEventID, entity.OutcomeSent).
		Return(nil)

	err := fx.service.DispatchTapNotification(ctx, event)
	require.NoError(t, err)

	require.Len(t, persisted, 2)
	statuses := map[string]string{}
	for _, log := range persisted {
		statuses[log.RecipientLabel] = log.Status
		if log.Status == entity.DeliveryStatusFailed {
			assert.Contains(t, log.ErrorMessage, "unregistered token")
		}
	}
	assert.Equal(t, entity.DeliveryStatusSent, statuses["Mother"])
	assert.Equal(t, entity.DeliveryStatusFailed, statuses["Father"])
}

func TestDispatchService_AllDeliveriesFail(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	studentID := uuid.New()
	event := testAcceptedEvent(entity.ClassStudent, studentID)
	tapEventID := uuid.MustParse(event.TapEventID)

	fx.recipients.EXPECT().
		FindEnabledGuardians(ctx, studentID).
		Return([]*entity.Recipient{testGuardian(studentID, "Mother", "token-a")}, nil)
	fx.messenger.EXPECT().
		Send(mock.Anything, "token-a", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("provider timeout"))

	fx.deliveryLog.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		Return(nil)
	fx.ledger.EXPECT().
		SetNotificationOutcome(ctx, tapEventID, entity.OutcomeFailed).
		Return(nil)

	err := fx.service.DispatchTapNotification(ctx, event)
	require.NoError(t, err)
}

func TestDispatchService_NoRecipientsMarksNone(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	studentID := uuid.New()
	event := testAcceptedEvent(entity.ClassStudent, studentID)
	tapEventID := uuid.MustParse(event.TapEventID)

	fx.recipients.EXPECT().
		FindEnabledGuardians(ctx, studentID).
		Return([]*entity.Recipient{}, nil)

	// No delivery logs are written when nothing was attempted.
	fx.ledger.EXPECT().
		SetNotificationOutcome(ctx, tapEventID, entity.OutcomeNone).
		Return(nil)

	err := fx.service.DispatchTapNotification(ctx, event)
	require.NoError(t, err)
}

func TestDispatchService_TeacherEscalationUsesSupervisor(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	teacherID := uuid.New()
	event := testAcceptedEvent(entity.ClassTeacher, teacherID)
	event.RequiresEscalation = true
	event.Direction = string(entity.DirectionOut)
	tapEventID := uuid.MustParse(event.TapEventID)

	fx.messenger.EXPECT().
		Send(mock.Anything, "supervisor-token", "Departure", mock.AnythingOfType("string"), mock.Anything).
		Return("msg-sup", nil)

	var persisted []*entity.DeliveryLog
	fx.deliveryLog.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		Run(func(_ context.Context, logs []*entity.DeliveryLog) {
			persisted = logs
		}).
		Return(nil)
	fx.ledger.EXPECT().
		SetNotificationOutcome(ctx, tapEventID, entity.OutcomeSent).
		Return(nil)

	err := fx.service.DispatchTapNotification(ctx, event)
	require.NoError(t, err)

	require.Len(t, persisted, 1)
	assert.Equal(t, "Head of School", persisted[0].RecipientLabel)
	assert.Contains(t, persisted[0].Message, "left Main Gate")
}

func TestDispatchService_TeacherWithoutEscalationMarksNone(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	event := testAcceptedEvent(entity.ClassTeacher, uuid.New())
	tapEventID := uuid.MustParse(event.TapEventID)

	fx.ledger.EXPECT().
		SetNotificationOutcome(ctx, tapEventID, entity.OutcomeNone).
		Return(nil)

	err := fx.service.DispatchTapNotification(ctx, event)
	require.NoError(t, err)
}

func TestDispatchService_TeacherEscalationWithoutTokenMarksNone(t *testing.T) {
	fx := createTestDispatchService(t)
	fx.service.supervisorToken = ""

	ctx := context.Background()
	event := testAcceptedEvent(entity.ClassTeacher, uuid.New())
	event.RequiresEscalation = true
	tapEventID := uuid.MustParse(event.TapEventID)

	fx.ledger.EXPECT().
		SetNotificationOutcome(ctx, tapEventID, entity.OutcomeNone).
		Return(nil)

	err := fx.service.DispatchTapNotification(ctx, event)
	require.NoError(t, err)
}

func TestDispatchService_OutcomeAlreadySetIsNotAnError(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	studentID := uuid.New()
	event := testAcceptedEvent(entity.ClassStudent, studentID)
	tapEventID := uuid.MustParse(event.TapEventID)

	fx.recipients.EXPECT().
		FindEnabledGuardians(ctx, studentID).
		Return([]*entity.Recipient{testGuardian(studentID, "Mother", "token-a")}, nil)
	fx.messenger.EXPECT().
		Send(mock.Anything, "token-a", mock.Anything, mock.Anything, mock.Anything).
		Return("msg-a", nil)
	fx.deliveryLog.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]*entity.DeliveryLog")).
		Return(nil)
	fx.ledger.EXPECT().
		SetNotificationOutcome(ctx, tapEventID, entity.OutcomeSent).
		Return(repository.ErrOutcomeAlreadySet)

	// A duplicate push delivery loses the race; there is nothing to retry.
	err := fx.service.DispatchTapNotification(ctx, event)
	require.NoError(t, err)
}

func TestDispatchService_ReconcileFailureIsRetryable(t *testing.T) {
	fx := createTestDispatchService(t)
	fx.txManager.err = errors.New("connection refused")

	ctx := context.Background()
	studentID := uuid.New()
	event := testAcceptedEvent(entity.ClassStudent, studentID)

	fx.recipients.EXPECT().
		FindEnabledGuardians(ctx, studentID).
		Return([]*entity.Recipient{testGuardian(studentID, "Mother", "token-a")}, nil)
	fx.messenger.EXPECT().
		Send(mock.Anything, "token-a", mock.Anything, mock.Anything, mock.Anything).
		Return("msg-a", nil)

	err := fx.service.DispatchTapNotification(ctx, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reconcile notification outcome")
}

func TestDispatchService_InvalidTapEventIDDropped(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	event := testAcceptedEvent(entity.ClassStudent, uuid.New())
	event.TapEventID = "not-a-uuid"

	// Redelivery cannot fix a malformed event, so it is acked without work.
	err := fx.service.DispatchTapNotification(ctx, event)
	require.NoError(t, err)
}

func TestDispatchService_RecipientLookupFailure(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	studentID := uuid.New()
	event := testAcceptedEvent(entity.ClassStudent, studentID)

	fx.recipients.EXPECT().
		FindEnabledGuardians(ctx, studentID).
		Return(nil, errors.New("connection refused"))

	err := fx.service.DispatchTapNotification(ctx, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve recipients")
}

func TestRenderMessage_LocalTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	event := testAcceptedEvent(entity.ClassStudent, uuid.New())
	event.TappedAt = time.Date(2025, 3, 10, 0, 5, 0, 0, time.UTC).Format(time.RFC3339)

	title, body := renderMessage(event, loc)

	assert.Equal(t, "Arrival", title)
	// 00:05 UTC is 07:05 in Jakarta.
	assert.Equal(t, "Budi (S-1001) arrived at Main Gate at 07:05", body)
}
