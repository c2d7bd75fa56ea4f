package postgres

import (
	"context"
	"time"

	"tapgate/internal/domain/entity"
	domainerrors "tapgate/internal/domain/errors"
	"tapgate/internal/domain/repository"
	"tapgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// tapLedger implements repository.TapLedger over the tap_events table.
//
// All reads pin to the primary via dbresolver.Write: the debounce decision
// needs read-your-writes for the same identity, and a stale replica read
// would let a duplicate tap through.
type tapLedger struct {
	db *gorm.DB
}

// NewTapLedger is the constructor for tapLedger.
func NewTapLedger(db *gorm.DB) repository.TapLedger {
	return &tapLedger{
		db: db,
	}
}

// Append durably records an accepted tap event. The insert is committed
// before return, so a success here is a durable acceptance.
func (repo *tapLedger) Append(ctx context.Context, event *entity.TapEvent) error {
	eventM := fromTapEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Same event ID inserted twice, the first append already committed.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid identity or device reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tap event information")
		}

		return errors.Wrap(err, "failed to append tap event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// LastEvent retrieves the identity's most recent event across all days and devices.
func (repo *tapLedger) LastEvent(ctx context.Context, ref entity.IdentityRef) (*entity.TapEvent, error) {
	var eventM model.TapEventModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("identity_class = ? AND identity_id = ?", string(ref.Class), ref.ID).
		Order("tapped_at DESC").
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTapNotFound
		}

		return nil, errors.Wrap(err, "failed to find last tap event")
	}

	return toTapEventDomain(&eventM), nil
}

// LastEventInRange retrieves the identity's most recent event with
// from <= tapped_at < to.
func (repo *tapLedger) LastEventInRange(ctx context.Context, ref entity.IdentityRef, from, to time.Time) (*entity.TapEvent, error) {
	var eventM model.TapEventModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("identity_class = ? AND identity_id = ? AND tapped_at >= ? AND tapped_at < ?",
			string(ref.Class), ref.ID, from, to).
		Order("tapped_at DESC").
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTapNotFound
		}

		return nil, errors.Wrap(err, "failed to find last tap event in range")
	}

	return toTapEventDomain(&eventM), nil
}

// SetNotificationOutcome reconciles the delivery outcome exactly once. The
// pending guard in the WHERE clause makes concurrent reconciliations race
// safely: exactly one update wins, the rest see ErrOutcomeAlreadySet.
func (repo *tapLedger) SetNotificationOutcome(ctx context.Context, eventID uuid.UUID, outcome entity.NotificationOutcome) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TapEventModel{}).
		Where("id = ? AND notification_outcome = ?", eventID, string(entity.OutcomePending)).
		Update("notification_outcome", string(outcome))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set notification outcome")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Clauses(dbresolver.Write).
			Model(&model.TapEventModel{}).
			Where("id = ?", eventID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check tap event existence")
		}
		if count == 0 {
			return repository.ErrTapNotFound
		}

		return repository.ErrOutcomeAlreadySet
	}

	return nil
}

// --- Mapper Functions ---

// toTapEventDomain converts a GORM TapEventModel to a domain TapEvent entity.
func toTapEventDomain(data *model.TapEventModel) *entity.TapEvent {
	if data == nil {
		return nil
	}

	return &entity.TapEvent{
		ID:                  data.ID,
		IdentityID:          data.IdentityID,
		IdentityClass:       entity.IdentityClass(data.IdentityClass),
		DeviceID:            data.DeviceID,
		Direction:           entity.Direction(data.Direction),
		TappedAt:            data.TappedAt,
		NotificationOutcome: entity.NotificationOutcome(data.NotificationOutcome),
		CreatedAt:           data.CreatedAt,
	}
}

// fromTapEventDomain converts a domain TapEvent entity to a GORM TapEventModel.
func fromTapEventDomain(data *entity.TapEvent) *model.TapEventModel {
	if data == nil {
		return nil
	}

	return &model.TapEventModel{
		ID:                  data.ID,
		IdentityID:          data.IdentityID,
		IdentityClass:       string(data.IdentityClass),
		DeviceID:            data.DeviceID,
		Direction:           string(data.Direction),
		TappedAt:            data.TappedAt,
		NotificationOutcome: string(data.NotificationOutcome),
	}
}
