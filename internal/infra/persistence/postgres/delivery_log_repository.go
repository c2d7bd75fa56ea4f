package postgres

import (
	"context"

	"tapgate/internal/domain/entity"
	domainerrors "tapgate/internal/domain/errors"
	"tapgate/internal/domain/repository"
	"tapgate/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// deliveryLogRepository implements repository.DeliveryLogRepository.
type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		db: db,
	}
}

// BatchCreate persists delivery log entries in batches.
func (repo *deliveryLogRepository) BatchCreate(ctx context.Context, logs []*entity.DeliveryLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.DeliveryLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromDeliveryLogDomain(log))
	}

	// Default batch size of 100 balances round trips against statement size.
	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, 100).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid tap event reference in batch")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required delivery log information in batch")
		}

		return domainerrors.ErrInternalError.WrapMessage("failed to batch create delivery logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// --- Mapper Functions ---

// fromDeliveryLogDomain converts a domain DeliveryLog entity to a GORM DeliveryLogModel.
func fromDeliveryLogDomain(data *entity.DeliveryLog) *model.DeliveryLogModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryLogModel{
		ID:                data.ID,
		TapEventID:        data.TapEventID,
		RecipientLabel:    data.RecipientLabel,
		PushToken:         data.PushToken,
		Message:           data.Message,
		Status:            data.Status,
		ProviderMessageID: data.ProviderMessageID,
		ErrorMessage:      data.ErrorMessage,
		SentAt:            data.SentAt,
	}
}
