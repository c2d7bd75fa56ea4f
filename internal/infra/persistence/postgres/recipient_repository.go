package postgres

import (
	"context"

	"tapgate/internal/domain/entity"
	"tapgate/internal/domain/repository"
	"tapgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipientRepository implements repository.RecipientRepository over the guardians table.
type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository is the constructor for recipientRepository.
func NewRecipientRepository(db *gorm.DB) repository.RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// FindEnabledGuardians retrieves the guardians of a student that have
// notifications enabled. An empty result is not an error.
func (repo *recipientRepository) FindEnabledGuardians(ctx context.Context, identityID uuid.UUID) ([]*entity.Recipient, error) {
	var guardianModels []*model.GuardianModel

	if err := repo.db.WithContext(ctx).
		Where("student_id = ? AND notify_enabled = ?", identityID, true).
		Find(&guardianModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find enabled guardians")
	}

	recipients := make([]*entity.Recipient, 0, len(guardianModels))
	for _, guardianM := range guardianModels {
		recipients = append(recipients, toRecipientDomain(guardianM))
	}

	return recipients, nil
}

// --- Mapper Functions ---

// toRecipientDomain converts a GORM GuardianModel to a domain Recipient entity.
func toRecipientDomain(data *model.GuardianModel) *entity.Recipient {
	if data == nil {
		return nil
	}

	return &entity.Recipient{
		ID:            data.ID,
		IdentityID:    data.StudentID,
		Label:         data.Label,
		PushToken:     data.PushToken,
		NotifyEnabled: data.NotifyEnabled,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
