// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"tapgate/internal/domain/entity"
	"tapgate/internal/domain/repository"
	"tapgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceDirectory implements the repository.DeviceDirectory interface.
type deviceDirectory struct {
	db *gorm.DB
}

// NewDeviceDirectory is the constructor for deviceDirectory.
func NewDeviceDirectory(db *gorm.DB) repository.DeviceDirectory {
	return &deviceDirectory{
		db: db,
	}
}

// FindActiveByCode retrieves an active reader device by its code.
// Inactive and soft-deleted devices are treated as unknown.
func (repo *deviceDirectory) FindActiveByCode(ctx context.Context, code string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by code")
	}

	return toDeviceDomain(&deviceM), nil
}

// identityDirectory implements the repository.IdentityDirectory interface
// over the students and teachers tables.
type identityDirectory struct {
	db *gorm.DB
}

// NewIdentityDirectory is the constructor for identityDirectory.
func NewIdentityDirectory(db *gorm.DB) repository.IdentityDirectory {
	return &identityDirectory{
		db: db,
	}
}

// FindActiveByCredential retrieves an active identity of the given class by
// its credential UID. Inactive identities are treated as unknown.
func (repo *identityDirectory) FindActiveByCredential(ctx context.Context, class entity.IdentityClass, credentialUID string) (*entity.Identity, error) {
	switch class {
	case entity.ClassStudent:
		var studentM model.StudentModel

		if err := repo.db.WithContext(ctx).
			Where("credential_uid = ? AND is_active = ?", credentialUID, true).
			First(&studentM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrIdentityNotFound
			}

			return nil, errors.Wrap(err, "failed to find student by credential")
		}

		return toStudentDomain(&studentM), nil
	case entity.ClassTeacher:
		var teacherM model.TeacherModel

		if err := repo.db.WithContext(ctx).
			Where("credential_uid = ? AND is_active = ?", credentialUID, true).
			First(&teacherM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrIdentityNotFound
			}

			return nil, errors.Wrap(err, "failed to find teacher by credential")
		}

		return toTeacherDomain(&teacherM), nil
	default:
		return nil, repository.ErrIdentityNotFound
	}
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:                 data.ID,
		Code:               data.Code,
		Name:               data.Name,
		LocationLabel:      data.LocationLabel,
		IsActive:           data.IsActive,
		DebounceWindow:     time.Duration(data.DebounceSeconds) * time.Second,
		RequiresEscalation: data.RequiresEscalation,
	}
}

// toStudentDomain converts a GORM StudentModel to a domain Identity entity.
func toStudentDomain(data *model.StudentModel) *entity.Identity {
	if data == nil {
		return nil
	}

	return &entity.Identity{
		ID:            data.ID,
		Class:         entity.ClassStudent,
		Code:          data.NIS,
		Name:          data.Name,
		CredentialUID: data.CredentialUID,
		IsActive:      data.IsActive,
	}
}

// toTeacherDomain converts a GORM TeacherModel to a domain Identity entity.
func toTeacherDomain(data *model.TeacherModel) *entity.Identity {
	if data == nil {
		return nil
	}

	return &entity.Identity{
		ID:            data.ID,
		Class:         entity.ClassTeacher,
		Code:          data.NIP,
		Name:          data.Name,
		CredentialUID: data.CredentialUID,
		IsActive:      data.IsActive,
	}
}
