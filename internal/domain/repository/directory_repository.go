// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tapgate/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for directory lookups. "Not found" covers both
// absent and inactive rows; the engine treats them identically.
var (
	// ErrDeviceNotFound is returned when no active device matches a code.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrIdentityNotFound is returned when no active identity matches a credential.
	ErrIdentityNotFound = errors.New("identity not found")
)

// DeviceDirectory is the read-only view of registered reader devices.
type DeviceDirectory interface {
	// FindActiveByCode retrieves an active device by its hardware code.
	// Inactive devices resolve to ErrDeviceNotFound.
	FindActiveByCode(ctx context.Context, code string) (*entity.Device, error)
}

// IdentityDirectory is the read-only view of badge holders.
type IdentityDirectory interface {
	// FindActiveByCredential retrieves an active identity of the given class
	// by credential UID. Inactive identities resolve to ErrIdentityNotFound.
	FindActiveByCredential(ctx context.Context, class entity.IdentityClass, credentialUID string) (*entity.Identity, error)
}
