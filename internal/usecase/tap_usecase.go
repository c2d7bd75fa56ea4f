// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"
	"time"

	"tapgate/internal/domain/entity"

	"github.com/google/uuid"
)

// TapRequest is one raw badge read as submitted by a reader device.
type TapRequest struct {
	DeviceCode    string `json:"device_code"`
	CredentialUID string `json:"credential_uid"`
	// ClassHint optionally pins resolution to one identity class. When empty,
	// student credentials are checked first, then teacher.
	ClassHint string `json:"class_hint,omitempty"`
}

// IdentitySummary is the caller-facing slice of a resolved identity.
type IdentitySummary struct {
	ID    uuid.UUID            `json:"id"`
	Class entity.IdentityClass `json:"class"`
	Code  string               `json:"code"`
	Name  string               `json:"name"`
}

// TapResult is the terminal outcome of one tap request. Rejections are
// results, not errors; only infrastructure failures surface as errors.
type TapResult struct {
	Accepted bool `json:"accepted"`

	// Set when accepted.
	TapEventID uuid.UUID        `json:"tap_event_id,omitempty"`
	Direction  entity.Direction `json:"direction,omitempty"`

	// Set when rejected.
	ReasonCode    string        `json:"reason_code,omitempty"`
	Message       string        `json:"message,omitempty"`
	RemainingWait time.Duration `json:"remaining_wait,omitempty"`

	// Identity is present whenever resolution got far enough, including
	// TOO_SOON rejections.
	Identity      *IdentitySummary `json:"identity,omitempty"`
	LocationLabel string           `json:"location_label,omitempty"`
	TappedAt      time.Time        `json:"tapped_at"`
}

// TapUsecase is the tap processing and deduplication engine.
type TapUsecase interface {
	// ProcessTap resolves, debounces, records and fans out one tap.
	// Concurrent calls for the same identity are serialized; at most one of
	// a burst within the debounce window is accepted.
	ProcessTap(ctx context.Context, req *TapRequest) (*TapResult, error)

	// LastTap returns the identity's most recent accepted tap across all
	// days and devices.
	LastTap(ctx context.Context, ref entity.IdentityRef) (*entity.TapEvent, error)

	// LastTapToday returns the identity's most recent accepted tap on the
	// current calendar day in the deployment time zone.
	LastTapToday(ctx context.Context, ref entity.IdentityRef) (*entity.TapEvent, error)
}
