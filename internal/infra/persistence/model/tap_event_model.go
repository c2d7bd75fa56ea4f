package model

import (
	"time"

	"github.com/google/uuid"
)

// TapEventModel is the GORM-specific struct for the 'tap_events' table.
// The ledger is append-only; rows are never updated after insert except for
// the notification_outcome reconciliation.
type TapEventModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IdentityID          uuid.UUID `gorm:"type:uuid;not null;index:idx_tap_events_identity_tapped,priority:2"`
	IdentityClass       string    `gorm:"type:varchar(16);not null;index:idx_tap_events_identity_tapped,priority:1"`
	DeviceID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Direction           string    `gorm:"type:varchar(8);not null"`
	TappedAt            time.Time `gorm:"not null;index:idx_tap_events_identity_tapped,priority:3,sort:desc"`
	NotificationOutcome string    `gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (TapEventModel) TableName() string {
	return "tap_events"
}

// DeliveryLogModel is the GORM-specific struct for the 'delivery_logs' table.
// It records one push delivery attempt to one recipient.
type DeliveryLogModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TapEventID        uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientLabel    string    `gorm:"type:varchar(50);not null"`
	PushToken         string    `gorm:"type:varchar(512);not null"`
	Message           string    `gorm:"type:text;not null"`
	Status            string    `gorm:"type:text;not null;default:'sent'"`
	ProviderMessageID string    `gorm:"type:text"`
	ErrorMessage      string    `gorm:"type:text"`
	SentAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}
