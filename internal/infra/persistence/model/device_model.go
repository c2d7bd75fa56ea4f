package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents an RFID reader registered at one location.
type DeviceModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code               string    `gorm:"type:varchar(64);unique;not null"`
	Name               string    `gorm:"type:varchar(100);not null"`
	LocationLabel      string    `gorm:"type:varchar(100);not null"`
	IsActive           bool      `gorm:"not null;default:true"`
	DebounceSeconds    int       `gorm:"not null;default:0"`
	RequiresEscalation bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
