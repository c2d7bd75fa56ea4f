package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel mirrors the 'students' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type StudentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NIS           string    `gorm:"column:nis;type:varchar(32);unique;not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	CredentialUID string    `gorm:"type:varchar(64);unique;not null;index"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Guardians []GuardianModel `gorm:"foreignKey:StudentID"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}

// TeacherModel mirrors the 'teachers' table.
type TeacherModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NIP           string    `gorm:"column:nip;type:varchar(32);unique;not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	CredentialUID string    `gorm:"type:varchar(64);unique;not null;index"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TeacherModel) TableName() string {
	return "teachers"
}

// GuardianModel mirrors the 'guardians' table. One student has many guardians.
type GuardianModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Label         string    `gorm:"type:varchar(50);not null"`
	PushToken     string    `gorm:"type:varchar(512);not null"`
	NotifyEnabled bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuardianModel) TableName() string {
	return "guardians"
}
