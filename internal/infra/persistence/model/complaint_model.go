package model

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintModel is the GORM-specific struct for the 'complaints' table.
type ComplaintModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ResidentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Category    string    `gorm:"type:varchar(50);not null"`
	Subject     string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Open';index"`
	AdminNotes  string    `gorm:"type:text"`
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplaintModel) TableName() string {
	return "complaints"
}
