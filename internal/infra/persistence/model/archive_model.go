package model

import (
	"time"

	"gorm.io/datatypes"

	"github.com/google/uuid"
)

// ResidentArchiveModel mirrors the 'resident_archives' table. The unique
// index on ResidentID enforces the one-archive-per-resident rule at the
// datastore level.
type ResidentArchiveModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ResidentID          uuid.UUID  `gorm:"type:uuid;unique;not null"`
	Name                string     `gorm:"type:varchar(100);not null"`
	Email               string     `gorm:"type:varchar(255);not null;index"`
	Phone               string     `gorm:"type:varchar(20)"`
	PGID                string     `gorm:"column:pg_id;type:varchar(20)"`
	RoomID              *uuid.UUID `gorm:"type:uuid"`
	BedNumber           *int
	MoveInDate          *time.Time
	MoveOutDate         time.Time `gorm:"not null"`
	StayDuration        int       `gorm:"not null;default:0"`
	ArchiveReason       string    `gorm:"type:varchar(50);not null"`
	ArchiveDate         time.Time `gorm:"not null"`
	ExitSurveyCompleted bool      `gorm:"not null;default:false"`
	ExitFeedback        datatypes.JSON `gorm:"type:jsonb"`
	DepositFees         float64        `gorm:"type:decimal(10,2);not null;default:0"`
	DepositReturn       datatypes.JSON `gorm:"type:jsonb"`
	RefundAmount        float64        `gorm:"type:decimal(10,2);not null;default:0"`
	RefundMethod        string         `gorm:"type:varchar(50)"`
	KeyIssued           bool           `gorm:"not null;default:false"`
	AdminComments       string         `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResidentArchiveModel) TableName() string {
	return "resident_archives"
}
