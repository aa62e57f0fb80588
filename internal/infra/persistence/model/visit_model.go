package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitRequestModel is the GORM-specific struct for the 'visit_requests' table.
type VisitRequestModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(20)"`
	PreferredDate *time.Time
	ScheduledAt   *time.Time
	Status        string `gorm:"type:varchar(20);not null;default:'Pending';index"`
	Notes         string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitRequestModel) TableName() string {
	return "visit_requests"
}
