package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Rows are written by the event worker; reads are per-user.
type NotificationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title        string     `gorm:"type:varchar(200);not null"`
	Message      string     `gorm:"type:text;not null"`
	Type         string     `gorm:"type:varchar(30);not null;default:'general'"`
	RelatedID    *uuid.UUID `gorm:"type:uuid"`
	RelatedModel string     `gorm:"type:varchar(50)"`
	IsRead       bool       `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
