package model

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseModel is the GORM-specific struct for the 'expenses' table.
type ExpenseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Category    string    `gorm:"type:varchar(50);not null;index"`
	Amount      float64   `gorm:"type:decimal(10,2);not null"`
	Description string    `gorm:"type:text"`
	SpentAt     time.Time `gorm:"not null;index"`
	RecordedBy  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExpenseModel) TableName() string {
	return "expenses"
}
