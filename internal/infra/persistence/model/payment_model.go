package model

import (
	"time"

	"gorm.io/datatypes"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. Months is a JSONB array of
// "Month Year" labels; overlap checking happens in the use case layer.
type PaymentModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ResidentID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Amount        float64        `gorm:"type:decimal(10,2);not null"`
	Months        datatypes.JSON `gorm:"type:jsonb"`
	PaymentDate   time.Time      `gorm:"not null"`
	DueDate       *time.Time
	Status        string `gorm:"type:varchar(20);not null;default:'Paid'"`
	Method        string `gorm:"type:varchar(30);not null"`
	ReceiptNumber string `gorm:"type:varchar(50);unique;not null"`
	TransactionID string `gorm:"type:varchar(100)"`
	Remarks       string `gorm:"type:text"`
	IsDeposit     bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
