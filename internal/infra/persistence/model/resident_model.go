package model

import (
	"time"

	"gorm.io/datatypes"

	"github.com/google/uuid"
)

// ResidentModel mirrors the 'residents' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type ResidentModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string     `gorm:"type:varchar(100);not null"`
	Email              string     `gorm:"type:varchar(255);unique;not null"`
	Phone              string     `gorm:"type:varchar(20)"`
	PGID               string     `gorm:"column:pg_id;type:varchar(20);index"`
	PasswordHash       string     `gorm:"type:varchar(255)"`
	Role               string     `gorm:"type:varchar(20);not null;default:'resident'"`
	RegistrationStatus string     `gorm:"type:varchar(20);not null;default:'Pending';index"`
	RoomID             *uuid.UUID `gorm:"type:uuid;index"`
	BedNumber          *int
	MoveInDate         *time.Time
	MoveOutDate        *time.Time
	IsActive           bool `gorm:"not null;default:false;index"`
	IsOnNoticePeriod   bool `gorm:"not null;default:false"`
	LastStayingDate    *time.Time
	DepositFees        float64        `gorm:"type:decimal(10,2);not null;default:0"`
	KeyIssued          bool           `gorm:"not null;default:false"`
	DepositReturn      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResidentModel) TableName() string {
	return "residents"
}
