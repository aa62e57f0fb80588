package model

import (
	"time"

	"gorm.io/datatypes"

	"github.com/google/uuid"
)

// RoomModel is the GORM-specific struct for the 'rooms' table.
type RoomModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Building         string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_rooms_building_number"`
	RoomNumber       string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_rooms_building_number"`
	Floor            int            `gorm:"not null;default:0"`
	Capacity         int            `gorm:"not null"`
	CurrentOccupancy int            `gorm:"not null;default:0"`
	Status           string         `gorm:"type:varchar(20);not null;default:'available'"`
	Price            float64        `gorm:"type:decimal(10,2);not null"`
	Amenities        datatypes.JSON `gorm:"type:jsonb"`
	IsActive         bool           `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoomModel) TableName() string {
	return "rooms"
}
