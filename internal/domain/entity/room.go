// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomStatus describes the administrative state of a room.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// IsValid reports whether the status is one of the known room states.
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}

	return false
}

// Room represents a physical room in the hostel. Beds are not persisted
// separately; they are a derived view over the active residents assigned to
// the room (see BedView). CurrentOccupancy is maintained incrementally on
// every allocation and deallocation and must always equal the number of
// active residents bound to the room.
type Room struct {
	ID               uuid.UUID  `json:"id"`                // The Global Unique Identifier (GUID) for the room.
	Building         string     `json:"building"`          // The building or block the room belongs to.
	RoomNumber       string     `json:"room_number"`       // Human-readable room number, unique within a building.
	Floor            int        `json:"floor"`             // Floor the room is on.
	Capacity         int        `json:"capacity"`          // Number of beds in the room (bed numbers run 1..Capacity).
	CurrentOccupancy int        `json:"current_occupancy"` // Count of beds currently held by active residents.
	Status           RoomStatus `json:"status"`            // Administrative status; independently settable by admins.
	Price            float64    `json:"price"`             // Monthly rent per bed.
	Amenities        []string   `json:"amenities"`         // Amenities available in the room.
	IsActive         bool       `json:"is_active"`         // Soft-delete flag; rooms are never hard-deleted.
	CreatedAt        time.Time  `json:"created_at"`        // Timestamp of when this room was created.
	UpdatedAt        time.Time  `json:"updated_at"`        // Timestamp of the last modification.
}

// HasCapacity reports whether at least one bed is free.
func (r *Room) HasCapacity() bool {
	return r.CurrentOccupancy < r.Capacity
}

// IsFull reports whether every bed is taken.
func (r *Room) IsFull() bool {
	return r.CurrentOccupancy >= r.Capacity
}

// Bed is a single occupancy slot within a room, derived at read time by
// joining active residents on (roomID, bedNumber). At most one active
// resident may hold a given (room, bed) pair.
type Bed struct {
	Number       int        `json:"number"`                  // Bed number, 1..capacity.
	Occupied     bool       `json:"occupied"`                // Whether an active resident holds this bed.
	ResidentID   *uuid.UUID `json:"resident_id,omitempty"`   // The resident holding the bed, when occupied.
	ResidentName string     `json:"resident_name,omitempty"` // Display name of the occupant, when occupied.
}

// BedView derives the bed layout of a room from its active residents.
// Residents without a bed number are ignored.
func BedView(room *Room, residents []*Resident) []Bed {
	beds := make([]Bed, 0, room.Capacity)
	byNumber := make(map[int]*Resident, len(residents))
	for _, res := range residents {
		if res.BedNumber != nil {
			byNumber[*res.BedNumber] = res
		}
	}

	for number := 1; number <= room.Capacity; number++ {
		bed := Bed{Number: number}
		if res, ok := byNumber[number]; ok {
			id := res.ID
			bed.Occupied = true
			bed.ResidentID = &id
			bed.ResidentName = res.Name
		}
		beds = append(beds, bed)
	}

	return beds
}

// LowestFreeBed returns the smallest bed number in 1..capacity that is not
// present in the occupied set. Assignment is always lowest-available-first
// for predictability. The second return value is false when every bed is
// taken.
func LowestFreeBed(capacity int, occupied map[int]struct{}) (int, bool) {
	for number := 1; number <= capacity; number++ {
		if _, taken := occupied[number]; !taken {
			return number, true
		}
	}

	return 0, false
}
