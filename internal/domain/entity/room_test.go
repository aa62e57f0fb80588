package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowestFreeBed(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		occupied []int
		wantBed  int
		wantOK   bool
	}{
		{
			name:     "empty room assigns bed one",
			capacity: 4,
			occupied: nil,
			wantBed:  1,
			wantOK:   true,
		},
		{
			name:     "gap in the middle is filled first",
			capacity: 4,
			occupied: []int{1, 3},
			wantBed:  2,
			wantOK:   true,
		},
		{
			name:     "freed lowest bed is reused before higher beds",
			capacity: 3,
			occupied: []int{2, 3},
			wantBed:  1,
			wantOK:   true,
		},
		{
			name:     "full room has no free bed",
			capacity: 2,
			occupied: []int{1, 2},
			wantBed:  0,
			wantOK:   false,
		},
		{
			name:     "zero capacity has no beds",
			capacity: 0,
			occupied: nil,
			wantBed:  0,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occupied := make(map[int]struct{}, len(tt.occupied))
			for _, n := range tt.occupied {
				occupied[n] = struct{}{}
			}

			bed, ok := LowestFreeBed(tt.capacity, occupied)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantBed, bed)
		})
	}
}

func TestBedView(t *testing.T) {
	room := &Room{ID: uuid.New(), Capacity: 3}
	bedTwo := 2
	occupant := &Resident{ID: uuid.New(), Name: "Jane Doe", BedNumber: &bedTwo}
	unallocated := &Resident{ID: uuid.New(), Name: "No Bed"}

	beds := BedView(room, []*Resident{occupant, unallocated})
	require.Len(t, beds, 3)

	assert.False(t, beds[0].Occupied)
	assert.True(t, beds[1].Occupied)
	assert.Equal(t, occupant.ID, *beds[1].ResidentID)
	assert.Equal(t, "Jane Doe", beds[1].ResidentName)
	assert.False(t, beds[2].Occupied)
}

func TestRoomCapacityChecks(t *testing.T) {
	room := &Room{Capacity: 2, CurrentOccupancy: 1}
	assert.True(t, room.HasCapacity())
	assert.False(t, room.IsFull())

	room.CurrentOccupancy = 2
	assert.False(t, room.HasCapacity())
	assert.True(t, room.IsFull())
}
