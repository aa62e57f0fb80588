package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationStatusIsTerminal(t *testing.T) {
	assert.False(t, RegistrationPending.IsTerminal())
	assert.True(t, RegistrationApproved.IsTerminal())
	assert.True(t, RegistrationRejected.IsTerminal())
}

func TestResidentIsCheckedOut(t *testing.T) {
	moveOut := time.Now()

	tests := []struct {
		name     string
		resident Resident
		want     bool
	}{
		{
			name:     "active resident",
			resident: Resident{IsActive: true},
			want:     false,
		},
		{
			name:     "inactive without move-out never moved in",
			resident: Resident{IsActive: false},
			want:     false,
		},
		{
			name:     "inactive with move-out date",
			resident: Resident{IsActive: false, MoveOutDate: &moveOut},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resident.IsCheckedOut())
		})
	}
}

func TestResidentStayStart(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	moveIn := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	withMoveIn := Resident{CreatedAt: created, MoveInDate: &moveIn}
	assert.Equal(t, moveIn, withMoveIn.StayStart())

	withoutMoveIn := Resident{CreatedAt: created}
	assert.Equal(t, created, withoutMoveIn.StayStart())
}
