package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitStatusTransitions(t *testing.T) {
	tests := []struct {
		from    VisitStatus
		to      VisitStatus
		allowed bool
	}{
		{VisitStatusPending, VisitStatusScheduled, true},
		{VisitStatusPending, VisitStatusCancelled, true},
		{VisitStatusPending, VisitStatusCompleted, false},
		{VisitStatusScheduled, VisitStatusCompleted, true},
		{VisitStatusScheduled, VisitStatusCancelled, true},
		{VisitStatusScheduled, VisitStatusPending, false},
		{VisitStatusCompleted, VisitStatusCancelled, false},
		{VisitStatusCancelled, VisitStatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
