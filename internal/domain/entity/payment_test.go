package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlappingMonths(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		existing  []string
		want      []string
	}{
		{
			name:      "no overlap",
			requested: []string{"March 2026"},
			existing:  []string{"January 2026", "February 2026"},
			want:      nil,
		},
		{
			name:      "single overlap",
			requested: []string{"February 2026", "March 2026"},
			existing:  []string{"January 2026", "February 2026"},
			want:      []string{"February 2026"},
		},
		{
			name:      "overlap keeps requested order",
			requested: []string{"March 2026", "January 2026"},
			existing:  []string{"January 2026", "March 2026"},
			want:      []string{"March 2026", "January 2026"},
		},
		{
			name:      "empty request",
			requested: nil,
			existing:  []string{"January 2026"},
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlappingMonths(tt.requested, tt.existing))
		})
	}
}
