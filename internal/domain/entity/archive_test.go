package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStayDurationDays(t *testing.T) {
	day := func(value string) time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			t.Fatalf("bad test date %q: %v", value, err)
		}

		return parsed
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "january stay",
			start: day("2024-01-01"),
			end:   day("2024-01-31"),
			want:  30,
		},
		{
			name:  "same day checkout",
			start: day("2024-03-15"),
			end:   day("2024-03-15"),
			want:  0,
		},
		{
			name:  "end before start clamps to zero",
			start: day("2024-05-01"),
			end:   day("2024-04-01"),
			want:  0,
		},
		{
			name:  "partial day rounds down",
			start: day("2024-01-01"),
			end:   day("2024-01-02").Add(12 * time.Hour),
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StayDurationDays(tt.start, tt.end))
		})
	}
}
