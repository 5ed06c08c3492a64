package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailableDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "same day",
			start: date(2025, time.March, 10),
			end:   date(2025, time.March, 10),
			want:  1,
		},
		{
			name:  "three day trip",
			start: date(2025, time.March, 10),
			end:   date(2025, time.March, 12),
			want:  3,
		},
		{
			name:  "spans month boundary",
			start: date(2025, time.January, 30),
			end:   date(2025, time.February, 2),
			want:  4,
		},
		{
			name:  "inverted range clamps to one",
			start: date(2025, time.March, 12),
			end:   date(2025, time.March, 10),
			want:  1,
		},
		{
			name: "zero dates default to one",
			want: 1,
		},
		{
			name:  "time of day is ignored",
			start: time.Date(2025, time.March, 10, 23, 30, 0, 0, time.UTC),
			end:   time.Date(2025, time.March, 11, 0, 15, 0, 0, time.UTC),
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := DateRange{Start: tt.start, End: tt.end}
			assert.Equal(t, tt.want, rng.AvailableDays())
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30}, tod)
	assert.Equal(t, "09:30", tod.String())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("half past nine")
	assert.Error(t, err)
}

func TestPlanAssign(t *testing.T) {
	p := NewPlan()

	require.NoError(t, p.Assign("a1", 1, TimeOfDay{Hour: 9}))
	require.NoError(t, p.Assign("a2", 2, TimeOfDay{Hour: 14}))
	assert.Equal(t, 2, p.Len())

	// Reassignment overwrites.
	require.NoError(t, p.Assign("a1", 3, TimeOfDay{Hour: 18, Minute: 30}))
	got, ok := p.Assignment("a1")
	require.True(t, ok)
	assert.Equal(t, 3, got.Day)
	assert.Equal(t, TimeOfDay{Hour: 18, Minute: 30}, got.TimeOfDay)
	assert.Equal(t, 2, p.Len())

	// Out-of-range days are accepted at assignment time (validated on materialize),
	// but non-positive days are rejected immediately.
	assert.NoError(t, p.Assign("a3", 99, TimeOfDay{}))
	assert.Error(t, p.Assign("a4", 0, TimeOfDay{}))
	assert.Error(t, p.Assign("a4", -1, TimeOfDay{}))

	_, ok = p.Assignment("a4")
	assert.False(t, ok)
}
