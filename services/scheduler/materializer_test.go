package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPlan(t *testing.T, slots map[string]SlotAssignment) *Plan {
	t.Helper()
	p := NewPlan()
	for id, s := range slots {
		require.NoError(t, p.Assign(id, s.Day, s.TimeOfDay))
	}
	return p
}

func TestMaterializeHappyPath(t *testing.T) {
	now := date(2025, time.June, 1)
	rng := DateRange{Start: date(2025, time.June, 10), End: date(2025, time.June, 12)}
	plan := buildPlan(t, map[string]SlotAssignment{
		"museum": {Day: 2, TimeOfDay: TimeOfDay{Hour: 14}},
		"beach":  {Day: 1, TimeOfDay: TimeOfDay{Hour: 9, Minute: 30}},
		"dinner": {Day: 1, TimeOfDay: TimeOfDay{Hour: 19}},
	})

	got, err := Materialize(plan, []string{"museum", "beach", "dinner"}, rng, now)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Ordered by resolved time.
	assert.Equal(t, "beach", got[0].ActivityID)
	assert.Equal(t, "dinner", got[1].ActivityID)
	assert.Equal(t, "museum", got[2].ActivityID)

	// Round-trip date math: day 1 lands on the start date with the given time,
	// day n on start + (n-1) days.
	assert.Equal(t, time.Date(2025, time.June, 10, 9, 30, 0, 0, time.UTC), got[0].Time)
	assert.Equal(t, time.Date(2025, time.June, 10, 19, 0, 0, 0, time.UTC), got[1].Time)
	assert.Equal(t, time.Date(2025, time.June, 11, 14, 0, 0, 0, time.UTC), got[2].Time)

	// Nothing is completed at creation.
	for _, a := range got {
		assert.False(t, a.Completed)
	}
}

func TestMaterializeIncompleteSchedule(t *testing.T) {
	now := date(2025, time.June, 1)
	rng := DateRange{Start: date(2025, time.June, 10), End: date(2025, time.June, 12)}
	plan := buildPlan(t, map[string]SlotAssignment{
		"beach": {Day: 1, TimeOfDay: TimeOfDay{Hour: 9}},
	})

	_, err := Materialize(plan, []string{"beach", "museum", "dinner"}, rng, now)
	var incomplete *IncompleteScheduleError
	require.ErrorAs(t, err, &incomplete)
	assert.ElementsMatch(t, []string{"museum", "dinner"}, incomplete.Missing)
}

func TestMaterializeInvalidDateRange(t *testing.T) {
	now := date(2025, time.June, 1)
	plan := buildPlan(t, map[string]SlotAssignment{
		"beach": {Day: 1, TimeOfDay: TimeOfDay{Hour: 9}},
	})

	tests := []struct {
		name string
		rng  DateRange
	}{
		{"end before start", DateRange{Start: date(2025, time.June, 12), End: date(2025, time.June, 10)}},
		{"missing start", DateRange{End: date(2025, time.June, 10)}},
		{"missing end", DateRange{Start: date(2025, time.June, 10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Materialize(plan, []string{"beach"}, tt.rng, now)
			var invalid *InvalidDateRangeError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestMaterializeSlotOutOfRange(t *testing.T) {
	now := date(2025, time.June, 1)
	// Two available days; day 3 is out of range.
	rng := DateRange{Start: date(2025, time.June, 10), End: date(2025, time.June, 11)}
	plan := buildPlan(t, map[string]SlotAssignment{
		"beach":  {Day: 1, TimeOfDay: TimeOfDay{Hour: 9}},
		"museum": {Day: 3, TimeOfDay: TimeOfDay{Hour: 14}},
	})

	_, err := Materialize(plan, []string{"beach", "museum"}, rng, now)
	var oor *SlotOutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "museum", oor.ActivityID)
	assert.Equal(t, 3, oor.Day)
	assert.Equal(t, 2, oor.AvailableDays)
}

func TestMaterializeDuplicateSlot(t *testing.T) {
	now := date(2025, time.June, 1)
	rng := DateRange{Start: date(2025, time.June, 10), End: date(2025, time.June, 12)}
	plan := buildPlan(t, map[string]SlotAssignment{
		"beach":  {Day: 2, TimeOfDay: TimeOfDay{Hour: 9}},
		"museum": {Day: 2, TimeOfDay: TimeOfDay{Hour: 9}},
		"dinner": {Day: 2, TimeOfDay: TimeOfDay{Hour: 19}},
	})

	_, err := Materialize(plan, []string{"beach", "museum", "dinner"}, rng, now)
	var dup *DuplicateSlotError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 2, dup.Day)
	assert.Equal(t, TimeOfDay{Hour: 9}, dup.TimeOfDay)
	assert.ElementsMatch(t, []string{"beach", "museum"}, dup.ActivityIDs)

	// Distinct times on the same day are fine.
	plan2 := buildPlan(t, map[string]SlotAssignment{
		"beach":  {Day: 2, TimeOfDay: TimeOfDay{Hour: 9}},
		"museum": {Day: 2, TimeOfDay: TimeOfDay{Hour: 9, Minute: 30}},
	})
	_, err = Materialize(plan2, []string{"beach", "museum"}, rng, now)
	assert.NoError(t, err)

	// Same time on different days is fine too.
	plan3 := buildPlan(t, map[string]SlotAssignment{
		"beach":  {Day: 1, TimeOfDay: TimeOfDay{Hour: 9}},
		"museum": {Day: 2, TimeOfDay: TimeOfDay{Hour: 9}},
	})
	_, err = Materialize(plan3, []string{"beach", "museum"}, rng, now)
	assert.NoError(t, err)
}

func TestMaterializePastDate(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	rng := DateRange{Start: date(2025, time.June, 10), End: date(2025, time.June, 11)}
	plan := buildPlan(t, map[string]SlotAssignment{
		"breakfast": {Day: 1, TimeOfDay: TimeOfDay{Hour: 8}},
	})

	_, err := Materialize(plan, []string{"breakfast"}, rng, now)
	var past *PastDateError
	require.ErrorAs(t, err, &past)
	assert.Equal(t, "breakfast", past.ActivityID)
	assert.Equal(t, time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC), past.Time)

	// A schedule entirely in the future passes.
	plan2 := buildPlan(t, map[string]SlotAssignment{
		"lunch": {Day: 1, TimeOfDay: TimeOfDay{Hour: 13}},
	})
	_, err = Materialize(plan2, []string{"lunch"}, rng, now)
	assert.NoError(t, err)
}

func TestResolveSlot(t *testing.T) {
	start := date(2025, time.January, 10)
	assert.Equal(t,
		time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC),
		ResolveSlot(start, 1, TimeOfDay{Hour: 9}))
	assert.Equal(t,
		time.Date(2025, time.January, 14, 18, 45, 0, 0, time.UTC),
		ResolveSlot(start, 5, TimeOfDay{Hour: 18, Minute: 45}))
}
