package scheduler

import (
	"sort"
	"time"

	"tourai/models"
)

// Materialize resolves every selected activity's (day, time-of-day) slot against the
// range's start date and returns the absolute schedule, ordered by time.
//
// Validation is atomic and fail-fast: the first violated constraint is returned and
// nothing is produced, so a known-invalid schedule can never reach persistence.
// The past-date check compares against now at call time only; a schedule that was
// valid at submission may later fall in the past without re-validation.
func Materialize(plan *Plan, selected []string, rng DateRange, now time.Time) ([]models.ScheduledActivity, error) {
	// Completeness: every selected activity needs a slot.
	var missing []string
	for _, id := range selected {
		if _, ok := plan.Assignment(id); !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &IncompleteScheduleError{Missing: missing}
	}

	// Date-range sanity.
	if rng.Start.IsZero() || rng.End.IsZero() || truncateToDay(rng.End).Before(truncateToDay(rng.Start)) {
		return nil, &InvalidDateRangeError{Start: rng.Start, End: rng.End}
	}

	available := rng.AvailableDays()
	for _, id := range selected {
		a, _ := plan.Assignment(id)
		if a.Day > available {
			return nil, &SlotOutOfRangeError{ActivityID: id, Day: a.Day, AvailableDays: available}
		}
	}

	// Slot collision: no two activities may share a (day, time-of-day) pair.
	bySlot := make(map[SlotKey][]string)
	for _, id := range selected {
		a, _ := plan.Assignment(id)
		key := SlotKey{Day: a.Day, TimeOfDay: a.TimeOfDay}
		bySlot[key] = append(bySlot[key], id)
	}
	for key, ids := range bySlot {
		if len(ids) > 1 {
			sort.Strings(ids)
			return nil, &DuplicateSlotError{Day: key.Day, TimeOfDay: key.TimeOfDay, ActivityIDs: ids}
		}
	}

	// Resolve absolute timestamps and reject anything already in the past.
	scheduled := make([]models.ScheduledActivity, 0, len(selected))
	for _, id := range selected {
		a, _ := plan.Assignment(id)
		abs := ResolveSlot(rng.Start, a.Day, a.TimeOfDay)
		if abs.Before(now) {
			return nil, &PastDateError{ActivityID: id, Time: abs}
		}
		scheduled = append(scheduled, models.ScheduledActivity{
			ActivityID: id,
			Time:       abs,
		})
	}

	sort.Slice(scheduled, func(i, j int) bool {
		return scheduled[i].Time.Before(scheduled[j].Time)
	})
	return scheduled, nil
}

// SlotKey identifies one (day, time-of-day) slot within a schedule.
type SlotKey struct {
	Day       int
	TimeOfDay TimeOfDay
}

// ResolveSlot combines the range's start date, a 1-based day number and a
// time-of-day into an absolute UTC timestamp with seconds zeroed.
func ResolveSlot(start time.Time, day int, tod TimeOfDay) time.Time {
	base := truncateToDay(start).AddDate(0, 0, day-1)
	return time.Date(base.Year(), base.Month(), base.Day(), tod.Hour, tod.Minute, 0, 0, time.UTC)
}
