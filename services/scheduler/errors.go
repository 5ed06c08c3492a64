package scheduler

import (
	"fmt"
	"strings"
	"time"
)

// IncompleteScheduleError reports selected activities that are missing a day or
// time-of-day assignment.
type IncompleteScheduleError struct {
	Missing []string
}

func (e *IncompleteScheduleError) Error() string {
	return fmt.Sprintf("incomplete schedule: no slot assigned for activities [%s]",
		strings.Join(e.Missing, ", "))
}

// InvalidDateRangeError reports an end date that precedes the start date.
type InvalidDateRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: end %s precedes start %s",
		e.End.Format("2006-01-02"), e.Start.Format("2006-01-02"))
}

// SlotOutOfRangeError reports a day number beyond the range's available days.
type SlotOutOfRangeError struct {
	ActivityID    string
	Day           int
	AvailableDays int
}

func (e *SlotOutOfRangeError) Error() string {
	return fmt.Sprintf("slot out of range: activity %s assigned to day %d of %d",
		e.ActivityID, e.Day, e.AvailableDays)
}

// DuplicateSlotError reports two or more activities resolving to the same
// (day, time-of-day) pair. ActivityIDs lists every activity in the colliding slot.
type DuplicateSlotError struct {
	Day         int
	TimeOfDay   TimeOfDay
	ActivityIDs []string
}

func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("duplicate slot: activities [%s] all assigned to day %d at %s",
		strings.Join(e.ActivityIDs, ", "), e.Day, e.TimeOfDay)
}

// PastDateError reports a resolved timestamp already in the past at validation time.
type PastDateError struct {
	ActivityID string
	Time       time.Time
}

func (e *PastDateError) Error() string {
	return fmt.Sprintf("past date: activity %s resolves to %s, which is already in the past",
		e.ActivityID, e.Time.Format(time.RFC3339))
}
