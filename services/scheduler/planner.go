// Package scheduler converts an unordered set of roadmap activities into a
// time-ordered, conflict-checked, multi-day schedule, and derives the completion
// status of existing itineraries. It is pure logic: no persistence, no network.
package scheduler

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time within a day, 24h.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24h) into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// DateRange is an inclusive calendar-date interval. Only the date part of Start
// and End is significant.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// AvailableDays returns the inclusive day count of the range, never less than 1.
// Absent dates fall back to a single-day range so day selectors never show zero.
func (r DateRange) AvailableDays() int {
	if r.Start.IsZero() || r.End.IsZero() {
		return 1
	}
	days := int(truncateToDay(r.End).Sub(truncateToDay(r.Start)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SlotAssignment binds one activity to a (day, time-of-day) slot while a schedule
// is being built. Day is 1-based: day 1 is the range's start date.
type SlotAssignment struct {
	ActivityID string
	Day        int
	TimeOfDay  TimeOfDay
}

// Plan accumulates slot assignments during the convert-roadmap workflow. It is
// discarded once the schedule is materialized and submitted.
type Plan struct {
	assignments map[string]SlotAssignment
}

func NewPlan() *Plan {
	return &Plan{assignments: make(map[string]SlotAssignment)}
}

// Assign stores or overwrites the slot for an activity. Only positivity of the day
// number is checked here; range and collision validation is deferred to
// materialization so callers can hold in-progress invalid state without blocking.
func (p *Plan) Assign(activityID string, day int, tod TimeOfDay) error {
	if day < 1 {
		return fmt.Errorf("day number must be positive, got %d", day)
	}
	p.assignments[activityID] = SlotAssignment{ActivityID: activityID, Day: day, TimeOfDay: tod}
	return nil
}

// Assignment returns the slot for an activity, if one has been assigned.
func (p *Plan) Assignment(activityID string) (SlotAssignment, bool) {
	a, ok := p.assignments[activityID]
	return a, ok
}

// Len returns the number of assigned activities.
func (p *Plan) Len() int {
	return len(p.assignments)
}
