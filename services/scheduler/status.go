package scheduler

import (
	"math"
	"time"

	"tourai/models"
)

// Status is the derived lifecycle state of an itinerary. It is never stored;
// it is recomputed from the activity set and the current time on every read.
type Status string

const (
	// StatusNone means the itinerary has no activities; status is meaningless.
	StatusNone Status = ""
	// StatusPlanned means the itinerary starts in the future and nothing is done yet.
	StatusPlanned Status = "planned"
	// StatusInProgress means at least one activity is still incomplete.
	StatusInProgress Status = "in_progress"
	// StatusConcluded means every activity is complete. Not terminal: unmarking an
	// activity moves the itinerary back to in_progress.
	StatusConcluded Status = "concluded"
)

// EarliestTime returns the earliest scheduled time, or false if there are no activities.
func EarliestTime(activities []models.ScheduledActivity) (time.Time, bool) {
	if len(activities) == 0 {
		return time.Time{}, false
	}
	earliest := activities[0].Time
	for _, a := range activities[1:] {
		if a.Time.Before(earliest) {
			earliest = a.Time
		}
	}
	return earliest, true
}

// LatestTime returns the latest scheduled time, or false if there are no activities.
func LatestTime(activities []models.ScheduledActivity) (time.Time, bool) {
	if len(activities) == 0 {
		return time.Time{}, false
	}
	latest := activities[0].Time
	for _, a := range activities[1:] {
		if a.Time.After(latest) {
			latest = a.Time
		}
	}
	return latest, true
}

// TotalDays returns the inclusive calendar-day span of the schedule, comparing
// dates with the time of day zeroed out. Zero if there are no activities.
func TotalDays(activities []models.ScheduledActivity) int {
	earliest, ok := EarliestTime(activities)
	if !ok {
		return 0
	}
	latest, _ := LatestTime(activities)
	return int(math.Ceil(truncateToDay(latest).Sub(truncateToDay(earliest)).Hours()/24)) + 1
}

// Progress returns the completion percentage, 0 for an empty schedule.
func Progress(activities []models.ScheduledActivity) float64 {
	if len(activities) == 0 {
		return 0
	}
	completed := 0
	for _, a := range activities {
		if a.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(activities)) * 100
}

// Derive computes the itinerary status. Planned is checked first: an itinerary
// that starts in the future but already has completed activities (backfilled
// check-offs) fails the all-incomplete clause and falls through to in_progress.
func Derive(activities []models.ScheduledActivity, now time.Time) Status {
	if len(activities) == 0 {
		return StatusNone
	}

	anyCompleted := false
	allCompleted := true
	for _, a := range activities {
		if a.Completed {
			anyCompleted = true
		} else {
			allCompleted = false
		}
	}

	earliest, _ := EarliestTime(activities)
	if now.Before(earliest) && !anyCompleted {
		return StatusPlanned
	}
	if !allCompleted {
		return StatusInProgress
	}
	return StatusConcluded
}

// Summary bundles everything a read model needs about an itinerary's schedule.
type Summary struct {
	Status    Status
	Progress  float64
	TotalDays int
}

// Summarize derives status, progress and day span in one pass. Pure and
// idempotent; safe to call on every read.
func Summarize(activities []models.ScheduledActivity, now time.Time) Summary {
	return Summary{
		Status:    Derive(activities, now),
		Progress:  Progress(activities),
		TotalDays: TotalDays(activities),
	}
}
