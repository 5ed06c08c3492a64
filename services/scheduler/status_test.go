package scheduler

import (
	"testing"
	"time"

	"tourai/models"

	"github.com/stretchr/testify/assert"
)

func scheduled(ts time.Time, completed bool) models.ScheduledActivity {
	return models.ScheduledActivity{ActivityID: "a", Time: ts, Completed: completed}
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	tests := []struct {
		name       string
		activities []models.ScheduledActivity
		want       Status
	}{
		{
			name: "empty itinerary has no status",
			want: StatusNone,
		},
		{
			name: "all future and incomplete is planned",
			activities: []models.ScheduledActivity{
				scheduled(future, false),
				scheduled(future.Add(time.Hour), false),
				scheduled(future.Add(2*time.Hour), false),
			},
			want: StatusPlanned,
		},
		{
			name: "future start with a backfilled completion is in progress",
			activities: []models.ScheduledActivity{
				scheduled(future, true),
				scheduled(future.Add(time.Hour), false),
				scheduled(future.Add(2*time.Hour), false),
			},
			want: StatusInProgress,
		},
		{
			name: "started and incomplete is in progress",
			activities: []models.ScheduledActivity{
				scheduled(past, false),
				scheduled(future, false),
			},
			want: StatusInProgress,
		},
		{
			name: "everything completed is concluded",
			activities: []models.ScheduledActivity{
				scheduled(past, true),
				scheduled(future, true),
			},
			want: StatusConcluded,
		},
		{
			name: "unmarking on a concluded itinerary reverts to in progress",
			activities: []models.ScheduledActivity{
				scheduled(past, true),
				scheduled(past.Add(time.Hour), false),
			},
			want: StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.activities, now))
		})
	}
}

func TestProgress(t *testing.T) {
	now := time.Now()

	assert.Equal(t, float64(0), Progress(nil))

	acts := []models.ScheduledActivity{
		scheduled(now, false),
		scheduled(now, false),
		scheduled(now, false),
	}
	assert.Equal(t, float64(0), Progress(acts))

	acts[0].Completed = true
	assert.InDelta(t, 33.33, Progress(acts), 0.01)

	acts[1].Completed = true
	acts[2].Completed = true
	assert.Equal(t, float64(100), Progress(acts))
}

func TestTotalDays(t *testing.T) {
	assert.Equal(t, 0, TotalDays(nil))

	// Spanning 2025-01-10T09:00 to 2025-01-12T18:00 is a three-day itinerary.
	acts := []models.ScheduledActivity{
		scheduled(time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC), false),
		scheduled(time.Date(2025, time.January, 11, 12, 0, 0, 0, time.UTC), false),
		scheduled(time.Date(2025, time.January, 12, 18, 0, 0, 0, time.UTC), false),
	}
	assert.Equal(t, 3, TotalDays(acts))

	single := []models.ScheduledActivity{
		scheduled(time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC), false),
	}
	assert.Equal(t, 1, TotalDays(single))
}

func TestEarliestLatest(t *testing.T) {
	_, ok := EarliestTime(nil)
	assert.False(t, ok)
	_, ok = LatestTime(nil)
	assert.False(t, ok)

	a := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.January, 12, 18, 0, 0, 0, time.UTC)
	acts := []models.ScheduledActivity{scheduled(b, false), scheduled(a, false)}

	earliest, ok := EarliestTime(acts)
	assert.True(t, ok)
	assert.Equal(t, a, earliest)

	latest, ok := LatestTime(acts)
	assert.True(t, ok)
	assert.Equal(t, b, latest)
}

func TestSummarizeIsIdempotent(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	acts := []models.ScheduledActivity{
		scheduled(now.Add(24*time.Hour), true),
		scheduled(now.Add(48*time.Hour), false),
	}

	first := Summarize(acts, now)
	second := Summarize(acts, now)
	assert.Equal(t, first, second)
	assert.Equal(t, StatusInProgress, first.Status)
	assert.Equal(t, float64(50), first.Progress)
	assert.Equal(t, 2, first.TotalDays)
}
