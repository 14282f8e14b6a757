package habit

import (
	"testing"
	"time"

	"github.com/reptrack/reptrack/internal/models"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// completedLogs builds a day-descending log list where every entry is
// completed, matching the order ListLogs returns.
func completedLogs(days ...string) []models.HabitLog {
	logs := make([]models.HabitLog, 0, len(days))
	for _, d := range days {
		logs = append(logs, models.HabitLog{HabitID: "h1", Day: d, Completed: true})
	}
	return logs
}

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name    string
		logs    []models.HabitLog
		today   string
		current int
		best    int
	}{
		{
			name:  "no logs",
			logs:  nil,
			today: "2024-01-10",
		},
		{
			name:    "single log today",
			logs:    completedLogs("2024-01-10"),
			today:   "2024-01-10",
			current: 1,
			best:    1,
		},
		{
			name:    "gap breaks the run",
			logs:    completedLogs("2024-01-10", "2024-01-09", "2024-01-07"),
			today:   "2024-01-10",
			current: 2,
			best:    2,
		},
		{
			name:    "stale history zeroes current but keeps best",
			logs:    completedLogs("2024-01-05"),
			today:   "2024-01-10",
			current: 0,
			best:    1,
		},
		{
			name:    "three consecutive days ending today",
			logs:    completedLogs("2024-01-03", "2024-01-02", "2024-01-01"),
			today:   "2024-01-03",
			current: 3,
			best:    3,
		},
		{
			name:    "skipped day resets current, best survives",
			logs:    completedLogs("2024-01-05", "2024-01-03", "2024-01-02", "2024-01-01"),
			today:   "2024-01-05",
			current: 1,
			best:    3,
		},
		{
			name:    "yesterday still counts as current",
			logs:    completedLogs("2024-01-09", "2024-01-08"),
			today:   "2024-01-10",
			current: 2,
			best:    2,
		},
		{
			name:    "longest run is in the middle of history",
			logs:    completedLogs("2024-01-10", "2024-01-06", "2024-01-05", "2024-01-04", "2024-01-03", "2024-01-01"),
			today:   "2024-01-10",
			current: 1,
			best:    4,
		},
		{
			name: "incomplete logs are ignored",
			logs: []models.HabitLog{
				{HabitID: "h1", Day: "2024-01-10", Completed: false},
				{HabitID: "h1", Day: "2024-01-09", Completed: true},
				{HabitID: "h1", Day: "2024-01-08", Completed: true},
			},
			today:   "2024-01-10",
			current: 2,
			best:    2,
		},
		{
			name:    "duplicate days do not break or extend the run",
			logs:    completedLogs("2024-01-10", "2024-01-10", "2024-01-09"),
			today:   "2024-01-10",
			current: 2,
			best:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStreak(tt.logs, mustDay(t, tt.today))
			if got.Current != tt.current {
				t.Errorf("current = %d, want %d", got.Current, tt.current)
			}
			if got.Best != tt.best {
				t.Errorf("best = %d, want %d", got.Best, tt.best)
			}
			if got.Best < got.Current {
				t.Errorf("best %d < current %d", got.Best, got.Current)
			}
		})
	}
}
