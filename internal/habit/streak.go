// Package habit contains the streak calculator and the repository that
// orchestrates habit reads and the single log write path.
package habit

import (
	"time"

	"github.com/reptrack/reptrack/internal/models"
	"github.com/reptrack/reptrack/internal/utils"
)

// ComputeStreak derives the current and best completion streaks from a
// habit's log history. Input logs must be ordered by day descending (the
// order ListLogs returns); non-completed logs are filtered out here, and
// duplicate days are skipped rather than treated as breaks, so the function
// is robust even if the caller hands it an un-deduplicated sequence.
//
// A run is a span of strictly consecutive calendar days with completed
// logs. Best is the longest run anywhere in the history. Current is the
// length of the most recent run, and it only counts while that run still
// touches today or yesterday: a most-recent completion two or more days
// before today zeroes current without affecting best.
func ComputeStreak(logs []models.HabitLog, today time.Time) models.StreakResult {
	days := completedDaysDesc(logs)
	if len(days) == 0 {
		return models.StreakResult{}
	}

	best := 1
	current := 1
	temp := 1
	leading := true

	for i := 1; i < len(days); i++ {
		gap := utils.DaysBetween(days[i-1], days[i])
		if gap == 1 {
			temp++
			if leading {
				current = temp
			}
		} else {
			// Gap of 2+ days: this log starts a new run. The leading
			// run's length is frozen in current.
			temp = 1
			leading = false
		}
		if temp > best {
			best = temp
		}
	}

	// A streak must include yesterday or today to still be current.
	if utils.DaysBetween(today, days[0]) > 1 {
		current = 0
	}

	return models.StreakResult{Current: current, Best: best}
}

// completedDaysDesc extracts the parsed days of completed logs, preserving
// descending order and dropping duplicates and malformed dates.
func completedDaysDesc(logs []models.HabitLog) []time.Time {
	var days []time.Time
	for _, log := range logs {
		if !log.Completed {
			continue
		}
		d, err := utils.ParseDay(log.Day)
		if err != nil {
			continue
		}
		if len(days) > 0 && days[len(days)-1].Equal(d) {
			continue
		}
		days = append(days, d)
	}
	return days
}
