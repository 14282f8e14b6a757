// Package analytics derives progress metrics, insights, and coaching
// recommendations from habit log history. Nothing here is persisted;
// every figure is recomputed from the stores on demand, and read failures
// propagate rather than degrade into zeroed results.
package analytics

import (
	"math"

	"github.com/reptrack/reptrack/internal/constants"
	"github.com/reptrack/reptrack/internal/habit"
	"github.com/reptrack/reptrack/internal/models"
	"github.com/reptrack/reptrack/internal/utils"
)

// Aggregator computes derived metrics over a habit repository. It shares
// the repository's injected clock, so tests pin "today" in one place.
type Aggregator struct {
	repo *habit.Repository
}

func NewAggregator(repo *habit.Repository) *Aggregator {
	return &Aggregator{repo: repo}
}

// habitHistory pairs a habit with its fetched log window so each metric
// pass works from one read instead of re-querying per figure.
type habitHistory struct {
	habit models.Habit
	logs  []models.HabitLog // day descending, capped at LogFetchLimit
}

func (a *Aggregator) loadHistories(userID string) ([]habitHistory, error) {
	habits, err := a.repo.ListHabits(userID, true)
	if err != nil {
		return nil, err
	}

	histories := make([]habitHistory, 0, len(habits))
	for _, h := range habits {
		logs, err := a.repo.ListLogs(h.ID, constants.LogFetchLimit)
		if err != nil {
			return nil, err
		}
		histories = append(histories, habitHistory{habit: h, logs: logs})
	}
	return histories, nil
}

// GetProgressMetrics computes the full analytics snapshot for a user.
// Workout and duration totals are bounded by the per-habit fetch limit, so
// they are rolling-year approximations rather than lifetime truth. Duration
// is estimated at a flat 2 minutes per target set.
func (a *Aggregator) GetProgressMetrics(userID string) (models.ProgressMetrics, error) {
	histories, err := a.loadHistories(userID)
	if err != nil {
		return models.ProgressMetrics{}, err
	}

	metrics := models.ProgressMetrics{}

	for _, hh := range histories {
		completed := countCompleted(hh.logs)
		metrics.TotalWorkouts += completed
		metrics.TotalDurationMinutes += completed * hh.habit.TargetSets * constants.MinutesPerSet

		// Per-habit maxima, not a combined streak across habits.
		streak := habit.ComputeStreak(hh.logs, a.repo.Now())
		if streak.Current > metrics.CurrentStreak {
			metrics.CurrentStreak = streak.Current
		}
		if streak.Best > metrics.BestStreak {
			metrics.BestStreak = streak.Best
		}
	}

	metrics.ConsistencyScore = consistencyScore(histories)
	metrics.MuscleBalance = muscleBalance(histories)
	metrics.WeeklyVolume = a.weeklyVolume(histories)

	return metrics, nil
}

// consistencyScore is completed days over expected days across the trailing
// 30-log window per habit: daily habits expect 30 completions, weekly ones
// a flat 4. Clamped to [0, 100].
func consistencyScore(histories []habitHistory) int {
	totalExpected := 0
	totalCompleted := 0

	for _, hh := range histories {
		if hh.habit.Frequency == models.FrequencyDaily {
			totalExpected += constants.ExpectedDaysDaily
		} else {
			totalExpected += constants.ExpectedDaysWeekly
		}
		totalCompleted += countCompleted(window(hh.logs, constants.ConsistencyWindowLogs))
	}

	if totalExpected == 0 {
		return 0
	}

	score := int(math.Round(float64(totalCompleted) / float64(totalExpected) * 100))
	if score > 100 {
		score = 100
	}
	return score
}

// muscleBalance distributes recent training volume across muscle-group
// buckets. Volume per habit is completed logs in the 30-log window times
// target sets. Every bucket appears in the result, zero-volume ones
// included; percentages are 0 across the board when total volume is 0.
func muscleBalance(histories []habitHistory) []models.MuscleBalance {
	volumes := make(map[models.MuscleGroup]int, len(models.AllMuscleGroups))
	for _, g := range models.AllMuscleGroups {
		volumes[g] = 0
	}

	total := 0
	for _, hh := range histories {
		volume := countCompleted(window(hh.logs, constants.ConsistencyWindowLogs)) * hh.habit.TargetSets
		group := ClassifyMuscleGroup(hh.habit.Name)
		volumes[group] += volume
		total += volume
	}

	balance := make([]models.MuscleBalance, 0, len(models.AllMuscleGroups))
	for _, g := range models.AllMuscleGroups {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(volumes[g]) / float64(total) * 100))
		}
		balance = append(balance, models.MuscleBalance{
			MuscleGroup: g,
			Volume:      volumes[g],
			Percentage:  pct,
		})
	}
	return balance
}

// weeklyVolume builds the 7-day series, oldest first (day-6-ago through
// today). Sets come from each habit's completed log on that day; duration
// uses the same 2-minutes-per-target-set estimate as the totals.
func (a *Aggregator) weeklyVolume(histories []habitHistory) []models.DailyVolume {
	today := utils.Day(a.repo.Now())

	byDay := make([]map[string]models.HabitLog, len(histories))
	for i, hh := range histories {
		byDay[i] = make(map[string]models.HabitLog, len(hh.logs))
		for _, log := range hh.logs {
			byDay[i][log.Day] = log
		}
	}

	week := make([]models.DailyVolume, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := utils.FormatDay(today.AddDate(0, 0, -offset))
		entry := models.DailyVolume{Day: day}

		for i, hh := range histories {
			if log, ok := byDay[i][day]; ok && log.Completed {
				entry.Sets += log.SetsCompleted
				entry.DurationMinutes += hh.habit.TargetSets * constants.MinutesPerSet
			}
		}

		week = append(week, entry)
	}
	return week
}

func countCompleted(logs []models.HabitLog) int {
	n := 0
	for _, log := range logs {
		if log.Completed {
			n++
		}
	}
	return n
}

// window returns the most recent n entries of a day-descending log list.
func window(logs []models.HabitLog, n int) []models.HabitLog {
	if len(logs) <= n {
		return logs
	}
	return logs[:n]
}
