package analytics

import (
	"fmt"
	"math/rand"

	"github.com/reptrack/reptrack/internal/constants"
	"github.com/reptrack/reptrack/internal/habit"
	"github.com/reptrack/reptrack/internal/models"
	"github.com/reptrack/reptrack/internal/utils"
)

// quickTips is the rotating fallback shown when no recommendation fires.
// Selection is the one intentionally non-deterministic surface here.
var quickTips = []string{
	"Consistency beats intensity. Show up every day!",
	"Progressive overload: gradually increase difficulty over time.",
	"Recovery is when muscles grow. Don't skip rest days!",
	"Track your progress to stay motivated.",
	"Form over speed - quality reps build strength safely.",
}

// GetRecommendations evaluates the coaching rules in priority order: rest
// needs, progression opportunities, habits needing attention, then a
// streak-based motivational line.
func (a *Aggregator) GetRecommendations(userID string) ([]models.Recommendation, error) {
	histories, err := a.loadHistories(userID)
	if err != nil {
		return nil, err
	}

	var recs []models.Recommendation
	if rec := a.checkRestNeeds(histories); rec != nil {
		recs = append(recs, *rec)
	}
	if rec := checkProgression(histories); rec != nil {
		recs = append(recs, *rec)
	}
	if rec := checkAttention(histories); rec != nil {
		recs = append(recs, *rec)
	}
	recs = append(recs, a.motivation(histories))

	return recs, nil
}

// checkRestNeeds flags overtraining: more than 100 sets in the trailing
// week, or seven straight days with at least one completed log.
func (a *Aggregator) checkRestNeeds(histories []habitHistory) *models.Recommendation {
	today := utils.Day(a.repo.Now())

	totalSets := 0
	consecutiveDays := 0
	countingRun := true

	for offset := 0; offset < 7; offset++ {
		day := utils.FormatDay(today.AddDate(0, 0, -offset))

		dayHasWorkout := false
		for _, hh := range histories {
			for _, log := range hh.logs {
				if log.Day == day && log.Completed {
					totalSets += log.SetsCompleted
					dayHasWorkout = true
				}
			}
		}

		if countingRun {
			if dayHasWorkout {
				consecutiveDays++
			} else {
				countingRun = false
			}
		}
	}

	if totalSets > 100 {
		return &models.Recommendation{
			Type:     models.RecommendationRest,
			Message:  fmt.Sprintf("You've trained hard this week with %d sets! Consider taking a recovery day tomorrow.", totalSets),
			Priority: models.PriorityHigh,
			Action:   "Schedule a rest day",
		}
	}

	if consecutiveDays >= 7 {
		return &models.Recommendation{
			Type:     models.RecommendationRest,
			Message:  fmt.Sprintf("You've trained %d days straight! Your muscles need recovery to grow stronger.", consecutiveDays),
			Priority: models.PriorityHigh,
			Action:   "Take a rest day",
		}
	}

	return nil
}

// checkProgression suggests raising targets when a habit's last ten
// completed logs show the user consistently hitting them.
func checkProgression(histories []habitHistory) *models.Recommendation {
	for _, hh := range histories {
		recent := completedWindow(window(hh.logs, constants.ConsistencyWindowLogs), 10)
		if len(recent) < 8 {
			continue
		}

		hittingTargets := 0
		for _, log := range recent {
			if log.SetsCompleted >= hh.habit.TargetSets && log.RepsCompleted >= hh.habit.TargetReps {
				hittingTargets++
			}
		}

		if hittingTargets >= 7 {
			return &models.Recommendation{
				Type:     models.RecommendationProgression,
				Message:  fmt.Sprintf("Great consistency with %s! Consider increasing to %d sets or %d reps.", hh.habit.Name, hh.habit.TargetSets+1, hh.habit.TargetReps+2),
				Priority: models.PriorityMedium,
				Action:   "Increase difficulty",
			}
		}
	}
	return nil
}

// checkAttention flags habits with a thin completion rate over the last
// two weeks of logging.
func checkAttention(histories []habitHistory) *models.Recommendation {
	for _, hh := range histories {
		recent := window(hh.logs, 14)
		if len(recent) < 7 {
			continue
		}
		if completed := countCompleted(recent); completed < 3 {
			return &models.Recommendation{
				Type:     models.RecommendationMotivation,
				Message:  fmt.Sprintf("%s needs attention. You've completed it %d times in 2 weeks. Try setting a daily reminder!", hh.habit.Name, completed),
				Priority: models.PriorityMedium,
				Action:   "Set reminder",
			}
		}
	}
	return nil
}

func (a *Aggregator) motivation(histories []habitHistory) models.Recommendation {
	if len(histories) == 0 {
		return models.Recommendation{
			Type:     models.RecommendationMotivation,
			Message:  "Start your fitness journey by creating your first habit!",
			Priority: models.PriorityHigh,
			Action:   "Create a habit",
		}
	}

	maxStreak := 0
	for _, hh := range histories {
		if s := habit.ComputeStreak(hh.logs, a.repo.Now()); s.Current > maxStreak {
			maxStreak = s.Current
		}
	}

	var msg string
	switch {
	case maxStreak >= 30:
		msg = fmt.Sprintf("Legendary! %d-day streak. You're in the top 1%% of users!", maxStreak)
	case maxStreak >= 14:
		msg = fmt.Sprintf("%d days strong! You're building incredible discipline.", maxStreak)
	case maxStreak >= 7:
		msg = "One week streak! Keep the momentum going!"
	case maxStreak > 0:
		msg = "Good start! Reach 7 days for your first milestone."
	default:
		msg = "Every expert was once a beginner. Start your streak today!"
	}

	return models.Recommendation{
		Type:     models.RecommendationMotivation,
		Message:  msg,
		Priority: models.PriorityLow,
	}
}

// QuickTip returns the highest-priority recommendation message, or a
// random generic tip when nothing urgent fired.
func (a *Aggregator) QuickTip(userID string) (string, error) {
	recs, err := a.GetRecommendations(userID)
	if err != nil {
		return "", err
	}

	for _, rec := range recs {
		if rec.Priority == models.PriorityHigh {
			return rec.Message, nil
		}
	}

	return quickTips[rand.Intn(len(quickTips))], nil
}

// completedWindow returns up to n most recent completed logs from a
// day-descending list.
func completedWindow(logs []models.HabitLog, n int) []models.HabitLog {
	var out []models.HabitLog
	for _, log := range logs {
		if log.Completed {
			out = append(out, log)
			if len(out) == n {
				break
			}
		}
	}
	return out
}
