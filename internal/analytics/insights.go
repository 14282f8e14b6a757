package analytics

import (
	"fmt"

	"github.com/reptrack/reptrack/internal/models"
)

// GetInsights derives rule-based textual tips from the user's metrics.
// Deterministic for a given metrics snapshot: same data, same tips.
func (a *Aggregator) GetInsights(userID string) ([]string, error) {
	metrics, err := a.GetProgressMetrics(userID)
	if err != nil {
		return nil, err
	}
	return InsightsFromMetrics(metrics), nil
}

// InsightsFromMetrics is the pure rule evaluation behind GetInsights.
func InsightsFromMetrics(metrics models.ProgressMetrics) []string {
	var insights []string

	switch {
	case metrics.CurrentStreak >= 7:
		insights = append(insights, fmt.Sprintf("Amazing! You're on a %d-day streak. Keep it going!", metrics.CurrentStreak))
	case metrics.CurrentStreak > 0:
		insights = append(insights, fmt.Sprintf("Building momentum with a %d-day streak!", metrics.CurrentStreak))
	default:
		insights = append(insights, "Start a new streak today! Consistency is key to progress.")
	}

	switch {
	case metrics.ConsistencyScore >= 80:
		insights = append(insights, fmt.Sprintf("Excellent consistency at %d%%!", metrics.ConsistencyScore))
	case metrics.ConsistencyScore >= 50:
		insights = append(insights, fmt.Sprintf("Good effort! Try to improve your %d%% consistency.", metrics.ConsistencyScore))
	case metrics.TotalWorkouts > 0:
		insights = append(insights, fmt.Sprintf("Low consistency (%d%%). Set a daily reminder!", metrics.ConsistencyScore))
	}

	for _, m := range metrics.MuscleBalance {
		if m.Percentage > 40 {
			insights = append(insights, fmt.Sprintf("Consider balancing your %s training with other muscle groups.", m.MuscleGroup))
			break
		}
	}

	totalWeeklySets := 0
	for _, day := range metrics.WeeklyVolume {
		totalWeeklySets += day.Sets
	}
	if totalWeeklySets > 50 {
		insights = append(insights, fmt.Sprintf("High volume week with %d sets! Consider a recovery day.", totalWeeklySets))
	} else if totalWeeklySets > 0 && totalWeeklySets < 20 {
		insights = append(insights, fmt.Sprintf("Light week with %d sets. Try to gradually increase volume.", totalWeeklySets))
	}

	if metrics.TotalWorkouts >= 100 {
		insights = append(insights, fmt.Sprintf("Century Club! You've completed %d workouts!", metrics.TotalWorkouts))
	} else if metrics.TotalWorkouts >= 50 {
		insights = append(insights, fmt.Sprintf("Half-century milestone! %d workouts completed.", metrics.TotalWorkouts))
	}

	if len(insights) == 0 {
		return []string{"Keep training to see personalized insights!"}
	}
	return insights
}

// MonthSummary returns a one-line text summary of the current month's
// training, suitable for a dashboard header.
func (a *Aggregator) MonthSummary(userID string) (string, error) {
	metrics, err := a.GetProgressMetrics(userID)
	if err != nil {
		return "", err
	}

	monthName := a.repo.Now().Month().String()
	if metrics.TotalWorkouts == 0 {
		return fmt.Sprintf("No workouts logged in %s yet. Start building your streak!", monthName), nil
	}

	avgPerWeek := (metrics.TotalWorkouts + 2) / 4
	return fmt.Sprintf("In %s, you completed %d workouts (%d/week avg) with %d%% consistency.",
		monthName, metrics.TotalWorkouts, avgPerWeek, metrics.ConsistencyScore), nil
}
