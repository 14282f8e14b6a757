package validation

import (
	"strings"
	"time"

	"github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/models"
	"github.com/reptrack/reptrack/internal/utils"
)

// ValidateHabit checks a habit before it reaches the store. The target
// fields must match the completion type: a reps habit needs a rep target,
// a time habit a duration, a distance habit a distance.
func ValidateHabit(h models.Habit) error {
	if strings.TrimSpace(h.Name) == "" {
		return errors.NewValidation("name", "must not be empty")
	}
	if h.TargetSets <= 0 {
		return errors.NewValidation("target_sets", "must be positive, got %d", h.TargetSets)
	}

	switch h.Type {
	case models.CompletionReps:
		if h.TargetReps <= 0 {
			return errors.NewValidation("target_reps", "required for a reps habit")
		}
	case models.CompletionTime:
		if h.TargetTimeSec <= 0 {
			return errors.NewValidation("target_time_sec", "required for a time habit")
		}
	case models.CompletionDistance:
		if h.TargetDistanceM <= 0 {
			return errors.NewValidation("target_distance_m", "required for a distance habit")
		}
	default:
		return errors.NewValidation("type", "unknown completion type %q", h.Type)
	}

	switch h.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly:
	default:
		return errors.NewValidation("frequency", "must be daily or weekly, got %q", h.Frequency)
	}

	return nil
}

// ValidateLogDay checks a completion-log date: well-formed and not in the
// future relative to the given "today".
func ValidateLogDay(day string, today time.Time) error {
	logDay, err := utils.ParseDay(day)
	if err != nil {
		return errors.NewValidation("day", "%v", err)
	}
	if utils.DaysBetween(today, logDay) < 0 {
		return errors.NewValidation("day", "%s is in the future", day)
	}
	return nil
}

// ValidateCompletionFields checks the mutable fields of a log write.
func ValidateCompletionFields(f models.CompletionFields) error {
	if f.SetsCompleted < 0 {
		return errors.NewValidation("sets_completed", "must not be negative, got %d", f.SetsCompleted)
	}
	if f.RepsCompleted < 0 {
		return errors.NewValidation("reps_completed", "must not be negative, got %d", f.RepsCompleted)
	}
	if f.TimeCompleted < 0 {
		return errors.NewValidation("time_completed", "must not be negative, got %d", f.TimeCompleted)
	}
	return nil
}

// ValidateAmountMl checks a water-intake amount.
func ValidateAmountMl(amount int) error {
	if amount <= 0 {
		return errors.NewValidation("amount_ml", "must be positive, got %d", amount)
	}
	return nil
}
