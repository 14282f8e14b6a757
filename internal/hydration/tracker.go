// Package hydration tracks daily water intake against a per-user goal.
package hydration

import (
	"time"

	"github.com/google/uuid"

	"github.com/reptrack/reptrack/internal/constants"
	apperr "github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/models"
	"github.com/reptrack/reptrack/internal/storage"
	"github.com/reptrack/reptrack/internal/utils"
	"github.com/reptrack/reptrack/internal/validation"
)

type Tracker struct {
	store storage.Provider

	// Now is swappable in tests.
	Now func() time.Time
}

func NewTracker(store storage.Provider) *Tracker {
	return &Tracker{store: store, Now: time.Now}
}

// Goal returns the user's daily intake goal, falling back to the default
// when no settings row exists yet.
func (t *Tracker) Goal(userID string) (int, error) {
	settings, err := t.store.GetHydrationSettings(userID)
	if apperr.IsNotFound(err) {
		return constants.DefaultHydrationGoalMl, nil
	}
	if err != nil {
		return 0, err
	}
	return settings.DailyGoalMl, nil
}

// SetGoal persists a new daily intake goal for the user.
func (t *Tracker) SetGoal(userID string, goalMl int) error {
	if err := validation.ValidateAmountMl(goalMl); err != nil {
		return err
	}

	now := t.Now()
	settings, err := t.store.GetHydrationSettings(userID)
	if apperr.IsNotFound(err) {
		settings = models.HydrationSettings{UserID: userID, CreatedAt: now}
	} else if err != nil {
		return err
	}

	settings.DailyGoalMl = goalMl
	settings.UpdatedAt = now
	return t.store.SaveHydrationSettings(settings)
}

// LogWater records an intake for today. Repeated calls on the same day
// accumulate into the existing row.
func (t *Tracker) LogWater(userID string, amountMl int) (models.HydrationLog, error) {
	if err := validation.ValidateAmountMl(amountMl); err != nil {
		return models.HydrationLog{}, err
	}

	goal, err := t.Goal(userID)
	if err != nil {
		return models.HydrationLog{}, err
	}

	now := t.Now()
	day := utils.FormatDay(utils.Day(now))

	log, err := t.store.GetHydrationLog(userID, day)
	if apperr.IsNotFound(err) {
		log = models.HydrationLog{
			ID:        uuid.NewString(),
			UserID:    userID,
			Day:       day,
			CreatedAt: now,
		}
	} else if err != nil {
		return models.HydrationLog{}, err
	}

	log.AmountMl += amountMl
	log.GoalMl = goal
	log.UpdatedAt = now

	if err := t.store.SaveHydrationLog(log); err != nil {
		return models.HydrationLog{}, err
	}
	return log, nil
}

// Today returns today's intake record, or a zero-amount record when
// nothing has been logged yet.
func (t *Tracker) Today(userID string) (models.HydrationLog, error) {
	goal, err := t.Goal(userID)
	if err != nil {
		return models.HydrationLog{}, err
	}

	day := utils.FormatDay(utils.Day(t.Now()))
	log, err := t.store.GetHydrationLog(userID, day)
	if apperr.IsNotFound(err) {
		return models.HydrationLog{UserID: userID, Day: day, GoalMl: goal}, nil
	}
	if err != nil {
		return models.HydrationLog{}, err
	}
	return log, nil
}
