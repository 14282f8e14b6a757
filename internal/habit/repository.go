package habit

import (
	"time"

	"github.com/google/uuid"

	"github.com/reptrack/reptrack/internal/constants"
	"github.com/reptrack/reptrack/internal/logger"
	"github.com/reptrack/reptrack/internal/models"
	"github.com/reptrack/reptrack/internal/storage"
	"github.com/reptrack/reptrack/internal/utils"
	"github.com/reptrack/reptrack/internal/validation"
)

// Repository orchestrates habit reads and writes over a storage.Provider.
// It is constructed explicitly and passed to callers; there is no shared
// package-level instance. Now is the injectable "current time" source so
// streak cutoffs and analytics windows are deterministic under test.
type Repository struct {
	store storage.Provider
	Now   func() time.Time
}

func NewRepository(store storage.Provider) *Repository {
	return &Repository{
		store: store,
		Now:   time.Now,
	}
}

// Today returns the current calendar date (YYYY-MM-DD) per the injected clock.
func (r *Repository) Today() string {
	return utils.FormatDay(r.Now())
}

// CreateHabit validates and persists a new habit for the user.
func (r *Repository) CreateHabit(habit models.Habit) (models.Habit, error) {
	if err := validation.ValidateHabit(habit); err != nil {
		return models.Habit{}, err
	}

	if habit.ID == "" {
		habit.ID = uuid.New().String()
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = r.Now()
	}

	if err := r.store.AddHabit(habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (r *Repository) GetHabit(id string) (models.Habit, error) {
	return r.store.GetHabit(id)
}

func (r *Repository) GetHabitByName(userID, name string) (models.Habit, error) {
	return r.store.GetHabitByName(userID, name)
}

func (r *Repository) ListHabits(userID string, activeOnly bool) ([]models.Habit, error) {
	return r.store.GetHabitsByUser(userID, activeOnly)
}

func (r *Repository) UpdateHabit(habit models.Habit) error {
	if err := validation.ValidateHabit(habit); err != nil {
		return err
	}
	return r.store.UpdateHabit(habit)
}

// DeleteHabit removes a habit and, through the store's cascade, its logs.
func (r *Repository) DeleteHabit(id string) error {
	return r.store.DeleteHabit(id)
}

// LogHabit records completion state for a habit on a calendar date. This is
// the single write path for daily logs; the store-level unique constraint
// on (habit_id, day) makes the write an overwrite of any existing row for
// that day, never a second row. Validation rejects future dates and
// negative counts before anything reaches the store.
func (r *Repository) LogHabit(habitID, day string, fields models.CompletionFields) (models.HabitLog, error) {
	if err := validation.ValidateLogDay(day, r.Now()); err != nil {
		return models.HabitLog{}, err
	}
	if err := validation.ValidateCompletionFields(fields); err != nil {
		return models.HabitLog{}, err
	}

	if _, err := r.store.GetHabit(habitID); err != nil {
		return models.HabitLog{}, err
	}

	now := r.Now()
	log := models.HabitLog{
		ID:            uuid.New().String(),
		HabitID:       habitID,
		Day:           day,
		Completed:     fields.Completed,
		SetsCompleted: fields.SetsCompleted,
		RepsCompleted: fields.RepsCompleted,
		TimeCompleted: fields.TimeCompleted,
		Notes:         fields.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := r.store.UpsertLog(log); err != nil {
		return models.HabitLog{}, err
	}

	// Read back so the caller sees the stored row: on an overwrite the
	// original id and created_at survive, not the ones generated above.
	stored, err := r.store.GetLog(habitID, day)
	if err != nil {
		return models.HabitLog{}, err
	}

	logger.Debug("Logged habit", "habit", habitID, "day", day, "completed", fields.Completed)
	return stored, nil
}

// GetLog returns the log for a habit on a date, or errors.ErrNotFound.
func (r *Repository) GetLog(habitID, day string) (models.HabitLog, error) {
	return r.store.GetLog(habitID, day)
}

// ListLogs returns a habit's logs, most recent day first, capped at limit
// (constants.LogFetchLimit when limit <= 0).
func (r *Repository) ListLogs(habitID string, limit int) ([]models.HabitLog, error) {
	if limit <= 0 {
		limit = constants.LogFetchLimit
	}
	return r.store.ListLogs(habitID, limit)
}

// GetHabitsWithTodayStatus returns each active habit with today's log (nil
// when the habit has not been touched today) and streaks recomputed from
// the full log history. Streaks are never cached, so the result can never
// be stale relative to the log table; per-user habit counts are small
// enough that the rescan is cheap.
func (r *Repository) GetHabitsWithTodayStatus(userID string) ([]models.HabitWithStatus, error) {
	habits, err := r.store.GetHabitsByUser(userID, true)
	if err != nil {
		return nil, err
	}

	today := r.Today()
	result := make([]models.HabitWithStatus, 0, len(habits))

	for _, h := range habits {
		logs, err := r.store.ListLogs(h.ID, constants.LogFetchLimit)
		if err != nil {
			return nil, err
		}

		var todayLog *models.HabitLog
		for i := range logs {
			if logs[i].Day == today {
				todayLog = &logs[i]
				break
			}
		}

		result = append(result, models.HabitWithStatus{
			Habit:    h,
			TodayLog: todayLog,
			Streak:   ComputeStreak(logs, r.Now()),
		})
	}

	return result, nil
}

// Streak recomputes the streaks for one habit from its stored history.
func (r *Repository) Streak(habitID string) (models.StreakResult, error) {
	logs, err := r.store.ListLogs(habitID, constants.LogFetchLimit)
	if err != nil {
		return models.StreakResult{}, err
	}
	return ComputeStreak(logs, r.Now()), nil
}
