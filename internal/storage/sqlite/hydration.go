package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperr "github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/models"
)

func (s *Store) GetHydrationSettings(userID string) (models.HydrationSettings, error) {
	row := s.db.QueryRow(`
		SELECT user_id, daily_goal_ml, created_at, updated_at
		FROM hydration_settings WHERE user_id = ?`, userID)

	var hs models.HydrationSettings
	var createdAt, updatedAt string

	err := row.Scan(&hs.UserID, &hs.DailyGoalMl, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HydrationSettings{}, apperr.ErrNotFound
		}
		return models.HydrationSettings{}, apperr.Storage("get hydration settings", err)
	}

	hs.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.HydrationSettings{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	hs.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.HydrationSettings{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return hs, nil
}

func (s *Store) SaveHydrationSettings(settings models.HydrationSettings) error {
	_, err := s.db.Exec(`
		INSERT INTO hydration_settings (user_id, daily_goal_ml, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			daily_goal_ml = excluded.daily_goal_ml,
			updated_at = excluded.updated_at`,
		settings.UserID, settings.DailyGoalMl,
		settings.CreatedAt.Format(time.RFC3339), settings.UpdatedAt.Format(time.RFC3339))

	return apperr.Storage("save hydration settings", err)
}

func (s *Store) GetHydrationLog(userID, day string) (models.HydrationLog, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, day, amount_ml, goal_ml, created_at, updated_at
		FROM hydration_logs WHERE user_id = ? AND day = ?`, userID, day)

	var l models.HydrationLog
	var createdAt, updatedAt string

	err := row.Scan(&l.ID, &l.UserID, &l.Day, &l.AmountMl, &l.GoalMl, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HydrationLog{}, apperr.ErrNotFound
		}
		return models.HydrationLog{}, apperr.Storage("get hydration log", err)
	}

	l.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.HydrationLog{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	l.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.HydrationLog{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return l, nil
}

// SaveHydrationLog upserts on (user_id, day). The accumulate-on-relog
// behavior lives in the hydration tracker; the store writes whatever amount
// it is handed.
func (s *Store) SaveHydrationLog(log models.HydrationLog) error {
	_, err := s.db.Exec(`
		INSERT INTO hydration_logs (id, user_id, day, amount_ml, goal_ml, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, day) DO UPDATE SET
			amount_ml = excluded.amount_ml,
			goal_ml = excluded.goal_ml,
			updated_at = excluded.updated_at`,
		log.ID, log.UserID, log.Day, log.AmountMl, log.GoalMl,
		log.CreatedAt.Format(time.RFC3339), log.UpdatedAt.Format(time.RFC3339))

	return apperr.Storage("save hydration log", err)
}
