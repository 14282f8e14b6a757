package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperr "github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/models"
)

const habitColumns = `id, user_id, name, type, target_sets, target_reps, target_time_sec, target_distance_m, frequency, active, created_at`

func (s *Store) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (`+habitColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		habit.ID, habit.UserID, habit.Name, string(habit.Type), habit.TargetSets,
		nullableInt(habit.TargetReps), nullableInt(habit.TargetTimeSec), nullableInt(habit.TargetDistanceM),
		string(habit.Frequency), habit.Active, habit.CreatedAt.Format(time.RFC3339))

	return apperr.Storage("add habit", err)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = $1`, id)
	return scanHabit(row.Scan)
}

func (s *Store) GetHabitByName(userID, name string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE user_id = $1 AND name = $2`, userID, name)
	return scanHabit(row.Scan)
}

func (s *Store) GetHabitsByUser(userID string, activeOnly bool) ([]models.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE user_id = $1`
	if activeOnly {
		query += " AND active"
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, apperr.Storage("list habits", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, apperr.Storage("list habits", rows.Err())
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	result, err := s.db.Exec(`
		UPDATE habits SET
			name = $1,
			type = $2,
			target_sets = $3,
			target_reps = $4,
			target_time_sec = $5,
			target_distance_m = $6,
			frequency = $7,
			active = $8
		WHERE id = $9`,
		habit.Name, string(habit.Type), habit.TargetSets,
		nullableInt(habit.TargetReps), nullableInt(habit.TargetTimeSec), nullableInt(habit.TargetDistanceM),
		string(habit.Frequency), habit.Active, habit.ID)
	if err != nil {
		return apperr.Storage("update habit", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage("update habit", err)
	}
	if rowsAffected == 0 {
		return apperr.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage("delete habit", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage("delete habit", err)
	}
	if rowsAffected == 0 {
		return apperr.ErrNotFound
	}

	return nil
}

func scanHabit(scan func(dest ...any) error) (models.Habit, error) {
	var h models.Habit
	var habitType, frequency, createdAt string
	var targetReps, targetTimeSec, targetDistanceM sql.NullInt64

	err := scan(&h.ID, &h.UserID, &h.Name, &habitType, &h.TargetSets,
		&targetReps, &targetTimeSec, &targetDistanceM, &frequency, &h.Active, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, apperr.ErrNotFound
		}
		return models.Habit{}, apperr.Storage("get habit", err)
	}

	h.Type = models.CompletionType(habitType)
	h.Frequency = models.Frequency(frequency)
	h.TargetReps = int(targetReps.Int64)
	h.TargetTimeSec = int(targetTimeSec.Int64)
	h.TargetDistanceM = int(targetDistanceM.Int64)

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}

	return h, nil
}

func nullableInt(v int) sql.NullInt64 {
	if v == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(v), Valid: true}
}
