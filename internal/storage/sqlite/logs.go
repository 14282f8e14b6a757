package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperr "github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/models"
)

const logColumns = `id, habit_id, day, completed, sets_completed, reps_completed, time_completed, notes, created_at, updated_at`

// UpsertLog writes a habit log keyed on (habit_id, day). The unique
// constraint makes the insert-or-update a single atomic statement, so two
// rows for the same habit and day can never coexist. The original row's id
// and created_at survive an overwrite.
func (s *Store) UpsertLog(log models.HabitLog) error {
	_, err := s.db.Exec(`
		INSERT INTO habit_logs (`+logColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO UPDATE SET
			completed = excluded.completed,
			sets_completed = excluded.sets_completed,
			reps_completed = excluded.reps_completed,
			time_completed = excluded.time_completed,
			notes = excluded.notes,
			updated_at = excluded.updated_at`,
		log.ID, log.HabitID, log.Day, boolToInt(log.Completed), log.SetsCompleted,
		nullableInt(log.RepsCompleted), nullableInt(log.TimeCompleted), nullableString(log.Notes),
		log.CreatedAt.Format(time.RFC3339), log.UpdatedAt.Format(time.RFC3339))

	return apperr.Storage("upsert log", err)
}

func (s *Store) GetLog(habitID, day string) (models.HabitLog, error) {
	row := s.db.QueryRow(`SELECT `+logColumns+` FROM habit_logs WHERE habit_id = ? AND day = ?`, habitID, day)
	return scanLog(row.Scan)
}

// ListLogs returns up to limit logs for the habit, most recent day first.
func (s *Store) ListLogs(habitID string, limit int) ([]models.HabitLog, error) {
	rows, err := s.db.Query(`
		SELECT `+logColumns+` FROM habit_logs
		WHERE habit_id = ?
		ORDER BY day DESC LIMIT ?`, habitID, limit)
	if err != nil {
		return nil, apperr.Storage("list logs", err)
	}
	defer rows.Close()

	var logs []models.HabitLog
	for rows.Next() {
		l, err := scanLog(rows.Scan)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, apperr.Storage("list logs", rows.Err())
}

func scanLog(scan func(dest ...any) error) (models.HabitLog, error) {
	var l models.HabitLog
	var completed int
	var repsCompleted, timeCompleted sql.NullInt64
	var notes sql.NullString
	var createdAt, updatedAt string

	err := scan(&l.ID, &l.HabitID, &l.Day, &completed, &l.SetsCompleted,
		&repsCompleted, &timeCompleted, &notes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HabitLog{}, apperr.ErrNotFound
		}
		return models.HabitLog{}, apperr.Storage("get log", err)
	}

	l.Completed = completed == 1
	l.RepsCompleted = int(repsCompleted.Int64)
	l.TimeCompleted = int(timeCompleted.Int64)
	l.Notes = notes.String

	l.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to parse created_at for log %s: %w", l.ID, err)
	}
	l.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to parse updated_at for log %s: %w", l.ID, err)
	}

	return l, nil
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
