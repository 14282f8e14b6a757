package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	apperr "github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/models"
)

func (s *Store) SaveUser(user models.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, name, skill_level, goals, weekly_frequency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			skill_level = excluded.skill_level,
			goals = excluded.goals,
			weekly_frequency = excluded.weekly_frequency,
			updated_at = excluded.updated_at`,
		user.ID, user.Name, string(user.SkillLevel), strings.Join(user.Goals, ","),
		user.WeeklyFrequency, user.CreatedAt.Format(time.RFC3339), user.UpdatedAt.Format(time.RFC3339))

	return apperr.Storage("save user", err)
}

func (s *Store) GetUser(id string) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, name, skill_level, goals, weekly_frequency, created_at, updated_at
		FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *Store) GetDefaultUser() (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, name, skill_level, goals, weekly_frequency, created_at, updated_at
		FROM users ORDER BY created_at LIMIT 1`)
	return scanUser(row)
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	var skillLevel, goals, createdAt, updatedAt string

	err := row.Scan(&u.ID, &u.Name, &skillLevel, &goals, &u.WeeklyFrequency, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperr.ErrNotFound
		}
		return models.User{}, apperr.Storage("get user", err)
	}

	u.SkillLevel = models.SkillLevel(skillLevel)
	if goals != "" {
		u.Goals = strings.Split(goals, ",")
	}
	u.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	u.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return u, nil
}
