package postgres

import (
	"database/sql"
	"fmt"
	"time"

	apperr "github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/models"
)

func (s *Store) AddMeasurement(m models.BodyMeasurement) error {
	_, err := s.db.Exec(`
		INSERT INTO body_measurements (id, user_id, day, weight_kg, body_fat, chest_cm, waist_cm, arms_cm, legs_cm, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.ID, m.UserID, m.Day,
		nullableFloat(m.WeightKg), nullableFloat(m.BodyFat), nullableFloat(m.ChestCm),
		nullableFloat(m.WaistCm), nullableFloat(m.ArmsCm), nullableFloat(m.LegsCm),
		nullableString(m.Notes), m.CreatedAt.Format(time.RFC3339))

	return apperr.Storage("add measurement", err)
}

func (s *Store) GetMeasurementsByUser(userID string, limit int) ([]models.BodyMeasurement, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, day, weight_kg, body_fat, chest_cm, waist_cm, arms_cm, legs_cm, notes, created_at
		FROM body_measurements
		WHERE user_id = $1
		ORDER BY day DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, apperr.Storage("list measurements", err)
	}
	defer rows.Close()

	var measurements []models.BodyMeasurement
	for rows.Next() {
		var m models.BodyMeasurement
		var weight, bodyFat, chest, waist, arms, legs sql.NullFloat64
		var notes sql.NullString
		var createdAt string

		err := rows.Scan(&m.ID, &m.UserID, &m.Day, &weight, &bodyFat, &chest, &waist, &arms, &legs, &notes, &createdAt)
		if err != nil {
			return nil, apperr.Storage("list measurements", err)
		}

		m.WeightKg = floatPtr(weight)
		m.BodyFat = floatPtr(bodyFat)
		m.ChestCm = floatPtr(chest)
		m.WaistCm = floatPtr(waist)
		m.ArmsCm = floatPtr(arms)
		m.LegsCm = floatPtr(legs)
		m.Notes = notes.String

		m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for measurement %s: %w", m.ID, err)
		}

		measurements = append(measurements, m)
	}

	return measurements, apperr.Storage("list measurements", rows.Err())
}

func nullableFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
