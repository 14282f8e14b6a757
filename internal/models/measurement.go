package models

import "time"

// BodyMeasurement is a dated body-composition entry. All measurement fields
// are optional; a nil pointer means the field was not recorded that day.
type BodyMeasurement struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	WeightKg  *float64  `json:"weight_kg,omitempty"`
	BodyFat   *float64  `json:"body_fat,omitempty"`
	ChestCm   *float64  `json:"chest_cm,omitempty"`
	WaistCm   *float64  `json:"waist_cm,omitempty"`
	ArmsCm    *float64  `json:"arms_cm,omitempty"`
	LegsCm    *float64  `json:"legs_cm,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
