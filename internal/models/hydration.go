package models

import "time"

// HydrationLog is one calendar-day water-intake record. Unlike habit logs,
// re-logging the same day accumulates AmountMl rather than overwriting it.
type HydrationLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	AmountMl  int       `json:"amount_ml"`
	GoalMl    int       `json:"goal_ml"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HydrationSettings struct {
	UserID      string    `json:"user_id"`
	DailyGoalMl int       `json:"daily_goal_ml"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
