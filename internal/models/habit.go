package models

import "time"

type CompletionType string

const (
	CompletionReps     CompletionType = "reps"
	CompletionTime     CompletionType = "time"
	CompletionDistance CompletionType = "distance"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Habit is a user-defined recurring exercise target. The target fields that
// apply depend on Type: reps habits carry TargetReps, time habits carry
// TargetTimeSec, distance habits carry TargetDistanceM. Validation enforces
// the correspondence; the unused fields stay zero.
type Habit struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Name            string         `json:"name"`
	Type            CompletionType `json:"type"`
	TargetSets      int            `json:"target_sets"`
	TargetReps      int            `json:"target_reps,omitempty"`
	TargetTimeSec   int            `json:"target_time_sec,omitempty"`
	TargetDistanceM int            `json:"target_distance_m,omitempty"`
	Frequency       Frequency      `json:"frequency"`
	Active          bool           `json:"active"`
	CreatedAt       time.Time      `json:"created_at"`
}

// HabitLog is one calendar-day completion record for a habit. At most one
// log exists per (HabitID, Day); re-logging the same day overwrites the
// mutable fields rather than appending a second row.
type HabitLog struct {
	ID            string    `json:"id"`
	HabitID       string    `json:"habit_id"`
	Day           string    `json:"day"` // YYYY-MM-DD format
	Completed     bool      `json:"completed"`
	SetsCompleted int       `json:"sets_completed"`
	RepsCompleted int       `json:"reps_completed,omitempty"`
	TimeCompleted int       `json:"time_completed,omitempty"` // seconds
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CompletionFields are the mutable fields written by a LogHabit call.
type CompletionFields struct {
	Completed     bool
	SetsCompleted int
	RepsCompleted int
	TimeCompleted int
	Notes         string
}

// StreakResult holds the derived streak lengths for one habit. It is
// recomputed from log history on demand and never persisted.
type StreakResult struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// HabitWithStatus pairs a habit with its log for "today" (nil if the habit
// has not been interacted with today) and its freshly computed streaks.
type HabitWithStatus struct {
	Habit    Habit        `json:"habit"`
	TodayLog *HabitLog    `json:"today_log,omitempty"`
	Streak   StreakResult `json:"streak"`
}
