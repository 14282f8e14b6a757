package models

// MuscleGroup buckets used by the muscle-balance distribution. Habits are
// classified into exactly one bucket; MuscleFullBody is the fallback.
type MuscleGroup string

const (
	MuscleCore      MuscleGroup = "core"
	MuscleArms      MuscleGroup = "arms"
	MuscleLegs      MuscleGroup = "legs"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleBack      MuscleGroup = "back"
	MuscleFullBody  MuscleGroup = "full-body"
)

// AllMuscleGroups lists every bucket in display order. Zero-volume buckets
// are still reported; filtering them is a presentation concern.
var AllMuscleGroups = []MuscleGroup{
	MuscleCore,
	MuscleArms,
	MuscleLegs,
	MuscleShoulders,
	MuscleBack,
	MuscleFullBody,
}

type MuscleBalance struct {
	MuscleGroup MuscleGroup `json:"muscle_group"`
	Volume      int         `json:"volume"`
	Percentage  int         `json:"percentage"`
}

// DailyVolume is one day of the weekly training-volume series.
type DailyVolume struct {
	Day             string `json:"day"` // YYYY-MM-DD format
	Sets            int    `json:"sets"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ProgressMetrics is the derived analytics snapshot for one user. All figures
// are computed from log history on demand; nothing here is persisted.
type ProgressMetrics struct {
	TotalWorkouts        int             `json:"total_workouts"`
	TotalDurationMinutes int             `json:"total_duration_minutes"`
	CurrentStreak        int             `json:"current_streak"`
	BestStreak           int             `json:"best_streak"`
	ConsistencyScore     int             `json:"consistency_score"` // 0-100
	MuscleBalance        []MuscleBalance `json:"muscle_balance"`
	WeeklyVolume         []DailyVolume   `json:"weekly_volume"`
}

type RecommendationType string

const (
	RecommendationRest        RecommendationType = "rest"
	RecommendationProgression RecommendationType = "progression"
	RecommendationMotivation  RecommendationType = "motivation"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Recommendation is a rule-based coaching suggestion derived from metrics.
type Recommendation struct {
	Type     RecommendationType `json:"type"`
	Message  string             `json:"message"`
	Priority Priority           `json:"priority"`
	Action   string             `json:"action,omitempty"`
}
