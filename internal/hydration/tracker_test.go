package hydration

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/reptrack/reptrack/internal/constants"
	apperr "github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/models"
	"github.com/reptrack/reptrack/internal/storage/sqlite"
)

var fixedNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func setupTestTracker(t *testing.T) (*Tracker, string) {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	user := models.User{
		ID:         uuid.New().String(),
		Name:       "Test User",
		SkillLevel: models.SkillBeginner,
		CreatedAt:  fixedNow,
		UpdatedAt:  fixedNow,
	}
	if err := store.SaveUser(user); err != nil {
		t.Fatalf("failed to save user: %v", err)
	}

	tracker := NewTracker(store)
	tracker.Now = func() time.Time { return fixedNow }
	return tracker, user.ID
}

func TestLogWaterAccumulates(t *testing.T) {
	tracker, userID := setupTestTracker(t)

	first, err := tracker.LogWater(userID, 300)
	if err != nil {
		t.Fatalf("failed to log water: %v", err)
	}
	if first.AmountMl != 300 {
		t.Errorf("amount = %d, want 300", first.AmountMl)
	}
	if first.Day != "2024-03-15" {
		t.Errorf("day = %s, want 2024-03-15", first.Day)
	}

	// Same-day re-log adds to the existing row.
	second, err := tracker.LogWater(userID, 500)
	if err != nil {
		t.Fatalf("failed to re-log water: %v", err)
	}
	if second.AmountMl != 800 {
		t.Errorf("amount after re-log = %d, want 800", second.AmountMl)
	}
	if second.ID != first.ID {
		t.Errorf("expected same row, got ids %q and %q", first.ID, second.ID)
	}
}

func TestLogWaterValidation(t *testing.T) {
	tracker, userID := setupTestTracker(t)

	if _, err := tracker.LogWater(userID, 0); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for zero amount, got %v", err)
	}
	if _, err := tracker.LogWater(userID, -100); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for negative amount, got %v", err)
	}
}

func TestGoalDefaultsAndOverride(t *testing.T) {
	tracker, userID := setupTestTracker(t)

	goal, err := tracker.Goal(userID)
	if err != nil {
		t.Fatalf("failed to get goal: %v", err)
	}
	if goal != constants.DefaultHydrationGoalMl {
		t.Errorf("default goal = %d, want %d", goal, constants.DefaultHydrationGoalMl)
	}

	if err := tracker.SetGoal(userID, 3000); err != nil {
		t.Fatalf("failed to set goal: %v", err)
	}

	goal, err = tracker.Goal(userID)
	if err != nil {
		t.Fatalf("failed to get goal: %v", err)
	}
	if goal != 3000 {
		t.Errorf("goal = %d, want 3000", goal)
	}

	// New logs pick up the custom goal.
	log, err := tracker.LogWater(userID, 250)
	if err != nil {
		t.Fatalf("failed to log water: %v", err)
	}
	if log.GoalMl != 3000 {
		t.Errorf("log goal = %d, want 3000", log.GoalMl)
	}
}

func TestTodayWithoutLogs(t *testing.T) {
	tracker, userID := setupTestTracker(t)

	today, err := tracker.Today(userID)
	if err != nil {
		t.Fatalf("failed to get today's intake: %v", err)
	}
	if today.AmountMl != 0 {
		t.Errorf("amount = %d, want 0", today.AmountMl)
	}
	if today.GoalMl != constants.DefaultHydrationGoalMl {
		t.Errorf("goal = %d, want default", today.GoalMl)
	}
	if today.Day != "2024-03-15" {
		t.Errorf("day = %s, want 2024-03-15", today.Day)
	}
}
