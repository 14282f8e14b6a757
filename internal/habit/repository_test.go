package habit

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	apperr "github.com/reptrack/reptrack/internal/errors"
	"github.com/reptrack/reptrack/internal/models"
	"github.com/reptrack/reptrack/internal/storage/sqlite"
)

// fixedNow keeps streak cutoffs and log dates deterministic.
var fixedNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func setupTestRepo(t *testing.T) (*Repository, string) {
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

	repo := NewRepository(store)
	repo.Now = func() time.Time { return fixedNow }
	return repo, user.ID
}

func addTestHabit(t *testing.T, repo *Repository, userID, name string) models.Habit {
	t.Helper()

	h, err := repo.CreateHabit(models.Habit{
		UserID:     userID,
		Name:       name,
		Type:       models.CompletionReps,
		TargetSets: 3,
		TargetReps: 10,
		Frequency:  models.FrequencyDaily,
		Active:     true,
	})
	if err != nil {
		t.Fatalf("failed to create habit %q: %v", name, err)
	}
	return h
}

func TestCreateHabitValidation(t *testing.T) {
	repo, userID := setupTestRepo(t)

	tests := []struct {
		name  string
		habit models.Habit
	}{
		{"empty name", models.Habit{UserID: userID, Type: models.CompletionReps, TargetSets: 3, TargetReps: 10, Frequency: models.FrequencyDaily}},
		{"zero sets", models.Habit{UserID: userID, Name: "Push-ups", Type: models.CompletionReps, TargetReps: 10, Frequency: models.FrequencyDaily}},
		{"reps habit without rep target", models.Habit{UserID: userID, Name: "Push-ups", Type: models.CompletionReps, TargetSets: 3, Frequency: models.FrequencyDaily}},
		{"bad frequency", models.Habit{UserID: userID, Name: "Push-ups", Type: models.CompletionReps, TargetSets: 3, TargetReps: 10, Frequency: "fortnightly"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := repo.CreateHabit(tt.habit); !apperr.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestLogHabitRoundTrip(t *testing.T) {
	repo, userID := setupTestRepo(t)
	h := addTestHabit(t, repo, userID, "Push-ups")

	logged, err := repo.LogHabit(h.ID, "2024-03-15", models.CompletionFields{
		Completed:     true,
		SetsCompleted: 3,
		RepsCompleted: 10,
		Notes:         "felt strong",
	})
	if err != nil {
		t.Fatalf("failed to log habit: %v", err)
	}

	got, err := repo.GetLog(h.ID, "2024-03-15")
	if err != nil {
		t.Fatalf("failed to get log: %v", err)
	}
	if got.ID != logged.ID {
		t.Errorf("expected id %q, got %q", logged.ID, got.ID)
	}
	if !got.Completed || got.SetsCompleted != 3 || got.RepsCompleted != 10 {
		t.Errorf("stored log fields mismatch: %+v", got)
	}
	if got.Notes != "felt strong" {
		t.Errorf("expected notes to round-trip, got %q", got.Notes)
	}
}

func TestLogHabitOverwritesSameDay(t *testing.T) {
	repo, userID := setupTestRepo(t)
	h := addTestHabit(t, repo, userID, "Push-ups")

	first, err := repo.LogHabit(h.ID, "2024-03-15", models.CompletionFields{Completed: true, SetsCompleted: 2})
	if err != nil {
		t.Fatalf("failed to log habit: %v", err)
	}

	second, err := repo.LogHabit(h.ID, "2024-03-15", models.CompletionFields{Completed: true, SetsCompleted: 5})
	if err != nil {
		t.Fatalf("failed to re-log habit: %v", err)
	}

	// Overwrite, not a second row: identity survives, fields update.
	if second.ID != first.ID {
		t.Errorf("expected id %q to survive re-log, got %q", first.ID, second.ID)
	}
	if second.SetsCompleted != 5 {
		t.Errorf("expected sets 5 after re-log, got %d", second.SetsCompleted)
	}

	logs, err := repo.ListLogs(h.ID, 0)
	if err != nil {
		t.Fatalf("failed to list logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log after re-log, got %d", len(logs))
	}
}

func TestLogHabitRejectsFutureDate(t *testing.T) {
	repo, userID := setupTestRepo(t)
	h := addTestHabit(t, repo, userID, "Push-ups")

	_, err := repo.LogHabit(h.ID, "2024-03-16", models.CompletionFields{Completed: true})
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error for future date, got %v", err)
	}
}

func TestLogHabitUnknownHabit(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, err := repo.LogHabit(uuid.New().String(), "2024-03-15", models.CompletionFields{Completed: true})
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestGetHabitsWithTodayStatus(t *testing.T) {
	repo, userID := setupTestRepo(t)
	pushups := addTestHabit(t, repo, userID, "Push-ups")
	squats := addTestHabit(t, repo, userID, "Squats")

	// Push-ups: logged today and the two days before.
	for _, day := range []string{"2024-03-13", "2024-03-14", "2024-03-15"} {
		if _, err := repo.LogHabit(pushups.ID, day, models.CompletionFields{Completed: true, SetsCompleted: 3}); err != nil {
			t.Fatalf("failed to log push-ups on %s: %v", day, err)
		}
	}
	// Squats: untouched today.
	if _, err := repo.LogHabit(squats.ID, "2024-03-14", models.CompletionFields{Completed: true, SetsCompleted: 4}); err != nil {
		t.Fatalf("failed to log squats: %v", err)
	}

	statuses, err := repo.GetHabitsWithTodayStatus(userID)
	if err != nil {
		t.Fatalf("failed to get today status: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(statuses))
	}

	byName := map[string]models.HabitWithStatus{}
	for _, st := range statuses {
		byName[st.Habit.Name] = st
	}

	pu := byName["Push-ups"]
	if pu.TodayLog == nil {
		t.Fatal("expected today's log for push-ups")
	}
	if pu.Streak.Current != 3 || pu.Streak.Best != 3 {
		t.Errorf("push-ups streak = %+v, want current 3 best 3", pu.Streak)
	}

	sq := byName["Squats"]
	if sq.TodayLog != nil {
		t.Error("expected no today log for squats")
	}
	if sq.Streak.Current != 1 {
		t.Errorf("squats current streak = %d, want 1 (logged yesterday)", sq.Streak.Current)
	}
}

func TestDeleteHabitCascadesLogs(t *testing.T) {
	repo, userID := setupTestRepo(t)
	h := addTestHabit(t, repo, userID, "Push-ups")

	if _, err := repo.LogHabit(h.ID, "2024-03-15", models.CompletionFields{Completed: true}); err != nil {
		t.Fatalf("failed to log habit: %v", err)
	}

	if err := repo.DeleteHabit(h.ID); err != nil {
		t.Fatalf("failed to delete habit: %v", err)
	}

	if _, err := repo.GetHabit(h.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected habit gone, got %v", err)
	}
	logs, err := repo.ListLogs(h.ID, 0)
	if err != nil {
		t.Fatalf("failed to list logs: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected logs cascade-deleted, got %d rows", len(logs))
	}
}
