package analytics

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/reptrack/reptrack/internal/habit"
	"github.com/reptrack/reptrack/internal/models"
	"github.com/reptrack/reptrack/internal/storage/sqlite"
)

var fixedNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func setupTestAggregator(t *testing.T) (*Aggregator, *habit.Repository, string) {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	user := models.User{
		ID:         uuid.New().String(),
		Name:       "Test User",
		SkillLevel: models.SkillIntermediate,
		CreatedAt:  fixedNow,
		UpdatedAt:  fixedNow,
	}
	if err := store.SaveUser(user); err != nil {
		t.Fatalf("failed to save user: %v", err)
	}

	repo := habit.NewRepository(store)
	repo.Now = func() time.Time { return fixedNow }
	return NewAggregator(repo), repo, user.ID
}

func addHabit(t *testing.T, repo *habit.Repository, userID, name string, targetSets int) models.Habit {
	t.Helper()

	h, err := repo.CreateHabit(models.Habit{
		UserID:     userID,
		Name:       name,
		Type:       models.CompletionReps,
		TargetSets: targetSets,
		TargetReps: 10,
		Frequency:  models.FrequencyDaily,
		Active:     true,
	})
	if err != nil {
		t.Fatalf("failed to create habit %q: %v", name, err)
	}
	return h
}

// logDaysBack logs the habit as completed for n consecutive days ending today.
func logDaysBack(t *testing.T, repo *habit.Repository, habitID string, n, sets int) {
	t.Helper()
	for offset := n - 1; offset >= 0; offset-- {
		day := fixedNow.AddDate(0, 0, -offset).Format("2006-01-02")
		if _, err := repo.LogHabit(habitID, day, models.CompletionFields{Completed: true, SetsCompleted: sets, RepsCompleted: 10}); err != nil {
			t.Fatalf("failed to log %s: %v", day, err)
		}
	}
}

func TestGetProgressMetrics(t *testing.T) {
	agg, repo, userID := setupTestAggregator(t)

	pushups := addHabit(t, repo, userID, "Push-ups", 3)
	squats := addHabit(t, repo, userID, "Squats", 4)

	logDaysBack(t, repo, pushups.ID, 10, 3)
	logDaysBack(t, repo, squats.ID, 5, 4)

	metrics, err := agg.GetProgressMetrics(userID)
	if err != nil {
		t.Fatalf("failed to get metrics: %v", err)
	}

	if metrics.TotalWorkouts != 15 {
		t.Errorf("total workouts = %d, want 15", metrics.TotalWorkouts)
	}
	// 10×3 sets + 5×4 sets, 2 minutes per set.
	if metrics.TotalDurationMinutes != 100 {
		t.Errorf("total duration = %d, want 100", metrics.TotalDurationMinutes)
	}
	if metrics.CurrentStreak != 10 || metrics.BestStreak != 10 {
		t.Errorf("streaks = %d/%d, want 10/10", metrics.CurrentStreak, metrics.BestStreak)
	}
	// 15 completed over 60 expected (two daily habits × 30).
	if metrics.ConsistencyScore != 25 {
		t.Errorf("consistency = %d, want 25", metrics.ConsistencyScore)
	}
}

func TestMuscleBalanceDistribution(t *testing.T) {
	agg, repo, userID := setupTestAggregator(t)

	pushups := addHabit(t, repo, userID, "Push-ups", 3)
	squats := addHabit(t, repo, userID, "Squats", 4)

	logDaysBack(t, repo, pushups.ID, 10, 3)
	logDaysBack(t, repo, squats.ID, 5, 4)

	metrics, err := agg.GetProgressMetrics(userID)
	if err != nil {
		t.Fatalf("failed to get metrics: %v", err)
	}

	if len(metrics.MuscleBalance) != len(models.AllMuscleGroups) {
		t.Fatalf("expected %d buckets, got %d", len(models.AllMuscleGroups), len(metrics.MuscleBalance))
	}

	byGroup := map[models.MuscleGroup]models.MuscleBalance{}
	for _, m := range metrics.MuscleBalance {
		byGroup[m.MuscleGroup] = m
	}

	// Push-ups: 10 completions × 3 target sets = 30 arms volume.
	// Squats: 5 completions × 4 target sets = 20 legs volume.
	if arms := byGroup[models.MuscleArms]; arms.Volume != 30 || arms.Percentage != 60 {
		t.Errorf("arms = %d sets / %d%%, want 30 / 60%%", arms.Volume, arms.Percentage)
	}
	if legs := byGroup[models.MuscleLegs]; legs.Volume != 20 || legs.Percentage != 40 {
		t.Errorf("legs = %d sets / %d%%, want 20 / 40%%", legs.Volume, legs.Percentage)
	}
	if core := byGroup[models.MuscleCore]; core.Volume != 0 || core.Percentage != 0 {
		t.Errorf("core = %d sets / %d%%, want zeroes", core.Volume, core.Percentage)
	}
}

func TestWeeklyVolumeSeries(t *testing.T) {
	agg, repo, userID := setupTestAggregator(t)

	pushups := addHabit(t, repo, userID, "Push-ups", 3)
	logDaysBack(t, repo, pushups.ID, 3, 3)

	metrics, err := agg.GetProgressMetrics(userID)
	if err != nil {
		t.Fatalf("failed to get metrics: %v", err)
	}

	if len(metrics.WeeklyVolume) != 7 {
		t.Fatalf("expected 7-day series, got %d", len(metrics.WeeklyVolume))
	}

	// Oldest first: index 0 is six days ago, index 6 is today.
	if first := metrics.WeeklyVolume[0].Day; first != "2024-03-09" {
		t.Errorf("first day = %s, want 2024-03-09", first)
	}
	if last := metrics.WeeklyVolume[6].Day; last != "2024-03-15" {
		t.Errorf("last day = %s, want 2024-03-15", last)
	}

	for i, dv := range metrics.WeeklyVolume {
		wantSets := 0
		wantMinutes := 0
		if i >= 4 { // the three logged days end the series
			wantSets = 3
			wantMinutes = 6
		}
		if dv.Sets != wantSets || dv.DurationMinutes != wantMinutes {
			t.Errorf("day %s: %d sets / %d min, want %d / %d", dv.Day, dv.Sets, dv.DurationMinutes, wantSets, wantMinutes)
		}
	}
}

func TestGetProgressMetricsEmptyUser(t *testing.T) {
	agg, _, userID := setupTestAggregator(t)

	metrics, err := agg.GetProgressMetrics(userID)
	if err != nil {
		t.Fatalf("failed to get metrics: %v", err)
	}

	if metrics.TotalWorkouts != 0 || metrics.CurrentStreak != 0 || metrics.BestStreak != 0 || metrics.ConsistencyScore != 0 {
		t.Errorf("expected zeroed metrics, got %+v", metrics)
	}
	if len(metrics.MuscleBalance) != len(models.AllMuscleGroups) {
		t.Errorf("expected all %d buckets even with no data, got %d", len(models.AllMuscleGroups), len(metrics.MuscleBalance))
	}
	for _, m := range metrics.MuscleBalance {
		if m.Volume != 0 || m.Percentage != 0 {
			t.Errorf("bucket %s not zeroed: %+v", m.MuscleGroup, m)
		}
	}
	if len(metrics.WeeklyVolume) != 7 {
		t.Fatalf("expected 7-day series even with no data, got %d", len(metrics.WeeklyVolume))
	}
	for _, dv := range metrics.WeeklyVolume {
		if dv.Sets != 0 || dv.DurationMinutes != 0 {
			t.Errorf("day %s not zeroed: %+v", dv.Day, dv)
		}
	}
}

func TestConsistencyScoreClamped(t *testing.T) {
	histories := []habitHistory{
		{
			habit: models.Habit{Frequency: models.FrequencyWeekly, TargetSets: 3},
			logs:  completedLogCount(10),
		},
	}

	// 10 completed against 4 expected clamps at 100.
	if score := consistencyScore(histories); score != 100 {
		t.Errorf("score = %d, want 100", score)
	}

	if score := consistencyScore(nil); score != 0 {
		t.Errorf("score with no habits = %d, want 0", score)
	}
}

func completedLogCount(n int) []models.HabitLog {
	logs := make([]models.HabitLog, 0, n)
	for i := 0; i < n; i++ {
		day := fixedNow.AddDate(0, 0, -i).Format("2006-01-02")
		logs = append(logs, models.HabitLog{Day: day, Completed: true})
	}
	return logs
}
