package validation

import (
	"testing"
	"time"

	"github.com/reptrack/reptrack/internal/models"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func validHabit() models.Habit {
	return models.Habit{
		UserID:     "u1",
		Name:       "Push-ups",
		Type:       models.CompletionReps,
		TargetSets: 3,
		TargetReps: 10,
		Frequency:  models.FrequencyDaily,
	}
}

func TestValidateHabit(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Habit)
		wantErr bool
	}{
		{"valid reps habit", func(h *models.Habit) {}, false},
		{"valid time habit", func(h *models.Habit) {
			h.Type = models.CompletionTime
			h.TargetReps = 0
			h.TargetTimeSec = 60
		}, false},
		{"valid distance habit", func(h *models.Habit) {
			h.Type = models.CompletionDistance
			h.TargetReps = 0
			h.TargetDistanceM = 5000
		}, false},
		{"valid weekly habit", func(h *models.Habit) { h.Frequency = models.FrequencyWeekly }, false},
		{"empty name", func(h *models.Habit) { h.Name = "   " }, true},
		{"zero sets", func(h *models.Habit) { h.TargetSets = 0 }, true},
		{"negative sets", func(h *models.Habit) { h.TargetSets = -1 }, true},
		{"reps habit without rep target", func(h *models.Habit) { h.TargetReps = 0 }, true},
		{"time habit without duration", func(h *models.Habit) {
			h.Type = models.CompletionTime
			h.TargetTimeSec = 0
		}, true},
		{"distance habit without distance", func(h *models.Habit) {
			h.Type = models.CompletionDistance
			h.TargetDistanceM = 0
		}, true},
		{"unknown type", func(h *models.Habit) { h.Type = "steps" }, true},
		{"unknown frequency", func(h *models.Habit) { h.Frequency = "monthly" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHabit()
			tt.mutate(&h)
			err := ValidateHabit(h)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateLogDay(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		wantErr bool
	}{
		{"today", "2024-03-15", false},
		{"yesterday", "2024-03-14", false},
		{"distant past", "2020-01-01", false},
		{"tomorrow", "2024-03-16", true},
		{"malformed", "03/15/2024", true},
		{"empty", "", true},
		{"timestamp not date", "2024-03-15T10:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogDay(tt.day, testNow)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateCompletionFields(t *testing.T) {
	if err := ValidateCompletionFields(models.CompletionFields{SetsCompleted: 3, RepsCompleted: 10}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateCompletionFields(models.CompletionFields{SetsCompleted: -1}); err == nil {
		t.Error("expected error for negative sets")
	}
	if err := ValidateCompletionFields(models.CompletionFields{RepsCompleted: -1}); err == nil {
		t.Error("expected error for negative reps")
	}
	if err := ValidateCompletionFields(models.CompletionFields{TimeCompleted: -1}); err == nil {
		t.Error("expected error for negative time")
	}

	// Zero everything is a valid "skipped" log.
	if err := ValidateCompletionFields(models.CompletionFields{}); err != nil {
		t.Errorf("unexpected error for zero fields: %v", err)
	}
}

func TestValidateAmountMl(t *testing.T) {
	if err := ValidateAmountMl(250); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateAmountMl(0); err == nil {
		t.Error("expected error for zero amount")
	}
	if err := ValidateAmountMl(-50); err == nil {
		t.Error("expected error for negative amount")
	}
}
