package cli

import (
	"testing"

	"github.com/reptrack/reptrack/internal/models"
)

func TestFormatTarget(t *testing.T) {
	tests := []struct {
		name  string
		habit models.Habit
		want  string
	}{
		{
			"reps habit",
			models.Habit{Type: models.CompletionReps, TargetSets: 3, TargetReps: 10},
			"3×10 reps",
		},
		{
			"time habit",
			models.Habit{Type: models.CompletionTime, TargetSets: 3, TargetTimeSec: 60},
			"3×60s",
		},
		{
			"distance habit",
			models.Habit{Type: models.CompletionDistance, TargetSets: 2, TargetDistanceM: 1000},
			"2×1000m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTarget(tt.habit); got != tt.want {
				t.Errorf("formatTarget() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(45); got != "45 min" {
		t.Errorf("formatDuration(45) = %q", got)
	}
	if got := formatDuration(130); got != "2h 10m" {
		t.Errorf("formatDuration(130) = %q", got)
	}
}
