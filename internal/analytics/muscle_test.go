package analytics

import (
	"testing"

	"github.com/reptrack/reptrack/internal/models"
)

func TestClassifyMuscleGroup(t *testing.T) {
	tests := []struct {
		name string
		want models.MuscleGroup
	}{
		{"Push-ups", models.MuscleArms},
		{"Bench Press", models.MuscleArms}, // bench wins over press
		{"Chest flyes", models.MuscleArms},
		{"Pull-ups", models.MuscleBack},
		{"Barbell Row", models.MuscleBack},
		{"Squats", models.MuscleLegs},
		{"Leg raises", models.MuscleLegs},
		{"Walking Lunges", models.MuscleLegs},
		{"Plank", models.MuscleCore},
		{"Crunches", models.MuscleCore},
		{"Sit-ups", models.MuscleCore},
		{"Shoulder taps", models.MuscleShoulders},
		{"Overhead press", models.MuscleShoulders},
		{"Burpees", models.MuscleFullBody},
		{"", models.MuscleFullBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyMuscleGroup(tt.name); got != tt.want {
				t.Errorf("ClassifyMuscleGroup(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
