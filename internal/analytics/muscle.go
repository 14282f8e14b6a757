package analytics

import (
	"strings"

	"github.com/reptrack/reptrack/internal/models"
)

// ClassifyMuscleGroup infers a muscle-group bucket from a habit name by
// case-insensitive substring match, first hit wins. This is a deliberately
// simple heuristic over free-text names, kept behind this single seam so a
// structured mapping can replace it without touching the aggregator.
func ClassifyMuscleGroup(habitName string) models.MuscleGroup {
	name := strings.ToLower(habitName)

	switch {
	case containsAny(name, "push", "bench", "chest"):
		return models.MuscleArms
	case containsAny(name, "pull", "row"):
		return models.MuscleBack
	case containsAny(name, "squat", "leg", "lunge"):
		return models.MuscleLegs
	case containsAny(name, "plank", "crunch", "sit"):
		return models.MuscleCore
	case containsAny(name, "shoulder", "press"):
		return models.MuscleShoulders
	default:
		return models.MuscleFullBody
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
