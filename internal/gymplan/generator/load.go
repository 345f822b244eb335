package generator

import (
	"math"

	"github.com/2beens/gymplan/internal/gymplan/catalog"
)

const defaultLoadRatio = 0.3

// loadRatios are body-weight fractions per muscle group. Legs covers the three leg groups.
var loadRatios = map[catalog.MuscleGroup]float64{
	catalog.Chest:      0.6,
	catalog.Back:       0.5,
	"Legs":             0.8,
	catalog.Quadriceps: 0.8,
	catalog.Hamstrings: 0.8,
	catalog.Calves:     0.8,
	catalog.Shoulders:  0.3,
	catalog.Arms:       0.2,
	catalog.Core:       0.1,
}

// SuggestLoad estimates a starting load in kg, rounded to the nearest whole kilo.
// It returns 0 when the body weight is unknown.
func SuggestLoad(exercise catalog.Exercise, bodyWeightKg float64) float64 {
	if bodyWeightKg <= 0 {
		return 0
	}

	ratio, ok := loadRatios[exercise.MuscleGroup]
	if !ok {
		ratio = defaultLoadRatio
	}

	return math.Round(bodyWeightKg * ratio)
}
