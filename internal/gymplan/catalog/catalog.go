package catalog

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrExerciseNotFound   = errors.New("catalog exercise not found")
	ErrInvalidExercise    = errors.New("invalid catalog exercise")
	ErrUnknownMuscleGroup = errors.New("unknown muscle group")
)

type MuscleGroup string

const (
	Chest      MuscleGroup = "Chest"
	Back       MuscleGroup = "Back"
	Shoulders  MuscleGroup = "Shoulders"
	Arms       MuscleGroup = "Arms"
	Quadriceps MuscleGroup = "Quadriceps"
	Hamstrings MuscleGroup = "Hamstrings"
	Calves     MuscleGroup = "Calves"
	Core       MuscleGroup = "Core"
)

// AllMuscleGroups lists the canonical groups in their display order.
var AllMuscleGroups = []MuscleGroup{Chest, Back, Shoulders, Arms, Quadriceps, Hamstrings, Calves, Core}

func ParseMuscleGroup(s string) (MuscleGroup, error) {
	for _, g := range AllMuscleGroups {
		if strings.EqualFold(strings.TrimSpace(s), string(g)) {
			return g, nil
		}
	}
	return "", ErrUnknownMuscleGroup
}

type Exercise struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	MuscleGroup  MuscleGroup `json:"muscleGroup"`
	Compound     bool        `json:"compound"`
	Instructions string      `json:"instructions,omitempty"`
	Basic        bool        `json:"basic"`
	// OwnerID is set for user-authored entries only.
	OwnerID   *int      `json:"ownerId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.Join(ErrInvalidExercise, errors.New("name empty"))
	}
	if _, err := ParseMuscleGroup(string(e.MuscleGroup)); err != nil {
		return errors.Join(ErrInvalidExercise, err)
	}
	return nil
}
