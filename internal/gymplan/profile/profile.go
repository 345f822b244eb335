package profile

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

type Objective string

const (
	ObjectiveGainMuscle Objective = "gain_muscle"
	ObjectiveLoseFat    Objective = "lose_fat"
	ObjectiveMaintain   Objective = "maintain"
)

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

type SessionDuration string

const (
	Duration30Min SessionDuration = "30min"
	Duration1H    SessionDuration = "1h"
	Duration2H    SessionDuration = "2h"
)

var (
	validObjectives  = []Objective{ObjectiveGainMuscle, ObjectiveLoseFat, ObjectiveMaintain}
	validExperiences = []Experience{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}
	validDurations   = []SessionDuration{Duration30Min, Duration1H, Duration2H}
	validDaysPerWeek = []int{3, 4, 6}
)

type UserProfile struct {
	UserID          int             `json:"userId"`
	HeightCm        float64         `json:"heightCm"`
	WeightKg        float64         `json:"weightKg"`
	Age             int             `json:"age"`
	Sex             Sex             `json:"sex"`
	Objective       Objective       `json:"objective"`
	Experience      Experience      `json:"experience"`
	SessionDuration SessionDuration `json:"sessionDuration"`
	DaysPerWeek     int             `json:"daysPerWeek"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Validate checks the fields generation depends on. The returned error wraps ErrInvalidProfile.
func (p *UserProfile) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: missing profile", ErrInvalidProfile)
	}
	if p.UserID <= 0 {
		return fmt.Errorf("%w: user id", ErrInvalidProfile)
	}
	if !contains(validObjectives, p.Objective) {
		return fmt.Errorf("%w: objective %q", ErrInvalidProfile, p.Objective)
	}
	if !contains(validExperiences, p.Experience) {
		return fmt.Errorf("%w: experience %q", ErrInvalidProfile, p.Experience)
	}
	if !contains(validDurations, p.SessionDuration) {
		return fmt.Errorf("%w: session duration %q", ErrInvalidProfile, p.SessionDuration)
	}
	if !contains(validDaysPerWeek, p.DaysPerWeek) {
		return fmt.Errorf("%w: days per week %d", ErrInvalidProfile, p.DaysPerWeek)
	}
	if p.Sex != "" && !contains([]Sex{SexMale, SexFemale, SexOther}, p.Sex) {
		return fmt.Errorf("%w: sex %q", ErrInvalidProfile, p.Sex)
	}
	if p.WeightKg < 0 || p.HeightCm < 0 || p.Age < 0 {
		return fmt.Errorf("%w: negative body measurement", ErrInvalidProfile)
	}
	return nil
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
