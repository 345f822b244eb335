package generator

import (
	"errors"
	"fmt"

	"github.com/2beens/gymplan/internal/gymplan/profile"
)

var ErrNoArchetype = errors.New("no archetype available for these parameters")

type Archetype string

const (
	FullBody     Archetype = "FULL_BODY"
	UpperLower   Archetype = "UPPER_LOWER"
	PushPullLegs Archetype = "PUSH_PULL_LEGS"
	ArnoldSplit  Archetype = "ARNOLD_SPLIT"
)

// Template maps Monday..Sunday to a day descriptor.
type Template [7]string

const (
	upperDescriptor     = "Upper: Chest, Back, Shoulders, Arms"
	lowerDescriptor     = "Lower: Quadriceps, Hamstrings, Calves, Core"
	pushDescriptor      = "Push: Chest, Shoulders, Triceps"
	pullDescriptor      = "Pull: Back, Biceps"
	legsDescriptor      = "Legs: Quadriceps, Hamstrings, Calves"
	chestBackDescriptor = "Chest & Back"
	shouldersArms       = "Shoulders & Arms"
	arnoldLegs          = "Legs: Quadriceps, Hamstrings, Calves, Core"
)

var templates = map[Archetype]Template{
	FullBody:     {"Full Body", "Rest", "Full Body", "Rest", "Full Body", "Cardio", "Rest"},
	UpperLower:   {upperDescriptor, lowerDescriptor, "Rest", upperDescriptor, lowerDescriptor, "Cardio", "Rest"},
	PushPullLegs: {pushDescriptor, pullDescriptor, legsDescriptor, pushDescriptor, pullDescriptor, legsDescriptor, "Rest"},
	ArnoldSplit:  {chestBackDescriptor, shouldersArms, arnoldLegs, chestBackDescriptor, shouldersArms, arnoldLegs, "Rest"},
}

// archetypes is keyed by objective, then session duration, then days per week.
// A missing entry means there is no archetype for that combination.
var archetypes = map[profile.Objective]map[profile.SessionDuration]map[int]Archetype{
	profile.ObjectiveGainMuscle: {
		profile.Duration30Min: {3: FullBody, 4: UpperLower, 6: PushPullLegs},
		profile.Duration1H:    {3: FullBody, 4: UpperLower, 6: PushPullLegs},
		profile.Duration2H:    {3: PushPullLegs, 4: UpperLower, 6: ArnoldSplit},
	},
	profile.ObjectiveLoseFat: {
		profile.Duration30Min: {3: FullBody, 4: FullBody, 6: UpperLower},
		profile.Duration1H:    {3: FullBody, 4: UpperLower, 6: PushPullLegs},
		profile.Duration2H:    {3: FullBody, 4: UpperLower, 6: PushPullLegs},
	},
	profile.ObjectiveMaintain: {
		profile.Duration30Min: {3: FullBody, 4: UpperLower},
		profile.Duration1H:    {3: FullBody, 4: UpperLower, 6: PushPullLegs},
		profile.Duration2H:    {3: FullBody, 4: UpperLower, 6: ArnoldSplit},
	},
}

// Volume is the per-day training volume for one duration and experience level.
type Volume struct {
	Quota       int `json:"quota"`
	Series      int `json:"series"`
	RepsMin     int `json:"repsMin"`
	RepsMax     int `json:"repsMax"`
	RestSeconds int `json:"restSeconds"`
}

var volumes = map[profile.SessionDuration]map[profile.Experience]Volume{
	profile.Duration30Min: {
		profile.ExperienceBeginner:     {Quota: 3, Series: 3, RepsMin: 10, RepsMax: 12, RestSeconds: 60},
		profile.ExperienceIntermediate: {Quota: 4, Series: 3, RepsMin: 8, RepsMax: 12, RestSeconds: 60},
		profile.ExperienceAdvanced:     {Quota: 5, Series: 3, RepsMin: 8, RepsMax: 10, RestSeconds: 45},
	},
	profile.Duration1H: {
		profile.ExperienceBeginner:     {Quota: 5, Series: 3, RepsMin: 10, RepsMax: 12, RestSeconds: 90},
		profile.ExperienceIntermediate: {Quota: 6, Series: 4, RepsMin: 8, RepsMax: 12, RestSeconds: 90},
		profile.ExperienceAdvanced:     {Quota: 7, Series: 4, RepsMin: 6, RepsMax: 10, RestSeconds: 75},
	},
	profile.Duration2H: {
		profile.ExperienceBeginner:     {Quota: 6, Series: 4, RepsMin: 10, RepsMax: 12, RestSeconds: 120},
		profile.ExperienceIntermediate: {Quota: 8, Series: 4, RepsMin: 8, RepsMax: 12, RestSeconds: 120},
		profile.ExperienceAdvanced:     {Quota: 10, Series: 5, RepsMin: 6, RepsMax: 10, RestSeconds: 120},
	},
}

func LookupArchetype(objective profile.Objective, duration profile.SessionDuration, daysPerWeek int) (Archetype, error) {
	archetype, ok := archetypes[objective][duration][daysPerWeek]
	if !ok {
		return "", fmt.Errorf("%w: objective %s, duration %s, %d days", ErrNoArchetype, objective, duration, daysPerWeek)
	}
	return archetype, nil
}

func LookupTemplate(archetype Archetype) (Template, error) {
	template, ok := templates[archetype]
	if !ok {
		return Template{}, fmt.Errorf("%w: unknown archetype %s", ErrNoArchetype, archetype)
	}
	return template, nil
}

func LookupVolume(duration profile.SessionDuration, experience profile.Experience) (Volume, error) {
	volume, ok := volumes[duration][experience]
	if !ok {
		return Volume{}, fmt.Errorf("%w: no volume for duration %s, experience %s", ErrNoArchetype, duration, experience)
	}
	return volume, nil
}

// RoutineName is the display name given to generated routines.
func RoutineName(archetype Archetype, daysPerWeek int) string {
	return fmt.Sprintf("%s · %d days/week", archetypeTitles[archetype], daysPerWeek)
}

var archetypeTitles = map[Archetype]string{
	FullBody:     "Full Body",
	UpperLower:   "Upper / Lower",
	PushPullLegs: "Push / Pull / Legs",
	ArnoldSplit:  "Arnold Split",
}
