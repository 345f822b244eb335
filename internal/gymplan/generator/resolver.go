package generator

import (
	"strings"

	"github.com/2beens/gymplan/internal/gymplan/catalog"
)

type keywordGroup struct {
	keyword string
	group   catalog.MuscleGroup
}

// directGroups is matched in order, so results follow this table's order.
var directGroups = []keywordGroup{
	{"chest", catalog.Chest},
	{"pecho", catalog.Chest},
	{"back", catalog.Back},
	{"espalda", catalog.Back},
	{"shoulders", catalog.Shoulders},
	{"hombros", catalog.Shoulders},
	{"biceps", catalog.Arms},
	{"bíceps", catalog.Arms},
	{"triceps", catalog.Arms},
	{"tríceps", catalog.Arms},
	{"arms", catalog.Arms},
	{"brazos", catalog.Arms},
	{"quadriceps", catalog.Quadriceps},
	{"cuádriceps", catalog.Quadriceps},
	{"quads", catalog.Quadriceps},
	{"hamstrings", catalog.Hamstrings},
	{"isquiotibiales", catalog.Hamstrings},
	{"femoral", catalog.Hamstrings},
	{"calves", catalog.Calves},
	{"gemelos", catalog.Calves},
	{"pantorrillas", catalog.Calves},
	{"core", catalog.Core},
	{"abs", catalog.Core},
	{"abdominales", catalog.Core},
}

type keywordCategory struct {
	keyword string
	groups  []catalog.MuscleGroup
}

var (
	pushGroups  = []catalog.MuscleGroup{catalog.Chest, catalog.Shoulders, catalog.Arms}
	pullGroups  = []catalog.MuscleGroup{catalog.Back, catalog.Arms}
	upperGroups = []catalog.MuscleGroup{catalog.Chest, catalog.Back, catalog.Shoulders, catalog.Arms}
	lowerGroups = []catalog.MuscleGroup{catalog.Quadriceps, catalog.Hamstrings, catalog.Calves, catalog.Core}
)

// categoryGroups is consulted only when no direct keyword matched.
var categoryGroups = []keywordCategory{
	{"push", pushGroups},
	{"empuje", pushGroups},
	{"pull", pullGroups},
	{"tirón", pullGroups},
	{"upper", upperGroups},
	{"superior", upperGroups},
	{"lower", lowerGroups},
	{"inferior", lowerGroups},
	{"legs", lowerGroups},
	{"piernas", lowerGroups},
	{"full body", catalog.AllMuscleGroups},
	{"cuerpo completo", catalog.AllMuscleGroups},
}

var restKeywords = []string{"rest", "descanso", "cardio"}

// ResolveMuscleGroups turns a free-text day descriptor into an ordered, duplicate-free list
// of muscle groups. Rest and cardio days with no muscle keyword resolve to Core.
func ResolveMuscleGroups(descriptor string) []catalog.MuscleGroup {
	text := strings.ToLower(descriptor)

	var groups []catalog.MuscleGroup
	for _, entry := range directGroups {
		if strings.Contains(text, entry.keyword) {
			groups = appendUnique(groups, entry.group)
		}
	}

	if len(groups) == 0 {
		for _, entry := range categoryGroups {
			if strings.Contains(text, entry.keyword) {
				groups = appendUnique(groups, entry.groups...)
			}
		}
	}

	if len(groups) == 0 && IsRestDescriptor(descriptor) {
		return []catalog.MuscleGroup{catalog.Core}
	}

	return groups
}

// IsRestDescriptor reports whether the descriptor names a rest or cardio day.
func IsRestDescriptor(descriptor string) bool {
	text := strings.ToLower(descriptor)
	for _, keyword := range restKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func appendUnique(groups []catalog.MuscleGroup, candidates ...catalog.MuscleGroup) []catalog.MuscleGroup {
	for _, candidate := range candidates {
		seen := false
		for _, g := range groups {
			if g == candidate {
				seen = true
				break
			}
		}
		if !seen {
			groups = append(groups, candidate)
		}
	}
	return groups
}
