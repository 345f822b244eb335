package generator

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/2beens/gymplan/internal/gymplan/catalog"
	"github.com/2beens/gymplan/internal/gymplan/profile"
)

// Allocator picks the exercises of one training day.
type Allocator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewAllocator returns an allocator whose maintain-objective shuffle draws from src.
func NewAllocator(src rand.Source) *Allocator {
	return &Allocator{
		rnd: rand.New(src),
	}
}

// DistributeQuota splits quota over n groups: every group gets quota/n, and the first
// quota%n groups get one more.
func DistributeQuota(quota, n int) []int {
	if n <= 0 {
		return nil
	}
	if quota < 0 {
		quota = 0
	}

	base, extra := quota/n, quota%n
	perGroup := make([]int, n)
	for i := range perGroup {
		perGroup[i] = base
		if i < extra {
			perGroup[i]++
		}
	}
	return perGroup
}

// Allocate selects at most quota distinct exercises for the given groups. Groups without
// catalog coverage are dropped before the quota is split. When the groups cannot fill the
// quota, unused catalog entries are appended in catalog order.
func (a *Allocator) Allocate(
	groups []catalog.MuscleGroup,
	quota int,
	objective profile.Objective,
	exercises []catalog.Exercise,
) []catalog.Exercise {
	if len(groups) == 0 || quota <= 0 {
		return []catalog.Exercise{}
	}

	byGroup := map[catalog.MuscleGroup][]catalog.Exercise{}
	for _, e := range exercises {
		byGroup[e.MuscleGroup] = append(byGroup[e.MuscleGroup], e)
	}

	var covered []catalog.MuscleGroup
	for _, g := range groups {
		if len(byGroup[g]) > 0 {
			covered = appendUnique(covered, g)
		}
	}

	selected := make([]catalog.Exercise, 0, quota)
	picked := map[int]bool{}
	for i, groupQuota := range DistributeQuota(quota, len(covered)) {
		candidates := a.order(byGroup[covered[i]], objective)
		if len(candidates) > groupQuota {
			candidates = candidates[:groupQuota]
		}
		for _, e := range candidates {
			selected = append(selected, e)
			picked[e.ID] = true
		}
	}

	for _, e := range exercises {
		if len(selected) >= quota {
			break
		}
		if picked[e.ID] {
			continue
		}
		selected = append(selected, e)
		picked[e.ID] = true
	}

	if len(selected) > quota {
		selected = selected[:quota]
	}
	return selected
}

func (a *Allocator) order(candidates []catalog.Exercise, objective profile.Objective) []catalog.Exercise {
	ordered := make([]catalog.Exercise, len(candidates))
	copy(ordered, candidates)

	switch objective {
	case profile.ObjectiveGainMuscle:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Compound && !ordered[j].Compound
		})
	case profile.ObjectiveMaintain:
		a.mu.Lock()
		a.rnd.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
		a.mu.Unlock()
	}

	return ordered
}
