package workouts

import (
	"time"

	"github.com/2beens/gymplan/internal/gymplan/routines"
)

const defaultSeries = 3

type ExerciseState string

const (
	ExercisePending    ExerciseState = "PENDING"
	ExerciseInProgress ExerciseState = "IN_PROGRESS"
	ExerciseCompleted  ExerciseState = "COMPLETED"
	ExerciseSkipped    ExerciseState = "SKIPPED"
)

type ExerciseProgress struct {
	State           ExerciseState `json:"state"`
	CompletedSeries int           `json:"completedSeries"`
	TotalSeries     int           `json:"totalSeries"`
	LastUpdate      *time.Time    `json:"lastUpdate,omitempty"`
}

type SessionStats struct {
	TotalExercises     int `json:"totalExercises"`
	CompletedExercises int `json:"completedExercises"`
	TotalSeries        int `json:"totalSeries"`
	CompletedSeries    int `json:"completedSeries"`
}

// ComputeProgress derives the state of one assigned exercise from the session's logs.
// Logged sets past the target still count as completed.
func ComputeProgress(assignment routines.Assignment, logs []Log) ExerciseProgress {
	total := assignment.Series
	if total <= 0 {
		total = defaultSeries
	}

	progress := ExerciseProgress{TotalSeries: total}
	for _, l := range logs {
		if l.ExerciseID != assignment.ExerciseID {
			continue
		}
		progress.CompletedSeries++
		if progress.LastUpdate == nil || l.CreatedAt.After(*progress.LastUpdate) {
			createdAt := l.CreatedAt
			progress.LastUpdate = &createdAt
		}
	}

	switch {
	case progress.CompletedSeries == 0:
		progress.State = ExercisePending
	case progress.CompletedSeries < total:
		progress.State = ExerciseInProgress
	default:
		progress.State = ExerciseCompleted
	}

	return progress
}

// ComputeProgressWithState is ComputeProgress that keeps a SKIPPED state set by the user.
func ComputeProgressWithState(assignment routines.Assignment, logs []Log, current ExerciseState) ExerciseProgress {
	progress := ComputeProgress(assignment, logs)
	if current == ExerciseSkipped {
		progress.State = ExerciseSkipped
	}
	return progress
}

// ReduceStats sums the per-exercise progress into session totals.
func ReduceStats(progress []ExerciseProgress) SessionStats {
	stats := SessionStats{TotalExercises: len(progress)}
	for _, p := range progress {
		stats.TotalSeries += p.TotalSeries
		stats.CompletedSeries += p.CompletedSeries
		if p.State == ExerciseCompleted {
			stats.CompletedExercises++
		}
	}
	return stats
}
