package workouts

import (
	"context"
	"fmt"

	"github.com/2beens/gymplan/internal/gymplan/routines"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type TrackerState string

const (
	TrackerIdle      TrackerState = "IDLE"
	TrackerLoading   TrackerState = "LOADING"
	TrackerActive    TrackerState = "ACTIVE"
	TrackerPaused    TrackerState = "PAUSED"
	TrackerCompleted TrackerState = "COMPLETED"
	TrackerError     TrackerState = "ERROR"
)

type trackerStore interface {
	LogsBySession(ctx context.Context, sessionID int) ([]Log, error)
	FinishSession(ctx context.Context, userID, sessionID int, notes string, rating int) (*Session, error)
}

type ExerciseStatus struct {
	Assignment routines.Assignment `json:"assignment"`
	Progress   ExerciseProgress    `json:"progress"`
}

// SessionProgress is a read-only snapshot of a tracker.
type SessionProgress struct {
	Session     Session              `json:"session"`
	State       TrackerState         `json:"state"`
	Stats       SessionStats         `json:"stats"`
	Exercises   []ExerciseStatus     `json:"exercises"`
	CanFinish   bool                 `json:"canFinish"`
	Next        *routines.Assignment `json:"next,omitempty"`
	LoggedSets  int                  `json:"loggedSets"`
	RoutineName string               `json:"routineName,omitempty"`
	DayName     string               `json:"dayName,omitempty"`
}

// Tracker holds the lifecycle of one session. Exercise progress is always recomputed
// from the logged sets, only the SKIPPED marks live in the tracker itself.
type Tracker struct {
	store     trackerStore
	session   Session
	exercises []routines.Assignment

	state    TrackerState
	logs     []Log
	progress []ExerciseProgress
	skipped  map[int]bool
	stats    SessionStats
}

func NewTracker(store trackerStore, session Session, exercises []routines.Assignment) *Tracker {
	return &Tracker{
		store:     store,
		session:   session,
		exercises: exercises,
		state:     TrackerIdle,
		skipped:   map[int]bool{},
	}
}

func (t *Tracker) State() TrackerState {
	return t.state
}

func (t *Tracker) Session() Session {
	return t.session
}

func (t *Tracker) Logs() []Log {
	return t.logs
}

func (t *Tracker) Stats() SessionStats {
	return t.stats
}

// Open loads the session's logs and aggregates them. A session stored as completed
// opens in the COMPLETED state.
func (t *Tracker) Open(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.tracker.open")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", t.session.ID))

	t.state = TrackerLoading
	if err := t.load(ctx); err != nil {
		return err
	}

	if t.session.Completed {
		t.state = TrackerCompleted
	} else {
		t.state = TrackerActive
	}
	return nil
}

// Refresh re-aggregates after a log write. Only a COMPLETED tracker changes state, it goes
// back to ACTIVE since it is being edited again. An ERROR tracker stays in ERROR until reopened.
func (t *Tracker) Refresh(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.tracker.refresh")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", t.session.ID))

	if t.state == TrackerIdle || t.state == TrackerLoading {
		return ErrTrackerNotOpen
	}

	if err := t.load(ctx); err != nil {
		return err
	}

	if t.state == TrackerCompleted {
		t.state = TrackerActive
	}
	return nil
}

func (t *Tracker) Pause() error {
	if t.state != TrackerActive {
		return fmt.Errorf("%w: pause from %s", ErrInvalidTransition, t.state)
	}
	t.state = TrackerPaused
	return nil
}

func (t *Tracker) Resume() error {
	if t.state != TrackerPaused {
		return fmt.Errorf("%w: resume from %s", ErrInvalidTransition, t.state)
	}
	t.state = TrackerActive
	return nil
}

// CanFinish requires at least one completed exercise and 30% of all series done.
// ceil(total*0.3) is computed in integers.
func (t *Tracker) CanFinish() bool {
	required := (t.stats.TotalSeries*3 + 9) / 10
	return t.stats.CompletedExercises > 0 && t.stats.CompletedSeries >= required
}

// Finish persists notes and rating and completes the session. When CanFinish is false it
// returns false and changes nothing.
func (t *Tracker) Finish(ctx context.Context, notes string, rating int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.tracker.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", t.session.ID))

	switch t.state {
	case TrackerActive, TrackerPaused, TrackerCompleted:
	default:
		return false, fmt.Errorf("%w: finish from %s", ErrTrackerNotOpen, t.state)
	}

	if !t.CanFinish() {
		return false, nil
	}
	if err := ValidateRating(rating); err != nil {
		return false, err
	}

	finished, err := t.store.FinishSession(ctx, t.session.UserID, t.session.ID, notes, rating)
	if err != nil {
		t.state = TrackerError
		return false, fmt.Errorf("finish session %d: %w", t.session.ID, err)
	}

	t.session = *finished
	t.state = TrackerCompleted
	return true, nil
}

// NextRecommended returns the first exercise in progress, else the first pending one.
func (t *Tracker) NextRecommended() *routines.Assignment {
	for i, p := range t.progress {
		if p.State == ExerciseInProgress {
			return &t.exercises[i]
		}
	}
	for i, p := range t.progress {
		if p.State == ExercisePending {
			return &t.exercises[i]
		}
	}
	return nil
}

// Skip marks an exercise as skipped, the mark survives refreshes.
func (t *Tracker) Skip(exerciseID int) error {
	if t.state == TrackerIdle || t.state == TrackerLoading {
		return ErrTrackerNotOpen
	}
	if !t.HasExercise(exerciseID) {
		return fmt.Errorf("%w: exercise %d", ErrExerciseNotInSession, exerciseID)
	}
	t.skipped[exerciseID] = true
	t.aggregate()
	return nil
}

func (t *Tracker) HasExercise(exerciseID int) bool {
	for _, a := range t.exercises {
		if a.ExerciseID == exerciseID {
			return true
		}
	}
	return false
}

// NextSetIndex is the 1-based index the next logged set of the exercise gets.
func (t *Tracker) NextSetIndex(exerciseID int) int {
	maxIndex := 0
	for _, l := range t.logs {
		if l.ExerciseID == exerciseID && l.SetIndex > maxIndex {
			maxIndex = l.SetIndex
		}
	}
	return maxIndex + 1
}

func (t *Tracker) Snapshot() SessionProgress {
	snapshot := SessionProgress{
		Session:    t.session,
		State:      t.state,
		Stats:      t.stats,
		Exercises:  make([]ExerciseStatus, 0, len(t.exercises)),
		CanFinish:  t.CanFinish(),
		Next:       t.NextRecommended(),
		LoggedSets: len(t.logs),
	}
	for i, a := range t.exercises {
		status := ExerciseStatus{Assignment: a}
		if i < len(t.progress) {
			status.Progress = t.progress[i]
		}
		snapshot.Exercises = append(snapshot.Exercises, status)
	}
	return snapshot
}

func (t *Tracker) load(ctx context.Context) error {
	logs, err := t.store.LogsBySession(ctx, t.session.ID)
	if err != nil {
		t.state = TrackerError
		return fmt.Errorf("logs of session %d: %w", t.session.ID, err)
	}
	t.logs = logs
	t.aggregate()
	return nil
}

func (t *Tracker) aggregate() {
	t.progress = make([]ExerciseProgress, 0, len(t.exercises))
	for _, a := range t.exercises {
		current := ExercisePending
		if t.skipped[a.ExerciseID] {
			current = ExerciseSkipped
		}
		t.progress = append(t.progress, ComputeProgressWithState(a, t.logs, current))
	}
	t.stats = ReduceStats(t.progress)
}
