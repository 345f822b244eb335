package workouts

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoActiveRoutine      = errors.New("no active routine")
	ErrDayNotFound          = errors.New("no routine day scheduled for this date")
	ErrSessionNotFound      = errors.New("workout session not found")
	ErrLogNotFound          = errors.New("exercise log not found")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrInvalidLog           = errors.New("invalid exercise log")
	ErrExerciseNotInSession = errors.New("exercise is not part of this session")
	ErrTrackerNotOpen       = errors.New("session tracker is not open")
	ErrInvalidTransition    = errors.New("invalid session state transition")
)

const (
	DefaultSessionsLimit = 20
	MaxSessionsLimit     = 100
)

// Session is one dated execution of a routine day.
type Session struct {
	ID         int        `json:"id"`
	UserID     int        `json:"userId"`
	RoutineID  int        `json:"routineId"`
	DayID      int        `json:"dayId"`
	Date       time.Time  `json:"date"`
	Completed  bool       `json:"completed"`
	Notes      string     `json:"notes"`
	Rating     int        `json:"rating"`
	CreatedAt  time.Time  `json:"createdAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// Log is one performed set.
type Log struct {
	ID         int       `json:"id"`
	SessionID  int       `json:"sessionId"`
	ExerciseID int       `json:"exerciseId"`
	SetIndex   int       `json:"setIndex"`
	Reps       int       `json:"reps"`
	Kg         float64   `json:"kg"`
	RPE        int       `json:"rpe"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate accepts an RPE of 0 as "not given".
func (l Log) Validate() error {
	switch {
	case l.ExerciseID <= 0:
		return fmt.Errorf("%w: exercise id missing", ErrInvalidLog)
	case l.SetIndex < 0:
		return fmt.Errorf("%w: negative set index", ErrInvalidLog)
	case l.Reps < 0:
		return fmt.Errorf("%w: negative reps", ErrInvalidLog)
	case l.Kg < 0:
		return fmt.Errorf("%w: negative load", ErrInvalidLog)
	case l.RPE < 0 || l.RPE > 10:
		return fmt.Errorf("%w: rpe %d out of 1..10", ErrInvalidLog, l.RPE)
	}
	return nil
}

// SessionDate drops the clock part, sessions are keyed by calendar date.
func SessionDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}
	return nil
}
