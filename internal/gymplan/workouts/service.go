package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/routines"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type RoutineSource interface {
	GetActive(ctx context.Context, userID int) (*routines.Routine, error)
	Get(ctx context.Context, userID, id int) (*routines.Routine, error)
}

type SessionStore interface {
	CreateSession(ctx context.Context, s Session) (*Session, error)
	FindSession(ctx context.Context, userID, routineID, dayID int, date time.Time) (*Session, error)
	GetSession(ctx context.Context, userID, id int) (*Session, error)
	ListSessions(ctx context.Context, userID, limit int) ([]Session, error)
	FinishSession(ctx context.Context, userID, sessionID int, notes string, rating int) (*Session, error)
	CreateLog(ctx context.Context, l Log) (*Log, error)
	LogsBySession(ctx context.Context, sessionID int) ([]Log, error)
	GetLog(ctx context.Context, userID, id int) (*Log, error)
	UpdateLog(ctx context.Context, l Log) error
}

// Service runs the tracker over stored sessions. It keeps no state between calls, every
// operation rebuilds a tracker from the routine day and the logged sets.
type Service struct {
	routines       RoutineSource
	store          SessionStore
	metricsManager *metrics.Manager
}

func NewService(routineSource RoutineSource, store SessionStore, metricsManager *metrics.Manager) *Service {
	return &Service{
		routines:       routineSource,
		store:          store,
		metricsManager: metricsManager,
	}
}

// OpenDay opens the session of the active routine's day scheduled on date, creating the
// session the first time the day is opened.
func (s *Service) OpenDay(ctx context.Context, userID int, date time.Time) (_ *SessionProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.session.open_day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	routine, day, err := s.scheduledDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	session, err := s.findOrCreateSession(ctx, userID, routine.ID, day.ID, date)
	if err != nil {
		return nil, err
	}

	tracker := NewTracker(s.store, *session, day.Exercises)
	if err := tracker.Open(ctx); err != nil {
		return nil, err
	}

	log.Debugf("user %d opened session %d [%s]", userID, session.ID, day.Name)
	return snapshot(tracker, routine, day), nil
}

// ProgressForDate is OpenDay without creating a missing session.
func (s *Service) ProgressForDate(ctx context.Context, userID int, date time.Time) (_ *SessionProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.session.progress_for_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	routine, day, err := s.scheduledDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	session, err := s.store.FindSession(ctx, userID, routine.ID, day.ID, date)
	if err != nil {
		return nil, err
	}

	tracker := NewTracker(s.store, *session, day.Exercises)
	if err := tracker.Open(ctx); err != nil {
		return nil, err
	}

	return snapshot(tracker, routine, day), nil
}

func (s *Service) Progress(ctx context.Context, userID, sessionID int) (_ *SessionProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.session.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("session.id", sessionID),
	)

	tracker, routine, day, err := s.openTracker(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	return snapshot(tracker, routine, day), nil
}

// LogSet stores one performed set. A zero set index gets the next free index of the exercise.
func (s *Service) LogSet(ctx context.Context, userID, sessionID int, l Log) (_ *Log, _ *SessionProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.session.log_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("session.id", sessionID),
		attribute.Int("exercise.id", l.ExerciseID),
	)

	if err := l.Validate(); err != nil {
		return nil, nil, err
	}

	tracker, routine, day, err := s.openTracker(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if !tracker.HasExercise(l.ExerciseID) {
		return nil, nil, fmt.Errorf("%w: exercise %d", ErrExerciseNotInSession, l.ExerciseID)
	}

	l.ID = 0
	l.SessionID = sessionID
	if l.SetIndex == 0 {
		l.SetIndex = tracker.NextSetIndex(l.ExerciseID)
	}

	created, err := s.store.CreateLog(ctx, l)
	if err != nil {
		return nil, nil, fmt.Errorf("create log: %w", err)
	}
	s.metricsManager.SetLogged()

	if err := tracker.Refresh(ctx); err != nil {
		return nil, nil, err
	}

	return created, snapshot(tracker, routine, day), nil
}

// UpdateLog changes reps, load, RPE and set index of a logged set. The session and the
// exercise of a set never change.
func (s *Service) UpdateLog(ctx context.Context, userID int, l Log) (_ *Log, _ *SessionProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.log.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("log.id", l.ID),
	)

	existing, err := s.store.GetLog(ctx, userID, l.ID)
	if err != nil {
		return nil, nil, err
	}

	updated := *existing
	updated.Reps = l.Reps
	updated.Kg = l.Kg
	updated.RPE = l.RPE
	if l.SetIndex > 0 {
		updated.SetIndex = l.SetIndex
	}
	if err := updated.Validate(); err != nil {
		return nil, nil, err
	}

	tracker, routine, day, err := s.openTracker(ctx, userID, existing.SessionID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.store.UpdateLog(ctx, updated); err != nil {
		return nil, nil, fmt.Errorf("update log: %w", err)
	}

	if err := tracker.Refresh(ctx); err != nil {
		return nil, nil, err
	}

	return &updated, snapshot(tracker, routine, day), nil
}

// Finish completes the session when enough work was logged. A session that cannot be
// finished yet is reported with false and left untouched.
func (s *Service) Finish(ctx context.Context, userID, sessionID int, notes string, rating int) (_ bool, _ *SessionProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.session.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("session.id", sessionID),
	)

	tracker, routine, day, err := s.openTracker(ctx, userID, sessionID)
	if err != nil {
		return false, nil, err
	}

	finished, err := tracker.Finish(ctx, notes, rating)
	if err != nil {
		return false, nil, err
	}

	if !finished {
		s.metricsManager.FinishRejected()
		stats := tracker.Stats()
		log.Debugf(
			"user %d cannot finish session %d yet: %d/%d series, %d exercises completed",
			userID, sessionID, stats.CompletedSeries, stats.TotalSeries, stats.CompletedExercises,
		)
		return false, snapshot(tracker, routine, day), nil
	}

	s.metricsManager.SessionFinished()
	log.Infof("user %d finished session %d, rating %d", userID, sessionID, rating)
	return true, snapshot(tracker, routine, day), nil
}

// Sessions lists the user's sessions, newest first. The limit falls back to
// DefaultSessionsLimit and is capped at MaxSessionsLimit.
func (s *Service) Sessions(ctx context.Context, userID, limit int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.session.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	sessions, err := s.store.ListSessions(ctx, userID, ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []Session{}
	}
	return sessions, nil
}

func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultSessionsLimit
	case limit > MaxSessionsLimit:
		return MaxSessionsLimit
	default:
		return limit
	}
}

func (s *Service) scheduledDay(ctx context.Context, userID int, date time.Time) (*routines.Routine, *routines.Day, error) {
	routine, err := s.routines.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, routines.ErrRoutineNotFound) {
			return nil, nil, ErrNoActiveRoutine
		}
		return nil, nil, fmt.Errorf("get active routine: %w", err)
	}

	weekday := routines.WeekdayOf(date)
	day, ok := routine.DayFor(weekday)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrDayNotFound, weekday)
	}

	return routine, day, nil
}

// findOrCreateSession looks the session up first. A concurrent create loses on the
// unique index and reads the winner's row.
func (s *Service) findOrCreateSession(ctx context.Context, userID, routineID, dayID int, date time.Time) (*Session, error) {
	session, err := s.store.FindSession(ctx, userID, routineID, dayID, date)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		return nil, fmt.Errorf("find session: %w", err)
	}

	session, err = s.store.CreateSession(ctx, Session{
		UserID:    userID,
		RoutineID: routineID,
		DayID:     dayID,
		Date:      SessionDate(date),
	})
	if err == nil {
		log.Debugf("user %d: new session %d for day %d", userID, session.ID, dayID)
		return session, nil
	}
	if !pkg.IsUniqueViolationError(err) {
		return nil, fmt.Errorf("create session: %w", err)
	}

	log.Warnf("user %d: session for day %d on %s created concurrently, re-fetching", userID, dayID, date.Format(time.DateOnly))
	return s.store.FindSession(ctx, userID, routineID, dayID, date)
}

func (s *Service) openTracker(ctx context.Context, userID, sessionID int) (*Tracker, *routines.Routine, *routines.Day, error) {
	session, err := s.store.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, nil, err
	}

	// sessions outlive their routine and day, history stays listable but not trackable
	routine, err := s.routines.Get(ctx, userID, session.RoutineID)
	if err != nil {
		if errors.Is(err, routines.ErrRoutineNotFound) {
			return nil, nil, nil, fmt.Errorf("%w: routine %d is gone", ErrDayNotFound, session.RoutineID)
		}
		return nil, nil, nil, fmt.Errorf("get routine %d: %w", session.RoutineID, err)
	}

	var day *routines.Day
	for i := range routine.Days {
		if routine.Days[i].ID == session.DayID {
			day = &routine.Days[i]
			break
		}
	}
	if day == nil {
		return nil, nil, nil, fmt.Errorf("%w: day %d", ErrDayNotFound, session.DayID)
	}

	tracker := NewTracker(s.store, *session, day.Exercises)
	if err := tracker.Open(ctx); err != nil {
		return nil, nil, nil, err
	}

	return tracker, routine, day, nil
}

func snapshot(tracker *Tracker, routine *routines.Routine, day *routines.Day) *SessionProgress {
	progress := tracker.Snapshot()
	progress.RoutineName = routine.Name
	progress.DayName = day.Name
	return &progress
}
