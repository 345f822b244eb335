package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	sessionColumns = `id, user_id, routine_id, day_id, session_date, completed, notes, rating, created_at, finished_at`
	logColumns     = `id, session_id, exercise_id, set_index, reps, kg, rpe, created_at`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CreateSession inserts a session. A unique violation on (user, routine, day, date)
// is returned as is, callers re-fetch the existing row.
func (r *Repo) CreateSession(ctx context.Context, s Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.session.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", s.UserID),
		attribute.Int("day.id", s.DayID),
	)

	s.Date = SessionDate(s.Date)
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_session (user_id, routine_id, day_id, session_date, completed, notes, rating, created_at)
			VALUES ($1, $2, $3, $4, FALSE, '', 0, $5)
			RETURNING id;`,
		s.UserID, s.RoutineID, s.DayID, s.Date, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *Repo) FindSession(ctx context.Context, userID, routineID, dayID int, date time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.session.find")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("routine.id", routineID),
		attribute.Int("day.id", dayID),
	)

	return scanSession(r.db.QueryRow(
		ctx,
		`SELECT `+sessionColumns+`
			FROM workout_session
			WHERE user_id = $1 AND routine_id = $2 AND day_id = $3 AND session_date = $4;`,
		userID, routineID, dayID, SessionDate(date),
	))
}

func (r *Repo) GetSession(ctx context.Context, userID, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.session.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("session.id", id),
	)

	return scanSession(r.db.QueryRow(
		ctx,
		`SELECT `+sessionColumns+`
			FROM workout_session
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
}

// ListSessions returns at most limit sessions, the most recent first.
func (r *Repo) ListSessions(ctx context.Context, userID, limit int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.session.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("limit", limit),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+`
			FROM workout_session
			WHERE user_id = $1
			ORDER BY session_date DESC, id DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *Repo) FinishSession(ctx context.Context, userID, sessionID int, notes string, rating int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.session.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("session.id", sessionID),
	)

	return scanSession(r.db.QueryRow(
		ctx,
		`UPDATE workout_session
			SET completed = TRUE, notes = $1, rating = $2, finished_at = $3
			WHERE id = $4 AND user_id = $5
			RETURNING `+sessionColumns+`;`,
		notes, rating, time.Now(), sessionID, userID,
	))
}

func (r *Repo) CreateLog(ctx context.Context, l Log) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.log.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("session.id", l.SessionID),
		attribute.Int("exercise.id", l.ExerciseID),
	)

	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_log (session_id, exercise_id, set_index, reps, kg, rpe, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		l.SessionID, l.ExerciseID, l.SetIndex, l.Reps, l.Kg, l.RPE, l.CreatedAt,
	).Scan(&l.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &l, nil
}

func (r *Repo) LogsBySession(ctx context.Context, sessionID int) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.log.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+logColumns+`
			FROM workout_log
			WHERE session_id = $1
			ORDER BY created_at, id;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []Log
	for rows.Next() {
		var l Log
		if err := rows.Scan(&l.ID, &l.SessionID, &l.ExerciseID, &l.SetIndex, &l.Reps, &l.Kg, &l.RPE, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// GetLog returns the log if its session belongs to the user.
func (r *Repo) GetLog(ctx context.Context, userID, id int) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.log.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("log.id", id),
	)

	var l Log
	err = r.db.QueryRow(
		ctx,
		`SELECT l.id, l.session_id, l.exercise_id, l.set_index, l.reps, l.kg, l.rpe, l.created_at
			FROM workout_log l
				JOIN workout_session s ON s.id = l.session_id
			WHERE l.id = $1 AND s.user_id = $2;`,
		id, userID,
	).Scan(&l.ID, &l.SessionID, &l.ExerciseID, &l.SetIndex, &l.Reps, &l.Kg, &l.RPE, &l.CreatedAt)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	return &l, nil
}

func (r *Repo) UpdateLog(ctx context.Context, l Log) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.log.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log.id", l.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_log
			SET set_index = $1, reps = $2, kg = $3, rpe = $4
			WHERE id = $5;`,
		l.SetIndex, l.Reps, l.Kg, l.RPE, l.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}

	return nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var s Session
	if err := row.Scan(
		&s.ID, &s.UserID, &s.RoutineID, &s.DayID, &s.Date,
		&s.Completed, &s.Notes, &s.Rating, &s.CreatedAt, &s.FinishedAt,
	); err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}
