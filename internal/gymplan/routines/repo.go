package routines

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/catalog"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const routineColumns = `id, user_id, name, archetype, days_per_week, active, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, userID int, routine Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.routine.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	now := time.Now()
	routine.UserID = userID
	routine.CreatedAt = now
	routine.UpdatedAt = now
	routine.Days = nil

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO routine (user_id, name, archetype, days_per_week, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		userID, routine.Name, routine.Archetype, routine.DaysPerWeek, routine.Active, now, now,
	).Scan(&routine.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("routine.id", routine.ID))
	return &routine, nil
}

// Update rewrites the routine header in place, the ID stays the same.
func (r *Repo) Update(ctx context.Context, userID int, routine Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.routine.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("routine.id", routine.ID),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE routine
			SET name = $1, archetype = $2, days_per_week = $3, active = $4, updated_at = $5
			WHERE id = $6 AND user_id = $7;`,
		routine.Name, routine.Archetype, routine.DaysPerWeek, routine.Active, time.Now(), routine.ID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}

	return nil
}

// GetActive returns the user's active routine with days and assignments. When more than one
// routine is flagged active, the most recently updated one wins.
func (r *Repo) GetActive(ctx context.Context, userID int) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.routine.get_active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	routine, err := scanRoutine(r.db.QueryRow(
		ctx,
		`SELECT `+routineColumns+`
			FROM routine
			WHERE user_id = $1 AND active = TRUE
			ORDER BY updated_at DESC, id DESC
			LIMIT 1;`,
		userID,
	))
	if err != nil {
		return nil, err
	}

	routine.Days, err = r.DaysByRoutine(ctx, routine.ID)
	if err != nil {
		return nil, fmt.Errorf("days of routine %d: %w", routine.ID, err)
	}

	return routine, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.routine.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("routine.id", id),
	)

	routine, err := scanRoutine(r.db.QueryRow(
		ctx,
		`SELECT `+routineColumns+`
			FROM routine
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
	if err != nil {
		return nil, err
	}

	routine.Days, err = r.DaysByRoutine(ctx, routine.ID)
	if err != nil {
		return nil, fmt.Errorf("days of routine %d: %w", routine.ID, err)
	}

	return routine, nil
}

// SetActive deactivates all of the user's routines, then activates the given one.
// The two statements are not atomic; readers resolve overlaps by recency.
func (r *Repo) SetActive(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.routine.set_active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("routine.id", id),
	)

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM routine WHERE id = $1 AND user_id = $2);`,
		id, userID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrRoutineNotFound
	}

	if _, err := r.db.Exec(
		ctx,
		`UPDATE routine SET active = FALSE WHERE user_id = $1 AND active = TRUE;`,
		userID,
	); err != nil {
		return fmt.Errorf("deactivate routines: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE routine SET active = TRUE, updated_at = $1 WHERE id = $2 AND user_id = $3;`,
		time.Now(), id, userID,
	)
	if err != nil {
		return fmt.Errorf("activate routine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.routine.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("routine.id", id),
	)

	var active bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT active FROM routine WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&active); err != nil {
		if pkg.IsNoRowsError(err) {
			return ErrRoutineNotFound
		}
		return err
	}
	if active {
		return ErrActiveRoutineDelete
	}

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM routine WHERE id = $1 AND user_id = $2 AND active = FALSE;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// activated in between
		return ErrActiveRoutineDelete
	}

	return nil
}

// ListForUser returns routine headers, the active one first, then by recency.
func (r *Repo) ListForUser(ctx context.Context, userID int) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.routine.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+routineColumns+`
			FROM routine
			WHERE user_id = $1
			ORDER BY active DESC, updated_at DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routines []Routine
	for rows.Next() {
		routine, err := scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		routines = append(routines, *routine)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routines, nil
}

func (r *Repo) CreateDay(ctx context.Context, day Day) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.day.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("routine.id", day.RoutineID),
		attribute.Int("day.order", day.Order),
	)

	day.Exercises = nil
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO routine_day (routine_id, weekday, name, descriptor, rest, day_order)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		day.RoutineID, int(day.Weekday), day.Name, day.Descriptor, day.Rest, day.Order,
	).Scan(&day.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, fmt.Errorf("%w: order %d already used", ErrInvalidDay, day.Order)
		}
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	return &day, nil
}

// GetDay returns a day with its assignments, if it belongs to one of the user's routines.
func (r *Repo) GetDay(ctx context.Context, userID, dayID int) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.day.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("day.id", dayID),
	)

	var (
		day     Day
		weekday int
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT d.id, d.routine_id, d.weekday, d.name, d.descriptor, d.rest, d.day_order
			FROM routine_day d
				JOIN routine r ON r.id = d.routine_id
			WHERE d.id = $1 AND r.user_id = $2;`,
		dayID, userID,
	).Scan(&day.ID, &day.RoutineID, &weekday, &day.Name, &day.Descriptor, &day.Rest, &day.Order)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	day.Weekday = Weekday(weekday)

	rows, err := r.db.Query(
		ctx,
		`SELECT `+assignmentColumns+`
			FROM day_exercise a
				JOIN catalog_exercise c ON c.id = a.exercise_id
			WHERE a.day_id = $1
			ORDER BY a.exercise_order;`,
		dayID,
	)
	if err != nil {
		return nil, err
	}

	day.Exercises, err = scanAssignments(rows)
	if err != nil {
		return nil, err
	}

	return &day, nil
}

// DaysByRoutine returns the routine's days in order, each with its assignments.
func (r *Repo) DaysByRoutine(ctx context.Context, routineID int) (_ []Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.day.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, routine_id, weekday, name, descriptor, rest, day_order
			FROM routine_day
			WHERE routine_id = $1
			ORDER BY day_order;`,
		routineID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []Day
	dayIndex := map[int]int{}
	for rows.Next() {
		var (
			day     Day
			weekday int
		)
		if err := rows.Scan(&day.ID, &day.RoutineID, &weekday, &day.Name, &day.Descriptor, &day.Rest, &day.Order); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		day.Weekday = Weekday(weekday)
		dayIndex[day.ID] = len(days)
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(days) == 0 {
		return days, nil
	}

	assignmentRows, err := r.db.Query(
		ctx,
		`SELECT `+assignmentColumns+`
			FROM day_exercise a
				JOIN routine_day d ON d.id = a.day_id
				JOIN catalog_exercise c ON c.id = a.exercise_id
			WHERE d.routine_id = $1
			ORDER BY d.day_order, a.exercise_order;`,
		routineID,
	)
	if err != nil {
		return nil, err
	}

	assignments, err := scanAssignments(assignmentRows)
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		i, ok := dayIndex[a.DayID]
		if !ok {
			continue
		}
		days[i].Exercises = append(days[i].Exercises, a)
	}

	return days, nil
}

// DeleteDays removes every day of the routine; assignments go with them.
func (r *Repo) DeleteDays(ctx context.Context, routineID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.day.delete_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	tag, err := r.db.Exec(ctx, `DELETE FROM routine_day WHERE routine_id = $1;`, routineID)
	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

const assignmentColumns = `a.id, a.day_id, a.exercise_id, c.name, c.muscle_group,
	a.series, a.reps_min, a.reps_max, a.suggested_kg, a.rest_seconds, a.exercise_order`

func (r *Repo) CreateAssignment(ctx context.Context, a Assignment) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.assignment.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("day.id", a.DayID),
		attribute.Int("exercise.id", a.ExerciseID),
	)

	created, err := insertAssignment(ctx, r.db, a)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetAssignment returns the assignment if it belongs to one of the user's routines.
func (r *Repo) GetAssignment(ctx context.Context, userID, id int) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.assignment.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("assignment.id", id),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT `+assignmentColumns+`
			FROM day_exercise a
				JOIN catalog_exercise c ON c.id = a.exercise_id
				JOIN routine_day d ON d.id = a.day_id
				JOIN routine r ON r.id = d.routine_id
			WHERE a.id = $1 AND r.user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}

	assignments, err := scanAssignments(rows)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, ErrAssignmentNotFound
	}

	return &assignments[0], nil
}

func (r *Repo) UpdateAssignment(ctx context.Context, a Assignment) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.assignment.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("assignment.id", a.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE day_exercise
			SET exercise_id = $1, series = $2, reps_min = $3, reps_max = $4,
				suggested_kg = $5, rest_seconds = $6, exercise_order = $7
			WHERE id = $8;`,
		a.ExerciseID, a.Series, a.RepsMin, a.RepsMax, a.SuggestedKg, a.RestSeconds, a.Order, a.ID,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return fmt.Errorf("%w: order %d already used", ErrInvalidAssignment, a.Order)
		}
		if pkg.IsForeignKeyViolationError(err) {
			return fmt.Errorf("%w: unknown exercise %d", ErrInvalidAssignment, a.ExerciseID)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

func (r *Repo) DeleteAssignment(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.assignment.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("assignment.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM day_exercise WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

func (r *Repo) DeleteAssignments(ctx context.Context, dayID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.assignment.delete_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day.id", dayID))

	tag, err := r.db.Exec(ctx, `DELETE FROM day_exercise WHERE day_id = $1;`, dayID)
	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

// ReplaceAssignments swaps the day's assignments for the given list inside one transaction.
// Orders are renumbered 1..n following the list order.
func (r *Repo) ReplaceAssignments(ctx context.Context, dayID int, assignments []Assignment) (_ []Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.assignment.replace")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("day.id", dayID),
		attribute.Int("assignments.count", len(assignments)),
	)

	replaced := make([]Assignment, 0, len(assignments))
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM day_exercise WHERE day_id = $1;`, dayID); err != nil {
			return fmt.Errorf("clear day: %w", err)
		}
		for i, a := range assignments {
			a.DayID = dayID
			a.Order = i + 1
			created, err := insertAssignment(ctx, tx, a)
			if err != nil {
				return err
			}
			replaced = append(replaced, *created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return replaced, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertAssignment(ctx context.Context, db queryRower, a Assignment) (*Assignment, error) {
	var group string
	err := db.QueryRow(
		ctx,
		`WITH ins AS (
				INSERT INTO day_exercise
					(day_id, exercise_id, series, reps_min, reps_max, suggested_kg, rest_seconds, exercise_order)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id, exercise_id
			)
			SELECT ins.id, c.name, c.muscle_group
				FROM ins JOIN catalog_exercise c ON c.id = ins.exercise_id;`,
		a.DayID, a.ExerciseID, a.Series, a.RepsMin, a.RepsMax, a.SuggestedKg, a.RestSeconds, a.Order,
	).Scan(&a.ID, &a.ExerciseName, &group)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, fmt.Errorf("%w: order %d already used", ErrInvalidAssignment, a.Order)
		}
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: unknown day %d or exercise %d", ErrInvalidAssignment, a.DayID, a.ExerciseID)
		}
		return nil, err
	}
	a.MuscleGroup = catalog.MuscleGroup(group)

	return &a, nil
}

func scanRoutine(row pgx.Row) (*Routine, error) {
	var routine Routine
	if err := row.Scan(
		&routine.ID, &routine.UserID, &routine.Name, &routine.Archetype,
		&routine.DaysPerWeek, &routine.Active, &routine.CreatedAt, &routine.UpdatedAt,
	); err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	return &routine, nil
}

func scanAssignments(rows pgx.Rows) ([]Assignment, error) {
	defer rows.Close()

	var assignments []Assignment
	for rows.Next() {
		var (
			a     Assignment
			group string
		)
		if err := rows.Scan(
			&a.ID, &a.DayID, &a.ExerciseID, &a.ExerciseName, &group,
			&a.Series, &a.RepsMin, &a.RepsMax, &a.SuggestedKg, &a.RestSeconds, &a.Order,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		a.MuscleGroup = catalog.MuscleGroup(group)
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
