package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const exerciseColumns = `id, name, muscle_group, compound, instructions, basic, owner_id, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListAll returns the global catalog plus the user's custom entries, in insertion order.
func (r *Repo) ListAll(ctx context.Context, userID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.catalog.list_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM catalog_exercise
			WHERE owner_id IS NULL OR owner_id = $1
			ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	return scanExercises(rows)
}

func (r *Repo) ListByMuscleGroup(ctx context.Context, userID int, group MuscleGroup) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.catalog.list_by_group")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("muscle_group", string(group)),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM catalog_exercise
			WHERE muscle_group = $1 AND (owner_id IS NULL OR owner_id = $2)
			ORDER BY id;`,
		group, userID,
	)
	if err != nil {
		return nil, err
	}

	return scanExercises(rows)
}

func (r *Repo) ListBasic(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.catalog.list_basic")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM catalog_exercise
			WHERE basic = TRUE
			ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}

	return scanExercises(rows)
}

func (r *Repo) AddCustom(ctx context.Context, userID int, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.catalog.add_custom")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	owner := userID
	exercise.OwnerID = &owner
	exercise.Basic = false
	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO catalog_exercise
				(name, muscle_group, compound, instructions, basic, owner_id, created_at)
				VALUES ($1, $2, $3, $4, FALSE, $5, $6)
			RETURNING id;`,
		exercise.Name, exercise.MuscleGroup, exercise.Compound, exercise.Instructions, owner, exercise.CreatedAt,
	).Scan(&exercise.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))
	return &exercise, nil
}

func (r *Repo) BasicSeedExists(ctx context.Context) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.catalog.basic_seed_exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM catalog_exercise WHERE basic = TRUE);`,
	).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// SeedBasic inserts the basic exercise set and returns the number of inserted rows.
func (r *Repo) SeedBasic(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.catalog.seed_basic")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	seed := BasicSet()
	now := time.Now()
	batch := &pgx.Batch{}
	for _, e := range seed {
		batch.Queue(
			`INSERT INTO catalog_exercise
				(name, muscle_group, compound, instructions, basic, owner_id, created_at)
				VALUES ($1, $2, $3, $4, TRUE, NULL, $5);`,
			e.Name, e.MuscleGroup, e.Compound, e.Instructions, now,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := br.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close seed batch: %w", closeErr)
		}
	}()

	inserted := 0
	for range seed {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("seed basic exercise %d: %w", inserted, err)
		}
		inserted += int(tag.RowsAffected())
	}

	span.SetAttributes(attribute.Int("inserted", inserted))
	return inserted, nil
}

func scanExercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.MuscleGroup, &e.Compound, &e.Instructions, &e.Basic, &e.OwnerID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
