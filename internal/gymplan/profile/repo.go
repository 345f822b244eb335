package profile

import (
	"context"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var p UserProfile
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, height_cm, weight_kg, age, sex, objective, experience, session_duration, days_per_week, updated_at
			FROM user_profile
			WHERE user_id = $1`,
		userID,
	).Scan(
		&p.UserID, &p.HeightCm, &p.WeightKg, &p.Age, &p.Sex,
		&p.Objective, &p.Experience, &p.SessionDuration, &p.DaysPerWeek, &p.UpdatedAt,
	)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *Repo) Upsert(ctx context.Context, p UserProfile) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", p.UserID))

	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_profile
				(user_id, height_cm, weight_kg, age, sex, objective, experience, session_duration, days_per_week, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (user_id) DO UPDATE SET
				height_cm = EXCLUDED.height_cm,
				weight_kg = EXCLUDED.weight_kg,
				age = EXCLUDED.age,
				sex = EXCLUDED.sex,
				objective = EXCLUDED.objective,
				experience = EXCLUDED.experience,
				session_duration = EXCLUDED.session_duration,
				days_per_week = EXCLUDED.days_per_week,
				updated_at = EXCLUDED.updated_at;`,
		p.UserID, p.HeightCm, p.WeightKg, p.Age, p.Sex,
		p.Objective, p.Experience, p.SessionDuration, p.DaysPerWeek, p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
