package mcp

import (
	"context"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/catalog"
	"github.com/2beens/gymplan/internal/gymplan/routines"
	"github.com/2beens/gymplan/internal/gymplan/workouts"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=mcp_test

type ActiveRoutineSource interface {
	GetActive(ctx context.Context, userID int) (*routines.Routine, error)
}

type SessionSource interface {
	ProgressForDate(ctx context.Context, userID int, date time.Time) (*workouts.SessionProgress, error)
	Sessions(ctx context.Context, userID, limit int) ([]workouts.Session, error)
}

type CatalogSource interface {
	ListAll(ctx context.Context, userID int) ([]catalog.Exercise, error)
	ListByMuscleGroup(ctx context.Context, userID int, group catalog.MuscleGroup) ([]catalog.Exercise, error)
}

// PlanService is the read-only view of a user's plan exposed to MCP clients.
type PlanService struct {
	routines ActiveRoutineSource
	sessions SessionSource
	catalog  CatalogSource
}

func NewPlanService(routineSource ActiveRoutineSource, sessions SessionSource, catalogSource CatalogSource) *PlanService {
	return &PlanService{
		routines: routineSource,
		sessions: sessions,
		catalog:  catalogSource,
	}
}

func (s *PlanService) ActiveRoutine(ctx context.Context, userID int) (_ *routines.Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.mcp.active_routine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.routines.GetActive(ctx, userID)
}

func (s *PlanService) SessionProgress(ctx context.Context, userID int, date time.Time) (_ *workouts.SessionProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.mcp.session_progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.sessions.ProgressForDate(ctx, userID, date)
}

func (s *PlanService) Sessions(ctx context.Context, userID, limit int) (_ []workouts.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.mcp.sessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.sessions.Sessions(ctx, userID, limit)
}

// Catalog lists the exercises visible to the user, optionally for one muscle group.
func (s *PlanService) Catalog(ctx context.Context, userID int, group string) (_ []catalog.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.mcp.catalog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("muscle_group", group),
	)

	if group == "" {
		return s.catalog.ListAll(ctx, userID)
	}

	muscleGroup, err := catalog.ParseMuscleGroup(group)
	if err != nil {
		return nil, err
	}
	return s.catalog.ListByMuscleGroup(ctx, userID, muscleGroup)
}
