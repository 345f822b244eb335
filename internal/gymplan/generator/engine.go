package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymplan/internal/gymplan/catalog"
	"github.com/2beens/gymplan/internal/gymplan/profile"
	"github.com/2beens/gymplan/internal/gymplan/routines"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=generator_test

type ProfileStore interface {
	Get(ctx context.Context, userID int) (*profile.UserProfile, error)
}

type CatalogStore interface {
	ListAll(ctx context.Context, userID int) ([]catalog.Exercise, error)
	BasicSeedExists(ctx context.Context) (bool, error)
	SeedBasic(ctx context.Context) (int, error)
}

type RoutineStore interface {
	GetActive(ctx context.Context, userID int) (*routines.Routine, error)
	Create(ctx context.Context, userID int, routine routines.Routine) (*routines.Routine, error)
	Update(ctx context.Context, userID int, routine routines.Routine) error
	SetActive(ctx context.Context, userID, id int) error
	DeleteDays(ctx context.Context, routineID int) (int, error)
	CreateDay(ctx context.Context, day routines.Day) (*routines.Day, error)
	CreateAssignment(ctx context.Context, a routines.Assignment) (*routines.Assignment, error)
}

// Failure is one day or assignment that could not be written.
type Failure struct {
	Weekday    routines.Weekday `json:"weekday"`
	ExerciseID int              `json:"exerciseId,omitempty"`
	Error      string           `json:"error"`
}

type GenerationResult struct {
	Routine     *routines.Routine `json:"routine"`
	Archetype   Archetype         `json:"archetype"`
	Volume      Volume            `json:"volume"`
	Replaced    bool              `json:"replaced"`
	DeletedDays int               `json:"deletedDays"`
	Failures    []Failure         `json:"failures,omitempty"`
}

// Engine turns a user profile into a persisted weekly routine. Writes are issued one by one
// without a transaction; a failed day or assignment is recorded and the rest still gets written.
type Engine struct {
	profiles       ProfileStore
	catalog        CatalogStore
	routines       RoutineStore
	allocator      *Allocator
	metricsManager *metrics.Manager
}

func NewEngine(
	profiles ProfileStore,
	catalogStore CatalogStore,
	routineStore RoutineStore,
	allocator *Allocator,
	metricsManager *metrics.Manager,
) *Engine {
	return &Engine{
		profiles:       profiles,
		catalog:        catalogStore,
		routines:       routineStore,
		allocator:      allocator,
		metricsManager: metricsManager,
	}
}

func (e *Engine) Generate(ctx context.Context, userID int) (_ *GenerationResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	p, err := e.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	archetype, err := LookupArchetype(p.Objective, p.SessionDuration, p.DaysPerWeek)
	if err != nil {
		e.metricsManager.GenerationFailure("config")
		return nil, err
	}
	template, err := LookupTemplate(archetype)
	if err != nil {
		e.metricsManager.GenerationFailure("config")
		return nil, err
	}
	volume, err := LookupVolume(p.SessionDuration, p.Experience)
	if err != nil {
		e.metricsManager.GenerationFailure("config")
		return nil, err
	}
	span.SetAttributes(attribute.String("archetype", string(archetype)))

	exercises, err := e.loadCatalog(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &GenerationResult{
		Archetype: archetype,
		Volume:    volume,
	}

	header := routines.Routine{
		Name:        RoutineName(archetype, p.DaysPerWeek),
		Archetype:   string(archetype),
		DaysPerWeek: p.DaysPerWeek,
		Active:      true,
	}
	routine, err := e.replaceRoutine(ctx, userID, header, result)
	if err != nil {
		return nil, err
	}

	for i, weekday := range routines.Weekdays {
		day, ok := e.writeDay(ctx, routine.ID, weekday, i+1, template[i], result)
		if !ok {
			continue
		}
		if !day.Rest && len(ResolveMuscleGroups(day.Descriptor)) > 0 {
			e.writeAssignments(ctx, day, p, volume, exercises, result)
		}
		routine.Days = append(routine.Days, *day)
	}

	result.Routine = routine
	e.metricsManager.RoutineGenerated()
	log.Infof(
		"user %d: generated routine %d [%s], %d days written, %d failures",
		userID, routine.ID, archetype, len(routine.Days), len(result.Failures),
	)

	return result, nil
}

func (e *Engine) loadCatalog(ctx context.Context, userID int) ([]catalog.Exercise, error) {
	seeded, err := e.catalog.BasicSeedExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("check basic catalog: %w", err)
	}
	if !seeded {
		inserted, err := e.catalog.SeedBasic(ctx)
		if err != nil {
			return nil, fmt.Errorf("seed basic catalog: %w", err)
		}
		log.Infof("basic catalog seeded with %d exercises", inserted)
	}

	exercises, err := e.catalog.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return exercises, nil
}

// replaceRoutine reuses the active routine when there is one, clearing its days, otherwise
// it creates a new routine and makes it the active one.
func (e *Engine) replaceRoutine(ctx context.Context, userID int, header routines.Routine, result *GenerationResult) (*routines.Routine, error) {
	active, err := e.routines.GetActive(ctx, userID)
	if err != nil && !errors.Is(err, routines.ErrRoutineNotFound) {
		return nil, fmt.Errorf("get active routine: %w", err)
	}

	if active != nil {
		header.ID = active.ID
		header.UserID = userID
		header.CreatedAt = active.CreatedAt
		if err := e.routines.Update(ctx, userID, header); err != nil {
			return nil, fmt.Errorf("update routine %d: %w", active.ID, err)
		}
		// clears any other routine left active by an interrupted activation
		if err := e.routines.SetActive(ctx, userID, active.ID); err != nil {
			return nil, fmt.Errorf("activate routine %d: %w", active.ID, err)
		}
		deleted, err := e.routines.DeleteDays(ctx, active.ID)
		if err != nil {
			return nil, fmt.Errorf("delete days of routine %d: %w", active.ID, err)
		}
		result.Replaced = true
		result.DeletedDays = deleted
		return &header, nil
	}

	header.Active = false
	created, err := e.routines.Create(ctx, userID, header)
	if err != nil {
		return nil, fmt.Errorf("create routine: %w", err)
	}
	if err := e.routines.SetActive(ctx, userID, created.ID); err != nil {
		return nil, fmt.Errorf("activate routine %d: %w", created.ID, err)
	}
	created.Active = true

	return created, nil
}

func (e *Engine) writeDay(
	ctx context.Context,
	routineID int,
	weekday routines.Weekday,
	order int,
	descriptor string,
	result *GenerationResult,
) (*routines.Day, bool) {
	day := routines.Day{
		RoutineID:  routineID,
		Weekday:    weekday,
		Descriptor: descriptor,
		Rest:       IsRestDescriptor(descriptor),
		Order:      order,
		Name:       dayName(weekday, descriptor),
	}

	created, err := e.routines.CreateDay(ctx, day)
	if err != nil {
		log.Errorf("generate routine %d: create day %s: %s", routineID, weekday, err)
		e.metricsManager.GenerationFailure("day")
		result.Failures = append(result.Failures, Failure{
			Weekday: weekday,
			Error:   err.Error(),
		})
		return nil, false
	}

	return created, true
}

func (e *Engine) writeAssignments(
	ctx context.Context,
	day *routines.Day,
	p *profile.UserProfile,
	volume Volume,
	exercises []catalog.Exercise,
	result *GenerationResult,
) {
	groups := ResolveMuscleGroups(day.Descriptor)
	selected := e.allocator.Allocate(groups, volume.Quota, p.Objective, exercises)

	for i, exercise := range selected {
		assignment := routines.Assignment{
			DayID:        day.ID,
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			MuscleGroup:  exercise.MuscleGroup,
			Series:       volume.Series,
			RepsMin:      volume.RepsMin,
			RepsMax:      volume.RepsMax,
			SuggestedKg:  SuggestLoad(exercise, p.WeightKg),
			RestSeconds:  volume.RestSeconds,
			Order:        i + 1,
		}

		created, err := e.routines.CreateAssignment(ctx, assignment)
		if err != nil {
			log.Errorf("generate routine: day %d (%s), exercise %d: %s", day.ID, day.Weekday, exercise.ID, err)
			e.metricsManager.GenerationFailure("assignment")
			result.Failures = append(result.Failures, Failure{
				Weekday:    day.Weekday,
				ExerciseID: exercise.ID,
				Error:      err.Error(),
			})
			continue
		}
		day.Exercises = append(day.Exercises, *created)
	}
}

// dayName joins the resolved groups, rest days and unresolved descriptors use the weekday name.
func dayName(weekday routines.Weekday, descriptor string) string {
	if IsRestDescriptor(descriptor) {
		return weekday.String()
	}

	groups := ResolveMuscleGroups(descriptor)
	if len(groups) == 0 {
		return weekday.String()
	}

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, string(g))
	}
	return strings.Join(names, ", ")
}
