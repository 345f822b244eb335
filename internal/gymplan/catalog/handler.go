package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymplan/internal/auth"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type catalogStore interface {
	ListAll(ctx context.Context, userID int) ([]Exercise, error)
	ListByMuscleGroup(ctx context.Context, userID int, group MuscleGroup) ([]Exercise, error)
	ListBasic(ctx context.Context) ([]Exercise, error)
	AddCustom(ctx context.Context, userID int, exercise Exercise) (*Exercise, error)
}

type Handler struct {
	store catalogStore
}

func NewHandler(store catalogStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.catalog.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var (
		exercises []Exercise
		err       error
	)
	if groupParam := r.URL.Query().Get("group"); groupParam != "" {
		group, parseErr := ParseMuscleGroup(groupParam)
		if parseErr != nil {
			http.Error(w, "error, unknown muscle group", http.StatusBadRequest)
			return
		}
		exercises, err = handler.store.ListByMuscleGroup(ctx, userID, group)
	} else {
		exercises, err = handler.store.ListAll(ctx, userID)
	}
	if err != nil {
		log.Errorf("failed to list catalog for user %d: %s", userID, err)
		http.Error(w, "failed to list catalog", http.StatusInternalServerError)
		return
	}

	if exercises == nil {
		exercises = []Exercise{}
	}
	pkg.WriteJSONResponseOK(w, exercises)
}

func (handler *Handler) HandleListBasic(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.catalog.list_basic")
	defer span.End()

	exercises, err := handler.store.ListBasic(ctx)
	if err != nil {
		log.Errorf("failed to list basic catalog: %s", err)
		http.Error(w, "failed to list catalog", http.StatusInternalServerError)
		return
	}

	if exercises == nil {
		exercises = []Exercise{}
	}
	pkg.WriteJSONResponseOK(w, exercises)
}

func (handler *Handler) HandleAddCustom(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.catalog.add_custom")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("add custom exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise json", http.StatusBadRequest)
		return
	}

	if group, err := ParseMuscleGroup(string(exercise.MuscleGroup)); err == nil {
		exercise.MuscleGroup = group
	}
	if err := exercise.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.store.AddCustom(ctx, userID, exercise)
	if err != nil {
		if errors.Is(err, ErrInvalidExercise) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add custom exercise for user %d: %s", userID, err)
		http.Error(w, "failed to add exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, added)
}
