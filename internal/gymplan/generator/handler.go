package generator

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/gymplan/internal/auth"
	"github.com/2beens/gymplan/internal/gymplan/profile"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=generator_test

type routineGenerator interface {
	Generate(ctx context.Context, userID int) (*GenerationResult, error)
}

type Handler struct {
	generator routineGenerator
}

func NewHandler(generator routineGenerator) *Handler {
	return &Handler{
		generator: generator,
	}
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.routines.generate")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	result, err := handler.generator.Generate(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, ErrNoArchetype):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case errors.Is(err, profile.ErrInvalidProfile):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, profile.ErrProfileNotFound):
		http.Error(w, "error, profile not set", http.StatusNotFound)
		return
	default:
		log.Errorf("generate routine for user %d: %s", userID, err)
		http.Error(w, "error, failed to generate routine", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, result)
}
