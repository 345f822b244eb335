package profile

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

//go:generate mockgen -source=$GOFILE -destination=profile_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context, userID int) (*UserProfile, error)
	Upsert(ctx context.Context, p UserProfile) (*UserProfile, error)
}

type Handler struct {
	repo profileRepo
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.profile.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	p, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get profile for user %d: %s", userID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, p)
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.profile.upsert")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var p UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Tracef("upsert profile, unmarshal json params: %s", err)
		http.Error(w, "invalid profile json", http.StatusBadRequest)
		return
	}
	p.UserID = userID

	if err := p.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := handler.repo.Upsert(ctx, p)
	if err != nil {
		log.Errorf("failed to save profile for user %d: %s", userID, err)
		http.Error(w, "failed to save profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, saved)
}
