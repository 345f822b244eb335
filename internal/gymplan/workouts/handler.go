package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymplan/internal/auth"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type sessionService interface {
	OpenDay(ctx context.Context, userID int, date time.Time) (*SessionProgress, error)
	Progress(ctx context.Context, userID, sessionID int) (*SessionProgress, error)
	LogSet(ctx context.Context, userID, sessionID int, l Log) (*Log, *SessionProgress, error)
	UpdateLog(ctx context.Context, userID int, l Log) (*Log, *SessionProgress, error)
	Finish(ctx context.Context, userID, sessionID int, notes string, rating int) (bool, *SessionProgress, error)
	Sessions(ctx context.Context, userID, limit int) ([]Session, error)
}

type openRequest struct {
	Date string `json:"date"`
}

type logRequest struct {
	ExerciseID int     `json:"exerciseId"`
	SetIndex   int     `json:"setIndex"`
	Reps       int     `json:"reps"`
	Kg         float64 `json:"kg"`
	RPE        int     `json:"rpe"`
}

type finishRequest struct {
	Notes  string `json:"notes"`
	Rating int    `json:"rating"`
}

type LogResponse struct {
	Log      *Log             `json:"log"`
	Progress *SessionProgress `json:"progress"`
}

type FinishResponse struct {
	Finished bool             `json:"finished"`
	Progress *SessionProgress `json:"progress,omitempty"`
}

type Handler struct {
	service sessionService
}

func NewHandler(service sessionService) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleOpen opens the session for the given date, today when the date is omitted.
func (handler *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.sessions.open")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req openRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			http.Error(w, "error, date must be formatted as YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	progress, err := handler.service.OpenDay(ctx, userID, date)
	if err != nil {
		writeServiceError(w, "open session", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, progress)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.sessions.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "error, limit NaN", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	sessions, err := handler.service.Sessions(ctx, userID, limit)
	if err != nil {
		writeServiceError(w, "list sessions", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, sessions)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.sessions.progress")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r)
	if !ok {
		return
	}

	progress, err := handler.service.Progress(ctx, userID, sessionID)
	if err != nil {
		writeServiceError(w, "session progress", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, progress)
}

func (handler *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.sessions.log_set")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req logRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, progress, err := handler.service.LogSet(ctx, userID, sessionID, Log{
		ExerciseID: req.ExerciseID,
		SetIndex:   req.SetIndex,
		Reps:       req.Reps,
		Kg:         req.Kg,
		RPE:        req.RPE,
	})
	if err != nil {
		writeServiceError(w, "log set", userID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, LogResponse{Log: created, Progress: progress})
}

func (handler *Handler) HandleUpdateLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.logs.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	logID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req logRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, progress, err := handler.service.UpdateLog(ctx, userID, Log{
		ID:       logID,
		SetIndex: req.SetIndex,
		Reps:     req.Reps,
		Kg:       req.Kg,
		RPE:      req.RPE,
	})
	if err != nil {
		writeServiceError(w, "update log", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, LogResponse{Log: updated, Progress: progress})
}

// HandleFinish answers 200 with finished=false when the session cannot be finished yet.
func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.sessions.finish")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req finishRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	finished, progress, err := handler.service.Finish(ctx, userID, sessionID, req.Notes, req.Rating)
	if err != nil {
		writeServiceError(w, "finish session", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, FinishResponse{Finished: finished, Progress: progress})
}

func writeServiceError(w http.ResponseWriter, op string, userID int, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrLogNotFound),
		errors.Is(err, ErrNoActiveRoutine),
		errors.Is(err, ErrDayNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrInvalidLog),
		errors.Is(err, ErrExerciseNotInSession):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s, user %d: %s", op, userID, err)
		http.Error(w, "error, "+op+" failed", http.StatusInternalServerError)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Tracef("%s %s, unmarshal json params: %s", r.Method, r.URL.Path, err)
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return false
	}
	return true
}
