package routines

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/gymplan/internal/auth"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=routines_mocks_test.go -package=routines_test

type routinesRepo interface {
	Create(ctx context.Context, userID int, routine Routine) (*Routine, error)
	Update(ctx context.Context, userID int, routine Routine) error
	GetActive(ctx context.Context, userID int) (*Routine, error)
	Get(ctx context.Context, userID, id int) (*Routine, error)
	SetActive(ctx context.Context, userID, id int) error
	Delete(ctx context.Context, userID, id int) error
	ListForUser(ctx context.Context, userID int) ([]Routine, error)
	CreateDay(ctx context.Context, day Day) (*Day, error)
	GetDay(ctx context.Context, userID, dayID int) (*Day, error)
	DeleteDays(ctx context.Context, routineID int) (int, error)
	CreateAssignment(ctx context.Context, a Assignment) (*Assignment, error)
	GetAssignment(ctx context.Context, userID, id int) (*Assignment, error)
	UpdateAssignment(ctx context.Context, a Assignment) error
	DeleteAssignment(ctx context.Context, id int) error
	DeleteAssignments(ctx context.Context, dayID int) (int, error)
	ReplaceAssignments(ctx context.Context, dayID int, assignments []Assignment) ([]Assignment, error)
}

type DeletedResponse struct {
	DeletedID    int `json:"deletedId,omitempty"`
	DeletedCount int `json:"deletedCount"`
}

type routineRequest struct {
	Name        string `json:"name"`
	DaysPerWeek int    `json:"daysPerWeek"`
	Active      bool   `json:"active"`
}

type Handler struct {
	repo routinesRepo
}

func NewHandler(repo routinesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.routines.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	routines, err := handler.repo.ListForUser(ctx, userID)
	if err != nil {
		log.Errorf("list routines for user %d: %s", userID, err)
		http.Error(w, "failed to list routines", http.StatusInternalServerError)
		return
	}
	if routines == nil {
		routines = []Routine{}
	}

	pkg.WriteJSONResponseOK(w, routines)
}

func (handler *Handler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.routines.active")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	routine, err := handler.repo.GetActive(ctx, userID)
	if err != nil {
		handler.writeRepoError(w, "get active routine", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, routine)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.routines.create")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req routineRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	routine := Routine{
		Name:        req.Name,
		DaysPerWeek: req.DaysPerWeek,
	}
	if err := routine.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.repo.Create(ctx, userID, routine)
	if err != nil {
		handler.writeRepoError(w, "create routine", userID, err)
		return
	}

	if req.Active {
		if err := handler.repo.SetActive(ctx, userID, created.ID); err != nil {
			handler.writeRepoError(w, "activate new routine", userID, err)
			return
		}
		created.Active = true
	}

	log.Debugf("user %d created routine %d [%s]", userID, created.ID, created.Name)
	pkg.WriteJSON(w, http.StatusCreated, created)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.routines.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req routineRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	existing, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		handler.writeRepoError(w, "get routine", userID, err)
		return
	}

	existing.Name = req.Name
	existing.DaysPerWeek = req.DaysPerWeek
	if err := existing.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, userID, *existing); err != nil {
		handler.writeRepoError(w, "update routine", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, existing)
}

func (handler *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.routines.activate")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := handler.repo.SetActive(ctx, userID, id); err != nil {
		handler.writeRepoError(w, "activate routine", userID, err)
		return
	}

	log.Debugf("user %d activated routine %d", userID, id)
	pkg.WriteJSONResponseOK(w, map[string]int{"activatedId": id})
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.routines.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		handler.writeRepoError(w, "delete routine", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, DeletedResponse{DeletedID: id, DeletedCount: 1})
}

func (handler *Handler) HandleListDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.routines.days.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	routine, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		handler.writeRepoError(w, "get routine days", userID, err)
		return
	}

	days := routine.Days
	if days == nil {
		days = []Day{}
	}
	pkg.WriteJSONResponseOK(w, days)
}

func (handler *Handler) HandleAddDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.routines.days.add")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var day Day
	if !decodeJSON(w, r, &day) {
		return
	}
	if day.Name == "" {
		day.Name = day.Weekday.String()
	}
	if err := day.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := handler.repo.Get(ctx, userID, id); err != nil {
		handler.writeRepoError(w, "get routine", userID, err)
		return
	}

	day.RoutineID = id
	created, err := handler.repo.CreateDay(ctx, day)
	if err != nil {
		handler.writeRepoError(w, "create day", userID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, created)
}

func (handler *Handler) HandleDeleteDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.routines.days.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if _, err := handler.repo.Get(ctx, userID, id); err != nil {
		handler.writeRepoError(w, "get routine", userID, err)
		return
	}

	deleted, err := handler.repo.DeleteDays(ctx, id)
	if err != nil {
		handler.writeRepoError(w, "delete days", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, DeletedResponse{DeletedCount: deleted})
}

// HandleReplaceExercises re-saves a whole day, the manual recovery path for a day
// whose generation failed partway.
func (handler *Handler) HandleReplaceExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.days.exercises.replace")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	dayID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var assignments []Assignment
	if !decodeJSON(w, r, &assignments) {
		return
	}
	for i := range assignments {
		assignments[i].Order = i + 1
		if err := assignments[i].Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	day, err := handler.repo.GetDay(ctx, userID, dayID)
	if err != nil {
		handler.writeRepoError(w, "get day", userID, err)
		return
	}
	if day.Rest && len(assignments) > 0 {
		http.Error(w, "error, rest days carry no exercises", http.StatusBadRequest)
		return
	}

	replaced, err := handler.repo.ReplaceAssignments(ctx, dayID, assignments)
	if err != nil {
		handler.writeRepoError(w, "replace exercises", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, replaced)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.days.exercises.add")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	dayID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var a Assignment
	if !decodeJSON(w, r, &a) {
		return
	}

	day, err := handler.repo.GetDay(ctx, userID, dayID)
	if err != nil {
		handler.writeRepoError(w, "get day", userID, err)
		return
	}
	if day.Rest {
		http.Error(w, "error, rest days carry no exercises", http.StatusBadRequest)
		return
	}

	a.DayID = dayID
	if a.Order == 0 {
		a.Order = len(day.Exercises) + 1
	}
	if err := a.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.repo.CreateAssignment(ctx, a)
	if err != nil {
		handler.writeRepoError(w, "create assignment", userID, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, created)
}

func (handler *Handler) HandleDeleteExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.days.exercises.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	dayID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if _, err := handler.repo.GetDay(ctx, userID, dayID); err != nil {
		handler.writeRepoError(w, "get day", userID, err)
		return
	}

	deleted, err := handler.repo.DeleteAssignments(ctx, dayID)
	if err != nil {
		handler.writeRepoError(w, "delete day exercises", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, DeletedResponse{DeletedCount: deleted})
}

func (handler *Handler) HandleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.assignments.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var a Assignment
	if !decodeJSON(w, r, &a) {
		return
	}

	existing, err := handler.repo.GetAssignment(ctx, userID, id)
	if err != nil {
		handler.writeRepoError(w, "get assignment", userID, err)
		return
	}

	a.ID = existing.ID
	a.DayID = existing.DayID
	if a.ExerciseID == 0 {
		a.ExerciseID = existing.ExerciseID
	}
	if a.Order == 0 {
		a.Order = existing.Order
	}
	if err := a.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateAssignment(ctx, a); err != nil {
		handler.writeRepoError(w, "update assignment", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, a)
}

func (handler *Handler) HandleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.assignments.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if _, err := handler.repo.GetAssignment(ctx, userID, id); err != nil {
		handler.writeRepoError(w, "get assignment", userID, err)
		return
	}

	if err := handler.repo.DeleteAssignment(ctx, id); err != nil {
		handler.writeRepoError(w, "delete assignment", userID, err)
		return
	}

	pkg.WriteJSONResponseOK(w, DeletedResponse{DeletedID: id, DeletedCount: 1})
}

func (handler *Handler) writeRepoError(w http.ResponseWriter, op string, userID int, err error) {
	switch {
	case errors.Is(err, ErrRoutineNotFound),
		errors.Is(err, ErrDayNotFound),
		errors.Is(err, ErrAssignmentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrActiveRoutineDelete):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidRoutine),
		errors.Is(err, ErrInvalidDay),
		errors.Is(err, ErrInvalidAssignment):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s, user %d: %s", op, userID, err)
		http.Error(w, "error, "+op+" failed", http.StatusInternalServerError)
	}
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	idStr := mux.Vars(r)[name]
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
