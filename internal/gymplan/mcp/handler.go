package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymplan/internal/auth"
	"github.com/2beens/gymplan/internal/gymplan/catalog"
	"github.com/2beens/gymplan/internal/gymplan/routines"
	"github.com/2beens/gymplan/internal/gymplan/workouts"

	"github.com/mark3labs/mcp-go/mcp"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=mcp_test

type planService interface {
	ActiveRoutine(ctx context.Context, userID int) (*routines.Routine, error)
	SessionProgress(ctx context.Context, userID int, date time.Time) (*workouts.SessionProgress, error)
	Sessions(ctx context.Context, userID, limit int) ([]workouts.Session, error)
	Catalog(ctx context.Context, userID int, group string) ([]catalog.Exercise, error)
}

var toolGetActiveRoutine = mcp.NewTool("get_active_routine",
	mcp.WithDescription("Returns the user's active weekly routine: the seven days with their descriptors, rest flags and the assigned exercises with series, rep range, suggested load and rest seconds."),
)

var toolGetSessionProgress = mcp.NewTool("get_session_progress",
	mcp.WithDescription("Returns the progress of the workout session scheduled on a date: per-exercise state and completed series, session totals, whether it can be finished and the next recommended exercise."),
	mcp.WithString("date", mcp.Description("Session date (YYYY-MM-DD). Defaults to today.")),
)

var toolListSessions = mcp.NewTool("list_sessions",
	mcp.WithDescription("Lists the user's workout sessions, most recent first, with completion flag, notes and rating."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of sessions (default 20, max 100).")),
)

var toolGetCatalog = mcp.NewTool("get_catalog",
	mcp.WithDescription("Returns the exercise catalog visible to the user: the basic set plus the user's own entries."),
	mcp.WithString("muscle_group", mcp.Description("Filter by muscle group."), mcp.Enum(muscleGroupNames()...)),
)

// Handler turns MCP tool calls into plan service calls. The user always comes from the
// request context, never from tool arguments.
type Handler struct {
	service planService
}

func NewHandler(service planService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) GetActiveRoutine(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError("unauthorized"), nil
	}

	routine, err := h.service.ActiveRoutine(ctx, userID)
	if err != nil {
		if errors.Is(err, routines.ErrRoutineNotFound) {
			return mcp.NewToolResultError("no active routine, generate one first"), nil
		}
		log.Errorf("mcp get_active_routine, user %d: %s", userID, err)
		return mcp.NewToolResultError("error fetching active routine: " + err.Error()), nil
	}

	return jsonResult(routine)
}

func (h *Handler) GetSessionProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError("unauthorized"), nil
	}

	date := time.Now()
	if dateStr := req.GetString("date", ""); dateStr != "" {
		parsed, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return mcp.NewToolResultError("invalid date: use YYYY-MM-DD"), nil
		}
		date = parsed
	}

	progress, err := h.service.SessionProgress(ctx, userID, date)
	if err != nil {
		switch {
		case errors.Is(err, workouts.ErrSessionNotFound):
			return mcp.NewToolResultError("no session opened on " + date.Format(time.DateOnly)), nil
		case errors.Is(err, workouts.ErrNoActiveRoutine), errors.Is(err, workouts.ErrDayNotFound):
			return mcp.NewToolResultError(err.Error()), nil
		}
		log.Errorf("mcp get_session_progress, user %d: %s", userID, err)
		return mcp.NewToolResultError("error fetching session progress: " + err.Error()), nil
	}

	return jsonResult(progress)
}

func (h *Handler) ListSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError("unauthorized"), nil
	}

	sessions, err := h.service.Sessions(ctx, userID, req.GetInt("limit", workouts.DefaultSessionsLimit))
	if err != nil {
		log.Errorf("mcp list_sessions, user %d: %s", userID, err)
		return mcp.NewToolResultError("error listing sessions: " + err.Error()), nil
	}

	return jsonResult(sessions)
}

func (h *Handler) GetCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return mcp.NewToolResultError("unauthorized"), nil
	}

	exercises, err := h.service.Catalog(ctx, userID, req.GetString("muscle_group", ""))
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownMuscleGroup) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		log.Errorf("mcp get_catalog, user %d: %s", userID, err)
		return mcp.NewToolResultError("error fetching catalog: " + err.Error()), nil
	}

	return jsonResult(exercises)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("error encoding response: " + err.Error()), nil
	}
	return result, nil
}

func muscleGroupNames() []string {
	names := make([]string, 0, len(catalog.AllMuscleGroups))
	for _, g := range catalog.AllMuscleGroups {
		names = append(names, string(g))
	}
	return names
}
