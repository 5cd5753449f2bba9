package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/templui/smartgoals/internal/ctxkeys"
	"github.com/templui/smartgoals/internal/model"
	"github.com/templui/smartgoals/internal/repository"
	"github.com/templui/smartgoals/internal/service"
	"github.com/templui/smartgoals/internal/validation"
)

type GoalHandler struct {
	goalService *service.GoalService
	now         func() time.Time
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		now:         time.Now,
	}
}

type generateGoalResponse struct {
	Success    bool     `json:"success"`
	SmartGoal  string   `json:"smartGoal"`
	DailyTasks []string `json:"dailyTasks"`
}

func (h *GoalHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req model.GoalRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = validation.ValidateGoalRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Generate(r.Context(), user, req)
	if err != nil {
		slog.Error("failed to generate goal", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, generateGoalResponse{
		Success:    true,
		SmartGoal:  goal.SmartGoal,
		DailyTasks: goal.DailyTasks,
	})
}

func (h *GoalHandler) Current(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goal := h.goalService.CurrentGoal(r.Context(), user.ID)

	writeJSON(w, http.StatusOK, map[string]*model.Goal{"goal": goal})
}

func (h *GoalHandler) Progress(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	_, err := h.goalService.GoalByID(r.Context(), user.ID, goalID)
	if err != nil {
		h.goalLookupError(w, err, user.ID, goalID)
		return
	}

	progress := h.goalService.GoalProgress(r.Context(), goalID)

	writeJSON(w, http.StatusOK, map[string][]*model.Progress{"progress": progress})
}

type updateProgressRequest struct {
	Date      string `json:"date"`
	Completed *bool  `json:"completed"`
}

func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req updateProgressRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Completed == nil {
		writeError(w, http.StatusBadRequest, "completed is required")
		return
	}

	date := h.now().UTC()
	if req.Date != "" {
		date, err = model.ParseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
	}

	progress, err := h.goalService.UpdateProgress(r.Context(), user.ID, goalID, date, *req.Completed)
	if err != nil {
		h.goalLookupError(w, err, user.ID, goalID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]*model.Progress{"progress": progress})
}

func (h *GoalHandler) goalLookupError(w http.ResponseWriter, err error, userID, goalID string) {
	if errors.Is(err, repository.ErrGoalNotFound) {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	slog.Error("failed to access goal", "error", err, "user_id", userID, "goal_id", goalID)
	writeError(w, http.StatusInternalServerError, "failed to load goal")
}
