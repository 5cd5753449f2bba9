package handler

import (
	"net/http"
	"time"

	"github.com/templui/smartgoals/internal/ctxkeys"
	"github.com/templui/smartgoals/internal/service"
)

type DashboardHandler struct {
	goalService *service.GoalService
	now         func() time.Time
}

func NewDashboardHandler(goalService *service.GoalService) *DashboardHandler {
	return &DashboardHandler{
		goalService: goalService,
		now:         time.Now,
	}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	dashboard := h.goalService.Dashboard(r.Context(), user.ID, h.now().UTC())

	writeJSON(w, http.StatusOK, dashboard)
}
