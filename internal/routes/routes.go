package routes

import (
	"context"
	"net/http"

	"github.com/templui/smartgoals/internal/app"
	"github.com/templui/smartgoals/internal/db"
	"github.com/templui/smartgoals/internal/handler"
	"github.com/templui/smartgoals/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(func(ctx context.Context) error {
		return db.Ping(ctx, app.DB)
	})
	goal := handler.NewGoalHandler(app.GoalService)
	dashboard := handler.NewDashboardHandler(app.GoalService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", home.Health)

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	// Goal synthesis calls the model, so it is rate limited per user
	rateLimiter := middleware.RateLimitGenerate(
		middleware.NewRateLimiter(app.Cfg.GenerateRateLimit, app.Cfg.GenerateRateWindow),
	)
	mux.HandleFunc("POST /api/generate-goal", middleware.RequireAuth(rateLimiter(goal.Generate)))

	// Goals
	mux.HandleFunc("GET /api/goals/current", middleware.RequireAuth(goal.Current))
	mux.HandleFunc("GET /api/goals/{id}/progress", middleware.RequireAuth(goal.Progress))
	mux.HandleFunc("PUT /api/goals/{id}/progress", middleware.RequireAuth(goal.UpdateProgress))

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(dashboard.Dashboard))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", home.NotFound)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
	)

	return handler
}
