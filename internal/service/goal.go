package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/templui/smartgoals/internal/model"
	"github.com/templui/smartgoals/internal/repository"
	"github.com/templui/smartgoals/internal/storage"
)

const dashboardDays = 7

type GoalService struct {
	repo         repository.GoalRepository
	progressRepo repository.ProgressRepository
	synthesizer  *Synthesizer
	emailService *EmailService
	archive      storage.Storage // optional
	now          func() time.Time
}

func NewGoalService(
	repo repository.GoalRepository,
	progressRepo repository.ProgressRepository,
	synthesizer *Synthesizer,
	emailService *EmailService,
	archive storage.Storage,
) *GoalService {
	return &GoalService{
		repo:         repo,
		progressRepo: progressRepo,
		synthesizer:  synthesizer,
		emailService: emailService,
		archive:      archive,
		now:          time.Now,
	}
}

// Generate synthesizes a goal from the user's answers and stores it as their current goal.
func (s *GoalService) Generate(ctx context.Context, user *model.User, req model.GoalRequest) (*model.Goal, error) {
	syn := s.synthesizer.Synthesize(ctx, req.Responses, req.InitialPrompt)

	err := syn.Result.Validate()
	if err != nil {
		return nil, fmt.Errorf("synthesis produced unusable goal: %w", err)
	}

	goal := &model.Goal{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		SmartGoal:  syn.Result.SmartGoal,
		DailyTasks: model.TaskList(syn.Result.DailyTasks),
		Responses:  req.Responses,
		CreatedAt:  s.now().UTC(),
	}

	err = s.repo.Create(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	slog.Info("goal created", "user_id", user.ID, "goal_id", goal.ID, "source", syn.Source, "duration_ms", syn.Duration.Milliseconds())

	s.archiveSynthesis(ctx, goal, syn)

	if user.HasEmail() {
		err = s.emailService.SendGoalCreatedEmail(ctx, user.Email, goal)
		if err != nil {
			slog.Warn("failed to send goal email", "error", err, "user_id", user.ID, "goal_id", goal.ID)
		}
	}

	return goal, nil
}

// CurrentGoal returns the user's most recent goal, or nil when there is none.
// Store errors are logged and reported as "no goal".
func (s *GoalService) CurrentGoal(ctx context.Context, userID string) *model.Goal {
	goal, err := s.repo.Current(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrGoalNotFound) {
			slog.Error("failed to get current goal", "error", err, "user_id", userID)
		}
		return nil
	}
	return goal
}

// GoalByID verifies ownership and returns the goal.
func (s *GoalService) GoalByID(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(ctx, userID, goalID)
}

// GoalProgress returns the goal's progress records newest first; empty on error.
func (s *GoalService) GoalProgress(ctx context.Context, goalID string) []*model.Progress {
	progress, err := s.progressRepo.ByGoal(ctx, goalID)
	if err != nil {
		slog.Error("failed to get goal progress", "error", err, "goal_id", goalID)
		return []*model.Progress{}
	}
	if progress == nil {
		return []*model.Progress{}
	}
	return progress
}

// UpdateProgress records whether the user finished the goal's tasks on the given day.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID string, date time.Time, completed bool) (*model.Progress, error) {
	// Verify ownership
	_, err := s.repo.ByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	progress := &model.Progress{
		ID:        uuid.New().String(),
		UserID:    userID,
		GoalID:    goalID,
		Date:      model.FormatDate(date),
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.progressRepo.Upsert(ctx, progress)
	if err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	return progress, nil
}

type DayActivity struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Completed bool   `json:"completed"`
	IsToday   bool   `json:"isToday"`
}

type Dashboard struct {
	Goal           *model.Goal   `json:"goal"`
	DailyTaskCount int           `json:"dailyTaskCount"`
	Streak         int           `json:"streak"`
	Week           []DayActivity `json:"week"`
}

// Dashboard assembles the signed-in user's overview. Read failures degrade to
// an empty dashboard instead of an error.
func (s *GoalService) Dashboard(ctx context.Context, userID string, today time.Time) *Dashboard {
	d := &Dashboard{
		Week: lastDays(nil, today, dashboardDays),
	}

	goal := s.CurrentGoal(ctx, userID)
	if goal == nil {
		return d
	}

	progress := s.GoalProgress(ctx, goal.ID)

	d.Goal = goal
	d.DailyTaskCount = len(goal.DailyTasks)
	d.Streak = Streak(progress, today)
	d.Week = lastDays(progress, today, dashboardDays)
	return d
}

// Streak counts consecutive completed days ending today. A day that is not
// completed yet does not break a streak that reached yesterday.
func Streak(progress []*model.Progress, today time.Time) int {
	completed := completedDays(progress)

	day := today
	if !completed[model.FormatDate(day)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for completed[model.FormatDate(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func lastDays(progress []*model.Progress, today time.Time, n int) []DayActivity {
	completed := completedDays(progress)

	days := make([]DayActivity, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := model.FormatDate(day)
		days = append(days, DayActivity{
			Date:      date,
			Weekday:   day.Weekday().String()[:3],
			Completed: completed[date],
			IsToday:   i == 0,
		})
	}
	return days
}

func completedDays(progress []*model.Progress) map[string]bool {
	completed := make(map[string]bool, len(progress))
	for _, p := range progress {
		if p.Completed {
			completed[p.Date] = true
		}
	}
	return completed
}

// archiveSynthesis keeps the prompt and raw model output for later inspection.
func (s *GoalService) archiveSynthesis(ctx context.Context, goal *model.Goal, syn Synthesis) {
	if s.archive == nil {
		return
	}

	body, err := json.Marshal(struct {
		GoalID string    `json:"goalId"`
		UserID string    `json:"userId"`
		At     time.Time `json:"at"`
		Synthesis
	}{goal.ID, goal.UserID, goal.CreatedAt, syn})
	if err != nil {
		slog.Warn("failed to encode synthesis transcript", "error", err, "goal_id", goal.ID)
		return
	}

	path := fmt.Sprintf("transcripts/%s/%s.json", goal.UserID, goal.ID)
	err = s.archive.Save(ctx, path, bytes.NewReader(body))
	if err != nil {
		slog.Warn("failed to archive synthesis transcript", "error", err, "goal_id", goal.ID)
	}
}
