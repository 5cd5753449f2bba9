package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
	"github.com/templui/smartgoals/internal/model"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

// Enabled reports whether emails are delivered or logged. A nil service or a
// production service without an API key sends nothing.
func (s *EmailService) Enabled() bool {
	return s != nil && (s.isDev || s.client != nil)
}

func (s *EmailService) SendGoalCreatedEmail(ctx context.Context, email string, goal *model.Goal) error {
	if !s.Enabled() {
		return nil
	}

	dashboardURL := fmt.Sprintf("%s/dashboard", s.appURL)
	subject, body := goalCreatedEmailTemplate(goal.SmartGoal, goal.DailyTasks, dashboardURL, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "goal_created", "to", email, "subject", subject, "goal_id", goal.ID)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "goal_created", "to", email, "goal_id", goal.ID)
	}
	return err
}
