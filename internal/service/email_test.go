package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/templui/smartgoals/internal/model"
)

func TestGoalCreatedEmailTemplate(t *testing.T) {
	subject, body := goalCreatedEmailTemplate("Run 5km daily", []string{"Run", "Stretch"}, "http://localhost:8090/dashboard", "SmartGoals")

	assert.Equal(t, "Your new SMART goal on SmartGoals", subject)
	assert.Contains(t, body, "Run 5km daily")
	assert.Contains(t, body, "- Run\n- Stretch\n")
	assert.Contains(t, body, "http://localhost:8090/dashboard")
}

func TestEmailServiceEnabled(t *testing.T) {
	var nilService *EmailService
	assert.False(t, nilService.Enabled())
	assert.NoError(t, nilService.SendGoalCreatedEmail(context.Background(), "ada@example.com", &model.Goal{}))

	assert.False(t, NewEmailService("", "noreply@example.com", "http://x", "SmartGoals", false).Enabled())
	assert.True(t, NewEmailService("re_key", "noreply@example.com", "http://x", "SmartGoals", false).Enabled())

	dev := NewEmailService("", "noreply@example.com", "http://x", "SmartGoals", true)
	assert.True(t, dev.Enabled())
	assert.NoError(t, dev.SendGoalCreatedEmail(context.Background(), "ada@example.com", &model.Goal{ID: "g1", SmartGoal: "Run"}))
}
