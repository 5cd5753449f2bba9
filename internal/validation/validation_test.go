package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/templui/smartgoals/internal/model"
)

func validRequest() model.GoalRequest {
	return model.GoalRequest{
		InitialPrompt: "get fit",
		Responses: model.Responses{
			Specific:   "Run 5km",
			Measurable: "lose 10kg",
			Achievable: "daily runs",
			Relevant:   "health",
			Timebound:  "June",
		},
	}
}

func TestValidateGoalRequest(t *testing.T) {
	assert.NoError(t, ValidateGoalRequest(validRequest()))

	noPrompt := validRequest()
	noPrompt.InitialPrompt = ""
	assert.NoError(t, ValidateGoalRequest(noPrompt))

	blank := validRequest()
	blank.Responses.Measurable = "   "
	blank.Responses.Timebound = ""
	err := ValidateGoalRequest(blank)
	assert.ErrorIs(t, err, ErrMissingAnswers)
	assert.ErrorContains(t, err, "measurable, timebound")

	long := validRequest()
	long.Responses.Relevant = strings.Repeat("x", MaxAnswerLength+1)
	assert.ErrorContains(t, ValidateGoalRequest(long), "relevant is too long")

	longPrompt := validRequest()
	longPrompt.InitialPrompt = strings.Repeat("é", MaxPromptLength+1)
	assert.ErrorContains(t, ValidateGoalRequest(longPrompt), "initial prompt is too long")
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ada@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not an email"))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 250)+"@x.io"))
}
