package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/templui/smartgoals/internal/model"
)

const (
	MaxAnswerLength = 500
	MaxPromptLength = 1000
)

var ErrMissingAnswers = errors.New("all SMART fields are required")

// ValidateGoalRequest checks the five SMART answers are present and the
// request stays within what the model prompt can carry.
func ValidateGoalRequest(req model.GoalRequest) error {
	missing := req.Responses.Missing()
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMissingAnswers, strings.Join(missing, ", "))
	}

	if utf8.RuneCountInString(req.InitialPrompt) > MaxPromptLength {
		return fmt.Errorf("initial prompt is too long (max %d characters)", MaxPromptLength)
	}

	answers := map[string]string{
		"specific":   req.Responses.Specific,
		"measurable": req.Responses.Measurable,
		"achievable": req.Responses.Achievable,
		"relevant":   req.Responses.Relevant,
		"timebound":  req.Responses.Timebound,
	}
	for _, name := range []string{"specific", "measurable", "achievable", "relevant", "timebound"} {
		if utf8.RuneCountInString(answers[name]) > MaxAnswerLength {
			return fmt.Errorf("%s is too long (max %d characters)", name, MaxAnswerLength)
		}
	}

	return nil
}
