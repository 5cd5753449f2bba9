package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/templui/smartgoals/internal/model"
	"github.com/templui/smartgoals/internal/service/llm"
)

const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

const goalSystemPrompt = "You are a helpful assistant that always responds with valid JSON objects. Never include any additional text or formatting in your response."

var (
	ErrSynthesisTimeout = errors.New("model call timed out")
	ErrEmptyOutput      = errors.New("model returned no output")
	ErrNoJSONObject     = errors.New("no JSON object in model output")
	ErrMalformedJSON    = errors.New("model output is not valid JSON")
	ErrUnexpectedShape  = errors.New("model JSON lacks smartGoal or dailyTasks")
)

var (
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// Synthesis is the outcome of one goal synthesis, including how it was produced.
type Synthesis struct {
	Result         model.GoalResult `json:"result"`
	Source         string           `json:"source"`
	FallbackReason string           `json:"fallbackReason,omitempty"`
	Prompt         string           `json:"prompt"`
	RawOutput      string           `json:"rawOutput,omitempty"`
	Duration       time.Duration    `json:"duration"`
}

// Synthesizer turns SMART answers into a goal statement and daily tasks using a
// hosted model, falling back to a fixed template whenever the model cannot be used.
type Synthesizer struct {
	provider llm.Provider
	timeout  time.Duration
}

func NewSynthesizer(provider llm.Provider, timeout time.Duration) *Synthesizer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Synthesizer{
		provider: provider,
		timeout:  timeout,
	}
}

// Synthesize always returns a usable result. It never blocks longer than the
// configured timeout waiting on the model.
func (s *Synthesizer) Synthesize(ctx context.Context, responses model.Responses, initialPrompt string) Synthesis {
	start := time.Now()
	syn := Synthesis{
		Prompt: BuildGoalPrompt(responses, initialPrompt),
	}

	fallback := func(reason error) Synthesis {
		slog.Warn("goal synthesis using fallback", "reason", reason, "provider", s.provider.Name())
		syn.Result = FallbackResult(responses)
		syn.Source = SourceFallback
		syn.FallbackReason = reason.Error()
		syn.Duration = time.Since(start)
		return syn
	}

	text, err := s.generate(ctx, syn.Prompt)
	if err != nil {
		return fallback(err)
	}
	if text == "" {
		return fallback(ErrEmptyOutput)
	}
	syn.RawOutput = text

	result, err := ExtractGoalResult(text)
	if err != nil {
		return fallback(err)
	}

	syn.Result = result
	syn.Source = SourceModel
	syn.Duration = time.Since(start)
	return syn
}

// generate races the model call against the timeout. The losing side is dropped:
// a late model answer lands in the buffered channel and is garbage collected.
func (s *Synthesizer) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type outcome struct {
		text string
		err  error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("model call panicked: %v", r)}
			}
		}()

		text, err := s.provider.Generate(ctx, llm.Request{
			Prompt:           prompt,
			SystemPrompt:     goalSystemPrompt,
			Temperature:      0.1,
			MaxNewTokens:     500,
			TopP:             1,
			PresencePenalty:  0,
			FrequencyPenalty: 0,
		})
		done <- outcome{text: strings.TrimSpace(text), err: err}
	}()

	select {
	case out := <-done:
		return out.text, out.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", ErrSynthesisTimeout, s.timeout)
		}
		return "", ctx.Err()
	}
}

// BuildGoalPrompt embeds the user's goal and answers in the instruction sent to the model.
func BuildGoalPrompt(responses model.Responses, initialPrompt string) string {
	var b strings.Builder
	b.WriteString("Create a SMART goal and daily tasks based on these inputs:\n")
	fmt.Fprintf(&b, "Initial Goal: %s\n", initialPrompt)
	fmt.Fprintf(&b, "Specific: %s\n", responses.Specific)
	fmt.Fprintf(&b, "Measurable: %s\n", responses.Measurable)
	fmt.Fprintf(&b, "Achievable: %s\n", responses.Achievable)
	fmt.Fprintf(&b, "Relevant: %s\n", responses.Relevant)
	fmt.Fprintf(&b, "Time-bound: %s\n\n", responses.Timebound)
	b.WriteString("Respond with a valid JSON object in this exact format, with no additional text or formatting:\n")
	b.WriteString(`{"smartGoal":"Run 5 kilometers daily for 6 months to lose 10 kilos by December 31st, 2024","dailyTasks":["Complete 5km run","Track weight and running time","Prepare running gear for next day"]}`)
	return b.String()
}

// ExtractGoalResult pulls the first brace-delimited object out of free text and
// checks it has a string smartGoal and a list of string dailyTasks.
func ExtractGoalResult(text string) (model.GoalResult, error) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return model.GoalResult{}, ErrNoJSONObject
	}

	cleaned := strings.ReplaceAll(match, "\n", "")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")

	var payload map[string]json.RawMessage
	err := json.Unmarshal([]byte(cleaned), &payload)
	if err != nil {
		return model.GoalResult{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	var result model.GoalResult

	raw, ok := payload["smartGoal"]
	if !ok || json.Unmarshal(raw, &result.SmartGoal) != nil {
		return model.GoalResult{}, ErrUnexpectedShape
	}

	raw, ok = payload["dailyTasks"]
	if !ok || json.Unmarshal(raw, &result.DailyTasks) != nil || result.DailyTasks == nil {
		return model.GoalResult{}, ErrUnexpectedShape
	}

	err = result.Validate()
	if err != nil {
		return model.GoalResult{}, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	return result, nil
}

// FallbackResult builds a goal from the answers alone.
func FallbackResult(responses model.Responses) model.GoalResult {
	return model.GoalResult{
		SmartGoal: fmt.Sprintf("%s to %s by %s", responses.Specific, responses.Measurable, responses.Timebound),
		DailyTasks: []string{
			fmt.Sprintf("Complete %s", responses.Achievable),
			"Track progress daily",
			"Review and adjust plan weekly",
		},
	}
}
