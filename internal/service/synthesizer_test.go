package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/smartgoals/internal/model"
	"github.com/templui/smartgoals/internal/service/llm"
)

type fakeProvider struct {
	generate func(ctx context.Context, req llm.Request) (string, error)
	requests []llm.Request
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Generate(ctx context.Context, req llm.Request) (string, error) {
	p.requests = append(p.requests, req)
	return p.generate(ctx, req)
}

func replying(text string) *fakeProvider {
	return &fakeProvider{generate: func(context.Context, llm.Request) (string, error) {
		return text, nil
	}}
}

func testResponses() model.Responses {
	return model.Responses{
		Specific:   "Run 5 kilometers every day",
		Measurable: "lose 10kg",
		Achievable: "a daily run",
		Relevant:   "better health",
		Timebound:  "June 2027",
	}
}

func TestFallbackResultUsesAnswersVerbatim(t *testing.T) {
	r := testResponses()
	got := FallbackResult(r)

	assert.Equal(t, "Run 5 kilometers every day to lose 10kg by June 2027", got.SmartGoal)
	assert.Contains(t, got.SmartGoal, r.Specific)
	assert.Contains(t, got.SmartGoal, r.Measurable)
	assert.Contains(t, got.SmartGoal, r.Timebound)
	assert.Equal(t, []string{"Complete a daily run", "Track progress daily", "Review and adjust plan weekly"}, got.DailyTasks)
	assert.NoError(t, got.Validate())
}

func TestSynthesizeExtractsJSONFromProse(t *testing.T) {
	provider := replying(`Sure! Here is your goal: {"smartGoal":"Run 5km","dailyTasks":["A","B"]} Good luck.`)
	s := NewSynthesizer(provider, time.Second)

	syn := s.Synthesize(context.Background(), testResponses(), "I want to get fit")

	assert.Equal(t, SourceModel, syn.Source)
	assert.Equal(t, model.GoalResult{SmartGoal: "Run 5km", DailyTasks: []string{"A", "B"}}, syn.Result)
	assert.Empty(t, syn.FallbackReason)
}

func TestSynthesizeHandlesMultilineJSON(t *testing.T) {
	provider := replying("{\n  \"smartGoal\":   \"Read 12 books\",\n  \"dailyTasks\": [\n    \"Read 20 pages\"\n  ]\n}")
	s := NewSynthesizer(provider, time.Second)

	syn := s.Synthesize(context.Background(), testResponses(), "read more")

	assert.Equal(t, SourceModel, syn.Source)
	assert.Equal(t, "Read 12 books", syn.Result.SmartGoal)
	assert.Equal(t, []string{"Read 20 pages"}, syn.Result.DailyTasks)
}

func TestSynthesizeFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
		reason error
	}{
		{name: "no braces", output: "I cannot help with that.", reason: ErrNoJSONObject},
		{name: "missing dailyTasks", output: `{"smartGoal":"Run 5km"}`, reason: ErrUnexpectedShape},
		{name: "dailyTasks not a list", output: `{"smartGoal":"Run 5km","dailyTasks":"A, B"}`, reason: ErrUnexpectedShape},
		{name: "smartGoal not a string", output: `{"smartGoal":5,"dailyTasks":["A"]}`, reason: ErrUnexpectedShape},
		{name: "empty task list", output: `{"smartGoal":"Run","dailyTasks":[]}`, reason: ErrUnexpectedShape},
		{name: "broken json", output: `{"smartGoal": "Run", dailyTasks}`, reason: ErrMalformedJSON},
		{name: "empty output", output: "   ", reason: ErrEmptyOutput},
		{name: "provider error", err: errors.New("502 bad gateway")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{generate: func(context.Context, llm.Request) (string, error) {
				return tt.output, tt.err
			}}
			s := NewSynthesizer(provider, time.Second)

			syn := s.Synthesize(context.Background(), testResponses(), "get fit")

			assert.Equal(t, SourceFallback, syn.Source)
			assert.Equal(t, FallbackResult(testResponses()), syn.Result)
			assert.NotEmpty(t, syn.FallbackReason)
			if tt.reason != nil {
				assert.Contains(t, syn.FallbackReason, tt.reason.Error())
			}
		})
	}
}

func TestSynthesizeTimesOutWithoutBlocking(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	// Ignores ctx on purpose: the synthesizer must not wait for it.
	provider := &fakeProvider{generate: func(context.Context, llm.Request) (string, error) {
		<-release
		return `{"smartGoal":"late","dailyTasks":["late"]}`, nil
	}}
	s := NewSynthesizer(provider, 50*time.Millisecond)

	start := time.Now()
	syn := s.Synthesize(context.Background(), testResponses(), "get fit")
	elapsed := time.Since(start)

	assert.Less(t, elapsed, time.Second)
	assert.Equal(t, SourceFallback, syn.Source)
	assert.Contains(t, syn.FallbackReason, ErrSynthesisTimeout.Error())
	assert.Equal(t, FallbackResult(testResponses()), syn.Result)
}

func TestSynthesizeRecoversFromProviderPanic(t *testing.T) {
	provider := &fakeProvider{generate: func(context.Context, llm.Request) (string, error) {
		panic("boom")
	}}
	s := NewSynthesizer(provider, time.Second)

	syn := s.Synthesize(context.Background(), testResponses(), "get fit")

	assert.Equal(t, SourceFallback, syn.Source)
	assert.Contains(t, syn.FallbackReason, "panicked")
}

func TestSynthesizeSendsPromptAndParameters(t *testing.T) {
	provider := replying(`{"smartGoal":"x","dailyTasks":["y"]}`)
	s := NewSynthesizer(provider, time.Second)

	s.Synthesize(context.Background(), testResponses(), "I want to lose weight")

	require.Len(t, provider.requests, 1)
	req := provider.requests[0]
	assert.Contains(t, req.Prompt, "Initial Goal: I want to lose weight")
	assert.Contains(t, req.Prompt, "Specific: Run 5 kilometers every day")
	assert.Contains(t, req.Prompt, "Measurable: lose 10kg")
	assert.Contains(t, req.Prompt, "Achievable: a daily run")
	assert.Contains(t, req.Prompt, "Relevant: better health")
	assert.Contains(t, req.Prompt, "Time-bound: June 2027")
	assert.Contains(t, req.Prompt, `"dailyTasks"`)
	assert.Equal(t, 0.1, req.Temperature)
	assert.Equal(t, 500, req.MaxNewTokens)
	assert.Equal(t, 1.0, req.TopP)
	assert.NotEmpty(t, req.SystemPrompt)
}

func TestExtractGoalResultTakesFirstToLastBrace(t *testing.T) {
	got, err := ExtractGoalResult(`noise {"smartGoal":"Save $1000","dailyTasks":["Skip {takeout}"]} trailing`)
	require.NoError(t, err)
	assert.Equal(t, "Save $1000", got.SmartGoal)
	assert.Equal(t, []string{"Skip {takeout}"}, got.DailyTasks)
}
