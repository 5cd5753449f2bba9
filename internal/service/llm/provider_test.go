package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/smartgoals/internal/config"
)

func TestTextFromOutput(t *testing.T) {
	tests := []struct {
		name   string
		output any
		want   string
	}{
		{"string", "  {\"a\":1}\n", `{"a":1}`},
		{"chunks", []any{"{\"smart", "Goal\":", nil, "\"x\"}"}, `{"smartGoal":"x"}`},
		{"string slice", []string{"Run ", "5km"}, "Run 5km"},
		{"nil", nil, ""},
		{"map", map[string]any{"a": 1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextFromOutput(tt.output))
		})
	}
}

func TestNewProviderReplicate(t *testing.T) {
	p, err := NewProvider(&config.Config{
		LLMProvider:       ProviderReplicate,
		ReplicateAPIToken: "r8_test",
		ReplicateModel:    "mistralai/mistral-7b-instruct-v0.1",
	})
	require.NoError(t, err)
	assert.Equal(t, ProviderReplicate, p.Name())
}

func TestNewProviderRequiresToken(t *testing.T) {
	_, err := NewProvider(&config.Config{LLMProvider: ProviderReplicate})
	assert.ErrorContains(t, err, "REPLICATE_API_TOKEN")
}

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider(&config.Config{LLMProvider: "carrier-pigeon"})
	assert.ErrorContains(t, err, "unknown llm provider")
}
