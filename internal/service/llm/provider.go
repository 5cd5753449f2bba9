package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderReplicate = "replicate"
)

// Request is a single text-generation call.
type Request struct {
	Prompt           string
	SystemPrompt     string
	Temperature      float64
	MaxNewTokens     int
	TopP             float64
	PresencePenalty  float64
	FrequencyPenalty float64
}

// Provider defines the interface that all hosted text-generation backends must implement
type Provider interface {
	// Generate runs the model and returns its text output.
	// Implementations must honor ctx cancellation.
	Generate(ctx context.Context, req Request) (string, error)

	// Name returns the provider name (e.g., "replicate")
	Name() string
}

// TextFromOutput flattens a model output into text. Streaming models return an
// ordered sequence of chunks which are joined in order; others return a string.
// Anything else yields "".
func TextFromOutput(output any) string {
	switch v := output.(type) {
	case string:
		return strings.TrimSpace(v)
	case []string:
		return strings.TrimSpace(strings.Join(v, ""))
	case []any:
		var b strings.Builder
		for _, chunk := range v {
			switch c := chunk.(type) {
			case string:
				b.WriteString(c)
			case nil:
			default:
				b.WriteString(fmt.Sprint(c))
			}
		}
		return strings.TrimSpace(b.String())
	default:
		return ""
	}
}
