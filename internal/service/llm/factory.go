package llm

import (
	"fmt"
	"log/slog"

	"github.com/templui/smartgoals/internal/config"
)

// NewProvider creates a text-generation provider based on configuration
func NewProvider(cfg *config.Config) (Provider, error) {
	provider := cfg.LLMProvider

	slog.Info("initializing llm provider", "provider", provider, "model", cfg.ReplicateModel)

	switch provider {
	case ProviderReplicate:
		if cfg.ReplicateAPIToken == "" {
			return nil, fmt.Errorf("REPLICATE_API_TOKEN is required when using Replicate provider")
		}
		p, err := NewReplicateProvider(cfg.ReplicateAPIToken, cfg.ReplicateModel)
		if err != nil {
			return nil, err
		}
		return p, nil

	default:
		return nil, fmt.Errorf("unknown llm provider: %s (supported: replicate)", provider)
	}
}
