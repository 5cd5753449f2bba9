package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/replicate/replicate-go"
)

// ReplicateProvider runs a hosted model on Replicate.
type ReplicateProvider struct {
	client *replicate.Client
	model  string
}

func NewReplicateProvider(apiToken, model string) (*ReplicateProvider, error) {
	client, err := replicate.NewClient(replicate.WithToken(apiToken))
	if err != nil {
		return nil, fmt.Errorf("failed to create replicate client: %w", err)
	}

	return &ReplicateProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *ReplicateProvider) Name() string {
	return ProviderReplicate
}

func (p *ReplicateProvider) Generate(ctx context.Context, req Request) (string, error) {
	input := replicate.PredictionInput{
		"prompt":            req.Prompt,
		"temperature":       req.Temperature,
		"max_new_tokens":    req.MaxNewTokens,
		"top_p":             req.TopP,
		"presence_penalty":  req.PresencePenalty,
		"frequency_penalty": req.FrequencyPenalty,
	}
	if req.SystemPrompt != "" {
		input["system_prompt"] = req.SystemPrompt
	}

	output, err := p.client.Run(ctx, p.model, input, nil)
	if err != nil {
		return "", fmt.Errorf("replicate run %s: %w", p.model, err)
	}

	text := TextFromOutput(output)
	slog.Debug("replicate output received", "model", p.model, "chars", len(text))
	return text, nil
}
