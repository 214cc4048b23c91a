package llm

import (
	"context"

	"github.com/omnilinks/outreach-cli/pkg/anthropic"
)

// AnthropicDefaultModel is used when no model is configured.
const AnthropicDefaultModel = "claude-haiku-4-5-20251001"

// AnthropicProvider serves completions from the Anthropic API via the
// official SDK. Credential-gated like the other hosted variants.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
	apiKey string
}

// NewAnthropic creates an Anthropic-backed provider.
func NewAnthropic(client anthropic.Client, model, apiKey string) *AnthropicProvider {
	if model == "" {
		model = AnthropicDefaultModel
	}
	return &AnthropicProvider{client: client, model: model, apiKey: apiKey}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

func (p *AnthropicProvider) Available(_ context.Context) bool {
	return p.apiKey != ""
}

func (p *AnthropicProvider) Generate(ctx context.Context, req Request) CompletionResult {
	if p.apiKey == "" {
		return failure(p.Name(), p.model, "Anthropic API key not found")
	}

	temp := chatTemperature
	resp, err := p.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       p.model,
		MaxTokens:   int64(req.MaxTokens),
		System:      req.SystemPrompt,
		Messages:    []anthropic.Message{{Role: "user", Content: req.Prompt}},
		Temperature: &temp,
	})
	if err != nil {
		return failure(p.Name(), p.model, err.Error())
	}

	return success(p.Name(), p.model, resp.Text)
}
