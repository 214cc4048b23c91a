package llm

import (
	"context"

	"github.com/omnilinks/outreach-cli/pkg/openaichat"
)

// Default endpoints and models for the OpenAI-compatible hosted providers.
const (
	GroqBaseURL      = "https://api.groq.com/openai/v1"
	GroqDefaultModel = "llama-3.3-70b-versatile"

	TogetherBaseURL      = "https://api.together.xyz/v1"
	TogetherDefaultModel = "meta-llama/Llama-2-7b-chat-hf"
)

const chatTemperature = 0.1

// ChatProvider serves completions from an OpenAI-compatible hosted API
// (Groq, Together). Availability only checks that a credential was supplied;
// no network round trip.
type ChatProvider struct {
	name   string
	client openaichat.Client
	model  string
	apiKey string
}

// NewGroq creates a Groq-backed provider.
func NewGroq(client openaichat.Client, model, apiKey string) *ChatProvider {
	if model == "" {
		model = GroqDefaultModel
	}
	return &ChatProvider{name: "groq", client: client, model: model, apiKey: apiKey}
}

// NewTogether creates a Together-backed provider.
func NewTogether(client openaichat.Client, model, apiKey string) *ChatProvider {
	if model == "" {
		model = TogetherDefaultModel
	}
	return &ChatProvider{name: "together", client: client, model: model, apiKey: apiKey}
}

func (p *ChatProvider) Name() string { return p.name }

func (p *ChatProvider) Available(_ context.Context) bool {
	return p.apiKey != ""
}

func (p *ChatProvider) Generate(ctx context.Context, req Request) CompletionResult {
	if p.apiKey == "" {
		return failure(p.Name(), p.model, p.name+" API key not found")
	}

	messages := make([]openaichat.Message, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openaichat.Message{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, openaichat.Message{Role: "user", Content: req.Prompt})

	temp := chatTemperature
	resp, err := p.client.ChatCompletion(ctx, openaichat.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: &temp,
	})
	if err != nil {
		return failure(p.Name(), p.model, err.Error())
	}
	if len(resp.Choices) == 0 {
		return failure(p.Name(), p.model, "empty choices in response")
	}

	return success(p.Name(), p.model, resp.Choices[0].Message.Content)
}
