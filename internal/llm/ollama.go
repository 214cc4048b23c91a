package llm

import (
	"context"
	"strings"

	"github.com/omnilinks/outreach-cli/pkg/ollama"
)

const ollamaTemperature = 0.1

// OllamaProvider serves completions from a local Ollama server.
type OllamaProvider struct {
	client ollama.Client
	model  string
}

// NewOllama creates an Ollama-backed provider for the given model.
func NewOllama(client ollama.Client, model string) *OllamaProvider {
	return &OllamaProvider{client: client, model: model}
}

func (p *OllamaProvider) Name() string { return "ollama" }

// Available probes the server's model catalog. The desired model counts as
// present when any catalog entry starts with its name (tags carry suffixes
// like ":latest").
func (p *OllamaProvider) Available(ctx context.Context) bool {
	models, err := p.client.ListModels(ctx)
	if err != nil {
		return false
	}
	for _, m := range models {
		if strings.HasPrefix(m.Name, p.model) {
			return true
		}
	}
	return false
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) CompletionResult {
	messages := make([]ollama.Message, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, ollama.Message{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, ollama.Message{Role: "user", Content: req.Prompt})

	resp, err := p.client.ChatCompletion(ctx, ollama.ChatRequest{
		Model:    p.model,
		Messages: messages,
		Stream:   false,
		Options: ollama.Options{
			NumPredict:  req.MaxTokens,
			Temperature: ollamaTemperature,
		},
	})
	if err != nil {
		return failure(p.Name(), p.model, err.Error())
	}

	return success(p.Name(), p.model, resp.Message.Content)
}
