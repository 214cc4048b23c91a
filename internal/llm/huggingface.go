package llm

import (
	"context"

	"github.com/omnilinks/outreach-cli/pkg/huggingface"
)

// HuggingFaceDefaultModel is used when no model is configured.
const HuggingFaceDefaultModel = "microsoft/DialoGPT-medium"

// HuggingFaceProvider serves completions from the Hugging Face Inference
// API. The API has no chat message list; a system prompt is concatenated
// above the user prompt.
type HuggingFaceProvider struct {
	client huggingface.Client
	model  string
	apiKey string
}

// NewHuggingFace creates a Hugging Face-backed provider.
func NewHuggingFace(client huggingface.Client, model, apiKey string) *HuggingFaceProvider {
	if model == "" {
		model = HuggingFaceDefaultModel
	}
	return &HuggingFaceProvider{client: client, model: model, apiKey: apiKey}
}

func (p *HuggingFaceProvider) Name() string { return "huggingface" }

func (p *HuggingFaceProvider) Available(_ context.Context) bool {
	return p.apiKey != ""
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, req Request) CompletionResult {
	if p.apiKey == "" {
		return failure(p.Name(), p.model, "Hugging Face API key not found")
	}

	fullPrompt := req.Prompt
	if req.SystemPrompt != "" {
		fullPrompt = req.SystemPrompt + "\n\n" + req.Prompt
	}

	resp, err := p.client.Generate(ctx, huggingface.GenerateRequest{
		Model:  p.model,
		Inputs: fullPrompt,
		Parameters: huggingface.Parameters{
			MaxNewTokens:   req.MaxTokens,
			Temperature:    0.1,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return failure(p.Name(), p.model, err.Error())
	}

	return success(p.Name(), p.model, resp.GeneratedText)
}
