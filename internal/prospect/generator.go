package prospect

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/omnilinks/outreach-cli/internal/llm"
	"github.com/omnilinks/outreach-cli/internal/model"
	"github.com/omnilinks/outreach-cli/internal/resilience"
)

const (
	systemPrompt     = "You are a business research assistant. Return only valid JSON."
	defaultMaxTokens = 2000
)

// ErrRateLimited signals that a provider rejected the request for quota
// reasons. Callers should wait and retry rather than substitute fallback
// data, since the provider is healthy and will recover.
var ErrRateLimited = eris.New("rate limit exceeded, wait a moment and try again")

// Completer is the minimal LLM surface the generator needs.
type Completer interface {
	Empty() bool
	GenerateCompletion(ctx context.Context, req llm.Request) llm.CompletionResult
}

// Generator produces prospect company lists from free-text ICP descriptions.
type Generator struct {
	registry Completer
}

// NewGenerator builds a Generator around an explicit provider registry.
func NewGenerator(registry Completer) *Generator {
	return &Generator{registry: registry}
}

// Generate asks the registry for count companies matching the ICP
// description and recovers records from whatever the model returned.
// Provider failure and unrecoverable output both degrade to the fallback
// catalog; rate limiting returns ErrRateLimited instead so the caller can
// retry. An empty registry is a configuration error, not a degraded state.
func (g *Generator) Generate(ctx context.Context, icp string, count int) ([]model.Company, error) {
	if g.registry.Empty() {
		return nil, eris.New("no LLM providers available: set up at least one of Ollama, Groq, Together AI, Hugging Face, or Anthropic")
	}

	result := g.registry.GenerateCompletion(ctx, llm.Request{
		Prompt:       buildPrompt(icp, count),
		SystemPrompt: systemPrompt,
		MaxTokens:    defaultMaxTokens,
	})

	if !result.Succeeded {
		if resilience.IsRateLimited(result.ErrorDetail) {
			zap.L().Warn("generation rate limited", zap.String("detail", result.ErrorDetail))
			return nil, ErrRateLimited
		}
		zap.L().Warn("generation failed, using fallback catalog",
			zap.String("detail", result.ErrorDetail))
		return Fallback(icp, count), nil
	}

	zap.L().Debug("raw completion received",
		zap.String("provider", result.Provider),
		zap.String("model", result.Model),
		zap.Int("len", len(result.Text)))

	companies := Recover(result.Text)
	if len(companies) == 0 {
		zap.L().Warn("no valid records recovered, using fallback catalog",
			zap.String("provider", result.Provider))
		return Fallback(icp, count), nil
	}

	zap.L().Info("companies generated",
		zap.Int("count", len(companies)),
		zap.String("provider", result.Provider))
	return companies, nil
}

func buildPrompt(icp string, count int) string {
	return fmt.Sprintf(`Find %d real, existing companies that match: "%s"

Requirements:
- Use only real companies that actually exist
- Provide working website URLs
- Use realistic contact information
- Focus on companies in the specified industry/region

Return ONLY valid JSON in this exact format:

{
    "companies": [
        {
            "name": "Real Company Name",
            "website": "https://realcompany.com",
            "country": "US",
            "industry": "Technology",
            "contact_name": "John Smith",
            "contact_title": "CEO",
            "contact_email": "john.smith@realcompany.com",
            "description": "Brief description of what the company does"
        }
    ]
}

CRITICAL: Return ONLY the JSON object above. No explanations, no markdown, no additional text.`, count, icp)
}
