package llm

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Registry holds the providers that passed their availability probe, in
// preference order. The list is fixed at construction and read-only after,
// so no locking is needed.
type Registry struct {
	providers []Provider
}

// NewRegistry probes each candidate in order and retains the available
// ones. Preference order is the caller's: local service first, then hosted
// providers by typical latency and cost.
func NewRegistry(ctx context.Context, candidates ...Provider) *Registry {
	r := &Registry{}
	for _, p := range candidates {
		if !p.Available(ctx) {
			zap.L().Debug("provider unavailable", zap.String("provider", p.Name()))
			continue
		}
		zap.L().Info("provider available", zap.String("provider", p.Name()))
		r.providers = append(r.providers, p)
	}
	if len(r.providers) == 0 {
		zap.L().Warn("no llm providers available")
	}
	return r
}

// Empty reports whether no provider passed its availability probe.
func (r *Registry) Empty() bool {
	return len(r.providers) == 0
}

// AvailableProviders returns the retained provider names in order.
func (r *Registry) AvailableProviders() []string {
	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.Name())
	}
	return names
}

// GenerateCompletion tries each provider in order and returns the first
// success. Each failed provider's timeout is paid in full before the next
// is tried; this path runs once per generation request, so correctness
// wins over latency. If every provider fails (or none is configured) a
// synthetic failed result with Provider "none" is returned.
func (r *Registry) GenerateCompletion(ctx context.Context, req Request) CompletionResult {
	if len(r.providers) == 0 {
		return CompletionResult{
			Model:       "none",
			Provider:    "none",
			Succeeded:   false,
			ErrorDetail: "no LLM providers available",
		}
	}

	var failures []string
	for _, p := range r.providers {
		zap.L().Debug("trying provider", zap.String("provider", p.Name()))
		result := p.Generate(ctx, req)
		if result.Succeeded {
			zap.L().Info("completion succeeded",
				zap.String("provider", p.Name()),
				zap.String("model", result.Model),
			)
			return result
		}
		zap.L().Warn("provider failed",
			zap.String("provider", p.Name()),
			zap.String("error", result.ErrorDetail),
		)
		failures = append(failures, p.Name()+": "+result.ErrorDetail)
	}

	return CompletionResult{
		Model:       "none",
		Provider:    "none",
		Succeeded:   false,
		ErrorDetail: "all LLM providers failed: " + strings.Join(failures, "; "),
	}
}
