// Package llm abstracts language-model completion providers behind a common
// interface with ordered failover.
package llm

import "context"

// CompletionResult is the outcome of one provider call. ErrorDetail is set
// if and only if Succeeded is false.
type CompletionResult struct {
	Text        string
	Model       string
	Provider    string
	Succeeded   bool
	ErrorDetail string
}

// Request carries one completion request. SystemPrompt may be empty.
type Request struct {
	Prompt       string
	SystemPrompt string
	MaxTokens    int
}

// Provider is one completion backend. Generate makes a single attempt and
// folds any failure into the result; retries and failover live in the
// Registry, not here.
type Provider interface {
	// Name returns the provider identifier used in logs and results.
	Name() string
	// Available reports whether the provider can serve requests. Local
	// variants probe the server; hosted variants only check credentials.
	Available(ctx context.Context) bool
	// Generate issues one bounded-timeout completion call.
	Generate(ctx context.Context, req Request) CompletionResult
}

func success(provider, model, text string) CompletionResult {
	return CompletionResult{
		Text:      text,
		Model:     model,
		Provider:  provider,
		Succeeded: true,
	}
}

func failure(provider, model, detail string) CompletionResult {
	return CompletionResult{
		Model:       model,
		Provider:    provider,
		Succeeded:   false,
		ErrorDetail: detail,
	}
}
