package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omnilinks/outreach-cli/internal/llm"
	"github.com/omnilinks/outreach-cli/pkg/anthropic"
	"github.com/omnilinks/outreach-cli/pkg/huggingface"
	"github.com/omnilinks/outreach-cli/pkg/ollama"
	"github.com/omnilinks/outreach-cli/pkg/openaichat"
)

// buildRegistry probes every configured provider and returns the registry
// of those that responded. Ollama goes first so a local model is preferred
// over metered hosted APIs.
func buildRegistry(ctx context.Context) *llm.Registry {
	candidates := []llm.Provider{
		llm.NewOllama(ollama.NewClient(ollama.WithBaseURL(cfg.Ollama.BaseURL)), cfg.Ollama.Model),
		llm.NewGroq(openaichat.NewClient(llm.GroqBaseURL, cfg.Groq.Key), cfg.Groq.Model, cfg.Groq.Key),
		llm.NewTogether(openaichat.NewClient(llm.TogetherBaseURL, cfg.Together.Key), cfg.Together.Model, cfg.Together.Key),
		llm.NewHuggingFace(huggingface.NewClient(cfg.HuggingFace.Key), cfg.HuggingFace.Model, cfg.HuggingFace.Key),
		llm.NewAnthropic(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic.Model, cfg.Anthropic.Key),
	}
	return llm.NewRegistry(ctx, candidates...)
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List available LLM providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := buildRegistry(cmd.Context())
		names := registry.AvailableProviders()
		if len(names) == 0 {
			fmt.Println("no providers available (prospect generation will use the fallback catalog)")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
