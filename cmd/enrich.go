package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/omnilinks/outreach-cli/internal/prospect"
	"github.com/omnilinks/outreach-cli/pkg/hunter"
)

var (
	enrichIn          string
	enrichOut         string
	enrichConcurrency int
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Verify and fill contact emails via Hunter.io",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if cfg.Hunter.Key == "" {
			return eris.New("cmd: hunter.key is not configured")
		}

		companies, err := loadProspects(ctx, enrichIn, "")
		if err != nil {
			return err
		}

		enricher := prospect.NewEnricher(hunter.NewClient(cfg.Hunter.Key), enrichConcurrency)
		enriched, err := enricher.Enrich(ctx, companies)
		if err != nil {
			return err
		}

		if err := writeProspects(enrichOut, enriched); err != nil {
			return err
		}

		fmt.Printf("%d prospects enriched, written to %s\n", len(enriched), enrichOut)
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichIn, "in", "prospects.csv", "prospect CSV file")
	enrichCmd.Flags().StringVar(&enrichOut, "out", "prospects_enriched.csv", "output file (.csv or .xlsx)")
	enrichCmd.Flags().IntVar(&enrichConcurrency, "concurrency", 4, "concurrent Hunter.io lookups")

	rootCmd.AddCommand(enrichCmd)
}
