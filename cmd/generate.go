package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/omnilinks/outreach-cli/internal/model"
	"github.com/omnilinks/outreach-cli/internal/prospect"
)

var (
	generateICP       string
	generateCount     int
	generateOut       string
	generateSynthetic bool
	generateSeed      int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a prospect list from an ICP description",
	Long:  "Generates prospect companies matching an ideal customer profile, using the first available LLM provider with automatic failover, and saves them as a campaign.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var (
			companies []model.Company
			source    string
		)
		if generateSynthetic {
			filters := prospect.ParseICP(generateICP)
			companies = prospect.Synthesize(filters, generateCount, generateSeed)
			source = "synthetic"
		} else {
			registry := buildRegistry(ctx)
			generator := prospect.NewGenerator(registry)

			var err error
			companies, err = generator.Generate(ctx, generateICP, generateCount)
			if err != nil {
				return err
			}
			source = "llm"
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		campaign, err := st.CreateCampaign(ctx, generateICP, source)
		if err != nil {
			return err
		}
		if err := st.SaveProspects(ctx, campaign.ID, companies); err != nil {
			return err
		}

		if err := writeProspects(generateOut, companies); err != nil {
			return err
		}

		zap.L().Info("prospects generated",
			zap.String("campaign_id", campaign.ID),
			zap.String("source", source),
			zap.Int("count", len(companies)),
			zap.String("output", generateOut),
		)
		fmt.Printf("campaign %s: %d prospects written to %s\n", campaign.ID, len(companies), generateOut)
		return nil
	},
}

// writeProspects writes companies to path, picking the format from the
// extension. Anything that is not .xlsx is written as CSV.
func writeProspects(path string, companies []model.Company) error {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return prospect.WriteXLSX(path, companies)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "cmd: create %s", path)
	}
	defer f.Close()

	return prospect.WriteCSV(f, companies)
}

func init() {
	generateCmd.Flags().StringVar(&generateICP, "icp", "", "ideal customer profile description (required)")
	generateCmd.Flags().IntVar(&generateCount, "count", 10, "number of prospects to generate")
	generateCmd.Flags().StringVar(&generateOut, "out", "prospects.csv", "output file (.csv or .xlsx)")
	generateCmd.Flags().BoolVar(&generateSynthetic, "synthetic", false, "synthesize deterministic test prospects instead of calling an LLM")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 42, "random seed for --synthetic")
	_ = generateCmd.MarkFlagRequired("icp")

	rootCmd.AddCommand(generateCmd)
}
