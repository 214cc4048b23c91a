package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/omnilinks/outreach-cli/internal/campaign"
	"github.com/omnilinks/outreach-cli/internal/model"
	"github.com/omnilinks/outreach-cli/internal/prospect"
)

var (
	previewIn       string
	previewCampaign string
	previewCount    int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview composed outreach emails without sending",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		companies, err := loadProspects(ctx, previewIn, previewCampaign)
		if err != nil {
			return err
		}
		if previewCount < len(companies) {
			companies = companies[:previewCount]
		}

		composer, err := buildComposer()
		if err != nil {
			return err
		}

		for i, company := range companies {
			email, err := composer.Compose(company)
			if err != nil {
				return eris.Wrapf(err, "cmd: compose for %s", company.Name)
			}
			fmt.Printf("--- %d/%d ---\n", i+1, len(companies))
			fmt.Printf("To: %s <%s>\n", company.ContactName, company.ContactEmail)
			if email.CC != "" {
				fmt.Printf("CC: %s\n", email.CC)
			}
			fmt.Printf("Subject: %s\n\n%s\n\n", email.Subject, email.Body)
		}
		return nil
	},
}

// buildComposer constructs the email composer from config.
func buildComposer() (*campaign.Composer, error) {
	return campaign.NewComposer(campaign.ComposerConfig{
		TemplatePath:   cfg.Campaign.TemplatePath,
		CC:             cfg.Campaign.CC,
		SchedulingLink: cfg.Campaign.SchedulingLink,
	})
}

// loadProspects reads companies from a stored campaign when campaignID is
// set, otherwise from the CSV file at path.
func loadProspects(ctx context.Context, path, campaignID string) ([]model.Company, error) {
	if campaignID != "" {
		st, err := initStore(ctx)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.ListProspects(ctx, campaignID)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "cmd: open %s", path)
	}
	defer f.Close()

	return prospect.LoadCSV(ctx, f)
}

func init() {
	previewCmd.Flags().StringVar(&previewIn, "in", "prospects.csv", "prospect CSV file")
	previewCmd.Flags().StringVar(&previewCampaign, "campaign", "", "load prospects from a stored campaign instead of a file")
	previewCmd.Flags().IntVar(&previewCount, "count", 5, "number of emails to preview")

	rootCmd.AddCommand(previewCmd)
}
