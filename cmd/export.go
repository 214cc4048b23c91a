package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/omnilinks/outreach-cli/internal/model"
	"github.com/omnilinks/outreach-cli/internal/prospect"
	"github.com/omnilinks/outreach-cli/internal/store"
)

var (
	exportCampaign string
	exportIn       string
	exportOut      string
	exportLegacy   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export prospects to CSV or XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		companies, err := loadProspects(ctx, exportIn, exportCampaign)
		if err != nil {
			return err
		}

		if exportLegacy {
			f, err := os.Create(exportOut)
			if err != nil {
				return eris.Wrapf(err, "cmd: create %s", exportOut)
			}
			defer f.Close()
			if err := prospect.WriteLegacyCSV(f, companies); err != nil {
				return err
			}
		} else if err := writeProspects(exportOut, companies); err != nil {
			return err
		}

		fmt.Printf("%d prospects exported to %s\n", len(companies), exportOut)
		return nil
	},
}

var (
	campaignsStatus string
	campaignsLimit  int
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "List stored campaigns",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		campaigns, err := st.ListCampaigns(ctx, store.CampaignFilter{
			Status: model.CampaignStatus(campaignsStatus),
			Limit:  campaignsLimit,
		})
		if err != nil {
			return err
		}
		for _, c := range campaigns {
			fmt.Printf("%s  %-8s  %-9s  %s\n", c.ID, c.Status, c.Source, c.ICP)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportCampaign, "campaign", "", "export prospects of a stored campaign")
	exportCmd.Flags().StringVar(&exportIn, "in", "prospects.csv", "prospect CSV file (when --campaign is not set)")
	exportCmd.Flags().StringVar(&exportOut, "out", "prospects.xlsx", "output file (.csv or .xlsx)")
	exportCmd.Flags().BoolVar(&exportLegacy, "legacy", false, "write the six-column legacy CSV layout")

	campaignsCmd.Flags().StringVar(&campaignsStatus, "status", "", "filter by status (pending, running, complete, failed)")
	campaignsCmd.Flags().IntVar(&campaignsLimit, "limit", 20, "maximum campaigns to list")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(campaignsCmd)
}
