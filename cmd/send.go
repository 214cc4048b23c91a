package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/omnilinks/outreach-cli/internal/campaign"
	"github.com/omnilinks/outreach-cli/internal/model"
	"github.com/omnilinks/outreach-cli/pkg/mailgun"
)

var (
	sendIn       string
	sendCampaign string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Run an outreach email campaign",
	Long:  "Sends one templated email per prospect through Mailgun or SMTP, pacing sends to respect provider rate limits and recording every outcome.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		var companies []model.Company
		campaignID := sendCampaign
		if campaignID != "" {
			companies, err = st.ListProspects(ctx, campaignID)
			if err != nil {
				return err
			}
		} else {
			companies, err = loadProspects(ctx, sendIn, "")
			if err != nil {
				return err
			}
			c, err := st.CreateCampaign(ctx, "imported from "+sendIn, "csv")
			if err != nil {
				return err
			}
			if err := st.SaveProspects(ctx, c.ID, companies); err != nil {
				return err
			}
			campaignID = c.ID
		}
		if len(companies) == 0 {
			return eris.New("cmd: no prospects to send to")
		}

		composer, err := buildComposer()
		if err != nil {
			return err
		}
		sender, err := buildSender()
		if err != nil {
			return err
		}

		driver := campaign.NewDriver(composer, sender, cfg.Mailgun.From(),
			campaign.WithSendInterval(time.Duration(cfg.Campaign.SendDelaySecs)*time.Second),
			campaign.WithRecorder(st),
		)

		if err := st.UpdateCampaignStatus(ctx, campaignID, model.CampaignStatusRunning); err != nil {
			return err
		}

		summary, runErr := driver.Run(ctx, campaignID, companies)

		status := model.CampaignStatusComplete
		if runErr != nil || summary.Sent == 0 {
			status = model.CampaignStatusFailed
		}
		if err := st.UpdateCampaignStatus(ctx, campaignID, status); err != nil {
			zap.L().Warn("update campaign status failed", zap.Error(err))
		}

		fmt.Printf("campaign %s: %d sent, %d failed of %d\n",
			campaignID, summary.Sent, summary.Failed, summary.Total)
		for _, e := range summary.Errors {
			fmt.Println("  " + e)
		}
		return runErr
	},
}

// buildSender picks the delivery backend from config. Mailgun wins when
// both are configured.
func buildSender() (campaign.Sender, error) {
	if cfg.Mailgun.Key != "" && cfg.Mailgun.Domain != "" {
		return campaign.NewMailgunSender(mailgun.NewClient(cfg.Mailgun.Domain, cfg.Mailgun.Key)), nil
	}
	if cfg.SMTP.Addr != "" {
		return campaign.NewSMTPSender(cfg.SMTP.Addr, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.Host), nil
	}
	return nil, eris.New("cmd: no email backend configured: set mailgun.key and mailgun.domain, or smtp.addr")
}

func init() {
	sendCmd.Flags().StringVar(&sendIn, "in", "prospects.csv", "prospect CSV file")
	sendCmd.Flags().StringVar(&sendCampaign, "campaign", "", "send to prospects of a stored campaign")

	rootCmd.AddCommand(sendCmd)
}
