// Package store persists campaigns, prospects, and send outcomes.
package store

import (
	"context"

	"github.com/omnilinks/outreach-cli/internal/model"
)

// CampaignFilter specifies criteria for listing campaigns.
type CampaignFilter struct {
	Status model.CampaignStatus `json:"status,omitempty"`
	Limit  int                  `json:"limit,omitempty"`
	Offset int                  `json:"offset,omitempty"`
}

// Store defines the persistence interface for outreach campaigns.
type Store interface {
	// Campaigns
	CreateCampaign(ctx context.Context, icp, source string) (*model.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID string, status model.CampaignStatus) error
	GetCampaign(ctx context.Context, campaignID string) (*model.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]model.Campaign, error)

	// Prospects
	SaveProspects(ctx context.Context, campaignID string, companies []model.Company) error
	ListProspects(ctx context.Context, campaignID string) ([]model.Company, error)

	// Sends
	RecordSend(ctx context.Context, send model.Send) error
	ListSends(ctx context.Context, campaignID string) ([]model.Send, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
