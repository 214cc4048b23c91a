package model

import (
	"strings"
	"time"
)

// Company represents one prospect company and its primary contact. Records
// are built from a provider's JSON payload, from manual text extraction, or
// from the static fallback catalog, and are never mutated after construction.
type Company struct {
	Name         string `json:"name"`
	Website      string `json:"website"`
	Country      string `json:"country"`
	Industry     string `json:"industry"`
	ContactName  string `json:"contact_name"`
	ContactTitle string `json:"contact_title"`
	ContactEmail string `json:"contact_email"`
	Description  string `json:"description"`
}

// Valid reports whether the record carries the minimum data needed to be
// usable: a company name, a contact name, and a contact email.
func (c Company) Valid() bool {
	return strings.TrimSpace(c.Name) != "" &&
		strings.TrimSpace(c.ContactName) != "" &&
		strings.TrimSpace(c.ContactEmail) != ""
}

// Trimmed returns a copy with all fields whitespace-trimmed.
func (c Company) Trimmed() Company {
	return Company{
		Name:         strings.TrimSpace(c.Name),
		Website:      strings.TrimSpace(c.Website),
		Country:      strings.TrimSpace(c.Country),
		Industry:     strings.TrimSpace(c.Industry),
		ContactName:  strings.TrimSpace(c.ContactName),
		ContactTitle: strings.TrimSpace(c.ContactTitle),
		ContactEmail: strings.TrimSpace(c.ContactEmail),
		Description:  strings.TrimSpace(c.Description),
	}
}

// CampaignStatus represents the current state of a send campaign.
type CampaignStatus string

const (
	CampaignStatusPending  CampaignStatus = "pending"
	CampaignStatusRunning  CampaignStatus = "running"
	CampaignStatusComplete CampaignStatus = "complete"
	CampaignStatusFailed   CampaignStatus = "failed"
)

// Campaign groups the prospects generated for one ICP request and the
// sends performed against them.
type Campaign struct {
	ID        string         `json:"id"`
	ICP       string         `json:"icp"`
	Source    string         `json:"source"` // provider name, "synthetic", or "fallback"
	Status    CampaignStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// SendStatus is the outcome of one email dispatch.
type SendStatus string

const (
	SendStatusSent   SendStatus = "sent"
	SendStatusFailed SendStatus = "failed"
)

// Send records one dispatched (or attempted) outreach email.
type Send struct {
	ID         string     `json:"id"`
	CampaignID string     `json:"campaign_id"`
	ToEmail    string     `json:"to_email"`
	Company    string     `json:"company"`
	Subject    string     `json:"subject"`
	Status     SendStatus `json:"status"`
	Error      string     `json:"error,omitempty"`
	SentAt     time.Time  `json:"sent_at"`
}
