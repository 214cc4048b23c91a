package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/omnilinks/outreach-cli/internal/model"
)

// maxReportedErrors caps the error detail returned in a Summary; the full
// list still goes to the log.
const maxReportedErrors = 5

// defaultSendInterval spaces sends to stay under provider rate limits.
const defaultSendInterval = 3 * time.Second

// Message is a provider-agnostic outbound email.
type Message struct {
	From    string
	To      string
	CC      string
	Subject string
	HTML    string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SendRecorder persists per-recipient send outcomes. May be nil.
type SendRecorder interface {
	RecordSend(ctx context.Context, send model.Send) error
}

// Summary tallies a finished campaign run.
type Summary struct {
	Total  int
	Sent   int
	Failed int
	Errors []string
}

// Driver sends a composed email to every prospect in a campaign,
// sequentially and paced by a rate limiter.
type Driver struct {
	composer *Composer
	sender   Sender
	recorder SendRecorder
	limiter  *rate.Limiter
	from     string
}

// DriverOption customizes a Driver.
type DriverOption func(*Driver)

// WithSendInterval overrides the pause between consecutive sends.
func WithSendInterval(d time.Duration) DriverOption {
	return func(dr *Driver) {
		if d <= 0 {
			dr.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		dr.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithRecorder persists send outcomes through the given recorder.
func WithRecorder(r SendRecorder) DriverOption {
	return func(dr *Driver) { dr.recorder = r }
}

// NewDriver builds a campaign driver. from is the sender address placed on
// every message.
func NewDriver(composer *Composer, sender Sender, from string, opts ...DriverOption) *Driver {
	d := &Driver{
		composer: composer,
		sender:   sender,
		from:     from,
		limiter:  rate.NewLimiter(rate.Every(defaultSendInterval), 1),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run composes and sends one email per valid prospect. Invalid prospects
// are skipped and counted as failures. A cancelled context stops the run
// and returns the partial summary.
func (d *Driver) Run(ctx context.Context, campaignID string, prospects []model.Company) (Summary, error) {
	summary := Summary{Total: len(prospects)}

	for _, prospect := range prospects {
		if err := d.limiter.Wait(ctx); err != nil {
			return summary, eris.Wrap(err, "campaign: run cancelled")
		}

		if err := d.sendOne(ctx, campaignID, prospect); err != nil {
			summary.Failed++
			if len(summary.Errors) < maxReportedErrors {
				summary.Errors = append(summary.Errors, err.Error())
			}
			zap.L().Warn("send failed",
				zap.String("to", prospect.ContactEmail),
				zap.String("company", prospect.Name),
				zap.Error(err))
			continue
		}

		summary.Sent++
		zap.L().Info("email sent",
			zap.String("to", prospect.ContactEmail),
			zap.String("company", prospect.Name))
	}

	zap.L().Info("campaign run complete",
		zap.String("campaign_id", campaignID),
		zap.Int("sent", summary.Sent),
		zap.Int("failed", summary.Failed))
	return summary, nil
}

func (d *Driver) sendOne(ctx context.Context, campaignID string, prospect model.Company) error {
	if !prospect.Valid() {
		err := eris.Errorf("campaign: prospect %q missing contact data", prospect.Name)
		d.record(ctx, campaignID, prospect, Email{}, err)
		return err
	}

	email, err := d.composer.Compose(prospect)
	if err != nil {
		d.record(ctx, campaignID, prospect, email, err)
		return err
	}

	err = d.sender.Send(ctx, Message{
		From:    d.from,
		To:      prospect.ContactEmail,
		CC:      email.CC,
		Subject: email.Subject,
		HTML:    email.Body,
	})
	d.record(ctx, campaignID, prospect, email, err)
	if err != nil {
		return fmt.Errorf("send to %s: %w", prospect.ContactEmail, err)
	}
	return nil
}

func (d *Driver) record(ctx context.Context, campaignID string, prospect model.Company, email Email, sendErr error) {
	if d.recorder == nil {
		return
	}

	send := model.Send{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		ToEmail:    prospect.ContactEmail,
		Company:    prospect.Name,
		Subject:    email.Subject,
		Status:     model.SendStatusSent,
		SentAt:     time.Now().UTC(),
	}
	if sendErr != nil {
		send.Status = model.SendStatusFailed
		send.Error = sendErr.Error()
	}

	if err := d.recorder.RecordSend(ctx, send); err != nil {
		zap.L().Warn("failed to record send", zap.String("to", send.ToEmail), zap.Error(err))
	}
}
