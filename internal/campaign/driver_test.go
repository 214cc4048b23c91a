package campaign

import (
	"context"
	"fmt"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnilinks/outreach-cli/internal/model"
)

type fakeSender struct {
	sent    []Message
	failTo  map[string]error
	blockAt int
	cancel  context.CancelFunc
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	if f.cancel != nil && len(f.sent) == f.blockAt {
		f.cancel()
	}
	if err, ok := f.failTo[msg.To]; ok {
		return err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeRecorder struct {
	sends []model.Send
}

func (f *fakeRecorder) RecordSend(_ context.Context, send model.Send) error {
	f.sends = append(f.sends, send)
	return nil
}

func prospects(n int) []model.Company {
	out := make([]model.Company, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Company{
			Name:         fmt.Sprintf("Company %d", i),
			Industry:     "Technology",
			ContactName:  fmt.Sprintf("Contact %d", i),
			ContactEmail: fmt.Sprintf("contact%d@example.com", i),
		})
	}
	return out
}

func newTestDriver(t *testing.T, sender Sender, opts ...DriverOption) *Driver {
	t.Helper()
	composer, err := NewComposer(ComposerConfig{})
	require.NoError(t, err)
	opts = append([]DriverOption{WithSendInterval(0)}, opts...)
	return NewDriver(composer, sender, "jake@omnilinks-group.com", opts...)
}

func TestDriverRunAllSucceed(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDriver(t, sender)

	summary, err := d.Run(context.Background(), "camp-1", prospects(4))
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 4, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
	assert.Empty(t, summary.Errors)
	require.Len(t, sender.sent, 4)
	assert.Equal(t, "jake@omnilinks-group.com", sender.sent[0].From)
	assert.Equal(t, "contact0@example.com", sender.sent[0].To)
	assert.Equal(t, defaultCC, sender.sent[0].CC)
	assert.Contains(t, sender.sent[0].Subject, "Company 0")
}

func TestDriverRunPartialFailure(t *testing.T) {
	sender := &fakeSender{failTo: map[string]error{
		"contact1@example.com": eris.New("mailgun: unexpected status 401"),
	}}
	d := newTestDriver(t, sender)

	summary, err := d.Run(context.Background(), "camp-1", prospects(3))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "contact1@example.com")
}

func TestDriverRunErrorCap(t *testing.T) {
	sender := &fakeSender{failTo: map[string]error{}}
	list := prospects(8)
	for _, p := range list {
		sender.failTo[p.ContactEmail] = eris.New("boom")
	}
	d := newTestDriver(t, sender)

	summary, err := d.Run(context.Background(), "camp-1", list)
	require.NoError(t, err)
	assert.Equal(t, 8, summary.Failed)
	assert.Len(t, summary.Errors, maxReportedErrors)
}

func TestDriverSkipsInvalidProspects(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDriver(t, sender)

	list := prospects(2)
	list = append(list, model.Company{Name: "No Contact Inc"})

	summary, err := d.Run(context.Background(), "camp-1", list)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, sender.sent, 2)
}

func TestDriverRecordsSends(t *testing.T) {
	sender := &fakeSender{failTo: map[string]error{
		"contact0@example.com": eris.New("boom"),
	}}
	recorder := &fakeRecorder{}
	d := newTestDriver(t, sender, WithRecorder(recorder))

	_, err := d.Run(context.Background(), "camp-9", prospects(2))
	require.NoError(t, err)

	require.Len(t, recorder.sends, 2)
	assert.Equal(t, model.SendStatusFailed, recorder.sends[0].Status)
	assert.Contains(t, recorder.sends[0].Error, "boom")
	assert.Equal(t, model.SendStatusSent, recorder.sends[1].Status)
	assert.Empty(t, recorder.sends[1].Error)
	for _, s := range recorder.sends {
		assert.Equal(t, "camp-9", s.CampaignID)
		assert.NotEmpty(t, s.ID)
		assert.False(t, s.SentAt.IsZero())
	}
}

func TestDriverCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sender := &fakeSender{blockAt: 2, cancel: cancel}
	d := newTestDriver(t, sender)

	summary, err := d.Run(ctx, "camp-1", prospects(5))
	require.Error(t, err)
	assert.Equal(t, 3, summary.Sent, "sends before cancellation still count")
	assert.Less(t, len(sender.sent), 5)
}
