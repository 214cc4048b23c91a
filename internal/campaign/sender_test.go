package campaign

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnilinks/outreach-cli/pkg/mailgun"
)

type fakeMailgun struct {
	last mailgun.Message
	err  error
}

func (f *fakeMailgun) Send(_ context.Context, msg mailgun.Message) error {
	f.last = msg
	return f.err
}

func TestMailgunSender(t *testing.T) {
	fake := &fakeMailgun{}
	s := NewMailgunSender(fake)

	err := s.Send(context.Background(), Message{
		From:    "Jake <jake@omnilinks-group.com>",
		To:      "yuki@cyberconnect.co.jp",
		CC:      defaultCC,
		Subject: "Quick intro",
		HTML:    "<p>Hello</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "yuki@cyberconnect.co.jp", fake.last.To)
	assert.Equal(t, defaultCC, fake.last.CC)
	assert.Equal(t, "Quick intro", fake.last.Subject)
	assert.Equal(t, "<p>Hello</p>", fake.last.HTML)
	assert.Empty(t, fake.last.Text)
}
