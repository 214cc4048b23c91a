package campaign

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/omnilinks/outreach-cli/pkg/mailgun"
)

// MailgunSender delivers messages through the Mailgun API.
type MailgunSender struct {
	client mailgun.Client
}

// NewMailgunSender wraps a Mailgun client as a campaign Sender.
func NewMailgunSender(client mailgun.Client) *MailgunSender {
	return &MailgunSender{client: client}
}

func (s *MailgunSender) Send(ctx context.Context, msg Message) error {
	return s.client.Send(ctx, mailgun.Message{
		From:    msg.From,
		To:      msg.To,
		CC:      msg.CC,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
}

// SMTPSender delivers messages through a plain SMTP relay. Intended for
// local development against a capture server rather than production use.
type SMTPSender struct {
	addr string
	auth smtp.Auth
}

// NewSMTPSender builds a sender for addr (host:port). user may be empty
// for unauthenticated relays.
func NewSMTPSender(addr, user, password, host string) *SMTPSender {
	s := &SMTPSender{addr: addr}
	if user != "" {
		s.auth = smtp.PlainAuth("", user, password, host)
	}
	return s
}

func (s *SMTPSender) Send(_ context.Context, msg Message) error {
	recipients := []string{msg.To}
	if msg.CC != "" {
		recipients = append(recipients, msg.CC)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", msg.From)
	fmt.Fprintf(&sb, "To: %s\r\n", msg.To)
	if msg.CC != "" {
		fmt.Fprintf(&sb, "Cc: %s\r\n", msg.CC)
	}
	fmt.Fprintf(&sb, "Subject: %s\r\n", msg.Subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(msg.HTML)

	if err := smtp.SendMail(s.addr, s.auth, msg.From, recipients, []byte(sb.String())); err != nil {
		return eris.Wrapf(err, "smtp: send to %s", msg.To)
	}
	return nil
}
