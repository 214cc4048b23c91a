// Package mailgun is a client for the Mailgun messages API.
package mailgun

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.mailgun.net/v3"

// Client sends messages through a Mailgun domain.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound email.
type Message struct {
	From    string
	To      string
	CC      string
	Subject string
	Text    string
	HTML    string
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	domain  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Mailgun client for the given sending domain.
func NewClient(domain, apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		domain:  domain,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Send(ctx context.Context, msg Message) error {
	form := url.Values{}
	form.Set("from", msg.From)
	form.Set("to", msg.To)
	form.Set("subject", msg.Subject)
	if msg.HTML != "" {
		form.Set("html", msg.HTML)
	} else {
		form.Set("text", msg.Text)
	}
	if msg.CC != "" {
		form.Set("cc", msg.CC)
	}

	endpoint := c.baseURL + "/" + c.domain + "/messages"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return eris.Wrap(err, "mailgun: create request")
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth("api", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return eris.Wrap(err, "mailgun: send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return eris.Errorf("mailgun: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
