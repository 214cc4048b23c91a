// Package hunter is a client for the Hunter.io v2 API.
package hunter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.hunter.io/v2"

// Client looks up email addresses for a domain.
type Client interface {
	FindEmail(ctx context.Context, domain, firstName, lastName string) (*EmailResult, error)
	DomainSearch(ctx context.Context, domain string, limit int) ([]EmailResult, error)
}

// EmailResult is one address returned by Hunter.
type EmailResult struct {
	Email      string `json:"value"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Position   string `json:"position"`
	Confidence int    `json:"confidence"`
}

type finderResponse struct {
	Data struct {
		Email      string `json:"email"`
		FirstName  string `json:"first_name"`
		LastName   string `json:"last_name"`
		Position   string `json:"position"`
		Confidence int    `json:"confidence"`
	} `json:"data"`
}

type domainSearchResponse struct {
	Data struct {
		Emails []EmailResult `json:"emails"`
	} `json:"data"`
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
	baseURL string
	http    *http.Client
}

// NewClient creates a Hunter.io client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) FindEmail(ctx context.Context, domain, firstName, lastName string) (*EmailResult, error) {
	params := url.Values{}
	params.Set("domain", domain)
	params.Set("first_name", firstName)
	params.Set("last_name", lastName)
	params.Set("api_key", c.apiKey)

	var resp finderResponse
	if err := c.get(ctx, "/email-finder", params, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Email == "" {
		return nil, nil
	}
	return &EmailResult{
		Email:      resp.Data.Email,
		FirstName:  resp.Data.FirstName,
		LastName:   resp.Data.LastName,
		Position:   resp.Data.Position,
		Confidence: resp.Data.Confidence,
	}, nil
}

func (c *httpClient) DomainSearch(ctx context.Context, domain string, limit int) ([]EmailResult, error) {
	params := url.Values{}
	params.Set("domain", domain)
	params.Set("api_key", c.apiKey)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp domainSearchResponse
	if err := c.get(ctx, "/domain-search", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Emails, nil
}

func (c *httpClient) get(ctx context.Context, path string, params url.Values, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return eris.Wrap(err, "hunter: create request")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return eris.Wrap(err, "hunter: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "hunter: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("hunter: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return eris.Wrap(err, "hunter: unmarshal response")
	}
	return nil
}
