// Package huggingface is a client for the Hugging Face Inference API.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api-inference.huggingface.co/models"

// maxNewTokensCap is the inference API's practical output ceiling for
// free-tier models; requests above it are clamped.
const maxNewTokensCap = 500

// Client performs text generation against the Hugging Face Inference API.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest is the request body for POST /models/{model}.
type GenerateRequest struct {
	Model      string     `json:"-"`
	Inputs     string     `json:"inputs"`
	Parameters Parameters `json:"parameters"`
}

// Parameters holds generation parameters.
type Parameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

// GenerateResponse carries the generated text.
type GenerateResponse struct {
	GeneratedText string `json:"generated_text"`
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

// NewClient creates a Hugging Face Inference API client.
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

func (c *httpClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if req.Parameters.MaxNewTokens > maxNewTokensCap {
		req.Parameters.MaxNewTokens = maxNewTokensCap
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, eris.Wrap(err, "huggingface: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+req.Model, bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "huggingface: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "huggingface: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "huggingface: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("huggingface: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	// The API returns a single-element array for text-generation models.
	var results []GenerateResponse
	if err := json.Unmarshal(respBody, &results); err != nil {
		return nil, eris.Wrap(err, "huggingface: unmarshal response")
	}
	if len(results) == 0 {
		return nil, eris.New("huggingface: empty response array")
	}

	return &results[0], nil
}
