package resilience

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"wrapped_transient", fmt.Errorf("call: %w", NewTransientError(errors.New("429"), 429)), true},
		{"connection_reset_string", errors.New("read tcp: connection reset by peer"), true},
		{"dns_string", errors.New("dial tcp: lookup api.groq.com: no such host"), true},
		{"io_timeout_string", errors.New("dial tcp: i/o timeout"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestIsTransientHTTPStatus(t *testing.T) {
	for _, code := range []int{408, 429, 500, 502, 503, 504} {
		assert.True(t, IsTransientHTTPStatus(code), "status %d", code)
	}
	for _, code := range []int{200, 201, 301, 400, 401, 403, 404, 422} {
		assert.False(t, IsTransientHTTPStatus(code), "status %d", code)
	}
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   bool
	}{
		{"http_429", "HTTP 429: too many requests", true},
		{"rate_word", "Rate limit exceeded, retry after 20s", true},
		{"lowercase_rate", "groq: rate_limit_exceeded", true},
		{"clean_error", "HTTP 500: internal server error", false},
		{"empty", "", false},
		// Substring match means unrelated mentions of "rate" also trip it.
		{"false_positive", "model generated at a high rate", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRateLimited(tt.detail))
		})
	}
}
