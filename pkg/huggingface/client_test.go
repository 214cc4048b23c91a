package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/microsoft/DialoGPT-medium", r.URL.Path)
		assert.Equal(t, "Bearer hf-key", r.Header.Get("Authorization"))

		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		// Requested 2000, clamped to the API ceiling.
		assert.Equal(t, 500, req.Parameters.MaxNewTokens)
		assert.False(t, req.Parameters.ReturnFullText)

		_, _ = w.Write([]byte(`[{"generated_text":"hello from hf"}]`))
	}))
	defer srv.Close()

	client := NewClient("hf-key", WithBaseURL(srv.URL))
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Model:  "microsoft/DialoGPT-medium",
		Inputs: "prompt",
		Parameters: Parameters{
			MaxNewTokens: 2000,
			Temperature:  0.1,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello from hf", resp.GeneratedText)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"model_loading", http.StatusServiceUnavailable, `{"error":"model loading"}`, "unexpected status 503"},
		{"empty_array", http.StatusOK, `[]`, "empty response array"},
		{"not_an_array", http.StatusOK, `{"generated_text":"x"}`, "unmarshal response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient("hf-key", WithBaseURL(srv.URL))
			_, err := client.Generate(context.Background(), GenerateRequest{Model: "m", Inputs: "p"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
