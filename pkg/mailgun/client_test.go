package mailgun

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mg.example.com/messages", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "api", user)
		assert.Equal(t, "key-123", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Omnilinks <jake@example.com>", r.Form.Get("from"))
		assert.Equal(t, "jo@acme.com", r.Form.Get("to"))
		assert.Equal(t, "Quick intro", r.Form.Get("subject"))
		assert.Equal(t, "hello", r.Form.Get("text"))
		assert.Equal(t, "joseph@example.com", r.Form.Get("cc"))

		_, _ = w.Write([]byte(`{"id":"<msg-id>","message":"Queued. Thank you."}`))
	}))
	defer srv.Close()

	client := NewClient("mg.example.com", "key-123", WithBaseURL(srv.URL))
	err := client.Send(context.Background(), Message{
		From:    "Omnilinks <jake@example.com>",
		To:      "jo@acme.com",
		CC:      "joseph@example.com",
		Subject: "Quick intro",
		Text:    "hello",
	})
	require.NoError(t, err)
}

func TestSendPrefersHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "<p>hello</p>", r.Form.Get("html"))
		assert.Empty(t, r.Form.Get("text"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient("mg.example.com", "key-123", WithBaseURL(srv.URL))
	err := client.Send(context.Background(), Message{
		From: "a@b.c", To: "d@e.f", Subject: "s",
		Text: "hello", HTML: "<p>hello</p>",
	})
	require.NoError(t, err)
}

func TestSendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid private key"}`))
	}))
	defer srv.Close()

	client := NewClient("mg.example.com", "bad-key", WithBaseURL(srv.URL))
	err := client.Send(context.Background(), Message{From: "a@b.c", To: "d@e.f", Subject: "s", Text: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 401")
}
