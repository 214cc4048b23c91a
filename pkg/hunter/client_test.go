package hunter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/email-finder", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "acme.com", q.Get("domain"))
		assert.Equal(t, "Jo", q.Get("first_name"))
		assert.Equal(t, "Lee", q.Get("last_name"))
		assert.Equal(t, "hk-key", q.Get("api_key"))

		_, _ = w.Write([]byte(`{"data":{"email":"jo.lee@acme.com","first_name":"Jo","last_name":"Lee","position":"CEO","confidence":94}}`))
	}))
	defer srv.Close()

	client := NewClient("hk-key", WithBaseURL(srv.URL))
	result, err := client.FindEmail(context.Background(), "acme.com", "Jo", "Lee")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "jo.lee@acme.com", result.Email)
	assert.Equal(t, 94, result.Confidence)
}

func TestFindEmailNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"email":null}}`))
	}))
	defer srv.Close()

	client := NewClient("hk-key", WithBaseURL(srv.URL))
	result, err := client.FindEmail(context.Background(), "acme.com", "No", "Body")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDomainSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/domain-search", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"data":{"emails":[
			{"value":"jo@acme.com","first_name":"Jo","last_name":"Lee","position":"CEO","confidence":90},
			{"value":"info@acme.com","confidence":40}
		]}}`))
	}))
	defer srv.Close()

	client := NewClient("hk-key", WithBaseURL(srv.URL))
	emails, err := client.DomainSearch(context.Background(), "acme.com", 10)
	require.NoError(t, err)
	require.Len(t, emails, 2)
	assert.Equal(t, "jo@acme.com", emails[0].Email)
	assert.Equal(t, 40, emails[1].Confidence)
}

func TestErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"errors":[{"details":"rate limit"}]}`))
	}))
	defer srv.Close()

	client := NewClient("hk-key", WithBaseURL(srv.URL))
	_, err := client.DomainSearch(context.Background(), "acme.com", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 429")
}
