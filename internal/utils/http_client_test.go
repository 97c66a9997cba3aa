package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flakyServer(t *testing.T, failures int32) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", time.Second, 0)
	client2 := NewHTTPClient("http://b", time.Second, 0)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
	assert.Equal(t, "http://a", client1.BaseURL)
}

func TestHTTPClient_RetriesGetOnUnavailable(t *testing.T) {
	srv, hits := flakyServer(t, 2)
	client := NewHTTPClient(srv.URL, 5*time.Second, 2)

	resp, err := client.R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "ok", resp.String())
	assert.Equal(t, int32(3), hits.Load())
}

func TestHTTPClient_GivesUpAfterRetries(t *testing.T) {
	srv, hits := flakyServer(t, 10)
	client := NewHTTPClient(srv.URL, 5*time.Second, 1)

	resp, err := client.R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, int32(2), hits.Load())
}

func TestHTTPClient_DoesNotRetryPost(t *testing.T) {
	srv, hits := flakyServer(t, 1)
	client := NewHTTPClient(srv.URL, 5*time.Second, 3)

	resp, err := client.R().SetBody(`{}`).Post("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, int32(1), hits.Load())
}
