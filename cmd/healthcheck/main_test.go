package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func healthServer(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCode  int
		wantOut   string
		wantError string
	}{
		{name: "up", status: http.StatusOK, body: `{"status":"UP"}`, wantCode: exitHealthy, wantOut: "UP\n"},
		{name: "down", status: http.StatusServiceUnavailable, body: `{"status":"DOWN"}`, wantCode: exitUnhealthy, wantError: "DOWN: server unavailable"},
		{name: "not found", status: http.StatusNotFound, wantCode: exitUnhealthy, wantError: "DOWN: not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := healthServer(t, tt.status, tt.body)
			var stdout, stderr bytes.Buffer

			code := run(context.Background(), []string{"-a", addr, "-r", "0"}, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, stdout.String())
			assert.Contains(t, stderr.String(), tt.wantError)
		})
	}
}

func TestRun_AddressFromEnv(t *testing.T) {
	addr := healthServer(t, http.StatusOK, `{"status":"UP"}`)
	t.Setenv("SERVER_ADDRESS", addr)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitHealthy, run(context.Background(), nil, &stdout, &stderr))
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitUsage, run(context.Background(), []string{"-unknown"}, &stdout, &stderr))
}

func TestRun_BadEnv(t *testing.T) {
	t.Setenv("HEALTHCHECK_TIMEOUT", "soon")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitUsage, run(context.Background(), nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "error getting env configs")
}

func TestParseOptions_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "env:1")
	t.Setenv("HEALTHCHECK_RETRIES", "5")

	opts, err := parseOptions([]string{"-a", "flag:2"}, io.Discard)
	assert.NoError(t, err)
	assert.Equal(t, "flag:2", opts.Address)
	assert.Equal(t, 5, opts.Retries)
}
