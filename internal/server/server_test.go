package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-estate-api/internal/config"
	"github.com/MKhiriev/go-estate-api/internal/handler"
	myHTTP "github.com/MKhiriev/go-estate-api/internal/handler/http"
	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	cfg := &config.StructuredConfig{}
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, cfg, logger.Nop())}

	s, err := NewServer(handlers, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.ErrorIs(t, err, errEmptyHTTPAddress)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Equal(t, defaultShutdownTimeout, s.shutdownTimeout)
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
	assert.Equal(t, idleTimeout, s.server.IdleTimeout)

	s = newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":0", ShutdownTimeout: time.Second}, logger.Nop())
	assert.Equal(t, time.Second, s.shutdownTimeout)
}

func TestRun_GracefulShutdown(t *testing.T) {
	addr := freeAddr(t)
	s := &server{
		httpServer: newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}), config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop()),
		logger: logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: l.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	assert.Error(t, s.run(context.Background()))
}

func TestRun_NoServer(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersAreCreated)
}
