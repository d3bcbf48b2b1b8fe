package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCORSSimpleRequest(t *testing.T) {
	s := newTestServer(&stubSynthesizer{})

	req := httptest.NewRequest(http.MethodGet, "/predict?vehicleId=XYZ789", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(&stubSynthesizer{})

	req := httptest.NewRequest(http.MethodOptions, "/speak", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "content-type, x-custom")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://dashboard.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Equal(t, "content-type, x-custom", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORSWithoutOrigin(t *testing.T) {
	s := newTestServer(&stubSynthesizer{})

	rec := do(t, s, http.MethodGet, "/vehicles", "")

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSOnSpeakError(t *testing.T) {
	s := newTestServer(&stubSynthesizer{err: errors.New("boom")})

	req := httptest.NewRequest(http.MethodPost, "/speak", nil)
	req.Header.Set("Origin", "http://a.b")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	// пустое тело не декодируется, но CORS заголовки на месте
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "http://a.b", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRunShutdown(t *testing.T) {
	s := newTestServer(&stubSynthesizer{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, s.HTTPServer(addr), time.Second, zap.NewNop())
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("сервер не остановился")
	}
}
