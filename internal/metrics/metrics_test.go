package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetrics(t *testing.T) {
	m := New(zap.NewNop())

	m.RecordHTTPRequest("/predict", http.MethodGet, http.StatusOK, 15*time.Millisecond)
	m.RecordHTTPRequest("/predict", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	m.RecordPrediction("ALERT")
	m.RecordTTSRequest(TTSStatusSuccess, time.Second, 4096)
	m.RecordTTSRequest(TTSStatusUpstreamError, time.Second, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/predict", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictions.WithLabelValues("ALERT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ttsRequests.WithLabelValues(TTSStatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ttsRequests.WithLabelValues(TTSStatusUpstreamError)))
}

func TestNewIsolatedRegistries(t *testing.T) {
	// Два экземпляра не должны конфликтовать при регистрации
	first := New(zap.NewNop())
	second := New(zap.NewNop())

	first.RecordPrediction("OK")
	assert.Equal(t, 0.0, testutil.ToFloat64(second.predictions.WithLabelValues("OK")))
}

func TestMetricsHandler(t *testing.T) {
	m := New(zap.NewNop())
	m.RecordPrediction("UNKNOWN")

	h := NewHandler(m, zap.NewNop())
	rec := httptest.NewRecorder()
	h.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `predictions_total{status="UNKNOWN"} 1`)
}

func TestHealthHandler(t *testing.T) {
	h := NewHandler(New(zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	h.HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok","service":"vehicle-assist"}`, rec.Body.String())
}
