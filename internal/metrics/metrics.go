package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Статусы запросов к TTS
const (
	TTSStatusSuccess       = "success"
	TTSStatusUpstreamError = "upstream_error"
	TTSStatusFailed        = "failed"
)

// Metrics содержит все метрики приложения
type Metrics struct {
	logger   *zap.Logger
	registry *prometheus.Registry

	// Счетчики
	httpRequests *prometheus.CounterVec
	predictions  *prometheus.CounterVec
	ttsRequests  *prometheus.CounterVec

	// Гистограммы
	httpDuration    *prometheus.HistogramVec
	ttsResponseTime prometheus.Histogram
	ttsAudioBytes   prometheus.Histogram
}

// New создает новый экземпляр метрик со своим реестром
func New(logger *zap.Logger) *Metrics {
	m := &Metrics{
		logger:   logger,
		registry: prometheus.NewRegistry(),

		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Общее количество HTTP запросов",
			},
			[]string{"route", "method", "status"},
		),

		predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictions_total",
				Help: "Количество выданных отчетов по статусу",
			},
			[]string{"status"}, // OK, ALERT, UNKNOWN
		),

		ttsRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tts_requests_total",
				Help: "Общее количество запросов к ElevenLabs",
			},
			[]string{"status"}, // success, upstream_error, failed
		),

		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Время обработки HTTP запроса в секундах",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),

		ttsResponseTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tts_response_time_seconds",
				Help:    "Время ответа ElevenLabs в секундах",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
			},
		),

		ttsAudioBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tts_audio_bytes",
				Help:    "Размер сгенерированного аудио в байтах",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),
	}

	// Регистрируем все метрики
	m.registry.MustRegister(
		m.httpRequests,
		m.predictions,
		m.ttsRequests,
		m.httpDuration,
		m.ttsResponseTime,
		m.ttsAudioBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RecordHTTPRequest записывает обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordPrediction записывает выданный отчет
func (m *Metrics) RecordPrediction(status string) {
	m.predictions.WithLabelValues(status).Inc()
	m.logger.Debug("метрика прогноза увеличена", zap.String("status", status))
}

// RecordTTSRequest записывает запрос к TTS провайдеру
func (m *Metrics) RecordTTSRequest(status string, responseTime time.Duration, audioSize int) {
	m.ttsRequests.WithLabelValues(status).Inc()
	m.ttsResponseTime.Observe(responseTime.Seconds())
	if status == TTSStatusSuccess {
		m.ttsAudioBytes.Observe(float64(audioSize))
	}
	m.logger.Debug("метрика TTS увеличена",
		zap.String("status", status),
		zap.Duration("response_time", responseTime))
}

// Handler возвращает HTTP handler для метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
