package metrics

import (
	"net/http"

	"go.uber.org/zap"
)

// Handler обрабатывает HTTP запросы для метрик
type Handler struct {
	metrics *Metrics
	logger  *zap.Logger
}

// NewHandler создает новый обработчик метрик
func NewHandler(metrics *Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		metrics: metrics,
		logger:  logger,
	}
}

// MetricsHandler возвращает HTTP handler для Prometheus метрик
func (h *Handler) MetricsHandler() http.Handler {
	return h.metrics.Handler()
}

// HealthHandler возвращает статус здоровья сервиса
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"ok","service":"vehicle-assist"}`)); err != nil {
		h.logger.Warn("ошибка записи ответа health", zap.Error(err))
	}
}
