package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"vehicle-assist/internal/metrics"
	"vehicle-assist/internal/tts"
	"vehicle-assist/pkg/models"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Predictor выдает диагностические отчеты
type Predictor interface {
	Predict(vehicleID string) models.VehicleReport
	KnownVehicles() []string
}

// Server HTTP сервер с эндпоинтами прогнозов и озвучивания
type Server struct {
	logger    *zap.Logger
	predictor Predictor
	tts       tts.SpeechSynthesizer
	metrics   *metrics.Metrics
	router    *mux.Router
	handler   http.Handler
}

// NewServer создает сервер и регистрирует маршруты
func NewServer(predictor Predictor, synthesizer tts.SpeechSynthesizer, m *metrics.Metrics, logger *zap.Logger) *Server {
	s := &Server{
		logger:    logger,
		predictor: predictor,
		tts:       synthesizer,
		metrics:   m,
		router:    mux.NewRouter(),
	}
	s.routes()

	// CORS оборачивает роутер целиком, иначе preflight OPTIONS не дойдет до middleware
	s.handler = corsMiddleware(s.router)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(requestIDMiddleware, s.loggingMiddleware)

	s.router.HandleFunc("/predict", s.handlePredict).Methods(http.MethodGet)
	s.router.HandleFunc("/vehicles", s.handleVehicles).Methods(http.MethodGet)
	s.router.HandleFunc("/speak", s.handleSpeak).Methods(http.MethodPost)
	s.router.HandleFunc("/announce", s.handleAnnounce).Methods(http.MethodGet)

	metricsHandler := metrics.NewHandler(s.metrics, s.logger)
	s.router.Handle("/metrics", metricsHandler.MetricsHandler()).Methods(http.MethodGet)
	s.router.HandleFunc("/health", metricsHandler.HealthHandler).Methods(http.MethodGet)
}

// HTTPServer возвращает настроенный http.Server для адреса addr
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: s,
	}
}

// Run запускает сервер и останавливает его при отмене ctx
func Run(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info("HTTP сервер запущен", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("ошибка при остановке HTTP сервера", zap.Error(err))
		return err
	}

	logger.Info("HTTP сервер остановлен")
	return nil
}

// writeJSON пишет v в ответ с указанным статусом
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("ошибка кодирования ответа", zap.Error(err))
	}
}
