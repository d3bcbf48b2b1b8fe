package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"vehicle-assist/internal/metrics"
	"vehicle-assist/internal/prediction"
	"vehicle-assist/internal/tts"
	"vehicle-assist/pkg/models"

	"go.uber.org/zap"
)

// SpeechFailedLabel метка ошибки в ответе при сбое синтеза
const SpeechFailedLabel = "ElevenLabs TTS failed"

const audioContentType = "audio/mpeg"

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var body models.SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("некорректное тело запроса /speak",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Error(err))
		s.writeJSON(w, http.StatusBadRequest, models.SpeechError{
			Error:   "invalid request body",
			Details: err.Error(),
		})
		return
	}

	s.relaySpeech(w, r, body.Text)
}

// handleAnnounce озвучивает отчет по автомобилю той же фразой, что и дашборд
func (s *Server) handleAnnounce(w http.ResponseWriter, r *http.Request) {
	report := s.predictor.Predict(r.URL.Query().Get("vehicleId"))
	s.metrics.RecordPrediction(report.Status)

	s.relaySpeech(w, r, prediction.Announcement(report))
}

// relaySpeech синхронно вызывает провайдера и возвращает аудио как есть.
// Ошибка провайдера возвращается JSON телом со статусом 200.
func (s *Server) relaySpeech(w http.ResponseWriter, r *http.Request, text string) {
	start := time.Now()
	audio, err := s.tts.SynthesizeSpeech(r.Context(), text, tts.DefaultVoiceSettings)
	elapsed := time.Since(start)

	if err != nil {
		status := metrics.TTSStatusFailed
		details := err.Error()

		var upstreamErr *tts.UpstreamError
		if errors.As(err, &upstreamErr) {
			status = metrics.TTSStatusUpstreamError
			details = upstreamErr.Body
		}

		s.metrics.RecordTTSRequest(status, elapsed, 0)
		s.logger.Error("ошибка синтеза речи",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.String("status", status),
			zap.Error(err))

		s.writeJSON(w, http.StatusOK, models.SpeechError{
			Error:   SpeechFailedLabel,
			Details: details,
		})
		return
	}

	s.metrics.RecordTTSRequest(metrics.TTSStatusSuccess, elapsed, len(audio))

	w.Header().Set("Content-Type", audioContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		s.logger.Warn("ошибка отправки аудио клиенту",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Error(err))
	}
}
