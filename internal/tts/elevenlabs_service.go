package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"vehicle-assist/pkg/models"

	"go.uber.org/zap"
)

// DefaultElevenLabsBaseURL адрес API ElevenLabs по умолчанию
const DefaultElevenLabsBaseURL = "https://api.elevenlabs.io"

// ElevenLabsConfig настройки доступа к ElevenLabs. Значения не проверяются:
// пустой ключ или голос приведут к ошибке со стороны провайдера.
type ElevenLabsConfig struct {
	APIKey  string
	VoiceID string
	BaseURL string
}

// ElevenLabsService предоставляет функциональность Text-to-Speech через ElevenLabs API
type ElevenLabsService struct {
	logger *zap.Logger
	cfg    ElevenLabsConfig
	client *http.Client
}

type synthesizeRequest struct {
	Text          string               `json:"text"`
	VoiceSettings models.VoiceSettings `json:"voice_settings"`
}

// NewElevenLabsService создает новый ElevenLabs TTS сервис
func NewElevenLabsService(logger *zap.Logger, cfg ElevenLabsConfig) *ElevenLabsService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultElevenLabsBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &ElevenLabsService{
		logger: logger,
		cfg:    cfg,
		// Таймаут не задаем, запрос ограничен только контекстом входящего запроса
		client: &http.Client{},
	}
}

// SynthesizeSpeech преобразует текст в аудио через ElevenLabs.
// При ответе провайдера с кодом, отличным от 200, возвращает *UpstreamError.
func (s *ElevenLabsService) SynthesizeSpeech(ctx context.Context, text string, settings models.VoiceSettings) ([]byte, error) {
	s.logger.Info("🎵 генерируем аудио через ElevenLabs",
		zap.String("voice_id", s.cfg.VoiceID),
		zap.Int("text_length", len(text)))
	s.logger.Debug("текст для озвучивания", zap.String("text", text))

	audioData, err := s.generateAudio(ctx, text, settings)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации аудио: %w", err)
	}

	s.logger.Info("🎵 аудио успешно сгенерировано",
		zap.Int("audio_size", len(audioData)))

	return audioData, nil
}

// endpoint возвращает адрес синтеза для настроенного голоса
func (s *ElevenLabsService) endpoint() string {
	return fmt.Sprintf("%s/v1/text-to-speech/%s", s.cfg.BaseURL, s.cfg.VoiceID)
}

// generateAudio отправляет запрос к ElevenLabs API и получает аудио
func (s *ElevenLabsService) generateAudio(ctx context.Context, text string, settings models.VoiceSettings) ([]byte, error) {
	payload, err := json.Marshal(synthesizeRequest{
		Text:          text,
		VoiceSettings: settings,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования запроса: %w", err)
	}

	url := s.endpoint()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("xi-api-key", s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	s.logger.Debug("🎵 отправляем запрос к ElevenLabs", zap.String("url", url))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("ElevenLabs вернул ошибку",
			zap.Int("status", resp.StatusCode),
			zap.Int("body_size", len(body)))
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
