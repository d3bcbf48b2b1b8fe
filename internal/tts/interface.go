package tts

import (
	"context"

	"vehicle-assist/pkg/models"
)

// DefaultVoiceSettings фиксированные параметры голоса для озвучивания
var DefaultVoiceSettings = models.VoiceSettings{
	Stability:       0.5,
	SimilarityBoost: 0.75,
}

// SpeechSynthesizer представляет интерфейс для Text-to-Speech провайдера
type SpeechSynthesizer interface {
	// SynthesizeSpeech преобразует текст в аудио
	SynthesizeSpeech(ctx context.Context, text string, settings models.VoiceSettings) ([]byte, error)
}
