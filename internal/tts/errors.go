package tts

import "fmt"

// UpstreamError ответ провайдера с кодом, отличным от 200
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("неожиданный статус от ElevenLabs: %d, тело: %s", e.StatusCode, e.Body)
}
