package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"vehicle-assist/internal/tts"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config содержит все конфигурационные параметры приложения
type Config struct {
	ElevenLabs ElevenLabsConfig
	App        AppConfig
}

// ElevenLabsConfig содержит настройки ElevenLabs TTS.
// Ключ и голос не проверяются при запуске.
type ElevenLabsConfig struct {
	APIKey  string
	VoiceID string
	BaseURL string
}

type AppConfig struct {
	Env             string
	LogLevel        string
	Port            int
	ShutdownTimeout time.Duration
}

// Load загружает конфигурацию из переменных окружения и .env
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// ElevenLabs
	cfg.ElevenLabs.APIKey = os.Getenv("ELEVENLABS_API_KEY")
	cfg.ElevenLabs.VoiceID = os.Getenv("ELEVEN_VOICE_ID")
	cfg.ElevenLabs.BaseURL = getEnvDefault("ELEVENLABS_BASE_URL", tts.DefaultElevenLabsBaseURL)

	// App
	cfg.App.Env = getEnvDefault("APP_ENV", "development")
	cfg.App.LogLevel = getEnvDefault("LOG_LEVEL", "info")
	cfg.App.Port = getEnvIntDefault("APP_PORT", 8000)
	cfg.App.ShutdownTimeout = getEnvDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return cfg, nil
}

func getEnvDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// validateConfig проверяет корректность конфигурации
func validateConfig(config *Config) error {
	if config.App.Port <= 0 || config.App.Port > 65535 {
		return fmt.Errorf("APP_PORT вне допустимого диапазона: %d", config.App.Port)
	}
	if config.App.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT должен быть положительным")
	}

	return nil
}

// TTSConfig возвращает настройки клиента ElevenLabs
func (c *ElevenLabsConfig) TTSConfig() tts.ElevenLabsConfig {
	return tts.ElevenLabsConfig{
		APIKey:  c.APIKey,
		VoiceID: c.VoiceID,
		BaseURL: c.BaseURL,
	}
}

// Addr возвращает адрес для HTTP сервера
func (c *AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment проверяет, запущено ли приложение в режиме разработки
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction проверяет, запущено ли приложение в продакшн режиме
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// GetLogLevel возвращает уровень логирования в формате zap
func (c *AppConfig) GetLogLevel() zap.AtomicLevel {
	switch c.LogLevel {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}
