package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vehicle-assist/internal/config"
	"vehicle-assist/internal/httpapi"
	"vehicle-assist/internal/metrics"
	"vehicle-assist/internal/prediction"
	"vehicle-assist/internal/tts"

	"go.uber.org/zap"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера
	logger, err := initLogger(&cfg.App)
	if err != nil {
		fmt.Printf("Ошибка инициализации логгера: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("запуск приложения vehicle-assist",
		zap.String("env", cfg.App.Env),
		zap.String("log_level", cfg.App.LogLevel))

	if cfg.ElevenLabs.APIKey == "" || cfg.ElevenLabs.VoiceID == "" {
		// Не критично: запросы к ElevenLabs вернут ошибку провайдера
		logger.Warn("ELEVENLABS_API_KEY или ELEVEN_VOICE_ID не заданы")
	}

	// Инициализация сервисов
	predictionService := prediction.NewService(logger)
	ttsService := tts.NewElevenLabsService(logger, cfg.ElevenLabs.TTSConfig())
	metricsSystem := metrics.New(logger)

	server := httpapi.NewServer(predictionService, ttsService, metricsSystem, logger)

	// Graceful shutdown по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("приложение запущено и готово к работе",
		zap.String("address", fmt.Sprintf("http://localhost:%d", cfg.App.Port)))

	if err := httpapi.Run(ctx, server.HTTPServer(cfg.App.Addr()), cfg.App.ShutdownTimeout, logger); err != nil {
		logger.Fatal("ошибка HTTP сервера", zap.Error(err))
	}

	logger.Info("приложение завершено")
}

// initLogger инициализирует логгер
func initLogger(app *config.AppConfig) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if app.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = app.GetLogLevel()

	return zcfg.Build()
}
