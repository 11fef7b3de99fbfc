// Package main запускает платформу NexusForge.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"nexusforge/internal/app"
	"nexusforge/internal/config"
	"nexusforge/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Инициализация логгера
	log := logger.New()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Создание контекста
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Обработка сигналов
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutdown signal received")
		cancel()
	}()

	// Создание платформы через фабрику
	platform, err := app.NewPlatformWithFactory(cfg, log)
	if err != nil {
		log.Fatal("Failed to create platform", zap.Error(err))
	}

	// Запуск платформы
	if err := platform.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Platform stopped with error", zap.Error(err))
		os.Exit(1)
	}

	if err := platform.Stop(); err != nil {
		log.Error("Failed to stop platform", zap.Error(err))
	}

	log.Info("Platform stopped successfully")
}
