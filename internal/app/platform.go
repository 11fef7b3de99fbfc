// Package app содержит основную логику приложения.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"nexusforge/internal/config"
	"nexusforge/internal/gateway/scraper"
	"nexusforge/internal/health"
	"nexusforge/internal/service"
	"nexusforge/internal/storage"

	"go.uber.org/zap"
)

// Platform представляет работающую платформу
type Platform struct {
	config   *config.Config
	logger   *zap.Logger
	db       *storage.Postgres
	services *service.Services
	health   *health.Server
	scraper  *scraper.ImageScraper
	stopChan chan struct{}
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewPlatform создает новый экземпляр платформы
func NewPlatform(cfg *config.Config, logger *zap.Logger) (*Platform, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	ctx, cancel := context.WithCancel(context.Background())

	platform := &Platform{
		config:   cfg,
		logger:   logger,
		stopChan: make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}

	logger.Info("Platform structure created successfully")
	return platform, nil
}

// NewPlatformWithFactory создает новый экземпляр платформы
func NewPlatformWithFactory(cfg *config.Config, logger *zap.Logger) (*Platform, error) {
	factory := NewComponentFactory(cfg, logger)
	return factory.CreatePlatform()
}

// Services возвращает сервисы платформы
func (p *Platform) Services() *service.Services {
	return p.services
}

// Scraper возвращает скрейпер изображений товаров
func (p *Platform) Scraper() *scraper.ImageScraper {
	return p.scraper
}

// Start запускает платформу и блокируется до остановки
func (p *Platform) Start(ctx context.Context) error {
	p.logger.Info("Starting platform")

	if p.health != nil {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			if err := p.health.Start(); err != nil {
				if err.Error() == "http: Server closed" {
					p.logger.Info("Health check server stopped normally")
				} else {
					p.logger.Error("Health check server failed", zap.Error(err))
				}
			}
		}()
	}

	if err := p.services.Scheduler.Start(); err != nil {
		p.logger.Error("Failed to start scheduler", zap.Error(err))
	}

	p.logger.Info("Platform started successfully")

	select {
	case <-ctx.Done():
		p.logger.Info("Platform cancelled by context")
		return ctx.Err()
	case <-p.ctx.Done():
		p.logger.Info("Platform cancelled by internal context")
		return p.ctx.Err()
	case <-p.stopChan:
		p.logger.Info("Platform stopped by stop signal")
		return nil
	}
}

// Stop gracefully останавливает платформу
func (p *Platform) Stop() error {
	p.logger.Info("Stopping platform gracefully")

	p.services.Shutdown()

	if p.cancel != nil {
		p.cancel()
	}

	select {
	case <-p.stopChan:
	default:
		close(p.stopChan)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if p.health != nil {
		if err := p.health.Stop(); err != nil {
			p.logger.Error("Failed to stop health check server", zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.wg.Wait()
	}()

	select {
	case <-done:
		p.logger.Info("All goroutines stopped successfully")
	case <-shutdownCtx.Done():
		p.logger.Warn("Graceful shutdown timeout exceeded, forcing stop")
	}

	if err := p.db.Close(); err != nil {
		p.logger.Error("Failed to close database connection", zap.Error(err))
	}

	p.logger.Info("Platform stopped successfully")
	return nil
}
