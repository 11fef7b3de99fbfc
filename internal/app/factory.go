// Package app содержит фабрику компонентов приложения.
package app

import (
	"fmt"
	"os"

	"nexusforge/internal/config"
	"nexusforge/internal/gateway/scraper"
	"nexusforge/internal/health"
	"nexusforge/internal/service"
	"nexusforge/internal/storage"

	"go.uber.org/zap"
)

// ComponentFactory создает компоненты приложения
type ComponentFactory struct {
	config *config.Config
	logger *zap.Logger
}

// NewComponentFactory создает новую фабрику компонентов
func NewComponentFactory(config *config.Config, logger *zap.Logger) *ComponentFactory {
	if config == nil {
		logger.Fatal("Config cannot be nil")
	}
	if logger == nil {
		panic("Logger cannot be nil")
	}

	return &ComponentFactory{
		config: config,
		logger: logger,
	}
}

// CreateDatabase создает подключение к базе данных
func (f *ComponentFactory) CreateDatabase() (*storage.Postgres, error) {
	if f.config.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	db, err := storage.NewPostgres(f.config.DatabaseURL, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	f.logger.Info("Database connection created successfully")
	return db, nil
}

// CreateServices создает все сервисы
func (f *ComponentFactory) CreateServices(db *storage.Postgres, imageScraper *scraper.ImageScraper) (*service.Services, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	services := service.NewServices(db, f.config, imageScraper, f.logger)
	f.logger.Info("Services created successfully")
	return services, nil
}

// CreateScraper создает скрейпер изображений товаров
func (f *ComponentFactory) CreateScraper() *scraper.ImageScraper {
	imageScraper := scraper.NewImageScraper(f.config.ScraperConfig, f.logger)
	f.logger.Info("Image scraper created successfully")
	return imageScraper
}

// CreateHealthServer создает сервер health check
func (f *ComponentFactory) CreateHealthServer(db *storage.Postgres) (*health.Server, error) {
	if !f.config.HealthCheckEnabled {
		f.logger.Info("Health check server is disabled")
		return nil, nil
	}

	if f.config.HealthPort == "" {
		return nil, fmt.Errorf("health port is required when health check is enabled")
	}

	server := health.NewServer(f.config.HealthPort, f.logger, db)
	f.logger.Info("Health check server created", zap.String("port", f.config.HealthPort))
	return server, nil
}

// CreateAppDataDirectory создает директорию данных приложения
func (f *ComponentFactory) CreateAppDataDirectory() error {
	dataDir := f.config.GetAppDataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		f.logger.Error("Failed to create app data directory", zap.String("dir", dataDir), zap.Error(err))
		return fmt.Errorf("failed to create app data directory: %w", err)
	}
	f.logger.Info("App data directory ready", zap.String("dir", dataDir))
	return nil
}

// CreatePlatform создает полный экземпляр платформы со всеми зависимостями
func (f *ComponentFactory) CreatePlatform() (*Platform, error) {
	if err := f.CreateAppDataDirectory(); err != nil {
		return nil, fmt.Errorf("failed to create app data directory: %w", err)
	}

	db, err := f.CreateDatabase()
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	imageScraper := f.CreateScraper()

	services, err := f.CreateServices(db, imageScraper)
	if err != nil {
		return nil, fmt.Errorf("failed to create services: %w", err)
	}

	healthServer, err := f.CreateHealthServer(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create health server: %w", err)
	}

	platform, err := NewPlatform(f.config, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create platform: %w", err)
	}

	platform.db = db
	platform.services = services
	platform.health = healthServer
	platform.scraper = imageScraper

	if len(services.Project.List("")) == 0 {
		f.logger.Info("No projects found; platform starts with an empty workspace")
	}

	f.logger.Info("Platform created successfully with all dependencies")
	return platform, nil
}
