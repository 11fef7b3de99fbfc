package service

import (
	"nexusforge/internal/config"
	"nexusforge/internal/storage"

	"go.uber.org/zap"
)

// Services представляет все сервисы приложения
type Services struct {
	SysLog    *SysLogService
	Admin     *AdminService
	Auth      *AuthService
	Project   *ProjectService
	Template  *TemplateService
	Asset     *AssetService
	Ticket    *TicketService
	Scheduler *SchedulerService
}

// NewServices создает и связывает сервисы приложения
func NewServices(db *storage.Postgres, cfg *config.Config, scraper ProductImageScraper, logger *zap.Logger) *Services {
	collections := db.GetCollectionRepository()
	sessions := db.GetSessionRepository()

	syslog := NewSysLogService(collections, cfg.MaintenanceConfig.MaxSystemLogs, logger)
	admin := NewAdminService(collections, syslog, logger)
	auth := NewAuthService(collections, sessions, admin, syslog, logger)
	project := NewProjectService(collections, syslog, cfg.HostingConfig, logger)
	template := NewTemplateService(collections, project, syslog, logger)
	asset := NewAssetService(collections, scraper, syslog, logger)
	ticket := NewTicketService(collections, syslog, logger)
	scheduler := NewSchedulerService(cfg.MaintenanceConfig, syslog, logger)

	return &Services{
		SysLog:    syslog,
		Admin:     admin,
		Auth:      auth,
		Project:   project,
		Template:  template,
		Asset:     asset,
		Ticket:    ticket,
		Scheduler: scheduler,
	}
}

// Shutdown останавливает фоновые процессы сервисов
func (s *Services) Shutdown() {
	s.Scheduler.Stop()
	s.Project.Shutdown()
}
