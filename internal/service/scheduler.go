package service

import (
	"fmt"
	"sync"
	"time"

	"nexusforge/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SchedulerService управляет фоновыми задачами обслуживания
type SchedulerService struct {
	mu      sync.Mutex
	cron    *cron.Cron
	config  config.MaintenanceConfig
	syslog  *SysLogService
	logger  *zap.Logger
	running bool
}

// NewSchedulerService создает сервис планировщика
func NewSchedulerService(cfg config.MaintenanceConfig, syslog *SysLogService, logger *zap.Logger) *SchedulerService {
	return &SchedulerService{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		config: cfg,
		syslog: syslog,
		logger: logger,
	}
}

// Start запускает планировщик фоновых задач
func (s *SchedulerService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	_, err := s.cron.AddFunc(s.config.LogTrimSchedule, s.trimLogs)
	if err != nil {
		return fmt.Errorf("failed to schedule log trim job: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("Scheduler started",
		zap.String("log_trim_schedule", s.config.LogTrimSchedule))
	return nil
}

// Stop останавливает планировщик и ждет завершения задач
func (s *SchedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false

	s.logger.Info("Scheduler stopped")
}

// trimLogs усекает системный журнал до настроенного лимита
func (s *SchedulerService) trimLogs() {
	removed := s.syslog.Trim()
	if removed > 0 {
		s.logger.Info("System log trimmed", zap.Int("removed", removed))
	}
}

// GetStatus возвращает статус планировщика
func (s *SchedulerService) GetStatus() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]interface{}{
		"running":           s.running,
		"log_trim_schedule": s.config.LogTrimSchedule,
		"entries":           len(s.cron.Entries()),
	}
}
