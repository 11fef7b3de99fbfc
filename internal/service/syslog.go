// Package service содержит бизнес-логику платформы.
package service

import (
	"sync"
	"time"

	"nexusforge/internal/model"

	"go.uber.org/zap"
)

// SysLogService ведет системный журнал платформы.
// Журнал хранится от новых к старым и ограничен maxEntries записями.
type SysLogService struct {
	mu         sync.Mutex
	store      Store
	logger     *zap.Logger
	maxEntries int
	logs       []model.SystemLog
}

// NewSysLogService создает сервис системного журнала
func NewSysLogService(store Store, maxEntries int, logger *zap.Logger) *SysLogService {
	s := &SysLogService{
		store:      store,
		logger:     logger,
		maxEntries: maxEntries,
	}
	store.Load(model.CollectionLogs, &s.logs)
	return s
}

// Log добавляет запись журнала. Новые записи идут первыми, журнал
// усекается до maxEntries.
func (s *SysLogService) Log(level model.LogLevel, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := model.SystemLog{
		ID:        model.NewID("log"),
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
	}

	s.logs = append([]model.SystemLog{entry}, s.logs...)
	if len(s.logs) > s.maxEntries {
		s.logs = s.logs[:s.maxEntries]
	}

	s.store.Save(model.CollectionLogs, s.logs)
}

// Logs возвращает копию журнала, от новых к старым
func (s *SysLogService) Logs() []model.SystemLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := make([]model.SystemLog, len(s.logs))
	copy(logs, s.logs)
	return logs
}

// Trim усекает журнал до maxEntries записей и возвращает число
// удаленных. Подстраховка для записей, загруженных из хранилища с
// другим лимитом.
func (s *SysLogService) Trim() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.logs) <= s.maxEntries {
		return 0
	}

	removed := len(s.logs) - s.maxEntries
	s.logs = s.logs[:s.maxEntries]
	s.store.Save(model.CollectionLogs, s.logs)

	s.logger.Debug("Trimmed system log", zap.Int("removed", removed))
	return removed
}
