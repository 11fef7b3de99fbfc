package service

import (
	"fmt"
	"sync"

	"nexusforge/internal/model"

	"go.uber.org/zap"
)

// AdminService управляет административным состоянием платформы:
// флагами функций, флагами обслуживания, объявлением и списком
// заблокированных IP-адресов.
type AdminService struct {
	mu               sync.Mutex
	store            Store
	syslog           *SysLogService
	logger           *zap.Logger
	featureFlags     map[string]bool
	maintenanceFlags map[string]bool
	announcement     model.Announcement
	bannedIPs        []string
}

// NewAdminService создает административный сервис
func NewAdminService(store Store, syslog *SysLogService, logger *zap.Logger) *AdminService {
	s := &AdminService{
		store:            store,
		syslog:           syslog,
		logger:           logger,
		featureFlags:     make(map[string]bool),
		maintenanceFlags: make(map[string]bool),
	}

	store.Load(model.CollectionFeatureFlags, &s.featureFlags)
	store.Load(model.CollectionMaintenanceFlags, &s.maintenanceFlags)
	store.Load(model.CollectionAnnouncement, &s.announcement)
	store.Load(model.CollectionBannedIPs, &s.bannedIPs)

	return s
}

// FeatureFlag возвращает значение флага функции
func (s *AdminService) FeatureFlag(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.featureFlags[name]
}

// SetFeatureFlag устанавливает флаг функции
func (s *AdminService) SetFeatureFlag(name string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.featureFlags[name] = enabled
	s.store.Save(model.CollectionFeatureFlags, s.featureFlags)
	s.syslog.Log(model.LogInfo, fmt.Sprintf("Feature flag %q set to %t", name, enabled))
}

// MaintenanceFlag возвращает значение флага обслуживания
func (s *AdminService) MaintenanceFlag(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maintenanceFlags[name]
}

// SetMaintenanceFlag устанавливает флаг обслуживания
func (s *AdminService) SetMaintenanceFlag(name string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.maintenanceFlags[name] = enabled
	s.store.Save(model.CollectionMaintenanceFlags, s.maintenanceFlags)
	s.syslog.Log(model.LogWarn, fmt.Sprintf("Maintenance flag %q set to %t", name, enabled))
}

// Announcement возвращает текущее объявление платформы
func (s *AdminService) Announcement() model.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.announcement
}

// SetAnnouncement обновляет объявление платформы
func (s *AdminService) SetAnnouncement(message string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.announcement = model.Announcement{Message: message, Active: active}
	s.store.Save(model.CollectionAnnouncement, s.announcement)
}

// IsIPBanned проверяет, заблокирован ли IP-адрес
func (s *AdminService) IsIPBanned(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, banned := range s.bannedIPs {
		if banned == ip {
			return true
		}
	}
	return false
}

// BanIP блокирует IP-адрес. Повторная блокировка не дублирует запись.
func (s *AdminService) BanIP(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, banned := range s.bannedIPs {
		if banned == ip {
			return
		}
	}

	s.bannedIPs = append(s.bannedIPs, ip)
	s.store.Save(model.CollectionBannedIPs, s.bannedIPs)
	s.syslog.Log(model.LogWarn, fmt.Sprintf("IP address %s banned", ip))
}

// UnbanIP снимает блокировку IP-адреса
func (s *AdminService) UnbanIP(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, banned := range s.bannedIPs {
		if banned == ip {
			s.bannedIPs = append(s.bannedIPs[:i], s.bannedIPs[i+1:]...)
			s.store.Save(model.CollectionBannedIPs, s.bannedIPs)
			s.syslog.Log(model.LogInfo, fmt.Sprintf("IP address %s unbanned", ip))
			return
		}
	}
}

// BannedIPs возвращает копию списка заблокированных IP-адресов
func (s *AdminService) BannedIPs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ips := make([]string, len(s.bannedIPs))
	copy(ips, s.bannedIPs)
	return ips
}
