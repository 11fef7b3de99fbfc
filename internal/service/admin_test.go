package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestAdminService(store Store) *AdminService {
	return NewAdminService(store, testSysLog(store), zap.NewNop())
}

func TestAdminService_FeatureFlags(t *testing.T) {
	store := newFakeStore()
	svc := newTestAdminService(store)

	assert.False(t, svc.FeatureFlag("beta_editor"))

	svc.SetFeatureFlag("beta_editor", true)
	assert.True(t, svc.FeatureFlag("beta_editor"))

	// Флаги переживают перезапуск
	restarted := newTestAdminService(store)
	assert.True(t, restarted.FeatureFlag("beta_editor"))
}

func TestAdminService_MaintenanceFlags(t *testing.T) {
	store := newFakeStore()
	svc := newTestAdminService(store)

	svc.SetMaintenanceFlag("billing", true)
	assert.True(t, svc.MaintenanceFlag("billing"))

	svc.SetMaintenanceFlag("billing", false)
	assert.False(t, svc.MaintenanceFlag("billing"))
}

func TestAdminService_Announcement(t *testing.T) {
	store := newFakeStore()
	svc := newTestAdminService(store)

	assert.Empty(t, svc.Announcement().Message)

	svc.SetAnnouncement("Scheduled maintenance at midnight", true)
	ann := svc.Announcement()
	assert.Equal(t, "Scheduled maintenance at midnight", ann.Message)
	assert.True(t, ann.Active)

	restarted := newTestAdminService(store)
	assert.Equal(t, ann, restarted.Announcement())
}

func TestAdminService_BanIP(t *testing.T) {
	store := newFakeStore()
	svc := newTestAdminService(store)

	assert.False(t, svc.IsIPBanned("10.0.0.1"))

	svc.BanIP("10.0.0.1")
	svc.BanIP("10.0.0.1")
	assert.True(t, svc.IsIPBanned("10.0.0.1"))
	assert.Len(t, svc.BannedIPs(), 1)

	svc.UnbanIP("10.0.0.1")
	assert.False(t, svc.IsIPBanned("10.0.0.1"))
	assert.Empty(t, svc.BannedIPs())

	// Снятие несуществующей блокировки безвредно
	svc.UnbanIP("10.0.0.9")
}
