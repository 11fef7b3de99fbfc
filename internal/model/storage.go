// Package model содержит модели данных платформы.
//
// Группа: STORAGE - Модели хранилища
// Содержит: Collection, Session
package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Имена долговременных коллекций хранилища
const (
	CollectionUsers            = "nexusforge_users"
	CollectionProjects         = "nexusforge_projects"
	CollectionTickets          = "nexusforge_support_tickets"
	CollectionLogs             = "nexusforge_logs"
	CollectionBannedIPs        = "nexusforge_banned_ips"
	CollectionFeatureFlags     = "nexusforge_feature_flags"
	CollectionMaintenanceFlags = "nexusforge_maintenance_flags"
	CollectionAnnouncement     = "nexusforge_announcement"
	CollectionCustomImages     = "nexusforge_custom_images"
	CollectionCustomTemplates  = "nexusforge_custom_templates"
)

// SessionKey — ключ записи активной сессии
const SessionKey = "nexusforge_session"

// Collection представляет именованную коллекцию, сериализованную в JSON
type Collection struct {
	bun.BaseModel `bun:"table:nexusforge.collections"`

	Key       string    `bun:"key,pk" json:"key"`
	Value     string    `bun:"value,notnull" json:"value"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// Session представляет запись активной сессии. Хранится отдельно от
// коллекций: удаляется при выходе, коллекции переживают logout.
type Session struct {
	bun.BaseModel `bun:"table:nexusforge.sessions"`

	Key       string    `bun:"key,pk" json:"key"`
	Value     string    `bun:"value,notnull" json:"value"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
