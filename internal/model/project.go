// Package model содержит модели данных платформы.
//
// Группа: ENTITIES - Основные сущности
// Содержит: Project, ProjectType, HostingStatus
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ProjectType представляет тип проекта
type ProjectType string

const (
	ProjectBot     ProjectType = "bot"
	ProjectWebsite ProjectType = "website"
)

// IsValid проверяет, что тип проекта известен
func (t ProjectType) IsValid() bool {
	return t == ProjectBot || t == ProjectWebsite
}

// HostingStatus представляет статус хостинга проекта
type HostingStatus string

const (
	HostingUndeployed HostingStatus = "undeployed"
	HostingDeploying  HostingStatus = "deploying"
	HostingOnline     HostingStatus = "online"
	HostingOffline    HostingStatus = "offline"
)

// Project представляет проект пользователя.
//
// Config хранится как универсальное дерево (map[string]any), чтобы
// редактор мог менять произвольные вложенные поля по пути. Типизированный
// снимок получается через BotConfig()/WebsiteConfig().
type Project struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Type          ProjectType    `json:"type"`
	CreatedAt     time.Time      `json:"createdAt"`
	Config        map[string]any `json:"config"`
	HostingStatus HostingStatus  `json:"hostingStatus"`
	LiveURL       string         `json:"liveUrl,omitempty"`
	BotInviteURL  string         `json:"botInviteUrl,omitempty"`
	OwnerID       string         `json:"ownerId,omitempty"`
	OwnerUsername string         `json:"ownerUsername,omitempty"`
}

// Validate проверяет валидность проекта
func (p *Project) Validate() error {
	var errors ValidationErrors

	if err := ValidateRequired("name", p.Name); err != nil {
		errors = append(errors, err.(ValidationError))
	}

	if !p.Type.IsValid() {
		errors = append(errors, ValidationError{Field: "type", Message: "unknown project type"})
	}

	if p.Config == nil {
		errors = append(errors, ValidationError{Field: "config", Message: "config is required"})
	}

	if errors.HasErrors() {
		return errors
	}
	return nil
}

// BotConfig возвращает типизированный снимок конфигурации бота.
// Снимок не связан с деревом проекта: изменения дерева после вызова
// на него не влияют.
func (p *Project) BotConfig() (BotConfig, error) {
	if p.Type != ProjectBot {
		return BotConfig{}, fmt.Errorf("project %s is not a bot project", p.ID)
	}
	var cfg BotConfig
	if err := decodeTree(p.Config, &cfg); err != nil {
		return BotConfig{}, fmt.Errorf("failed to decode bot config: %w", err)
	}
	return cfg, nil
}

// WebsiteConfig возвращает типизированный снимок конфигурации сайта
func (p *Project) WebsiteConfig() (WebsiteConfig, error) {
	if p.Type != ProjectWebsite {
		return WebsiteConfig{}, fmt.Errorf("project %s is not a website project", p.ID)
	}
	var cfg WebsiteConfig
	if err := decodeTree(p.Config, &cfg); err != nil {
		return WebsiteConfig{}, fmt.Errorf("failed to decode website config: %w", err)
	}
	return cfg, nil
}

// decodeTree декодирует универсальное дерево в типизированную структуру
func decodeTree(tree map[string]any, out any) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// ToTree кодирует типизированную структуру в универсальное дерево
func ToTree(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}
