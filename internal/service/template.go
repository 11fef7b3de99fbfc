package service

import (
	"errors"
	"fmt"
	"sync"

	"nexusforge/internal/configtree"
	"nexusforge/internal/model"

	"go.uber.org/zap"
)

// ErrTemplateNotFound возвращается для операций над неизвестным шаблоном
var ErrTemplateNotFound = errors.New("template not found")

// TemplateService управляет каталогом шаблонов сайтов: встроенными
// пресетами и пользовательскими шаблонами
type TemplateService struct {
	mu       sync.Mutex
	store    Store
	projects *ProjectService
	syslog   *SysLogService
	logger   *zap.Logger
	custom   []model.WebsiteTemplate
}

// NewTemplateService создает сервис каталога шаблонов
func NewTemplateService(store Store, projects *ProjectService, syslog *SysLogService, logger *zap.Logger) *TemplateService {
	s := &TemplateService{
		store:    store,
		projects: projects,
		syslog:   syslog,
		logger:   logger,
	}
	store.Load(model.CollectionCustomTemplates, &s.custom)
	return s
}

// Templates возвращает каталог: встроенные пресеты, затем
// пользовательские шаблоны
func (s *TemplateService) Templates() []model.WebsiteTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()

	builtin := model.BuiltinTemplates()
	templates := make([]model.WebsiteTemplate, 0, len(builtin)+len(s.custom))
	templates = append(templates, builtin...)
	templates = append(templates, s.custom...)
	return templates
}

// Register сохраняет конфигурацию сайта как пользовательский шаблон
func (s *TemplateService) Register(name, description string, cfg model.WebsiteConfig) (model.WebsiteTemplate, error) {
	if name == "" {
		return model.WebsiteTemplate{}, fmt.Errorf("template name cannot be empty")
	}

	template := model.WebsiteTemplate{
		ID:          model.NewID("tmpl"),
		Name:        name,
		Description: description,
		Tags:        []string{"custom"},
		Config:      cfg,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.custom = append(s.custom, template)
	s.store.Save(model.CollectionCustomTemplates, s.custom)
	s.syslog.Log(model.LogInfo, fmt.Sprintf("Custom template %q registered", name))

	return template, nil
}

// Remove удаляет пользовательский шаблон. Встроенные пресеты
// удалить нельзя.
func (s *TemplateService) Remove(templateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.custom {
		if s.custom[i].ID != templateID {
			continue
		}

		s.custom = append(s.custom[:i], s.custom[i+1:]...)
		s.store.Save(model.CollectionCustomTemplates, s.custom)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
}

// Apply применяет шаблон к сайту: заменяет тему и стилевой пресет,
// не трогая страницы, товары и заказы проекта
func (s *TemplateService) Apply(projectID, templateID string) error {
	template, ok := model.FindTemplate(s.Templates(), templateID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}

	theme, err := model.ToTree(template.Config.Theme)
	if err != nil {
		return fmt.Errorf("failed to encode template theme: %w", err)
	}

	if err := s.projects.UpdateConfigValue(projectID, configtree.P(configtree.Field("theme")), theme); err != nil {
		return err
	}
	if err := s.projects.UpdateConfigValue(projectID, configtree.P(configtree.Field("template")), string(template.Config.Template)); err != nil {
		return err
	}

	s.syslog.Log(model.LogInfo, fmt.Sprintf("Template %q applied to project %s", template.Name, projectID))
	return nil
}
