package service

import (
	"testing"

	"nexusforge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTemplateService(store Store, projects *ProjectService) *TemplateService {
	return NewTemplateService(store, projects, testSysLog(store), zap.NewNop())
}

func TestTemplateService_TemplatesListsBuiltinFirst(t *testing.T) {
	store := newFakeStore()
	svc := newTestTemplateService(store, newTestProjectService(store))

	templates := svc.Templates()
	require.Len(t, templates, len(model.BuiltinTemplates()))
	assert.Equal(t, "quantum", templates[0].ID)
}

func TestTemplateService_Register(t *testing.T) {
	store := newFakeStore()
	svc := newTestTemplateService(store, newTestProjectService(store))

	cfg := model.BuiltinTemplates()[0].Config
	cfg.CustomCSS = "body { background: black; }"

	template, err := svc.Register("Dark Quantum", "Quantum with a dark twist", cfg)
	require.NoError(t, err)
	assert.Contains(t, template.Tags, "custom")

	templates := svc.Templates()
	assert.Len(t, templates, len(model.BuiltinTemplates())+1)

	// Пользовательские шаблоны переживают перезапуск
	restarted := newTestTemplateService(store, newTestProjectService(store))
	found, ok := model.FindTemplate(restarted.Templates(), template.ID)
	require.True(t, ok)
	assert.Equal(t, "Dark Quantum", found.Name)
	assert.Equal(t, cfg.CustomCSS, found.Config.CustomCSS)
}

func TestTemplateService_RegisterRejectsEmptyName(t *testing.T) {
	store := newFakeStore()
	svc := newTestTemplateService(store, newTestProjectService(store))

	_, err := svc.Register("", "desc", model.WebsiteConfig{})
	assert.Error(t, err)
}

func TestTemplateService_Remove(t *testing.T) {
	store := newFakeStore()
	svc := newTestTemplateService(store, newTestProjectService(store))

	template, err := svc.Register("Short-lived", "", model.WebsiteConfig{})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(template.ID))
	_, ok := model.FindTemplate(svc.Templates(), template.ID)
	assert.False(t, ok)

	// Встроенные пресеты удалить нельзя
	assert.ErrorIs(t, svc.Remove("quantum"), ErrTemplateNotFound)
}

func TestTemplateService_Apply(t *testing.T) {
	store := newFakeStore()
	projects := newTestProjectService(store)
	svc := newTestTemplateService(store, projects)

	// Проект на первом шаблоне, применяем третий
	project, err := projects.Create(testUser(model.PlanFree), "Shop", model.ProjectWebsite, "quantum")
	require.NoError(t, err)

	require.NoError(t, svc.Apply(project.ID, "ember"))

	updated, err := projects.Get(project.ID)
	require.NoError(t, err)

	cfg, err := updated.WebsiteConfig()
	require.NoError(t, err)

	ember, _ := model.FindTemplate(model.BuiltinTemplates(), "ember")
	assert.Equal(t, ember.Config.Template, cfg.Template)
	assert.Equal(t, ember.Config.Theme, cfg.Theme)

	// Страницы и товары проекта не тронуты
	quantum, _ := model.FindTemplate(model.BuiltinTemplates(), "quantum")
	assert.Equal(t, len(quantum.Config.Products), len(cfg.Products))
	assert.Equal(t, quantum.Config.Products[0].Name, cfg.Products[0].Name)
}

func TestTemplateService_ApplyUnknownTemplate(t *testing.T) {
	store := newFakeStore()
	projects := newTestProjectService(store)
	svc := newTestTemplateService(store, projects)

	project, err := projects.Create(testUser(model.PlanFree), "Shop", model.ProjectWebsite, "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Apply(project.ID, "no-such"), ErrTemplateNotFound)
}

func TestTemplateService_ApplyUnknownProject(t *testing.T) {
	store := newFakeStore()
	svc := newTestTemplateService(store, newTestProjectService(store))

	assert.ErrorIs(t, svc.Apply("proj_missing", "quantum"), ErrProjectNotFound)
}
