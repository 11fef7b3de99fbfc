package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"nexusforge/internal/config"
	"nexusforge/internal/configtree"
	"nexusforge/internal/model"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrProjectNotFound возвращается для операций над неизвестным проектом
	ErrProjectNotFound = errors.New("project not found")
	// ErrPlanLimitReached возвращается, когда план не позволяет создать проект
	ErrPlanLimitReached = errors.New("project limit reached for plan")
	// ErrInvalidTransition возвращается при недопустимом переходе хостинга
	ErrInvalidTransition = errors.New("invalid hosting transition")
)

// suffixAlphabet — алфавит случайного суффикса адреса сайта
const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// ProjectService управляет жизненным циклом проектов: создание,
// правка конфигурации по пути, дублирование, удаление и переходы
// статуса хостинга.
type ProjectService struct {
	mu       sync.Mutex
	store    Store
	syslog   *SysLogService
	hosting  config.HostingConfig
	logger   *zap.Logger
	projects []model.Project
	timers   map[string]*time.Timer
	titler   cases.Caser
}

// NewProjectService создает сервис проектов
func NewProjectService(store Store, syslog *SysLogService, hosting config.HostingConfig, logger *zap.Logger) *ProjectService {
	s := &ProjectService{
		store:   store,
		syslog:  syslog,
		hosting: hosting,
		logger:  logger,
		timers:  make(map[string]*time.Timer),
		titler:  cases.Title(language.English),
	}
	store.Load(model.CollectionProjects, &s.projects)

	// Деплой не переживает перезапуск: зависшие переходы откатываются
	for i := range s.projects {
		if s.projects[i].HostingStatus == model.HostingDeploying {
			s.projects[i].HostingStatus = model.HostingUndeployed
		}
	}

	return s
}

// Create создает проект с конфигурацией по умолчанию. Тип проекта
// фиксируется при создании и не меняется. Для сайтов templateID
// выбирает встроенный шаблон, пустое значение — первый шаблон.
func (s *ProjectService) Create(owner model.User, name string, projectType model.ProjectType, templateID string) (model.Project, error) {
	if !projectType.IsValid() {
		return model.Project{}, fmt.Errorf("unknown project type %q", projectType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	owned := 0
	for _, p := range s.projects {
		if p.OwnerID == owner.ID {
			owned++
		}
	}
	if owned >= owner.Plan.ProjectLimit() {
		return model.Project{}, fmt.Errorf("%w: %s allows %d projects", ErrPlanLimitReached, owner.Plan, owner.Plan.ProjectLimit())
	}

	if name == "" {
		name = s.titler.String(string(projectType)) + " Project"
	}

	tree, err := defaultConfigTree(projectType, templateID)
	if err != nil {
		return model.Project{}, err
	}

	project := model.Project{
		ID:            model.NewID("proj"),
		Name:          name,
		Type:          projectType,
		CreatedAt:     time.Now(),
		Config:        tree,
		HostingStatus: model.HostingUndeployed,
		OwnerID:       owner.ID,
		OwnerUsername: owner.Username,
	}
	if err := project.Validate(); err != nil {
		return model.Project{}, fmt.Errorf("invalid project: %w", err)
	}

	s.projects = append(s.projects, project)
	s.store.Save(model.CollectionProjects, s.projects)
	s.syslog.Log(model.LogInfo, fmt.Sprintf("Project %q (%s) created by %s", name, projectType, owner.Username))

	return cloneProject(project), nil
}

// defaultConfigTree возвращает дерево конфигурации нового проекта
func defaultConfigTree(projectType model.ProjectType, templateID string) (configtree.Tree, error) {
	var source any
	if projectType == model.ProjectBot {
		source = model.DefaultBotConfig()
	} else {
		templates := model.BuiltinTemplates()
		template, ok := model.FindTemplate(templates, templateID)
		if !ok {
			template = templates[0]
		}
		source = template.Config
	}

	tree, err := model.ToTree(source)
	if err != nil {
		return nil, fmt.Errorf("failed to build default config: %w", err)
	}
	return tree, nil
}

// Get возвращает копию проекта
func (s *ProjectService) Get(projectID string) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == projectID {
			return cloneProject(s.projects[i]), nil
		}
	}
	return model.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
}

// List возвращает проекты пользователя; пустой ownerID — все проекты
func (s *ProjectService) List(ownerID string) []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	var projects []model.Project
	for i := range s.projects {
		if ownerID == "" || s.projects[i].OwnerID == ownerID {
			projects = append(projects, cloneProject(s.projects[i]))
		}
	}
	return projects
}

// Rename переименовывает проект
func (s *ProjectService) Rename(projectID, name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	return s.update(projectID, func(project *model.Project) error {
		project.Name = name
		return nil
	})
}

// Duplicate создает независимую копию проекта. Копия получает новый
// идентификатор, имя с суффиксом "(Copy)" и сброшенный хостинг.
func (s *ProjectService) Duplicate(projectID string) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}

		duplicate := s.projects[i]
		duplicate.ID = model.NewID("proj")
		duplicate.Name = duplicate.Name + " (Copy)"
		duplicate.CreatedAt = time.Now()
		duplicate.Config = configtree.Clone(duplicate.Config)
		duplicate.HostingStatus = model.HostingUndeployed
		duplicate.LiveURL = ""
		duplicate.BotInviteURL = ""

		s.projects = append(s.projects, duplicate)
		s.store.Save(model.CollectionProjects, s.projects)
		s.syslog.Log(model.LogInfo, fmt.Sprintf("Project %q duplicated", s.projects[i].Name))

		return cloneProject(duplicate), nil
	}

	return model.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
}

// Delete удаляет проект без возможности восстановления
func (s *ProjectService) Delete(projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}

		if timer, ok := s.timers[projectID]; ok {
			timer.Stop()
			delete(s.timers, projectID)
		}

		name := s.projects[i].Name
		s.projects = append(s.projects[:i], s.projects[i+1:]...)
		s.store.Save(model.CollectionProjects, s.projects)
		s.syslog.Log(model.LogInfo, fmt.Sprintf("Project %q deleted", name))
		return nil
	}

	return fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
}

// UpdateConfigValue заменяет одно поле дерева конфигурации по пути
// и сохраняет проект
func (s *ProjectService) UpdateConfigValue(projectID string, path configtree.Path, value any) error {
	return s.update(projectID, func(project *model.Project) error {
		next, err := configtree.Apply(project.Config, path, value)
		if err != nil {
			return fmt.Errorf("failed to update config at %q: %w", path.String(), err)
		}
		project.Config = next
		return nil
	})
}

// PlaceOrder добавляет заказ в коллекцию заказов сайта.
// Заказы хранятся от новых к старым.
func (s *ProjectService) PlaceOrder(projectID string, order model.Order) error {
	orderTree, err := model.ToTree(order)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	return s.update(projectID, func(project *model.Project) error {
		if project.Type != model.ProjectWebsite {
			return fmt.Errorf("project %s is not a website", projectID)
		}

		existing, _ := project.Config["orders"].([]any)
		orders := make([]any, 0, len(existing)+1)
		orders = append(orders, orderTree)
		orders = append(orders, existing...)

		next, err := configtree.Apply(project.Config, configtree.P(configtree.Field("orders")), orders)
		if err != nil {
			return fmt.Errorf("failed to append order: %w", err)
		}
		project.Config = next

		s.syslog.Log(model.LogInfo, fmt.Sprintf("Order %s placed on project %q for $%.2f", order.ID, project.Name, order.Total))
		return nil
	})
}

// Deploy запускает публикацию проекта. Переход undeployed/offline →
// deploying; по истечении задержки деплой всегда завершается успехом и
// проект переходит в online. Начатый деплой не отменяется.
func (s *ProjectService) Deploy(projectID string) error {
	err := s.update(projectID, func(project *model.Project) error {
		switch project.HostingStatus {
		case model.HostingUndeployed, model.HostingOffline:
			project.HostingStatus = model.HostingDeploying
			return nil
		default:
			return fmt.Errorf("%w: cannot deploy from %s", ErrInvalidTransition, project.HostingStatus)
		}
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.timers[projectID] = time.AfterFunc(s.hosting.DeployDelay, func() {
		s.completeDeploy(projectID)
	})
	s.mu.Unlock()

	s.syslog.Log(model.LogInfo, fmt.Sprintf("Deployment started for project %s", projectID))
	return nil
}

// completeDeploy завершает публикацию: проект переходит в online и
// получает адреса
func (s *ProjectService) completeDeploy(projectID string) {
	err := s.update(projectID, func(project *model.Project) error {
		if project.HostingStatus != model.HostingDeploying {
			return nil
		}

		project.HostingStatus = model.HostingOnline
		if project.Type == model.ProjectWebsite {
			project.LiveURL = fmt.Sprintf("https://%s-%s.%s", slugify(project.Name), randomSuffix(6), s.hosting.LiveDomain)
		} else {
			project.BotInviteURL = botInviteURL(project.Config)
		}

		s.syslog.Log(model.LogInfo, fmt.Sprintf("Project %q is now online", project.Name))
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to complete deployment",
			zap.String("project_id", projectID),
			zap.Error(err))
	}

	s.mu.Lock()
	delete(s.timers, projectID)
	s.mu.Unlock()
}

// StopHosting снимает проект с публикации
func (s *ProjectService) StopHosting(projectID string) error {
	return s.update(projectID, func(project *model.Project) error {
		if project.HostingStatus != model.HostingOnline {
			return fmt.Errorf("%w: cannot stop from %s", ErrInvalidTransition, project.HostingStatus)
		}
		project.HostingStatus = model.HostingOffline
		s.syslog.Log(model.LogWarn, fmt.Sprintf("Project %q taken offline", project.Name))
		return nil
	})
}

// Shutdown останавливает таймеры деплоя
func (s *ProjectService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// update применяет изменение к проекту и сохраняет коллекцию
func (s *ProjectService) update(projectID string, apply func(*model.Project) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}

		if err := apply(&s.projects[i]); err != nil {
			return err
		}

		s.store.Save(model.CollectionProjects, s.projects)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
}

// cloneProject возвращает копию проекта с независимым деревом
// конфигурации
func cloneProject(project model.Project) model.Project {
	project.Config = configtree.Clone(project.Config)
	return project
}

// botInviteURL строит пригласительную ссылку бота из clientId дерева
func botInviteURL(tree configtree.Tree) string {
	clientID := "YOUR_CLIENT_ID"
	if id, ok := tree["clientId"].(string); ok && id != "" {
		clientID = id
	}
	return fmt.Sprintf("https://discord.com/api/oauth2/authorize?client_id=%s&permissions=8&scope=bot", clientID)
}

// slugify приводит имя проекта к виду, пригодному для адреса сайта
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// randomSuffix возвращает случайный суффикс адреса сайта
func randomSuffix(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
