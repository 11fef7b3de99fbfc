package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"nexusforge/internal/model"

	"go.uber.org/zap"
)

var (
	// ErrIPBanned возвращается при входе с заблокированного IP
	ErrIPBanned = errors.New("ip address is banned")
	// ErrInvalidCredentials возвращается при неверном пароле
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound возвращается для операций над неизвестным пользователем
	ErrUserNotFound = errors.New("user not found")
)

// apiKeyPrefix — префикс выдаваемых API-ключей
const apiKeyPrefix = "nf_live_"

// AuthService управляет пользователями и активной сессией.
// Вход с неизвестным именем регистрирует нового пользователя.
type AuthService struct {
	mu       sync.Mutex
	store    Store
	sessions SessionStore
	admin    *AdminService
	syslog   *SysLogService
	logger   *zap.Logger
	users    []model.User
	current  *model.User
}

// NewAuthService создает сервис аутентификации. Список пользователей
// и активная сессия восстанавливаются из хранилища.
func NewAuthService(store Store, sessions SessionStore, admin *AdminService, syslog *SysLogService, logger *zap.Logger) *AuthService {
	s := &AuthService{
		store:    store,
		sessions: sessions,
		admin:    admin,
		syslog:   syslog,
		logger:   logger,
	}

	if !store.Load(model.CollectionUsers, &s.users) {
		// Первый запуск: платформа начинается с владельца
		s.users = []model.User{
			{
				ID:       model.NewID("user"),
				Username: "admin",
				Email:    "admin@nexusforge.app",
				Password: "password",
				Role:     model.RoleOwner,
				Plan:     model.PlanEnterprise,
			},
		}
		store.Save(model.CollectionUsers, s.users)
	}

	if user, ok := sessions.Load(); ok {
		s.current = &user
		logger.Info("Restored session", zap.String("username", user.Username))
	}

	return s
}

// Login выполняет вход. Неизвестное имя регистрирует нового
// пользователя на плане Free.
func (s *AuthService) Login(username, password, ip string) (model.User, error) {
	if s.admin.IsIPBanned(ip) {
		s.syslog.Log(model.LogWarn, fmt.Sprintf("Login attempt from banned IP %s", ip))
		return model.User{}, ErrIPBanned
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username != username {
			continue
		}
		if s.users[i].Password != password {
			return model.User{}, ErrInvalidCredentials
		}

		s.users[i].IP = ip
		s.store.Save(model.CollectionUsers, s.users)

		user := s.users[i]
		s.current = &user
		s.sessions.Save(user)
		s.syslog.Log(model.LogInfo, fmt.Sprintf("User %s logged in", username))
		return user, nil
	}

	user := model.User{
		ID:       model.NewID("user"),
		Username: username,
		Password: password,
		Role:     model.RoleUser,
		Plan:     model.PlanFree,
		IP:       ip,
	}
	if err := user.Validate(); err != nil {
		return model.User{}, fmt.Errorf("failed to register user: %w", err)
	}

	s.users = append(s.users, user)
	s.store.Save(model.CollectionUsers, s.users)

	s.current = &user
	s.sessions.Save(user)
	s.syslog.Log(model.LogInfo, fmt.Sprintf("New user %s registered", username))
	return user, nil
}

// Logout завершает активную сессию. Долговременные коллекции
// переживают выход.
func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.syslog.Log(model.LogInfo, fmt.Sprintf("User %s logged out", s.current.Username))
	}
	s.current = nil

	if err := s.sessions.Clear(); err != nil {
		s.logger.Error("Failed to clear session", zap.Error(err))
	}
}

// CurrentUser возвращает пользователя активной сессии
func (s *AuthService) CurrentUser() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return model.User{}, false
	}
	return *s.current, true
}

// Users возвращает копию списка пользователей
func (s *AuthService) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, len(s.users))
	copy(users, s.users)
	return users
}

// SetUserPlan меняет тарифный план пользователя
func (s *AuthService) SetUserPlan(userID string, plan model.Plan) error {
	if !plan.IsValid() {
		return fmt.Errorf("unknown plan %q", plan)
	}

	return s.updateUser(userID, func(user *model.User) {
		user.Plan = plan
		s.syslog.Log(model.LogInfo, fmt.Sprintf("User %s moved to plan %s", user.Username, plan))
	})
}

// SetUserRole меняет роль пользователя
func (s *AuthService) SetUserRole(userID string, role model.UserRole) error {
	return s.updateUser(userID, func(user *model.User) {
		user.Role = role
		s.syslog.Log(model.LogInfo, fmt.Sprintf("User %s role set to %s", user.Username, role))
	})
}

// IssueAPIKey выдает пользователю новый API-ключ, заменяя прежний
func (s *AuthService) IssueAPIKey(userID string) (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	key := apiKeyPrefix + hex.EncodeToString(raw)

	err := s.updateUser(userID, func(user *model.User) {
		user.APIKey = key
		s.syslog.Log(model.LogInfo, fmt.Sprintf("API key issued for user %s", user.Username))
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// RevokeAPIKey отзывает API-ключ пользователя
func (s *AuthService) RevokeAPIKey(userID string) error {
	return s.updateUser(userID, func(user *model.User) {
		user.APIKey = ""
		s.syslog.Log(model.LogInfo, fmt.Sprintf("API key revoked for user %s", user.Username))
	})
}

// updateUser применяет изменение к пользователю и сохраняет коллекцию
func (s *AuthService) updateUser(userID string, apply func(*model.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != userID {
			continue
		}

		apply(&s.users[i])

		// Активная сессия видит то же состояние, что и коллекция
		if s.current != nil && s.current.ID == userID {
			user := s.users[i]
			s.current = &user
			s.sessions.Save(user)
		}

		s.store.Save(model.CollectionUsers, s.users)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
}
