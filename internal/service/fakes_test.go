package service

import (
	"encoding/json"
	"sync"
	"time"

	"nexusforge/internal/config"
	"nexusforge/internal/model"

	"go.uber.org/zap"
)

// fakeStore хранит коллекции в памяти, прогоняя значения через JSON,
// как это делает репозиторий
type fakeStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (f *fakeStore) Save(key string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	f.data[key] = data
}

func (f *fakeStore) Load(key string, out any) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// fakeSessionStore хранит активную сессию в памяти
type fakeSessionStore struct {
	mu   sync.Mutex
	user *model.User
}

func (f *fakeSessionStore) Save(user model.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = &user
}

func (f *fakeSessionStore) Load() (model.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.user == nil {
		return model.User{}, false
	}
	return *f.user, true
}

func (f *fakeSessionStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = nil
	return nil
}

func testSysLog(store Store) *SysLogService {
	return NewSysLogService(store, 100, zap.NewNop())
}

func testHostingConfig() config.HostingConfig {
	return config.HostingConfig{
		DeployDelay: 10 * time.Millisecond,
		LiveDomain:  "nexusforge.app",
	}
}

func testUser(plan model.Plan) model.User {
	return model.User{
		ID:       model.NewID("user"),
		Username: "tester",
		Role:     model.RoleUser,
		Plan:     plan,
	}
}
