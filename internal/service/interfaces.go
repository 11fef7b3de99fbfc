package service

import "nexusforge/internal/model"

// Store определяет контракт долговременного хранилища коллекций
type Store interface {
	Load(key string, out any) bool
	Save(key string, value any)
}

// SessionStore определяет контракт хранилища активной сессии
type SessionStore interface {
	Save(user model.User)
	Load() (model.User, bool)
	Clear() error
}
