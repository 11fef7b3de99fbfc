package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"nexusforge/internal/model"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SessionRepository реализует хранение активной сессии.
// Сессия хранится отдельно от коллекций: Clear при выходе из системы
// не затрагивает долговременные данные.
type SessionRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSessionRepository создает новый репозиторий сессий
func NewSessionRepository(db *bun.DB, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger,
	}
}

// Save сохраняет пользователя активной сессии.
// Ошибки логируются и не возвращаются.
func (r *SessionRepository) Save(user model.User) {
	ctx := context.Background()

	data, err := json.Marshal(user)
	if err != nil {
		r.logger.Error("Failed to serialize session", zap.Error(err))
		return
	}

	session := &model.Session{
		Key:   model.SessionKey,
		Value: string(data),
	}

	_, err = r.db.NewInsert().
		Model(session).
		On("CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		Exec(ctx)

	if err != nil {
		r.logger.Error("Failed to save session", zap.Error(err))
	}
}

// Load возвращает пользователя активной сессии.
// Возвращает false, если сессии нет или запись не декодируется.
func (r *SessionRepository) Load() (model.User, bool) {
	ctx := context.Background()
	session := new(model.Session)

	err := r.db.NewSelect().
		Model(session).
		Where("key = ?", model.SessionKey).
		Scan(ctx)

	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.logger.Error("Failed to load session", zap.Error(err))
		}
		return model.User{}, false
	}

	var user model.User
	if err := json.Unmarshal([]byte(session.Value), &user); err != nil {
		r.logger.Error("Failed to decode session", zap.Error(err))
		return model.User{}, false
	}

	return user, true
}

// Clear удаляет запись активной сессии
func (r *SessionRepository) Clear() error {
	ctx := context.Background()

	_, err := r.db.NewDelete().
		Model((*model.Session)(nil)).
		Where("key = ?", model.SessionKey).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
