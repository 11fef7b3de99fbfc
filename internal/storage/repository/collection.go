// Package repository содержит репозитории для работы с базой данных.
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

// CollectionRepository реализует хранение именованных коллекций.
//
// Каждая коллекция сериализуется в JSON целиком. Запись выполняется по
// принципу best-effort: ошибка записи логируется и не прерывает работу,
// состояние в памяти остается авторитетным до конца сессии.
type CollectionRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewCollectionRepository создает новый репозиторий коллекций
func NewCollectionRepository(db *bun.DB, logger *zap.Logger) *CollectionRepository {
	return &CollectionRepository{
		db:     db,
		logger: logger,
	}
}

// Save сериализует и сохраняет коллекцию под ключом key.
// Ошибки логируются и не возвращаются.
func (r *CollectionRepository) Save(key string, value any) {
	ctx := context.Background()

	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to serialize collection",
			zap.String("key", key),
			zap.Error(err))
		return
	}

	collection := &model.Collection{
		Key:   key,
		Value: string(data),
	}

	_, err = r.db.NewInsert().
		Model(collection).
		On("CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		Exec(ctx)

	if err != nil {
		r.logger.Error("Failed to save collection",
			zap.String("key", key),
			zap.Error(err))
	}
}

// Load читает коллекцию по ключу key и декодирует ее в out.
// Возвращает false, если ключ отсутствует или значение не декодируется:
// в этом случае out остается нетронутым и вызывающий использует
// значение по умолчанию.
//
// Поля с именами createdAt и timestamp восстанавливаются в time.Time
// внутри универсальных деревьев (map[string]any): сохраненный формат не
// описывает типы, поэтому восстановление идет по соглашению об именах.
func (r *CollectionRepository) Load(key string, out any) bool {
	ctx := context.Background()
	collection := new(model.Collection)

	err := r.db.NewSelect().
		Model(collection).
		Where("key = ?", key).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false
		}
		r.logger.Error("Failed to load collection",
			zap.String("key", key),
			zap.Error(err))
		return false
	}

	if err := DecodeStored([]byte(collection.Value), out); err != nil {
		r.logger.Error("Failed to decode collection",
			zap.String("key", key),
			zap.Error(err))
		return false
	}

	return true
}

// Delete удаляет коллекцию по ключу
func (r *CollectionRepository) Delete(key string) error {
	ctx := context.Background()

	_, err := r.db.NewDelete().
		Model((*model.Collection)(nil)).
		Where("key = ?", key).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", key, err)
	}

	return nil
}

// DecodeStored декодирует сохраненный JSON в out и восстанавливает
// временные метки в универсальных деревьях
func DecodeStored(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	ReviveTimestamps(out)
	return nil
}
