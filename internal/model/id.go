// Package model содержит модели данных платформы.
//
// Группа: IDENTITY - Генерация идентификаторов
package model

import (
	"strings"

	"github.com/google/uuid"
)

// NewID возвращает новый идентификатор сущности с префиксом типа,
// например "proj_d4f0c2a1b3e5". Идентификаторы не переиспользуются.
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + raw[:12]
}
