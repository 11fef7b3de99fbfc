// Package model содержит модели данных платформы.
//
// Группа: ASSETS - Пользовательские ресурсы
// Содержит: CustomImage
package model

import "time"

// CustomImage представляет изображение в библиотеке пользователя.
// SourceURL хранит страницу товара, с которой изображение собрано,
// для загруженных вручную изображений поле пустое.
type CustomImage struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	SourceURL string    `json:"sourceUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
