package repository

import (
	"reflect"
	"time"
)

// Имена полей, которые восстанавливаются в time.Time при загрузке.
// Сериализованный JSON не хранит типы, поэтому восстановление идет по
// соглашению об именах полей.
const (
	revivedFieldCreatedAt = "createdAt"
	revivedFieldTimestamp = "timestamp"
)

var (
	treeType = reflect.TypeOf(map[string]any(nil))
	listType = reflect.TypeOf([]any(nil))
	timeType = reflect.TypeOf(time.Time{})
)

// ReviveTimestamps обходит декодированное значение и заменяет строковые
// значения полей createdAt и timestamp внутри универсальных деревьев
// (map[string]any / []any) на time.Time. Строки, не являющиеся метками
// времени RFC 3339, остаются без изменений.
func ReviveTimestamps(out any) {
	reviveReflect(reflect.ValueOf(out))
}

// reviveReflect спускается через типизированные контейнеры до
// универсальных деревьев. Деревья и срезы мутируются на месте: их
// внутреннее хранилище разделяется между копиями заголовков, поэтому
// адресуемость значения не требуется.
func reviveReflect(v reflect.Value) {
	if !v.IsValid() {
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			reviveReflect(v.Elem())
		}
	case reflect.Struct:
		if v.Type() == timeType {
			return
		}
		for i := 0; i < v.NumField(); i++ {
			field := v.Field(i)
			if !field.CanInterface() {
				continue
			}
			reviveReflect(field)
		}
	case reflect.Slice, reflect.Array:
		if v.Type() == listType {
			reviveList(v.Interface().([]any))
			return
		}
		for i := 0; i < v.Len(); i++ {
			reviveReflect(v.Index(i))
		}
	case reflect.Map:
		if v.Type() == treeType {
			reviveTree(v.Interface().(map[string]any))
			return
		}
		for _, key := range v.MapKeys() {
			reviveReflect(v.MapIndex(key))
		}
	}
}

// reviveTree восстанавливает временные метки в дереве на месте
func reviveTree(tree map[string]any) {
	for key, value := range tree {
		if key == revivedFieldCreatedAt || key == revivedFieldTimestamp {
			if s, ok := value.(string); ok {
				if ts, err := time.Parse(time.RFC3339, s); err == nil {
					tree[key] = ts
					continue
				}
			}
		}
		reviveChild(value)
	}
}

// reviveList восстанавливает временные метки в элементах среза на месте
func reviveList(list []any) {
	for _, item := range list {
		reviveChild(item)
	}
}

func reviveChild(value any) {
	switch child := value.(type) {
	case map[string]any:
		reviveTree(child)
	case []any:
		reviveList(child)
	}
}
