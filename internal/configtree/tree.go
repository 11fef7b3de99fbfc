// Package configtree содержит движок обновления дерева конфигурации.
//
// Дерево конфигурации — вложенное JSON-подобное значение
// (map[string]any / []any / скаляры). Обновление заменяет одно поле по
// пути и возвращает новое дерево; исходное дерево никогда не
// модифицируется, поэтому читатели старого снимка не видят изменений.
package configtree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tree представляет дерево конфигурации
type Tree = map[string]any

// ErrInvalidPath возвращается, когда путь не разрешается в дереве.
// Набор путей фиксирован на местах вызова, поэтому такая ошибка —
// ошибка программиста, а не пользовательский ввод.
var ErrInvalidPath = errors.New("invalid config path")

// Step представляет один шаг пути: имя поля или индекс элемента
type Step struct {
	field   string
	index   int
	isIndex bool
}

// Field создает шаг по имени поля
func Field(name string) Step {
	return Step{field: name}
}

// Index создает шаг по индексу элемента последовательности
func Index(i int) Step {
	return Step{index: i, isIndex: true}
}

func (s Step) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.field
}

// Path представляет путь к полю внутри дерева конфигурации
type Path []Step

// P собирает путь из шагов
func P(steps ...Step) Path {
	return Path(steps)
}

func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 && !s.isIndex {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Apply возвращает новое дерево, в котором поле по пути path заменено
// на value. Исходное дерево не изменяется. Каждый префикс пути должен
// разрешаться в существующий контейнер: контейнеры не создаются на лету.
func Apply(tree Tree, path Path, value any) (Tree, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if tree == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidPath)
	}

	next := Clone(tree)

	var current any = next
	for i, step := range path[:len(path)-1] {
		child, err := descend(current, step)
		if err != nil {
			return nil, fmt.Errorf("%w at %q: %v", ErrInvalidPath, path[:i+1].String(), err)
		}
		current = child
	}

	last := path[len(path)-1]
	switch container := current.(type) {
	case map[string]any:
		if last.isIndex {
			return nil, fmt.Errorf("%w at %q: index step on mapping", ErrInvalidPath, path.String())
		}
		container[last.field] = cloneValue(value)
	case []any:
		if !last.isIndex {
			return nil, fmt.Errorf("%w at %q: field step on sequence", ErrInvalidPath, path.String())
		}
		if last.index < 0 || last.index >= len(container) {
			return nil, fmt.Errorf("%w at %q: index %d out of range (len %d)", ErrInvalidPath, path.String(), last.index, len(container))
		}
		container[last.index] = cloneValue(value)
	default:
		return nil, fmt.Errorf("%w at %q: terminal container is %T, not a mapping or sequence", ErrInvalidPath, path.String(), current)
	}

	return next, nil
}

// Get возвращает значение по пути path
func Get(tree Tree, path Path) (any, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var current any = tree
	for i, step := range path {
		child, err := descend(current, step)
		if err != nil {
			return nil, fmt.Errorf("%w at %q: %v", ErrInvalidPath, path[:i+1].String(), err)
		}
		current = child
	}
	return current, nil
}

// descend делает один шаг вглубь дерева
func descend(current any, step Step) (any, error) {
	switch container := current.(type) {
	case map[string]any:
		if step.isIndex {
			return nil, fmt.Errorf("index step on mapping")
		}
		child, ok := container[step.field]
		if !ok {
			return nil, fmt.Errorf("field %q not found", step.field)
		}
		return child, nil
	case []any:
		if !step.isIndex {
			return nil, fmt.Errorf("field step on sequence")
		}
		if step.index < 0 || step.index >= len(container) {
			return nil, fmt.Errorf("index %d out of range (len %d)", step.index, len(container))
		}
		return container[step.index], nil
	default:
		return nil, fmt.Errorf("cannot descend into %T", current)
	}
}

// Clone возвращает полную глубокую копию дерева
func Clone(tree Tree) Tree {
	if tree == nil {
		return nil
	}
	next := make(map[string]any, len(tree))
	for k, v := range tree {
		next[k] = cloneValue(v)
	}
	return next
}

// cloneValue глубоко копирует значение дерева
func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return Clone(value)
	case []any:
		next := make([]any, len(value))
		for i, item := range value {
			next[i] = cloneValue(item)
		}
		return next
	default:
		return v
	}
}
