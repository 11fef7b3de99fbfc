package botgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// pyPair представляет одну пару ключ-значение словаря Python
type pyPair struct {
	key   string
	value any
}

// pyDict представляет словарь Python с фиксированным порядком ключей.
// Обычный map не подходит: порядок обхода недетерминирован, а вывод
// генератора обязан быть побайтово воспроизводимым.
type pyDict []pyPair

// pyLiteral форматирует значение как литерал Python
func pyLiteral(v any) string {
	switch value := v.(type) {
	case nil:
		return "None"
	case string:
		return pyString(value)
	case bool:
		if value {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case []any:
		items := make([]string, len(value))
		for i, item := range value {
			items[i] = pyLiteral(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case []string:
		items := make([]string, len(value))
		for i, item := range value {
			items[i] = pyString(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case pyDict:
		pairs := make([]string, len(value))
		for i, pair := range value {
			pairs[i] = pyString(pair.key) + ": " + pyLiteral(pair.value)
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	case map[string]any:
		keys := make([]string, 0, len(value))
		for k := range value {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = pyString(k) + ": " + pyLiteral(value[k])
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return fmt.Sprintf("%v", value)
	}
}

// pyString форматирует строку как литерал Python в одинарных кавычках
func pyString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
