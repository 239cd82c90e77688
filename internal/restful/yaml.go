package restful

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeLines склеивает список строк в один YAML-документ и разбирает
// его в словарь. Используется для загрузки построчно сохранённых
// канонических значений измерений.
func DecodeLines(lines []string) (map[string]any, error) {
	var result map[string]any
	if err := yaml.Unmarshal([]byte(strings.Join(lines, "\n")), &result); err != nil {
		return nil, err
	}
	return result, nil
}
