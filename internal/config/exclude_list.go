package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadExcludeList читает файл списка исключений: YAML-документ со списком
// строк-регулярок, предоставленный оператором. Синтаксис самих регулярок
// здесь не проверяется — этим занимается пакет exclude.
// Пустой путь означает отсутствие списка.
func LoadExcludeList(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading exclude list: %w", err)
	}

	var patterns []string
	if err := yaml.Unmarshal(data, &patterns); err != nil {
		return nil, fmt.Errorf("parsing exclude list: %w", err)
	}

	return patterns, nil
}
