// Package config содержит конфигурацию ядра нормализации параметров.
// Конфигурация создаётся один раз при старте процесса и передаётся
// по ссылке во все компоненты, которым она нужна.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

// CurrentAPIVersion — поддерживаемая версия REST API (одна ASCII-цифра).
const CurrentAPIVersion = "2"

// Config хранит конфигурацию приложения.
type Config struct {
	APIVersion      string `env:"ATTEST_API_VERSION"`  // Текущая версия API (одна цифра)
	ExcludeListPath string `env:"ATTEST_EXCLUDE_LIST"` // Путь к файлу со списком исключений
}

// NewConfig инициализирует конфигурацию, читая флаги и переменные окружения.
func NewConfig() (*Config, error) {
	cfg := &Config{
		APIVersion:      CurrentAPIVersion, // Значение по умолчанию
		ExcludeListPath: "",                // Список исключений по умолчанию отсутствует
	}

	// 1. Определение флагов командной строки
	flag.StringVar(&cfg.APIVersion, "v", cfg.APIVersion, "Текущая версия API (env: ATTEST_API_VERSION)")
	flag.StringVar(&cfg.ExcludeListPath, "e", cfg.ExcludeListPath, "Путь к файлу списка исключений (env: ATTEST_EXCLUDE_LIST)")

	// 2. Парсинг флагов командной строки
	flag.Parse()

	// 3. Парсинг переменных окружения (имеет наивысший приоритет)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет корректность значений конфигурации.
// Версия API должна быть ровно одной ASCII-цифрой: токен версии в URL
// сравнивается с ней посимвольно.
func (c *Config) Validate() error {
	if len(c.APIVersion) != 1 || c.APIVersion[0] < '0' || c.APIVersion[0] > '9' {
		return fmt.Errorf("invalid API version %q: must be a single digit", c.APIVersion)
	}
	return nil
}
