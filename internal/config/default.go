package config

import (
	"sync"

	"github.com/caarlos0/env/v6"
)

var (
	defaultCfg  *Config
	defaultOnce sync.Once
)

// Default возвращает общепроцессную конфигурацию. Первый вызов создаёт
// её ровно один раз (барьер sync.Once защищает от гонки конкурентных
// первых обращений), дальше конфигурация только читается и безопасна
// для совместного использования без блокировок.
//
// В отличие от NewConfig флаги командной строки здесь не читаются:
// Default предназначен для библиотечных вызовов, у которых нет точки
// входа, — только значения по умолчанию и переменные окружения.
func Default() *Config {
	defaultOnce.Do(func() {
		cfg := &Config{
			APIVersion: CurrentAPIVersion,
		}
		// Поля конфигурации строковые, env.Parse для них не возвращает
		// ошибок; некорректная версия из окружения заменяется значением
		// по умолчанию, чтобы ядро всегда имело валидную константу.
		_ = env.Parse(cfg)
		if cfg.Validate() != nil {
			cfg.APIVersion = CurrentAPIVersion
		}
		defaultCfg = cfg
	})
	return defaultCfg
}
