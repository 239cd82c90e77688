package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigDefaults проверяет создание конфигурации со значениями по умолчанию
func TestNewConfigDefaults(t *testing.T) {
	// Reset flags for clean test
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}

	os.Unsetenv("ATTEST_API_VERSION")
	os.Unsetenv("ATTEST_EXCLUDE_LIST")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, CurrentAPIVersion, cfg.APIVersion)
	assert.Equal(t, "", cfg.ExcludeListPath)
}

// TestConfigPriority проверяет приоритет источников конфигурации
func TestConfigPriority(t *testing.T) {
	// Сохраняем оригинальные значения переменных окружения
	originalVersion := os.Getenv("ATTEST_API_VERSION")
	defer func() {
		if originalVersion != "" {
			os.Setenv("ATTEST_API_VERSION", originalVersion)
		} else {
			os.Unsetenv("ATTEST_API_VERSION")
		}
	}()

	// Сохраняем оригинальные аргументы командной строки
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	tests := []struct {
		name        string
		envVersion  string
		args        []string
		wantVersion string
	}{
		{
			name:        "Default values",
			envVersion:  "",
			args:        []string{"cmd"},
			wantVersion: "2",
		},
		{
			name:        "Command line flag overrides default",
			envVersion:  "",
			args:        []string{"cmd", "-v", "3"},
			wantVersion: "3",
		},
		{
			name:        "Environment variable overrides flag",
			envVersion:  "4",
			args:        []string{"cmd", "-v", "3"},
			wantVersion: "4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVersion != "" {
				os.Setenv("ATTEST_API_VERSION", tt.envVersion)
			} else {
				os.Unsetenv("ATTEST_API_VERSION")
			}

			os.Args = tt.args
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			cfg, err := NewConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, cfg.APIVersion)
		})
	}
}

// TestConfigValidate проверяет валидацию версии API
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"2", false},
		{"0", false},
		{"9", false},
		{"", true},
		{"10", true},
		{"x", true},
	}

	for _, tt := range tests {
		cfg := &Config{APIVersion: tt.version}
		err := cfg.Validate()
		if tt.wantErr {
			assert.Error(t, err, "version %q", tt.version)
		} else {
			assert.NoError(t, err, "version %q", tt.version)
		}
	}
}

func TestDefaultInitializedOnce(t *testing.T) {
	first := Default()
	require.NotNil(t, first)
	require.NoError(t, first.Validate())

	// Повторные и конкурентные вызовы возвращают тот же объект
	done := make(chan *Config, 10)
	for i := 0; i < 10; i++ {
		go func() { done <- Default() }()
	}
	for i := 0; i < 10; i++ {
		assert.Same(t, first, <-done)
	}
}

func TestLoadExcludeList(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		patterns, err := LoadExcludeList("")
		require.NoError(t, err)
		assert.Nil(t, patterns)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "exclude.yaml")
		content := "- /var/log/.*\n- ^/tmp/scratch/\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		patterns, err := LoadExcludeList(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"/var/log/.*", "^/tmp/scratch/"}, patterns)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadExcludeList(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("not a list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "exclude.yaml")
		require.NoError(t, os.WriteFile(path, []byte("key: value\n"), 0o600))

		_, err := LoadExcludeList(path)
		assert.Error(t, err)
	})
}
