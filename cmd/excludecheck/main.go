package main

import (
	"flag"
	"log"

	"github.com/InQaaaaGit/attest_api.git/internal/buildinfo"
	"github.com/InQaaaaGit/attest_api.git/internal/config"
	"github.com/InQaaaaGit/attest_api.git/internal/exclude"
	"github.com/InQaaaaGit/attest_api.git/internal/metrics"
	"go.uber.org/zap"
)

// excludecheck проверяет файл списка исключений оператора до того, как
// он попадёт в работающий сервис: читает YAML-список регулярных
// выражений и компилирует их в одну альтернацию.
func main() {
	showVersion := flag.Bool("version", false, "Показать информацию о сборке и выйти")

	// Инициализация конфигурации (разбор флагов происходит внутри)
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if *showVersion {
		buildinfo.Current().Print()
		return
	}

	// Инициализация логгера
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}()

	if cfg.ExcludeListPath == "" {
		logger.Fatal("Exclude list path is not set (flag -e or env ATTEST_EXCLUDE_LIST)")
	}

	var result exclude.Result
	err = metrics.Timed(logger, "exclude_list_validation", func() error {
		patterns, err := config.LoadExcludeList(cfg.ExcludeListPath)
		if err != nil {
			return err
		}
		result = exclude.CompileList(patterns)
		return nil
	})
	if err != nil {
		logger.Fatal("Error loading exclude list", zap.Error(err))
	}

	if !result.OK {
		logger.Fatal("Exclude list is invalid",
			zap.String("path", cfg.ExcludeListPath),
			zap.String("error", result.Err))
	}

	if result.Pattern == nil {
		logger.Info("Exclude list is empty", zap.String("path", cfg.ExcludeListPath))
		return
	}

	logger.Info("Exclude list is valid",
		zap.String("path", cfg.ExcludeListPath),
		zap.String("pattern", result.Pattern.String()))
}
