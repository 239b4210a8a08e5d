package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hazadus/go-cmusic/internal/config"
	"github.com/hazadus/go-cmusic/internal/logging"
	"github.com/hazadus/go-cmusic/internal/metadata"
)

const defaultConfigPath = "~/.cmusic"

// Application хранит зависимости, общие для всех команд
type Application struct {
	Config *config.Config
	Logger *zap.Logger
	Loader *metadata.Loader

	// Значения флагов командной строки
	configPath   string
	exiftoolPath string
	fps          int
}

// setup загружает конфигурацию, применяет флаги и создает логгер
func (app *Application) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(app.configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("exiftool") {
		cfg.ExiftoolPath = app.exiftoolPath
	}
	if flags.Changed("fps") {
		cfg.FPS = app.fps
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("ошибка создания логгера: %w", err)
	}

	app.Config = cfg
	app.Logger = logger
	app.Loader = metadata.NewLoader(
		metadata.NewExiftool(metadata.NewCommandRunner(logger), cfg.ExiftoolPath),
		metadata.NewTagReader(),
		logger,
	)

	logger.Debug("Приложение настроено",
		zap.String("config", app.configPath),
		zap.String("exiftool", cfg.ExiftoolPath),
		zap.Int("fps", cfg.FPS))

	return nil
}

// musicPath возвращает путь из аргументов или из конфигурации
func (app *Application) musicPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return app.Config.MusicPath
}

// Close сбрасывает буферы логгера
func (app *Application) Close() {
	if app.Logger != nil {
		_ = app.Logger.Sync()
	}
}
