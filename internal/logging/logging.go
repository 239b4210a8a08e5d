// Package logging создает структурированный логгер приложения.
// Терминал занят интерфейсом плеера, поэтому журнал пишется в файл.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New создает zap логгер, пишущий в файл filePath с уровнем level
func New(level, filePath string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("неизвестный уровень логирования %q: %w", level, err)
	}

	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("ошибка создания директории журнала: %w", err)
		}
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{filePath},
		ErrorOutputPaths: []string{filePath},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("ошибка создания логгера: %w", err)
	}
	return logger, nil
}
