// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Значения по умолчанию
const (
	DefaultMusicPath    = "./test.mp3"
	DefaultExiftoolPath = "exiftool"
	DefaultWindowTitle  = "C Music"
	DefaultFPS          = 60
	DefaultSeekStep     = 5 * time.Second
	DefaultPlayerWidth  = 60
	DefaultCoverSize    = 24
	DefaultScrollSpeed  = 8.0
	DefaultTitleGap     = 20
	DefaultSliderMargin = 8
	DefaultVolume       = 0.5
	DefaultLogLevel     = "info"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	MusicPath        string        `yaml:"music_path"`
	ExiftoolPath     string        `yaml:"exiftool_path"`
	WindowTitle      string        `yaml:"window_title"`
	FPS              int           `yaml:"fps"`
	SeekStep         time.Duration `yaml:"seek_step"`
	PlayerWidth      int           `yaml:"player_width"`       // Ширина колонки плеера в ячейках
	CoverSize        int           `yaml:"cover_size"`         // Ширина обложки в ячейках
	TitleScrollSpeed float64       `yaml:"title_scroll_speed"` // Ячеек в секунду
	TitleGap         int           `yaml:"title_gap"`          // Отступ между копиями названия
	SliderMargin     int           `yaml:"slider_margin"`
	Volume           float64       `yaml:"volume"`
	Loop             bool          `yaml:"loop"`
	Autoplay         bool          `yaml:"autoplay"`
	LogFile          string        `yaml:"log_file"`
	LogLevel         string        `yaml:"log_level"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		MusicPath:        DefaultMusicPath,
		ExiftoolPath:     DefaultExiftoolPath,
		WindowTitle:      DefaultWindowTitle,
		FPS:              DefaultFPS,
		SeekStep:         DefaultSeekStep,
		PlayerWidth:      DefaultPlayerWidth,
		CoverSize:        DefaultCoverSize,
		TitleScrollSpeed: DefaultScrollSpeed,
		TitleGap:         DefaultTitleGap,
		SliderMargin:     DefaultSliderMargin,
		Volume:           DefaultVolume,
		Loop:             true,
		LogFile:          filepath.Join(os.TempDir(), "cmusic.log"),
		LogLevel:         DefaultLogLevel,
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращается конфигурация по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Раскрываем тильду в путях
	if config.MusicPath, err = ExpandHome(config.MusicPath); err != nil {
		return nil, err
	}
	if config.LogFile, err = ExpandHome(config.LogFile); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var errs []error

	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps должен быть положительным: %d", c.FPS))
	}
	if c.SeekStep <= 0 {
		errs = append(errs, fmt.Errorf("seek_step должен быть положительным: %s", c.SeekStep))
	}
	if c.PlayerWidth <= 0 {
		errs = append(errs, fmt.Errorf("player_width должен быть положительным: %d", c.PlayerWidth))
	}
	if c.CoverSize <= 0 {
		errs = append(errs, fmt.Errorf("cover_size должен быть положительным: %d", c.CoverSize))
	}
	if c.TitleScrollSpeed < 0 {
		errs = append(errs, fmt.Errorf("title_scroll_speed не может быть отрицательным: %.2f", c.TitleScrollSpeed))
	}
	if c.TitleGap < 0 {
		errs = append(errs, fmt.Errorf("title_gap не может быть отрицательным: %d", c.TitleGap))
	}
	if c.SliderMargin < 0 {
		errs = append(errs, fmt.Errorf("slider_margin не может быть отрицательным: %d", c.SliderMargin))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume должен быть в диапазоне [0, 1]: %.2f", c.Volume))
	}
	if c.ExiftoolPath == "" {
		errs = append(errs, errors.New("exiftool_path не может быть пустым"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("некорректная конфигурация: %w", errors.Join(errs...))
	}
	return nil
}

// ExpandHome раскрывает ведущую тильду в пути
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(path, "~", home, 1), nil
}
