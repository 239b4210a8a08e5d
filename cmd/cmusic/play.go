package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hazadus/go-cmusic/internal/player"
	"github.com/hazadus/go-cmusic/internal/tui"
	tuiplayer "github.com/hazadus/go-cmusic/internal/tui/player"
)

// play открывает экран плеера для файла
func (app *Application) play(ctx context.Context, filePath string) error {
	cfg := app.Config
	track := app.Loader.Load(ctx, filePath)

	p := player.NewPlayer(player.SpeakerOutput{}, player.Options{
		Loop:   cfg.Loop,
		Volume: cfg.Volume,
	}, app.Logger)
	defer p.Close()

	// Без аудио экран все равно показывает метаданные
	var ctrl tuiplayer.Controller
	loadErr := p.Load(filePath)
	if loadErr != nil {
		app.Logger.Error("Не удалось загрузить аудио", zap.String("path", filePath), zap.Error(loadErr))
	} else {
		ctrl = p
		if cfg.Autoplay {
			if err := p.Play(); err != nil {
				return fmt.Errorf("ошибка запуска воспроизведения: %w", err)
			}
		}
	}

	model := tuiplayer.NewModel(track, ctrl, loadErr, tuiplayer.Options{
		FPS:          cfg.FPS,
		SeekStep:     cfg.SeekStep,
		Width:        cfg.PlayerWidth,
		CoverSize:    cfg.CoverSize,
		ScrollSpeed:  cfg.TitleScrollSpeed,
		TitleGap:     cfg.TitleGap,
		SliderMargin: cfg.SliderMargin,
	}, app.Logger)

	if err := tui.NewApp(cfg.WindowTitle, model).Run(ctx); err != nil {
		return fmt.Errorf("ошибка TUI: %w", err)
	}
	return nil
}
