// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-cmusic/internal/tui/player"
)

// App представляет основное TUI приложение
type App struct {
	title string
	model tea.Model
	opts  []tea.ProgramOption
}

// NewApp создает новый экземпляр TUI приложения для экрана плеера
func NewApp(title string, model *player.Model, opts ...tea.ProgramOption) *App {
	return &App{
		title: title,
		model: &titledModel{Model: model, title: title},
		opts:  opts,
	}
}

// Run запускает TUI приложение и ждет его завершения или отмены контекста
func (tuiApp *App) Run(ctx context.Context) error {
	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	}, tuiApp.opts...)

	p := tea.NewProgram(tuiApp.model, opts...)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Отмена по сигналу считается штатным завершением
		return nil
	}
	return err
}

// titledModel выставляет заголовок терминала при запуске
type titledModel struct {
	*player.Model
	title string
}

func (m *titledModel) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.title), m.Model.Init())
}
