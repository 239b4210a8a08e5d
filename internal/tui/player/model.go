// Package player содержит модель экрана воспроизведения для TUI
package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/hazadus/go-cmusic/internal/cover"
	"github.com/hazadus/go-cmusic/internal/metadata"
	"github.com/hazadus/go-cmusic/internal/player"
	"github.com/hazadus/go-cmusic/internal/tui/widgets"
	"github.com/hazadus/go-cmusic/internal/utils"
)

// Отступ текста от края колонки плеера
const padding = 2

// Шаг изменения громкости
const volumeStep = 0.05

var (
	artistStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	trackInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)
)

// Controller управляет воспроизведением загруженного трека
type Controller interface {
	Toggle() error
	Seek(pos time.Duration) error
	SeekBy(delta time.Duration) error
	SetVolume(level float64) error
	Status() player.Status
	Done() <-chan struct{}
}

// Options настройки экрана плеера
type Options struct {
	FPS          int
	SeekStep     time.Duration
	Width        int // Ширина колонки плеера
	CoverSize    int
	ScrollSpeed  float64
	TitleGap     int
	SliderMargin int
}

// frameMsg приходит на каждом кадре
type frameMsg time.Time

// PlaybackFinishedMsg отправляется при завершении воспроизведения
type PlaybackFinishedMsg struct{}

// layout координаты элементов на экране
type layout struct {
	left        int // Левый край колонки плеера
	titleWidth  int
	buttonY     int
	sliderX     int
	sliderY     int
	sliderWidth int
}

// Model представляет модель экрана воспроизведения
type Model struct {
	track   *metadata.Track
	ctrl    Controller // nil, если аудио не загрузилось
	loadErr error
	opts    Options
	logger  *zap.Logger

	cover   []string
	marquee *widgets.Marquee
	slider  widgets.Slider
	button  widgets.Button
	keys    keyMap
	help    help.Model

	status    player.Status
	finished  bool
	lastFrame time.Time
	width     int
	height    int
}

// NewModel создает новую модель плеера. ctrl может быть nil, тогда
// экран показывает метаданные и ошибку загрузки аудио.
func NewModel(track *metadata.Track, ctrl Controller, loadErr error, opts Options, logger *zap.Logger) *Model {
	m := &Model{
		track:   track,
		ctrl:    ctrl,
		loadErr: loadErr,
		opts:    opts,
		logger:  logger,
		marquee: widgets.NewMarquee(opts.ScrollSpeed, opts.TitleGap),
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   opts.Width,
	}
	m.cover = m.loadCover()
	if ctrl != nil {
		m.status = ctrl.Status()
	}
	return m
}

// loadCover готовит строки обложки. При ошибке используется заглушка.
func (m *Model) loadCover() []string {
	if !m.track.HasCover() {
		return cover.Placeholder(m.opts.CoverSize)
	}

	img, format, err := cover.Decode(m.track.Cover)
	if err != nil {
		m.logger.Error("Не удалось загрузить обложку",
			zap.String("path", m.track.Path),
			zap.Error(err))
		return cover.Placeholder(m.opts.CoverSize)
	}

	m.logger.Debug("Обложка декодирована",
		zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))

	return cover.Render(cover.Scale(img, m.opts.CoverSize))
}

// Init запускает таймер кадров
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.tick(),
		m.listenForFinish(),
	)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		dt := time.Second / time.Duration(max(m.opts.FPS, 1))
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		m.lastFrame = now

		m.marquee.Advance(dt.Seconds(), m.track.Title, m.layout().titleWidth)
		if m.ctrl != nil {
			m.status = m.ctrl.Status()
		}
		return m, m.tick()

	case PlaybackFinishedMsg:
		m.finished = true
		if m.ctrl != nil {
			m.status = m.ctrl.Status()
		}
		m.logger.Info("Воспроизведение завершено", zap.String("path", m.track.Path))
		return m, m.listenForFinish()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	if m.ctrl == nil {
		return nil
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.Toggle):
		err = m.toggle()
	case key.Matches(msg, m.keys.Forward):
		err = m.ctrl.SeekBy(m.opts.SeekStep)
	case key.Matches(msg, m.keys.Backward):
		err = m.ctrl.SeekBy(-m.opts.SeekStep)
	case key.Matches(msg, m.keys.VolumeUp):
		err = m.ctrl.SetVolume(min(m.status.Volume+volumeStep, 1))
	case key.Matches(msg, m.keys.VolumeDown):
		err = m.ctrl.SetVolume(max(m.status.Volume-volumeStep, 0))
	}

	m.afterControl(err)
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.ctrl == nil {
		return
	}

	l := m.layout()
	var err error

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.button.Hit(msg.X, msg.Y) {
		err = m.toggle()
	}

	if value, seek := m.slider.HandleMouse(msg, l.sliderX, l.sliderY, l.sliderWidth); seek {
		err = m.ctrl.Seek(time.Duration(value * float64(m.status.Total)))
	}

	m.afterControl(err)
}

func (m *Model) toggle() error {
	m.finished = false
	return m.ctrl.Toggle()
}

func (m *Model) afterControl(err error) {
	if err != nil {
		m.logger.Warn("Ошибка управления воспроизведением", zap.Error(err))
	}
	m.status = m.ctrl.Status()
}

// layout вычисляет положение элементов. Строки идут сверху вниз:
// обложка, отступ, название, исполнитель, альбом, отступ, кнопка,
// отступ, ползунок, время.
func (m *Model) layout() layout {
	columnWidth := m.opts.Width
	if m.width > 0 && m.width < columnWidth {
		columnWidth = m.width
	}

	left := max((m.width-columnWidth)/2, 0)
	titleY := len(m.cover) + 1
	buttonY := titleY + 4
	sliderWidth := max(columnWidth-m.opts.SliderMargin*2, 1)

	return layout{
		left:        left,
		titleWidth:  max(columnWidth-padding*2, 1),
		buttonY:     buttonY,
		sliderX:     left + m.opts.SliderMargin,
		sliderY:     buttonY + 2,
		sliderWidth: sliderWidth,
	}
}

// View отображает модель
func (m *Model) View() string {
	l := m.layout()
	indent := strings.Repeat(" ", l.left+padding)

	lines := make([]string, 0, len(m.cover)+12)

	// Обложка по центру колонки
	coverLeft := l.left + max((l.titleWidth+padding*2-cover.Width(m.cover))/2, 0)
	for _, row := range m.cover {
		lines = append(lines, strings.Repeat(" ", coverLeft)+row)
	}

	lines = append(lines, "")
	lines = append(lines, indent+m.marquee.View(m.track.Title, l.titleWidth))
	lines = append(lines, indent+artistStyle.Render(utils.TruncateString(m.track.Artist, l.titleWidth)))
	lines = append(lines, indent+trackInfoStyle.Render(utils.TruncateString(m.trackInfo(), l.titleWidth)))
	lines = append(lines, "")

	m.button.Rect.X = l.left + padding
	m.button.Rect.Y = l.buttonY
	lines = append(lines, indent+m.button.Render(m.buttonLabel()))
	lines = append(lines, "")

	value := widgets.Value(m.status.Current, m.status.Total)
	lines = append(lines, strings.Repeat(" ", l.sliderX)+m.slider.Render(value, l.sliderWidth))
	lines = append(lines, strings.Repeat(" ", l.sliderX)+timeStyle.Render(m.timeText()))

	if m.loadErr != nil {
		lines = append(lines, "", indent+errorStyle.Render("❌ "+m.loadErr.Error()))
	}

	lines = append(lines, "", indent+m.help.View(m.keys))

	return strings.Join(lines, "\n")
}

func (m *Model) buttonLabel() string {
	if m.status.IsPlaying {
		return "⏸ Пауза"
	}
	return "▶ Играть"
}

func (m *Model) trackInfo() string {
	parts := make([]string, 0, 2)
	if m.track.Album != "" {
		parts = append(parts, m.track.Album)
	}
	if m.track.Genre != "" {
		parts = append(parts, m.track.Genre)
	}
	return strings.Join(parts, " • ")
}

func (m *Model) timeText() string {
	text := fmt.Sprintf("%s / %s  🔊 %d%%",
		utils.FormatDuration(m.status.Current),
		utils.FormatDuration(m.status.Total),
		int(m.status.Volume*100+0.5))
	if m.finished {
		text += "  • трек закончился"
	}
	return text
}

// tick планирует следующий кадр
func (m *Model) tick() tea.Cmd {
	fps := max(m.opts.FPS, 1)
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// listenForFinish ждет сигнала о завершении трека
func (m *Model) listenForFinish() tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	done := m.ctrl.Done()
	return func() tea.Msg {
		<-done
		return PlaybackFinishedMsg{}
	}
}
