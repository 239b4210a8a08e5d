// Package widgets содержит элементы интерфейса плеера, состояние которых
// живет между кадрами: ползунок перемотки, бегущую строку и кнопку
package widgets

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	sliderPlayedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0000ff"))
	sliderRestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// Slider ползунок перемотки трека
type Slider struct {
	// Sliding выставлен, пока пользователь тянет ползунок
	Sliding bool
}

// Value возвращает долю проигранного в диапазоне [0, 1]
func Value(position, length time.Duration) float64 {
	if length <= 0 {
		return 0
	}
	return clamp(float64(position) / float64(length))
}

// HandleMouse обрабатывает событие мыши для ползунка, расположенного в
// строке y начиная со столбца x. Возвращает долю трека, на которую нужно
// перемотать, и признак того, что перемотка нужна.
func (s *Slider) HandleMouse(msg tea.MouseMsg, x, y, width int) (float64, bool) {
	if width <= 0 {
		return 0, false
	}

	// Зона нажатия выше и ниже линии на одну строку
	inside := msg.X >= x && msg.X < x+width && msg.Y >= y-1 && msg.Y <= y+1

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			s.Sliding = true
			return fraction(msg.X, x, width), true
		}
	case tea.MouseActionMotion:
		if s.Sliding {
			return fraction(msg.X, x, width), true
		}
	case tea.MouseActionRelease:
		s.Sliding = false
	}

	return 0, false
}

// Render рисует ползунок заданной ширины
func (s *Slider) Render(value float64, width int) string {
	if width <= 0 {
		return ""
	}

	knob := int(clamp(value) * float64(width-1))

	var b strings.Builder
	b.WriteString(sliderPlayedStyle.Render(strings.Repeat("━", knob)))
	b.WriteString(sliderPlayedStyle.Render("●"))
	b.WriteString(sliderRestStyle.Render(strings.Repeat("─", width-knob-1)))
	return b.String()
}

func fraction(mouseX, x, width int) float64 {
	return clamp(float64(mouseX-x) / float64(width))
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
