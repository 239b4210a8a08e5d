package widgets

import "github.com/charmbracelet/lipgloss"

var buttonStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#ffffff")).
	Background(lipgloss.Color("#0000ff")).
	Padding(0, 2)

// Rect прямоугольная область экрана в ячейках
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains проверяет, попадает ли точка в область
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Button кнопка воспроизведения и паузы
type Button struct {
	Rect Rect
}

// Render рисует кнопку с подписью и запоминает ее размер
func (b *Button) Render(label string) string {
	view := buttonStyle.Render(label)
	b.Rect.Width = lipgloss.Width(view)
	b.Rect.Height = lipgloss.Height(view)
	return view
}

// Hit проверяет нажатие на кнопку
func (b *Button) Hit(x, y int) bool {
	return b.Rect.Contains(x, y)
}
