package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	staticTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	scrollingTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff0000"))
)

// Marquee бегущая строка для названий, которые не помещаются по ширине
type Marquee struct {
	Speed  float64 // Ячеек в секунду
	Gap    int     // Отступ между копиями текста
	offset float64
}

// NewMarquee создает бегущую строку
func NewMarquee(speed float64, gap int) *Marquee {
	return &Marquee{Speed: speed, Gap: gap}
}

// Offset возвращает текущее смещение в ячейках
func (m *Marquee) Offset() float64 {
	return m.offset
}

// Advance сдвигает строку на dt секунд. Если текст помещается,
// смещение сбрасывается.
func (m *Marquee) Advance(dt float64, text string, maxWidth int) {
	textWidth := runewidth.StringWidth(text)
	if textWidth <= maxWidth {
		m.offset = 0
		return
	}

	m.offset += m.Speed * dt
	if m.offset >= float64(textWidth+m.Gap) {
		m.offset = 0
	}
}

// Scrolling сообщает, прокручивается ли текст
func (m *Marquee) Scrolling(text string, maxWidth int) bool {
	return runewidth.StringWidth(text) > maxWidth
}

// View возвращает видимую часть текста шириной не больше maxWidth
func (m *Marquee) View(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if !m.Scrolling(text, maxWidth) {
		return staticTitleStyle.Render(text)
	}
	return scrollingTitleStyle.Render(m.Window(text, maxWidth))
}

// Window вырезает из ленты "текст, отступ, текст" окно шириной maxWidth
// начиная с текущего смещения. Широкий символ, обрезанный краем окна,
// заменяется пробелом.
func (m *Marquee) Window(text string, maxWidth int) string {
	start := int(m.offset)
	end := start + maxWidth

	tape := make([]cell, 0, end)
	for len(tape) < end {
		before := len(tape)
		tape = appendCells(tape, text)
		for i := 0; i < m.Gap; i++ {
			tape = append(tape, cell{r: ' ', width: 1})
		}
		if len(tape) == before {
			break
		}
	}
	if len(tape) < end {
		return ""
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		c := tape[i]
		switch {
		case c.width == 0:
			// Хвост широкого символа, начало которого за левым краем
			if i == start {
				b.WriteByte(' ')
			}
		case i+c.width > end:
			b.WriteString(strings.Repeat(" ", end-i))
			i = end
		default:
			b.WriteRune(c.r)
		}
	}
	return b.String()
}

// cell ячейка терминала; width == 0 у продолжения широкого символа
type cell struct {
	r     rune
	width int
}

func appendCells(cells []cell, text string) []cell {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		cells = append(cells, cell{r: r, width: w})
		for j := 1; j < w; j++ {
			cells = append(cells, cell{})
		}
	}
	return cells
}
