// Package cover декодирует встроенную обложку и рисует ее в терминале
package cover

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF
	_ "image/jpeg" // JPEG
	_ "image/png"  // PNG
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // BMP
	_ "golang.org/x/image/webp" // WebP
)

// ErrNoCover возвращается, если у трека нет обложки
var ErrNoCover = errors.New("обложка отсутствует")

const (
	upperHalfBlock = "▀"
	placeholderBg  = "#333333"
	placeholderFg  = "#888888"
)

// Decode декодирует обложку из сырых байтов
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrNoCover
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("ошибка декодирования обложки: %w", err)
	}

	// Защита от деления на ноль при масштабировании
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, "", fmt.Errorf("некорректный размер обложки: %dx%d", bounds.Dx(), bounds.Dy())
	}

	return img, format, nil
}

// Scale масштабирует изображение до заданной ширины с сохранением пропорций
func Scale(img image.Image, width int) image.Image {
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// Save сохраняет изображение, формат определяется по расширению файла
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("ошибка сохранения обложки: %w", err)
	}
	return nil
}

// Render рисует изображение полублоками: одна строка терминала
// содержит две строки пикселей
func Render(img image.Image) []string {
	bounds := img.Bounds()
	lines := make([]string, 0, (bounds.Dy()+1)/2)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		var line strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img.At(x, y)))
			if y+1 < bounds.Max.Y {
				style = style.Background(hexColor(img.At(x, y+1)))
			}
			line.WriteString(style.Render(upperHalfBlock))
		}
		lines = append(lines, line.String())
	}

	return lines
}

// Placeholder рисует заглушку размером size ячеек в ширину
func Placeholder(size int) []string {
	if size <= 0 {
		return nil
	}

	rows := (size + 1) / 2
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(placeholderBg)).
		Foreground(lipgloss.Color(placeholderFg))

	lines := make([]string, rows)
	for i := range lines {
		row := strings.Repeat(" ", size)
		if i == rows/2 {
			mid := (size - 1) / 2
			row = strings.Repeat(" ", mid) + "♪" + strings.Repeat(" ", size-mid-1)
		}
		lines[i] = style.Render(row)
	}
	return lines
}

// Width возвращает ширину отрисованной обложки в ячейках
func Width(lines []string) int {
	if len(lines) == 0 {
		return 0
	}
	return lipgloss.Width(lines[0])
}

// hexColor переводит цвет пикселя в цвет lipgloss
func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
