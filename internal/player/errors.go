package player

import (
	"errors"
	"fmt"
)

// Ошибки плеера
var (
	ErrUnsupportedFormat = errors.New("неподдерживаемый формат аудио")
	ErrNotLoaded         = errors.New("трек не загружен")
	ErrInvalidVolume     = errors.New("громкость должна быть в диапазоне [0, 1]")
)

// Error дополняет ошибку операцией и путем к файлу
type Error struct {
	Op   string // Операция, завершившаяся ошибкой
	Path string // Путь к файлу, если есть
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
