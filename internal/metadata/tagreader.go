package metadata

import (
	"fmt"
	"io"
	"os"

	"github.com/dhowden/tag"
)

// TagReader читает теги напрямую из файла, без внешних утилит.
// Используется, когда exiftool недоступен или вернул не все поля.
type TagReader struct{}

// NewTagReader создает новый TagReader
func NewTagReader() *TagReader {
	return &TagReader{}
}

// ReadFile читает теги из файла
func (r *TagReader) ReadFile(filePath string) (*Track, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	return r.ReadFrom(file, filePath)
}

// ReadFrom читает теги из io.ReadSeeker
func (r *TagReader) ReadFrom(reader io.ReadSeeker, source string) (*Track, error) {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("ошибка перемотки: %w", err)
	}

	m, err := tag.ReadFrom(reader)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения тегов: %w", err)
	}

	track := &Track{
		Path:   source,
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
		Genre:  m.Genre(),
	}
	if picture := m.Picture(); picture != nil {
		track.Cover = picture.Data
	}

	return track, nil
}
