package metadata

import (
	"context"
	"fmt"
)

// Имена тегов exiftool
const (
	TagTitle   = "title"
	TagArtist  = "artist"
	TagGenre   = "genre"
	TagAlbum   = "album"
	TagPicture = "picture"
)

// Exiftool читает теги файла, запуская "exiftool -b -<tag> <file>"
type Exiftool struct {
	runner Runner
	binary string
}

// NewExiftool создает клиент exiftool
func NewExiftool(runner Runner, binary string) *Exiftool {
	return &Exiftool{
		runner: runner,
		binary: binary,
	}
}

// Tag возвращает текстовое значение тега
func (e *Exiftool) Tag(ctx context.Context, filePath, tag string) (string, error) {
	raw, err := e.run(ctx, filePath, tag)
	if err != nil {
		return "", err
	}
	return decodeText(raw), nil
}

// Title возвращает название трека
func (e *Exiftool) Title(ctx context.Context, filePath string) (string, error) {
	return e.Tag(ctx, filePath, TagTitle)
}

// Artist возвращает исполнителя
func (e *Exiftool) Artist(ctx context.Context, filePath string) (string, error) {
	return e.Tag(ctx, filePath, TagArtist)
}

// Genre возвращает жанр
func (e *Exiftool) Genre(ctx context.Context, filePath string) (string, error) {
	return e.Tag(ctx, filePath, TagGenre)
}

// Album возвращает альбом
func (e *Exiftool) Album(ctx context.Context, filePath string) (string, error) {
	return e.Tag(ctx, filePath, TagAlbum)
}

// Picture возвращает сырые байты встроенной обложки.
// Пустой результат без ошибки означает, что обложки нет.
func (e *Exiftool) Picture(ctx context.Context, filePath string) ([]byte, error) {
	return e.run(ctx, filePath, TagPicture)
}

func (e *Exiftool) run(ctx context.Context, filePath, tag string) ([]byte, error) {
	out, err := e.runner.Output(ctx, e.binary, "-b", "-"+tag, filePath)
	if err != nil {
		return nil, fmt.Errorf("exiftool -%s %s: %w", tag, filePath, err)
	}
	return out, nil
}
