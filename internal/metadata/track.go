// Package metadata извлекает метаданные трека с помощью внешней утилиты exiftool
package metadata

import (
	"path/filepath"
	"strings"
)

// UnknownArtist подставляется, когда исполнителя не удалось определить
const UnknownArtist = "Unknown Artist"

// Track хранит метаданные трека
type Track struct {
	Path   string
	Title  string
	Artist string
	Genre  string
	Album  string
	Cover  []byte // Встроенная обложка в исходном формате
}

// HasCover сообщает, есть ли у трека встроенная обложка
func (t *Track) HasCover() bool {
	return len(t.Cover) > 0
}

// incomplete сообщает, что часть полей не заполнена
func (t *Track) incomplete() bool {
	return t.Title == "" || t.Artist == "" || t.Album == "" || t.Genre == "" || !t.HasCover()
}

// merge заполняет пустые поля значениями из other
func (t *Track) merge(other *Track) {
	if other == nil {
		return
	}
	if t.Title == "" {
		t.Title = other.Title
	}
	if t.Artist == "" {
		t.Artist = other.Artist
	}
	if t.Album == "" {
		t.Album = other.Album
	}
	if t.Genre == "" {
		t.Genre = other.Genre
	}
	if !t.HasCover() {
		t.Cover = other.Cover
	}
}

// applyDefaults заполняет название и исполнителя на основе имени файла
func (t *Track) applyDefaults() {
	artist, title := DefaultsFromPath(t.Path)
	if t.Title == "" {
		t.Title = title
	}
	if t.Artist == "" {
		t.Artist = artist
	}
}

// DefaultsFromPath разбирает имя файла в формате "Artist - Title".
// Если разобрать не удалось, название равно имени файла без расширения.
func DefaultsFromPath(path string) (artist, title string) {
	fileName := filepath.Base(path)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(strings.Join(parts[1:], " - "))
	}

	return UnknownArtist, nameWithoutExt
}
