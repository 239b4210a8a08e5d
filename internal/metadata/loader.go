package metadata

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Loader собирает метаданные трека.
// Ошибки записываются в журнал и не прерывают загрузку.
type Loader struct {
	tool   *Exiftool
	tags   *TagReader
	logger *zap.Logger
}

// NewLoader создает новый Loader
func NewLoader(tool *Exiftool, tags *TagReader, logger *zap.Logger) *Loader {
	return &Loader{
		tool:   tool,
		tags:   tags,
		logger: logger,
	}
}

// Load возвращает метаданные файла. Результат никогда не равен nil.
func (l *Loader) Load(ctx context.Context, filePath string) *Track {
	track := &Track{Path: filePath}

	fields := []struct {
		tag string
		dst *string
	}{
		{TagTitle, &track.Title},
		{TagArtist, &track.Artist},
		{TagGenre, &track.Genre},
		{TagAlbum, &track.Album},
	}

	toolMissing := false
	for _, f := range fields {
		value, err := l.tool.Tag(ctx, filePath, f.tag)
		if err != nil {
			if errors.Is(err, ErrToolNotFound) {
				toolMissing = true
				break
			}
			l.logger.Error("Ошибка чтения тега",
				zap.String("tag", f.tag),
				zap.String("path", filePath),
				zap.Error(err))
			continue
		}
		*f.dst = value
	}

	if !toolMissing {
		cover, err := l.tool.Picture(ctx, filePath)
		switch {
		case errors.Is(err, ErrToolNotFound):
			toolMissing = true
		case err != nil:
			l.logger.Error("Ошибка чтения обложки",
				zap.String("path", filePath),
				zap.Error(err))
		default:
			track.Cover = cover
		}
	}

	if toolMissing {
		l.logger.Warn("exiftool не найден, используется встроенный разбор тегов",
			zap.String("path", filePath))
	}

	if track.incomplete() && l.tags != nil {
		fallback, err := l.tags.ReadFile(filePath)
		if err != nil {
			l.logger.Warn("Встроенный разбор тегов не удался",
				zap.String("path", filePath),
				zap.Error(err))
		} else {
			track.merge(fallback)
		}
	}

	track.applyDefaults()

	if !track.HasCover() {
		l.logger.Error("Не удалось загрузить обложку", zap.String("path", filePath))
	}

	l.logger.Info("Метаданные загружены",
		zap.String("path", filePath),
		zap.String("title", track.Title),
		zap.String("artist", track.Artist),
		zap.Int("cover_bytes", len(track.Cover)))

	return track
}
