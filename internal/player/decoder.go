package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// SupportedFormats возвращает список поддерживаемых расширений
func SupportedFormats() []string {
	return []string{".mp3", ".wav", ".flac", ".ogg"}
}

// IsSupported проверяет, поддерживается ли формат файла
func IsSupported(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}

// DecodeFile открывает и декодирует аудио файл по его расширению
func DecodeFile(filePath string) (beep.StreamSeekCloser, beep.Format, error) {
	if !IsSupported(filePath) {
		return nil, beep.Format{}, &Error{
			Op:   "decode",
			Path: filePath,
			Err:  fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filePath)),
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, beep.Format{}, &Error{Op: "open", Path: filePath, Err: err}
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	case ".flac":
		streamer, format, err = flac.Decode(file)
	case ".ogg":
		streamer, format, err = vorbis.Decode(file)
	}
	if err != nil {
		file.Close()
		return nil, beep.Format{}, &Error{Op: "decode", Path: filePath, Err: err}
	}

	return streamer, format, nil
}

// Probe возвращает длительность файла без воспроизведения
func Probe(filePath string) (time.Duration, error) {
	streamer, format, err := DecodeFile(filePath)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}
