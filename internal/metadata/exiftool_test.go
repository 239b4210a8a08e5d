package metadata

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hazadus/go-cmusic/internal/metadata/mocks"
	"go.uber.org/mock/gomock"
)

func TestExiftoolTags(t *testing.T) {
	const path = "/music/song.mp3"

	tests := []struct {
		name     string
		tag      string
		call     func(e *Exiftool) (string, error)
		output   []byte
		expected string
	}{
		{"title", TagTitle, func(e *Exiftool) (string, error) { return e.Title(context.Background(), path) }, []byte("Stairway to Heaven"), "Stairway to Heaven"},
		{"artist trailing newline", TagArtist, func(e *Exiftool) (string, error) { return e.Artist(context.Background(), path) }, []byte("Led Zeppelin\n"), "Led Zeppelin"},
		{"genre", TagGenre, func(e *Exiftool) (string, error) { return e.Genre(context.Background(), path) }, []byte("Rock"), "Rock"},
		{"album empty", TagAlbum, func(e *Exiftool) (string, error) { return e.Album(context.Background(), path) }, []byte{}, ""},
		{"latin1 output", TagTitle, func(e *Exiftool) (string, error) { return e.Title(context.Background(), path) }, []byte{'C', 'a', 'f', 0xE9}, "Café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockRunner(ctrl)
			runner.EXPECT().
				Output(gomock.Any(), "exiftool", "-b", "-"+tt.tag, path).
				Return(tt.output, nil)

			got, err := tt.call(NewExiftool(runner, "exiftool"))
			if err != nil {
				t.Fatalf("Неожиданная ошибка: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Ожидалось %q, получено %q", tt.expected, got)
			}
		})
	}
}

func TestExiftoolPicture(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)

	jpegHeader := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x0A}
	runner.EXPECT().
		Output(gomock.Any(), "/opt/exiftool", "-b", "-picture", "a.flac").
		Return(jpegHeader, nil)

	got, err := NewExiftool(runner, "/opt/exiftool").Picture(context.Background(), "a.flac")
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	// Бинарные данные не должны обрезаться как текст
	if !bytes.Equal(got, jpegHeader) {
		t.Errorf("Обложка изменена: %v", got)
	}
}

func TestExiftoolErrorWrapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)

	runner.EXPECT().
		Output(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, ErrToolNotFound)

	_, err := NewExiftool(runner, "exiftool").Title(context.Background(), "x.mp3")
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Ожидалась ErrToolNotFound в цепочке ошибок, получено: %v", err)
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		input    []byte
		expected string
	}{
		{[]byte("plain"), "plain"},
		{[]byte("padded \r\n"), "padded"},
		{[]byte("  leading kept\n"), "  leading kept"},
		{[]byte("tail \x00"), "tail"},
		{[]byte("nul\x00\x00"), "nul"},
		{[]byte("Мелодия"), "Мелодия"},
		{[]byte{0x93, 'q', 0x94}, "“q”"},
		{nil, ""},
	}

	for _, test := range tests {
		if got := decodeText(test.input); got != test.expected {
			t.Errorf("decodeText(%v) = %q; expected %q", test.input, got, test.expected)
		}
	}
}
