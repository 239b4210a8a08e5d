package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-cmusic/internal/cover"
	"github.com/hazadus/go-cmusic/internal/player"
	"github.com/hazadus/go-cmusic/internal/utils"
)

// createInfoCommand создает команду info с привязкой к экземпляру приложения
func (app *Application) createInfoCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Show track metadata",
		Long:  `Print title, artist, album, genre, cover and duration of an audio file.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			app.printInfo(ctx, app.musicPath(args))
			return nil
		},
	}
}

func (app *Application) printInfo(ctx context.Context, filePath string) {
	track := app.Loader.Load(ctx, filePath)

	fmt.Printf("🎵 %s\n", filePath)
	fmt.Printf("   Название: %s\n", track.Title)
	fmt.Printf("   Исполнитель: %s\n", track.Artist)
	fmt.Printf("   Альбом: %s\n", valueOrNA(track.Album))
	fmt.Printf("   Жанр: %s\n", valueOrNA(track.Genre))

	if track.HasCover() {
		if img, format, err := cover.Decode(track.Cover); err == nil {
			b := img.Bounds()
			fmt.Printf("   Обложка: %s %dx%d, %s\n", format, b.Dx(), b.Dy(), utils.FormatFileSize(len(track.Cover)))
		} else {
			fmt.Printf("   Обложка: не читается (%s)\n", utils.FormatFileSize(len(track.Cover)))
		}
	} else {
		fmt.Println("   Обложка: нет")
	}

	if length, err := player.Probe(filePath); err == nil {
		fmt.Printf("   Продолжительность: %s\n", utils.FormatDuration(length))
	} else {
		fmt.Println("   Продолжительность: N/A")
	}
}

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
