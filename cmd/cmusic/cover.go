package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-cmusic/internal/cover"
)

// createCoverCommand создает команду cover с привязкой к экземпляру приложения
func (app *Application) createCoverCommand(ctx context.Context) *cobra.Command {
	var output string
	var size int

	cmd := &cobra.Command{
		Use:   "cover [file]",
		Short: "Export the embedded cover image",
		Long:  `Extract the embedded cover of an audio file and save it. The format is chosen by the output extension.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.exportCover(ctx, app.musicPath(args), output, size)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "cover.jpg", "output image path")
	cmd.Flags().IntVar(&size, "size", 0, "scale the cover to this width in pixels (0 keeps the original)")

	return cmd
}

func (app *Application) exportCover(ctx context.Context, filePath, output string, size int) error {
	if size < 0 {
		return fmt.Errorf("размер не может быть отрицательным: %d", size)
	}

	track := app.Loader.Load(ctx, filePath)

	img, _, err := cover.Decode(track.Cover)
	if err != nil {
		return fmt.Errorf("обложка %s: %w", filePath, err)
	}

	if size > 0 {
		img = cover.Scale(img, size)
	}

	if err := cover.Save(img, output); err != nil {
		return fmt.Errorf("ошибка сохранения обложки: %w", err)
	}

	b := img.Bounds()
	fmt.Printf("🖼️  Обложка сохранена: %s (%dx%d)\n", output, b.Dx(), b.Dy())
	return nil
}
