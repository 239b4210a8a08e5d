package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cmusic [file]",
		Short: "A minimal terminal music player",
		Long: `A minimal terminal music player with cover art, scrolling title and seek slider.
Metadata is read with exiftool. Without arguments the configured music_path is played.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return app.play(ctx, app.musicPath(args))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configPath, "config", defaultConfigPath, "path to the config file")
	flags.StringVar(&app.exiftoolPath, "exiftool", "", "path to the exiftool binary")
	flags.IntVar(&app.fps, "fps", 0, "frame rate of the player screen")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createInfoCommand(ctx))
	rootCmd.AddCommand(app.createCoverCommand(ctx))

	return rootCmd
}
