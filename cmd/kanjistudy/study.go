package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stealthwork/kanjistudy/internal/cli"
	"github.com/stealthwork/kanjistudy/internal/settings"
	"github.com/stealthwork/kanjistudy/internal/store"
)

func newStudyCommand() *cobra.Command {
	var source sourceFlags
	command := &cobra.Command{
		Use:   "study",
		Short: "Flashcard session over the selected kanji",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			entries, err := source.resolveEntries(ctx, cfg)
			if err != nil {
				return err
			}

			prefs, err := settings.NewStore(cfg.Settings.FilePath).Load()
			if err != nil {
				return fmt.Errorf("settings.Load > %w", err)
			}

			// The database only backs the favorite command here, so a
			// catalog-sourced session still works without one.
			var favorites store.FavoriteRepository
			if db, dbErr := store.Open(cfg.Database); dbErr != nil {
				slog.Warn("favorites are unavailable for this session", slog.Any("error", dbErr))
			} else {
				defer func() {
					_ = db.Close()
				}()
				favorites = store.NewDBFavoriteRepository(db)
			}

			studyCLI := cli.NewStudyCLI(entries, prefs.ShowRomaji, userID, favorites)
			fmt.Println("Flashcard session started.")
			return studyCLI.Run(ctx, studyCLI)
		},
	}
	source.register(command)

	return command
}
