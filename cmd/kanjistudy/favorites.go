package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/stealthwork/kanjistudy/internal/cli"
	"github.com/stealthwork/kanjistudy/internal/dictionary"
	"github.com/stealthwork/kanjistudy/internal/store"
)

func newFavoritesCommand() *cobra.Command {
	favoritesCommand := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorited kanji",
	}

	favoritesCommand.AddCommand(
		newFavoritesListCommand(),
		newFavoritesToggleCommand(),
		newFavoritesRemoveCommand(),
	)

	return favoritesCommand
}

func withFavoritesCLI(fn func(ctx context.Context, favoritesCLI *cli.FavoritesCLI) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func(db *sqlx.DB) {
		_ = db.Close()
	}(db)

	favoritesCLI := cli.NewFavoritesCLI(userID, store.NewDBFavoriteRepository(db), dictionary.NewClient(cfg.Dictionary))
	return fn(ctx, favoritesCLI)
}

func newFavoritesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your favorited kanji",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFavoritesCLI(func(ctx context.Context, favoritesCLI *cli.FavoritesCLI) error {
				return favoritesCLI.List(ctx)
			})
		},
	}
}

func newFavoritesToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <kanji>",
		Short: "Favorite a kanji, or unfavorite it if already favorited",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFavoritesCLI(func(ctx context.Context, favoritesCLI *cli.FavoritesCLI) error {
				return favoritesCLI.Toggle(ctx, args[0])
			})
		},
	}
}

func newFavoritesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <kanji>",
		Short: "Remove a kanji from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFavoritesCLI(func(ctx context.Context, favoritesCLI *cli.FavoritesCLI) error {
				return favoritesCLI.Remove(ctx, args[0])
			})
		},
	}
}
