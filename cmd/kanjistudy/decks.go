package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/stealthwork/kanjistudy/internal/cli"
	"github.com/stealthwork/kanjistudy/internal/dictionary"
	"github.com/stealthwork/kanjistudy/internal/store"
)

func newDecksCommand() *cobra.Command {
	decksCommand := &cobra.Command{
		Use:   "decks",
		Short: "Manage kanji decks",
	}

	decksCommand.AddCommand(
		newDecksListCommand(),
		newDecksCreateCommand(),
		newDecksRenameCommand(),
		newDecksDeleteCommand(),
		newDecksShowCommand(),
		newDecksAddCommand(),
		newDecksRemoveCommand(),
	)

	return decksCommand
}

// withDeckCLI wires a database-backed DeckCLI and closes the connection after
// the command finishes.
func withDeckCLI(fn func(ctx context.Context, deckCLI *cli.DeckCLI) error) error {
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

	deckCLI := cli.NewDeckCLI(userID, store.NewDBDeckRepository(db), dictionary.NewClient(cfg.Dictionary))
	return fn(ctx, deckCLI)
}

func newDecksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeckCLI(func(ctx context.Context, deckCLI *cli.DeckCLI) error {
				return deckCLI.List(ctx)
			})
		},
	}
}

func newDecksCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeckCLI(func(ctx context.Context, deckCLI *cli.DeckCLI) error {
				return deckCLI.Create(ctx, args[0])
			})
		},
	}
}

func newDecksRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <deckId> <name>",
		Short: "Rename a deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeckCLI(func(ctx context.Context, deckCLI *cli.DeckCLI) error {
				return deckCLI.Rename(ctx, args[0], args[1])
			})
		},
	}
}

func newDecksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <deckId>",
		Short: "Delete a deck and its kanji",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeckCLI(func(ctx context.Context, deckCLI *cli.DeckCLI) error {
				return deckCLI.Delete(ctx, args[0])
			})
		},
	}
}

func newDecksShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <deckId>",
		Short: "Show the kanji in a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeckCLI(func(ctx context.Context, deckCLI *cli.DeckCLI) error {
				return deckCLI.Show(ctx, args[0])
			})
		},
	}
}

func newDecksAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <deckId> <kanji>",
		Short: "Look up a kanji and add it to a deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeckCLI(func(ctx context.Context, deckCLI *cli.DeckCLI) error {
				return deckCLI.Add(ctx, args[0], args[1])
			})
		},
	}
}

func newDecksRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <deckId> <kanji>",
		Short: "Remove a kanji from a deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeckCLI(func(ctx context.Context, deckCLI *cli.DeckCLI) error {
				return deckCLI.Remove(ctx, args[0], args[1])
			})
		},
	}
}
