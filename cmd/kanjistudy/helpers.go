package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/stealthwork/kanjistudy/internal/config"
	"github.com/stealthwork/kanjistudy/internal/content"
	"github.com/stealthwork/kanjistudy/internal/kanji"
	"github.com/stealthwork/kanjistudy/internal/selection"
	"github.com/stealthwork/kanjistudy/internal/settings"
	"github.com/stealthwork/kanjistudy/internal/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := store.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("store.Connect > %w", err)
	}
	return db, nil
}

// sourceFlags selects where the kanji for a session come from. Without any
// flag the last saved level and chapter selection is used.
type sourceFlags struct {
	levelID   string
	chapter   int
	deckID    string
	favorites bool
}

func (f *sourceFlags) register(command *cobra.Command) {
	command.Flags().StringVar(&f.levelID, "level", "", "JLPT level id, e.g. n5")
	command.Flags().IntVar(&f.chapter, "chapter", 0, "chapter number within the level")
	command.Flags().StringVar(&f.deckID, "deck", "", "use a deck as the kanji source")
	command.Flags().BoolVar(&f.favorites, "favorites", false, "use favorited kanji as the source")
}

func (f *sourceFlags) resolveEntries(ctx context.Context, cfg *config.Config) ([]kanji.Entry, error) {
	catalog, err := kanji.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("kanji.LoadCatalog > %w", err)
	}

	if f.deckID != "" || f.favorites {
		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = db.Close()
		}()

		resolver := content.NewResolver(
			catalog,
			store.NewDBDeckRepository(db),
			store.NewDBFavoriteRepository(db),
		)
		source := content.FavoritesSource()
		if f.deckID != "" {
			source = content.DeckSource(f.deckID)
		}
		entries, err := resolver.Resolve(ctx, userID, source)
		if err != nil {
			return nil, fmt.Errorf("resolver.Resolve > %w", err)
		}
		return entries, nil
	}

	if f.levelID != "" {
		if f.chapter == 0 {
			return nil, fmt.Errorf("--chapter is required together with --level")
		}
		entries, err := catalog.ChapterEntries(f.levelID, f.chapter)
		if err != nil {
			return nil, fmt.Errorf("catalog.ChapterEntries > %w", err)
		}
		return entries, nil
	}

	selector, err := selection.NewSelector(catalog, settings.NewStore(cfg.Settings.FilePath))
	if err != nil {
		return nil, fmt.Errorf("selection.NewSelector > %w", err)
	}
	if !selector.Complete() {
		return nil, fmt.Errorf("no level and chapter selected. Run 'kanjistudy select' or pass --level and --chapter")
	}
	entries, err := selector.Entries()
	if err != nil {
		return nil, fmt.Errorf("selector.Entries > %w", err)
	}
	return entries, nil
}
