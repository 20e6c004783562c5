// Package content resolves a study source into the entry list a session
// runs over: a catalog chapter, a user deck, or the user's favorites.
package content

import (
	"context"
	"fmt"

	"github.com/stealthwork/kanjistudy/internal/kanji"
	"github.com/stealthwork/kanjistudy/internal/store"
)

// SourceKind discriminates the variants of Source.
type SourceKind int

const (
	SourceChapter SourceKind = iota
	SourceDeck
	SourceFavorites
)

// Source identifies where session content comes from.
type Source struct {
	Kind    SourceKind
	LevelID string
	Chapter int
	DeckID  string
}

// ChapterSource studies one chapter of the built-in catalog.
func ChapterSource(levelID string, chapter int) Source {
	return Source{Kind: SourceChapter, LevelID: levelID, Chapter: chapter}
}

// DeckSource studies the members of a user deck.
func DeckSource(deckID string) Source {
	return Source{Kind: SourceDeck, DeckID: deckID}
}

// FavoritesSource studies the user's favorited kanji.
func FavoritesSource() Source {
	return Source{Kind: SourceFavorites}
}

// Resolver fetches the entries behind a Source.
type Resolver struct {
	catalog   *kanji.Catalog
	decks     store.DeckRepository
	favorites store.FavoriteRepository
}

// NewResolver creates a new Resolver.
func NewResolver(catalog *kanji.Catalog, decks store.DeckRepository, favorites store.FavoriteRepository) *Resolver {
	return &Resolver{catalog: catalog, decks: decks, favorites: favorites}
}

// Resolve returns the entry list for the source. Callers keep their previous
// content when an error is returned.
func (r *Resolver) Resolve(ctx context.Context, userID string, source Source) ([]kanji.Entry, error) {
	switch source.Kind {
	case SourceChapter:
		entries, err := r.catalog.ChapterEntries(source.LevelID, source.Chapter)
		if err != nil {
			return nil, fmt.Errorf("catalog.ChapterEntries(%s, %d) > %w", source.LevelID, source.Chapter, err)
		}
		return entries, nil
	case SourceDeck:
		if err := r.decks.MarkDeckStudied(ctx, userID, source.DeckID); err != nil {
			return nil, fmt.Errorf("decks.MarkDeckStudied(%s) > %w", source.DeckID, err)
		}
		members, err := r.decks.ListDeckKanji(ctx, userID, source.DeckID)
		if err != nil {
			return nil, fmt.Errorf("decks.ListDeckKanji(%s) > %w", source.DeckID, err)
		}
		entries := make([]kanji.Entry, 0, len(members))
		for _, member := range members {
			entries = append(entries, memberEntry(member.Character, member.Reading, member.Meanings))
		}
		return entries, nil
	case SourceFavorites:
		favorites, err := r.favorites.ListFavorites(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("favorites.ListFavorites() > %w", err)
		}
		entries := make([]kanji.Entry, 0, len(favorites))
		for _, favorite := range favorites {
			entries = append(entries, memberEntry(favorite.Character, favorite.Reading, favorite.Meanings))
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("unknown content source kind %d", source.Kind)
	}
}

// memberEntry builds an entry from a stored row. Stored rows keep one kana
// reading and a meaning list, so the entry carries a single reading.
func memberEntry(character, reading string, meanings []string) kanji.Entry {
	entry := kanji.Entry{
		Character: character,
		Meanings:  meanings,
	}
	if reading != "" {
		entry.Readings = []kanji.Reading{{Hiragana: reading}}
	}
	return entry
}
