package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/stealthwork/kanjistudy/internal/dictionary"
	"github.com/stealthwork/kanjistudy/internal/kanji"
	"github.com/stealthwork/kanjistudy/internal/store"
)

// FavoritesCLI runs the favorites commands.
type FavoritesCLI struct {
	*InteractiveCLI
	userID    string
	favorites store.FavoriteRepository
	searcher  dictionary.Searcher
}

// NewFavoritesCLI creates the favorites command handler for one user.
func NewFavoritesCLI(userID string, favorites store.FavoriteRepository, searcher dictionary.Searcher) *FavoritesCLI {
	return &FavoritesCLI{
		InteractiveCLI: newInteractiveCLI(),
		userID:         userID,
		favorites:      favorites,
		searcher:       searcher,
	}
}

// List prints the user's favorites, most recently added first.
func (r *FavoritesCLI) List(ctx context.Context) error {
	favorites, err := r.favorites.ListFavorites(ctx, r.userID)
	if err != nil {
		return fmt.Errorf("favorites.ListFavorites > %w", err)
	}
	if len(favorites) == 0 {
		fmt.Fprintln(r.stdoutWriter, "No favorites yet. Toggle one with: kanjistudy favorites toggle <kanji>")
		return nil
	}

	for _, favorite := range favorites {
		fmt.Fprintf(r.stdoutWriter, "%s  %s  %s\n",
			r.bold.Sprintf("%s", favorite.Character),
			favorite.Reading,
			r.italic.Sprintf("%s", joinMeanings(favorite.Meanings)),
		)
	}
	return nil
}

// Toggle favorites the word when absent and unfavorites it when present.
func (r *FavoritesCLI) Toggle(ctx context.Context, word string) error {
	response, err := r.searcher.Search(ctx, word)
	if err != nil {
		return fmt.Errorf("searcher.Search(%s) > %w", word, err)
	}
	if len(response.Data) == 0 {
		return fmt.Errorf("no dictionary results for %q", word)
	}

	favorited, favorite, err := r.favorites.ToggleFavorite(ctx, r.userID, response.Data[0].ToMember())
	if err != nil {
		return fmt.Errorf("favorites.ToggleFavorite > %w", err)
	}
	if favorited {
		fmt.Fprintf(r.stdoutWriter, "⭐ Added %s to favorites.\n", r.bold.Sprintf("%s", favorite.Character))
	} else {
		fmt.Fprintf(r.stdoutWriter, "Removed %s from favorites.\n", word)
	}
	return nil
}

// Remove explicitly unfavorites a kanji after confirmation.
func (r *FavoritesCLI) Remove(ctx context.Context, character string) error {
	ok, err := r.confirm(fmt.Sprintf("Remove %s from favorites?", character))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(r.stdoutWriter, "Aborted.")
		return nil
	}

	if err := r.favorites.RemoveFavorite(ctx, r.userID, character); err != nil {
		return fmt.Errorf("favorites.RemoveFavorite > %w", err)
	}
	fmt.Fprintf(r.stdoutWriter, "Removed %s from favorites.\n", character)
	return nil
}

func joinMeanings(meanings []string) string {
	return strings.Join(meanings, ", ")
}

func slugOf(character string) string {
	return kanji.Slug(character)
}
