package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stealthwork/kanjistudy/internal/kanji"
	"github.com/stealthwork/kanjistudy/internal/session"
	"github.com/stealthwork/kanjistudy/internal/store"
)

// StudyCLI runs an interactive flashcard session over a resolved entry list.
type StudyCLI struct {
	*InteractiveCLI
	cards      *session.Flashcards
	showRomaji bool
	userID     string
	favorites  store.FavoriteRepository
}

// NewStudyCLI creates a flashcard session. A nil favorites repository
// disables the favorite command.
func NewStudyCLI(entries []kanji.Entry, showRomaji bool, userID string, favorites store.FavoriteRepository) *StudyCLI {
	return &StudyCLI{
		InteractiveCLI: newInteractiveCLI(),
		cards:          session.NewFlashcards(entries),
		showRomaji:     showRomaji,
		userID:         userID,
		favorites:      favorites,
	}
}

func (r *StudyCLI) Session(ctx context.Context) error {
	if r.cards.Empty() {
		fmt.Fprintln(r.stdoutWriter, "No kanji to study in this selection.")
		return errEnd
	}

	entry, _ := r.cards.Current()
	fmt.Fprintf(r.stdoutWriter, "\n[%d/%d] ", r.cards.Index()+1, r.cards.Len())
	if r.cards.Flipped() {
		r.printBack(entry)
	} else {
		_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", entry.Character)
	}
	fmt.Fprint(r.stdoutWriter, "(enter: flip, n: next, p: prev, f: favorite, 1-9: reading, q: quit) > ")

	command, err := r.readLine()
	if err != nil {
		return err
	}

	switch command {
	case "":
		r.cards.ToggleFlip()
	case "n":
		r.cards.Advance()
	case "p":
		r.cards.Retreat()
	case "f":
		if err := r.toggleFavorite(ctx, entry); err != nil {
			return err
		}
	case "q":
		fmt.Fprintln(r.stdoutWriter, "Study session finished.")
		return errEnd
	default:
		if i, convErr := strconv.Atoi(command); convErr == nil {
			if r.cards.SelectReading(i - 1) {
				r.printExample(entry, i-1)
			}
		}
	}
	return nil
}

// toggleFavorite favorites the current card, or unfavorites it when it is
// already favorited.
func (r *StudyCLI) toggleFavorite(ctx context.Context, entry kanji.Entry) error {
	if r.favorites == nil {
		fmt.Fprintln(r.stdoutWriter, "Favorites are not available in this session.")
		return nil
	}

	member := store.Member{
		Character: entry.Character,
		Reading:   entry.PrimaryReading(),
		Meanings:  entry.Meanings,
		Slug:      entry.Slug(),
	}
	favorited, _, err := r.favorites.ToggleFavorite(ctx, r.userID, member)
	if err != nil {
		return fmt.Errorf("favorites.ToggleFavorite > %w", err)
	}
	if favorited {
		fmt.Fprintf(r.stdoutWriter, "⭐ Added %s to favorites.\n", entry.Character)
	} else {
		fmt.Fprintf(r.stdoutWriter, "Removed %s from favorites.\n", entry.Character)
	}
	return nil
}

func (r *StudyCLI) printBack(entry kanji.Entry) {
	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", entry.Character)
	for _, meaning := range entry.Meanings {
		fmt.Fprintf(r.stdoutWriter, "  %s\n", meaning)
	}
	for i, reading := range entry.Readings {
		label := reading.Hiragana
		if r.showRomaji && reading.Romaji != "" {
			label = fmt.Sprintf("%s (%s)", reading.Hiragana, reading.Romaji)
		}
		fmt.Fprintf(r.stdoutWriter, "  %d. %s %s\n", i+1, label, r.italic.Sprintf("%s", reading.ReadingType))
	}
}

func (r *StudyCLI) printExample(entry kanji.Entry, i int) {
	reading := entry.Readings[i]
	if reading.Example == nil {
		fmt.Fprintf(r.stdoutWriter, "No example for %s.\n", reading.Hiragana)
		return
	}
	fmt.Fprintf(r.stdoutWriter, "%s\n  %s\n  %s\n",
		r.bold.Sprintf("%s", reading.Example.Japanese),
		reading.Example.Hiragana,
		r.italic.Sprintf("%s", reading.Example.English),
	)
}
