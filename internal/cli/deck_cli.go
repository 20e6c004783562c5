package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/stealthwork/kanjistudy/internal/dictionary"
	"github.com/stealthwork/kanjistudy/internal/store"
)

// DeckCLI runs the deck management commands.
type DeckCLI struct {
	*InteractiveCLI
	userID   string
	decks    store.DeckRepository
	searcher dictionary.Searcher
}

// NewDeckCLI creates the deck command handler for one user.
func NewDeckCLI(userID string, decks store.DeckRepository, searcher dictionary.Searcher) *DeckCLI {
	return &DeckCLI{
		InteractiveCLI: newInteractiveCLI(),
		userID:         userID,
		decks:          decks,
		searcher:       searcher,
	}
}

// List prints the user's decks, newest first.
func (r *DeckCLI) List(ctx context.Context) error {
	decks, err := r.decks.ListDecks(ctx, r.userID)
	if err != nil {
		return fmt.Errorf("decks.ListDecks > %w", err)
	}
	if len(decks) == 0 {
		fmt.Fprintln(r.stdoutWriter, "No decks yet. Create one with: kanjistudy decks create <name>")
		return nil
	}

	for _, deck := range decks {
		fmt.Fprintf(r.stdoutWriter, "%s  %s (%d kanji, created %s)\n",
			deck.ID,
			r.bold.Sprintf("%s", deck.Name),
			deck.KanjiCount,
			deck.CreatedAt.Format(time.DateOnly),
		)
	}
	return nil
}

// Create makes a new empty deck.
func (r *DeckCLI) Create(ctx context.Context, name string) error {
	deck, err := r.decks.CreateDeck(ctx, r.userID, name, time.Time{})
	if err != nil {
		return fmt.Errorf("decks.CreateDeck > %w", err)
	}
	fmt.Fprintf(r.stdoutWriter, "Created deck %s (%s)\n", r.bold.Sprintf("%s", deck.Name), deck.ID)
	return nil
}

// Rename changes a deck's name.
func (r *DeckCLI) Rename(ctx context.Context, deckID, name string) error {
	deck, err := r.decks.RenameDeck(ctx, r.userID, deckID, name)
	if err != nil {
		return fmt.Errorf("decks.RenameDeck > %w", err)
	}
	fmt.Fprintf(r.stdoutWriter, "Renamed deck to %s\n", r.bold.Sprintf("%s", deck.Name))
	return nil
}

// Delete removes a deck and its members after confirmation.
func (r *DeckCLI) Delete(ctx context.Context, deckID string) error {
	ok, err := r.confirm(fmt.Sprintf("Delete deck %s and all its kanji?", deckID))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(r.stdoutWriter, "Aborted.")
		return nil
	}

	if err := r.decks.DeleteDeck(ctx, r.userID, deckID); err != nil {
		return fmt.Errorf("decks.DeleteDeck > %w", err)
	}
	fmt.Fprintln(r.stdoutWriter, "Deck deleted.")
	return nil
}

// Show prints the members of a deck, most recently added first.
func (r *DeckCLI) Show(ctx context.Context, deckID string) error {
	members, err := r.decks.ListDeckKanji(ctx, r.userID, deckID)
	if err != nil {
		return fmt.Errorf("decks.ListDeckKanji > %w", err)
	}
	if len(members) == 0 {
		fmt.Fprintln(r.stdoutWriter, "This deck is empty.")
		return nil
	}

	for _, member := range members {
		fmt.Fprintf(r.stdoutWriter, "%s  %s  %s\n",
			r.bold.Sprintf("%s", member.Character),
			member.Reading,
			r.italic.Sprintf("%s", joinMeanings(member.Meanings)),
		)
	}
	return nil
}

// Add looks the word up in the dictionary and adds the best match to the
// deck.
func (r *DeckCLI) Add(ctx context.Context, deckID, word string) error {
	member, err := r.lookup(ctx, word)
	if err != nil {
		return err
	}

	added, wasNew, err := r.decks.AddKanjiToDeck(ctx, r.userID, deckID, member)
	if err != nil {
		return fmt.Errorf("decks.AddKanjiToDeck > %w", err)
	}
	if !wasNew {
		fmt.Fprintf(r.stdoutWriter, "%s is already in the deck.\n", added.Character)
		return nil
	}
	fmt.Fprintf(r.stdoutWriter, "Added %s (%s) to the deck.\n",
		r.bold.Sprintf("%s", added.Character), added.Reading)
	return nil
}

// Remove takes a kanji out of the deck.
func (r *DeckCLI) Remove(ctx context.Context, deckID, character string) error {
	if err := r.decks.RemoveKanjiFromDeck(ctx, r.userID, deckID, slugOf(character)); err != nil {
		return fmt.Errorf("decks.RemoveKanjiFromDeck > %w", err)
	}
	fmt.Fprintf(r.stdoutWriter, "Removed %s from the deck.\n", character)
	return nil
}

// lookup resolves a word through the dictionary and returns the top result.
func (r *DeckCLI) lookup(ctx context.Context, word string) (store.Member, error) {
	response, err := r.searcher.Search(ctx, word)
	if err != nil {
		return store.Member{}, fmt.Errorf("searcher.Search(%s) > %w", word, err)
	}
	if len(response.Data) == 0 {
		return store.Member{}, fmt.Errorf("no dictionary results for %q", word)
	}
	return response.Data[0].ToMember(), nil
}
