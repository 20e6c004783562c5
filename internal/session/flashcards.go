// Package session drives flashcard browsing and the reading-matching game
// over an already-resolved list of kanji entries, independent of whether the
// list came from the default catalog, a deck, or favorites.
package session

import "github.com/stealthwork/kanjistudy/internal/kanji"

// Flashcards is the browsing state machine: a position in the list, a
// front/back flip, and a highlighted reading on the back.
type Flashcards struct {
	entries    []kanji.Entry
	index      int
	flipped    bool
	readingSel int
}

// NewFlashcards starts a session at the first entry, front side up.
func NewFlashcards(entries []kanji.Entry) *Flashcards {
	return &Flashcards{entries: entries}
}

// Empty reports whether there is nothing to study. While empty, all
// navigation operations are no-ops.
func (f *Flashcards) Empty() bool {
	return len(f.entries) == 0
}

// Len returns the number of entries in the session.
func (f *Flashcards) Len() int {
	return len(f.entries)
}

// Index returns the current position.
func (f *Flashcards) Index() int {
	return f.index
}

// Current returns the entry under the cursor; ok is false when the session
// is empty.
func (f *Flashcards) Current() (kanji.Entry, bool) {
	if f.Empty() {
		return kanji.Entry{}, false
	}
	return f.entries[f.index], true
}

// Advance moves to the next entry, wrapping to the first after the last.
// The flip and reading selection reset.
func (f *Flashcards) Advance() {
	if f.Empty() {
		return
	}
	f.index = (f.index + 1) % len(f.entries)
	f.resetCard()
}

// Retreat moves to the previous entry, wrapping to the last before the
// first. The flip and reading selection reset.
func (f *Flashcards) Retreat() {
	if f.Empty() {
		return
	}
	f.index = (f.index - 1 + len(f.entries)) % len(f.entries)
	f.resetCard()
}

// ToggleFlip switches between the front (character and primary meaning) and
// the back (full reading list) without moving the cursor.
func (f *Flashcards) ToggleFlip() {
	if f.Empty() {
		return
	}
	f.flipped = !f.flipped
}

// Flipped reports whether the back of the card is showing.
func (f *Flashcards) Flipped() bool {
	return f.flipped
}

// SelectReading highlights reading i on the back of the card. It reports
// whether the selection was consumed; a consumed selection must not also
// toggle the flip. Selections on the front side or out of range are ignored.
func (f *Flashcards) SelectReading(i int) bool {
	if f.Empty() || !f.flipped {
		return false
	}
	current := f.entries[f.index]
	if i < 0 || i >= len(current.Readings) {
		return false
	}
	f.readingSel = i
	return true
}

// SelectedReading returns the highlighted reading index on the back.
func (f *Flashcards) SelectedReading() int {
	return f.readingSel
}

func (f *Flashcards) resetCard() {
	f.flipped = false
	f.readingSel = 0
}
