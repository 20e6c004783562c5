// Package selection tracks which JLPT level and chapter the user is
// studying and persists the choice between runs.
package selection

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/stealthwork/kanjistudy/internal/kanji"
	"github.com/stealthwork/kanjistudy/internal/settings"
)

// Selector holds the current level/chapter choice over a catalog. Changing
// the level always resets the chapter, and lists with a single element are
// selected automatically.
type Selector struct {
	catalog *kanji.Catalog
	store   *settings.Store
	rng     *rand.Rand

	levelID string
	chapter int
}

// Option adjusts a Selector. Used by tests to pin randomness.
type Option func(*Selector)

// WithRand sets the random source for Randomize.
func WithRand(rng *rand.Rand) Option {
	return func(s *Selector) {
		s.rng = rng
	}
}

// NewSelector restores the persisted selection and applies the single-element
// auto-select rules. A persisted selection that no longer exists in the
// catalog is discarded.
func NewSelector(catalog *kanji.Catalog, store *settings.Store, opts ...Option) (*Selector, error) {
	s := &Selector{
		catalog: catalog,
		store:   store,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}

	saved, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("store.Load > %w", err)
	}
	if level := catalog.Level(saved.SelectedLevel); level != nil {
		s.levelID = saved.SelectedLevel
		if level.Chapter(saved.SelectedChapter) != nil {
			s.chapter = saved.SelectedChapter
		}
	}

	s.autoSelect()
	return s, nil
}

// LevelID returns the selected level id, or "" when none is selected.
func (s *Selector) LevelID() string {
	return s.levelID
}

// Chapter returns the selected chapter number, or 0 when none is selected.
func (s *Selector) Chapter() int {
	return s.chapter
}

// Complete reports whether both a level and a chapter are selected.
func (s *Selector) Complete() bool {
	return s.levelID != "" && s.chapter != 0
}

// Entries returns the entries of the selected chapter.
func (s *Selector) Entries() ([]kanji.Entry, error) {
	if !s.Complete() {
		return nil, fmt.Errorf("no chapter selected")
	}
	return s.catalog.ChapterEntries(s.levelID, s.chapter)
}

// SelectLevel picks a level and resets the chapter. A level with a single
// chapter selects that chapter too.
func (s *Selector) SelectLevel(id string) error {
	level := s.catalog.Level(id)
	if level == nil {
		return fmt.Errorf("unknown level %q", id)
	}

	s.levelID = id
	s.chapter = 0
	s.autoSelect()
	return s.persist()
}

// SelectChapter picks a chapter within the selected level.
func (s *Selector) SelectChapter(number int) error {
	if s.levelID == "" {
		return fmt.Errorf("select a level first")
	}
	if s.catalog.Level(s.levelID).Chapter(number) == nil {
		return fmt.Errorf("unknown chapter %d in level %q", number, s.levelID)
	}

	s.chapter = number
	return s.persist()
}

// Randomize picks a level uniformly among those with at least one chapter,
// then a chapter within it, and applies both at once.
func (s *Selector) Randomize() error {
	var candidates []*kanji.Level
	for i := range s.catalog.Levels {
		if len(s.catalog.Levels[i].Chapters) > 0 {
			candidates = append(candidates, &s.catalog.Levels[i])
		}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("catalog has no chapters")
	}

	level := candidates[s.rng.Intn(len(candidates))]
	chapter := level.Chapters[s.rng.Intn(len(level.Chapters))]

	s.levelID = level.ID
	s.chapter = chapter.Number
	return s.persist()
}

// autoSelect fills in any choice that has exactly one option.
func (s *Selector) autoSelect() {
	if s.levelID == "" && len(s.catalog.Levels) == 1 {
		s.levelID = s.catalog.Levels[0].ID
	}
	if s.levelID != "" && s.chapter == 0 {
		if level := s.catalog.Level(s.levelID); level != nil && len(level.Chapters) == 1 {
			s.chapter = level.Chapters[0].Number
		}
	}
}

func (s *Selector) persist() error {
	saved, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("store.Load > %w", err)
	}
	saved.SelectedLevel = s.levelID
	saved.SelectedChapter = s.chapter
	if err := s.store.Save(saved); err != nil {
		return fmt.Errorf("store.Save > %w", err)
	}
	return nil
}
