// Package kanji provides the domain model for studied characters and the
// embedded default JLPT catalog.
package kanji

import "net/url"

// ReadingType tags a reading by its origin.
type ReadingType string

const (
	ReadingTypeKun ReadingType = "kunyomi"
	ReadingTypeOn  ReadingType = "onyomi"
)

// Example is a worked usage sentence for a reading.
type Example struct {
	Japanese string `json:"japanese"`
	Hiragana string `json:"hiragana"`
	English  string `json:"english"`
	// UsageHighlight is the fragment of the sentence that uses the reading.
	UsageHighlight string `json:"usage_highlight,omitempty"`
}

// Reading is one pronunciation of a kanji.
type Reading struct {
	Hiragana    string      `json:"hiragana"`
	Katakana    string      `json:"katakana,omitempty"`
	Romaji      string      `json:"romaji"`
	ReadingType ReadingType `json:"reading_type"`
	Example     *Example    `json:"example,omitempty"`
}

// Entry is a single studied kanji with its meanings and readings.
type Entry struct {
	Character string    `json:"kanji"`
	Meanings  []string  `json:"meanings"`
	Readings  []Reading `json:"readings"`
}

// PrimaryMeaning returns the first meaning, or an empty string.
func (e Entry) PrimaryMeaning() string {
	if len(e.Meanings) == 0 {
		return ""
	}
	return e.Meanings[0]
}

// PrimaryReading returns the kana of the first reading, or an empty string.
func (e Entry) PrimaryReading() string {
	if len(e.Readings) == 0 {
		return ""
	}
	return e.Readings[0].Hiragana
}

// Slug returns the URL-safe identifier for the entry's character.
func (e Entry) Slug() string {
	return Slug(e.Character)
}

// Slug derives a URL-safe key from a kanji character.
func Slug(character string) string {
	return url.QueryEscape(character)
}

// Chapter is an ordered group of entries within a level.
type Chapter struct {
	Number  int     `json:"chapter_number"`
	Title   string  `json:"chapter_title"`
	Entries []Entry `json:"kanji_list"`
}

// Level is a JLPT grade with its chapters.
type Level struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Chapters []Chapter `json:"chapters"`
}

// Chapter returns the chapter with the given number, or nil.
func (l *Level) Chapter(number int) *Chapter {
	for i := range l.Chapters {
		if l.Chapters[i].Number == number {
			return &l.Chapters[i]
		}
	}
	return nil
}
