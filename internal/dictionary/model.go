// Package dictionary looks up words against the Jisho dictionary API.
package dictionary

import "github.com/stealthwork/kanjistudy/internal/store"

// Response is the shape of the Jisho words API payload, reduced to the
// fields the app consumes.
type Response struct {
	Meta Meta   `json:"meta"`
	Data []Word `json:"data"`
}

type Meta struct {
	Status int `json:"status"`
}

// Word is one dictionary search result.
type Word struct {
	Slug     string     `json:"slug"`
	JLPT     []string   `json:"jlpt"`
	Japanese []Japanese `json:"japanese"`
	Senses   []Sense    `json:"senses"`
}

type Japanese struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
}

type Sense struct {
	EnglishDefinitions []string `json:"english_definitions"`
	PartsOfSpeech      []string `json:"parts_of_speech"`
}

// Character returns the written form of the result, falling back to the
// reading for kana-only words.
func (w Word) Character() string {
	if len(w.Japanese) == 0 {
		return ""
	}
	if w.Japanese[0].Word != "" {
		return w.Japanese[0].Word
	}
	return w.Japanese[0].Reading
}

// Reading returns the primary reading, or an empty string.
func (w Word) Reading() string {
	if len(w.Japanese) == 0 {
		return ""
	}
	return w.Japanese[0].Reading
}

// Meanings flattens the first sense's definitions.
func (w Word) Meanings() []string {
	if len(w.Senses) == 0 {
		return nil
	}
	return w.Senses[0].EnglishDefinitions
}

// LevelTag returns the first JLPT tag, or an empty string.
func (w Word) LevelTag() string {
	if len(w.JLPT) == 0 {
		return ""
	}
	return w.JLPT[0]
}

// ToMember converts a search result into the input shape for decks and
// favorites.
func (w Word) ToMember() store.Member {
	return store.Member{
		Character: w.Character(),
		Reading:   w.Reading(),
		Meanings:  w.Meanings(),
		Slug:      w.Slug,
	}
}
