package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MeaningList stores a kanji's meanings as a JSON array column.
type MeaningList []string

// Value implements driver.Valuer.
func (m MeaningList) Value() (driver.Value, error) {
	if m == nil {
		m = MeaningList{}
	}
	contents, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(meanings) > %w", err)
	}
	return contents, nil
}

// Scan implements sql.Scanner.
func (m *MeaningList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("meanings column must be a JSON string")
	}
}

// Deck is a user-owned named collection of kanji.
type Deck struct {
	ID            string     `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"-"`
	Name          string     `db:"name" json:"name"`
	KanjiCount    int        `db:"kanji_count" json:"kanjiCount"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
	LastStudiedAt *time.Time `db:"last_studied_at" json:"lastStudiedAt,omitempty"`
}

// DeckKanji is one member of a deck, keyed by slug within the deck.
type DeckKanji struct {
	DeckID    string      `db:"deck_id" json:"-"`
	UserID    string      `db:"user_id" json:"-"`
	Slug      string      `db:"slug" json:"slug"`
	Character string      `db:"character" json:"character"`
	Reading   string      `db:"reading" json:"reading"`
	Meanings  MeaningList `db:"meanings" json:"meanings"`
	// DateAdded is epoch milliseconds; listings sort on it descending.
	DateAdded int64 `db:"date_added" json:"dateAdded"`
}

// Favorite is a user's saved kanji, at most one per character.
type Favorite struct {
	UserID    string      `db:"user_id" json:"-"`
	Slug      string      `db:"slug" json:"slug"`
	Character string      `db:"character" json:"character"`
	Reading   string      `db:"reading" json:"reading"`
	Meanings  MeaningList `db:"meanings" json:"meanings"`
	DateAdded int64       `db:"date_added" json:"dateAdded"`
}

// Member is the input shape for adding a kanji to a deck or favorites.
type Member struct {
	Character string
	Reading   string
	Meanings  []string
	Slug      string
}

// User is an account row managed by the identity provider.
type User struct {
	ID           string    `db:"id" json:"uid"`
	Email        string    `db:"email" json:"email"`
	DisplayName  string    `db:"display_name" json:"displayName"`
	PhotoURL     string    `db:"photo_url" json:"photoURL,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
}
