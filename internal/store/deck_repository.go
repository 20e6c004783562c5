package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -destination=../mocks/store/mock_repositories.go -package=mock_store github.com/stealthwork/kanjistudy/internal/store DeckRepository,FavoriteRepository,UserRepository

// DeckRepository defines operations for managing decks and their members.
// All operations are scoped by the owning user id.
type DeckRepository interface {
	ListDecks(ctx context.Context, userID string) ([]Deck, error)
	CreateDeck(ctx context.Context, userID, name string, createdAt time.Time) (*Deck, error)
	RenameDeck(ctx context.Context, userID, deckID, name string) (*Deck, error)
	DeleteDeck(ctx context.Context, userID, deckID string) error
	ListDeckKanji(ctx context.Context, userID, deckID string) ([]DeckKanji, error)
	AddKanjiToDeck(ctx context.Context, userID, deckID string, member Member) (*DeckKanji, bool, error)
	RemoveKanjiFromDeck(ctx context.Context, userID, deckID, slug string) error
	MarkDeckStudied(ctx context.Context, userID, deckID string) error
}

// DBDeckRepository implements DeckRepository using MySQL.
type DBDeckRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBDeckRepository creates a new DBDeckRepository.
func NewDBDeckRepository(db *sqlx.DB) *DBDeckRepository {
	return &DBDeckRepository{db: db, now: time.Now}
}

// ListDecks returns the user's decks, newest first.
func (r *DBDeckRepository) ListDecks(ctx context.Context, userID string) ([]Deck, error) {
	var decks []Deck
	if err := r.db.SelectContext(ctx, &decks,
		"SELECT * FROM decks WHERE user_id = ? ORDER BY created_at DESC",
		userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(decks) > %w", err)
	}
	return decks, nil
}

// CreateDeck inserts a new empty deck with a generated opaque id.
// A zero createdAt means "now".
func (r *DBDeckRepository) CreateDeck(ctx context.Context, userID, name string, createdAt time.Time) (*Deck, error) {
	if createdAt.IsZero() {
		createdAt = r.now().UTC()
	}

	deck := Deck{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		CreatedAt: createdAt,
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO decks (id, user_id, name, kanji_count, created_at) VALUES (?, ?, ?, 0, ?)",
		deck.ID, deck.UserID, deck.Name, deck.CreatedAt); err != nil {
		return nil, fmt.Errorf("db.ExecContext(insert deck) > %w", err)
	}
	return &deck, nil
}

func (r *DBDeckRepository) getDeck(ctx context.Context, q sqlx.QueryerContext, userID, deckID string) (*Deck, error) {
	var deck Deck
	err := sqlx.GetContext(ctx, q, &deck,
		"SELECT * FROM decks WHERE id = ? AND user_id = ?", deckID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(deck) > %w", err)
	}
	return &deck, nil
}

// RenameDeck updates the deck name, preserving the other fields.
func (r *DBDeckRepository) RenameDeck(ctx context.Context, userID, deckID, name string) (*Deck, error) {
	deck, err := r.getDeck(ctx, r.db, userID, deckID)
	if err != nil {
		return nil, err
	}

	updatedAt := r.now().UTC()
	if _, err := r.db.ExecContext(ctx,
		"UPDATE decks SET name = ?, updated_at = ? WHERE id = ? AND user_id = ?",
		name, updatedAt, deckID, userID); err != nil {
		return nil, fmt.Errorf("db.ExecContext(rename deck) > %w", err)
	}

	deck.Name = name
	deck.UpdatedAt = &updatedAt
	return deck, nil
}

// DeleteDeck removes the deck and all of its members.
func (r *DBDeckRepository) DeleteDeck(ctx context.Context, userID, deckID string) error {
	return RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			"DELETE FROM decks WHERE id = ? AND user_id = ?", deckID, userID)
		if err != nil {
			return fmt.Errorf("tx.ExecContext(delete deck) > %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("result.RowsAffected() > %w", err)
		}
		if affected == 0 {
			return ErrDeckNotFound
		}

		if _, err := tx.ExecContext(ctx,
			"DELETE FROM deck_kanji WHERE deck_id = ? AND user_id = ?", deckID, userID); err != nil {
			return fmt.Errorf("tx.ExecContext(delete deck members) > %w", err)
		}
		return nil
	})
}

// ListDeckKanji returns the deck's members, most recently added first.
func (r *DBDeckRepository) ListDeckKanji(ctx context.Context, userID, deckID string) ([]DeckKanji, error) {
	if _, err := r.getDeck(ctx, r.db, userID, deckID); err != nil {
		return nil, err
	}

	var members []DeckKanji
	if err := r.db.SelectContext(ctx, &members,
		"SELECT * FROM deck_kanji WHERE deck_id = ? AND user_id = ? ORDER BY date_added DESC",
		deckID, userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(deck_kanji) > %w", err)
	}
	return members, nil
}

// AddKanjiToDeck inserts a member unless its slug is already present.
// The second return value reports whether a new member was added; a repeat
// add of the same slug returns the existing member with false and no error.
func (r *DBDeckRepository) AddKanjiToDeck(ctx context.Context, userID, deckID string, member Member) (*DeckKanji, bool, error) {
	var added *DeckKanji
	var inserted bool

	err := RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := r.getDeck(ctx, tx, userID, deckID); err != nil {
			return err
		}

		var existing DeckKanji
		err := tx.GetContext(ctx, &existing,
			"SELECT * FROM deck_kanji WHERE deck_id = ? AND slug = ?", deckID, member.Slug)
		if err == nil {
			added = &existing
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("tx.GetContext(deck_kanji) > %w", err)
		}

		row := DeckKanji{
			DeckID:    deckID,
			UserID:    userID,
			Slug:      member.Slug,
			Character: member.Character,
			Reading:   member.Reading,
			Meanings:  member.Meanings,
			DateAdded: r.now().UnixMilli(),
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO deck_kanji (deck_id, user_id, slug, `character`, reading, meanings, date_added) VALUES (?, ?, ?, ?, ?, ?, ?)",
			row.DeckID, row.UserID, row.Slug, row.Character, row.Reading, row.Meanings, row.DateAdded); err != nil {
			return fmt.Errorf("tx.ExecContext(insert deck_kanji) > %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE decks SET kanji_count = kanji_count + 1 WHERE id = ? AND user_id = ?",
			deckID, userID); err != nil {
			return fmt.Errorf("tx.ExecContext(increment kanji_count) > %w", err)
		}

		added = &row
		inserted = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return added, inserted, nil
}

// RemoveKanjiFromDeck deletes a member by slug and keeps the counter in step.
// Removing a slug that is not a member is a no-op.
func (r *DBDeckRepository) RemoveKanjiFromDeck(ctx context.Context, userID, deckID, slug string) error {
	return RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := r.getDeck(ctx, tx, userID, deckID); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			"DELETE FROM deck_kanji WHERE deck_id = ? AND user_id = ? AND slug = ?",
			deckID, userID, slug)
		if err != nil {
			return fmt.Errorf("tx.ExecContext(delete deck_kanji) > %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("result.RowsAffected() > %w", err)
		}
		if affected == 0 {
			return nil
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE decks SET kanji_count = GREATEST(kanji_count - 1, 0) WHERE id = ? AND user_id = ?",
			deckID, userID); err != nil {
			return fmt.Errorf("tx.ExecContext(decrement kanji_count) > %w", err)
		}
		return nil
	})
}

// MarkDeckStudied records that a study session started with this deck.
func (r *DBDeckRepository) MarkDeckStudied(ctx context.Context, userID, deckID string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE decks SET last_studied_at = ? WHERE id = ? AND user_id = ?",
		r.now().UTC(), deckID, userID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(mark deck studied) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrDeckNotFound
	}
	return nil
}
