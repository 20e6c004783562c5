package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/stealthwork/kanjistudy/internal/kanji"
)

// FavoriteRepository defines operations for a user's saved kanji.
type FavoriteRepository interface {
	ListFavorites(ctx context.Context, userID string) ([]Favorite, error)
	// ToggleFavorite adds the kanji if absent and removes it if present.
	// It returns the resulting membership.
	ToggleFavorite(ctx context.Context, userID string, member Member) (bool, *Favorite, error)
	RemoveFavorite(ctx context.Context, userID, character string) error
}

// DBFavoriteRepository implements FavoriteRepository using MySQL.
type DBFavoriteRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBFavoriteRepository creates a new DBFavoriteRepository.
func NewDBFavoriteRepository(db *sqlx.DB) *DBFavoriteRepository {
	return &DBFavoriteRepository{db: db, now: time.Now}
}

// ListFavorites returns the user's favorites, most recently added first.
func (r *DBFavoriteRepository) ListFavorites(ctx context.Context, userID string) ([]Favorite, error) {
	var favorites []Favorite
	if err := r.db.SelectContext(ctx, &favorites,
		"SELECT * FROM favorites WHERE user_id = ? ORDER BY date_added DESC",
		userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(favorites) > %w", err)
	}
	return favorites, nil
}

// ToggleFavorite flips membership for the kanji's character. The slug key is
// derived from the character, so at most one favorite exists per character.
func (r *DBFavoriteRepository) ToggleFavorite(ctx context.Context, userID string, member Member) (bool, *Favorite, error) {
	slug := kanji.Slug(member.Character)

	var existing Favorite
	err := r.db.GetContext(ctx, &existing,
		"SELECT * FROM favorites WHERE user_id = ? AND slug = ?", userID, slug)
	if err == nil {
		if _, err := r.db.ExecContext(ctx,
			"DELETE FROM favorites WHERE user_id = ? AND slug = ?", userID, slug); err != nil {
			return false, nil, fmt.Errorf("db.ExecContext(delete favorite) > %w", err)
		}
		return false, nil, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, nil, fmt.Errorf("db.GetContext(favorite) > %w", err)
	}

	favorite := Favorite{
		UserID:    userID,
		Slug:      slug,
		Character: member.Character,
		Reading:   member.Reading,
		Meanings:  member.Meanings,
		DateAdded: r.now().UnixMilli(),
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO favorites (user_id, slug, `character`, reading, meanings, date_added) VALUES (?, ?, ?, ?, ?, ?)",
		favorite.UserID, favorite.Slug, favorite.Character, favorite.Reading, favorite.Meanings, favorite.DateAdded); err != nil {
		return false, nil, fmt.Errorf("db.ExecContext(insert favorite) > %w", err)
	}
	return true, &favorite, nil
}

// RemoveFavorite deletes the favorite for the character.
func (r *DBFavoriteRepository) RemoveFavorite(ctx context.Context, userID, character string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = ? AND slug = ?",
		userID, kanji.Slug(character))
	if err != nil {
		return fmt.Errorf("db.ExecContext(delete favorite) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
