package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDeckRepository(t *testing.T) (*DBDeckRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewDBDeckRepository(sqlx.NewDb(db, "mysql"))
	repo.now = func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return repo, mock
}

func deckColumns() []string {
	return []string{"id", "user_id", "name", "kanji_count", "created_at", "updated_at", "last_studied_at"}
}

func deckKanjiColumns() []string {
	return []string{"deck_id", "user_id", "slug", "character", "reading", "meanings", "date_added"}
}

func TestDBDeckRepository_ListDecks(t *testing.T) {
	repo, mock := newMockDeckRepository(t)
	ctx := context.Background()

	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(deckColumns()).
		AddRow("deck-b", "user-1", "B", 2, newer, nil, nil).
		AddRow("deck-a", "user-1", "A", 0, older, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM decks WHERE user_id = ? ORDER BY created_at DESC")).
		WithArgs("user-1").
		WillReturnRows(rows)

	got, err := repo.ListDecks(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBDeckRepository_CreateDeck(t *testing.T) {
	repo, mock := newMockDeckRepository(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO decks (id, user_id, name, kanji_count, created_at) VALUES (?, ?, ?, 0, ?)")).
		WithArgs(sqlmock.AnyArg(), "user-1", "N5 revision", repo.now().UTC()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deck, err := repo.CreateDeck(ctx, "user-1", "N5 revision", time.Time{})
	require.NoError(t, err)

	assert.NotEmpty(t, deck.ID)
	assert.Equal(t, "N5 revision", deck.Name)
	assert.Equal(t, 0, deck.KanjiCount)
	assert.Equal(t, repo.now().UTC(), deck.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBDeckRepository_RenameDeck(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "renamed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT * FROM decks WHERE id = ? AND user_id = ?")).
					WithArgs("deck-1", "user-1").
					WillReturnRows(sqlmock.NewRows(deckColumns()).
						AddRow("deck-1", "user-1", "Old name", 3, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil))
				mock.ExpectExec(regexp.QuoteMeta(
					"UPDATE decks SET name = ?, updated_at = ? WHERE id = ? AND user_id = ?")).
					WithArgs("New name", sqlmock.AnyArg(), "deck-1", "user-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "deck not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT * FROM decks WHERE id = ? AND user_id = ?")).
					WithArgs("deck-1", "user-1").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrDeckNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockDeckRepository(t)
			tc.setupMock(mock)

			deck, err := repo.RenameDeck(context.Background(), "user-1", "deck-1", "New name")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "New name", deck.Name)
			require.NotNil(t, deck.UpdatedAt)
			assert.Equal(t, 3, deck.KanjiCount)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBDeckRepository_DeleteDeck(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "deleted with members",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(
					"DELETE FROM decks WHERE id = ? AND user_id = ?")).
					WithArgs("deck-1", "user-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(
					"DELETE FROM deck_kanji WHERE deck_id = ? AND user_id = ?")).
					WithArgs("deck-1", "user-1").
					WillReturnResult(sqlmock.NewResult(0, 4))
				mock.ExpectCommit()
			},
		},
		{
			name: "deck not found leaves nothing else touched",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(
					"DELETE FROM decks WHERE id = ? AND user_id = ?")).
					WithArgs("deck-1", "user-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrDeckNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockDeckRepository(t)
			tc.setupMock(mock)

			err := repo.DeleteDeck(context.Background(), "user-1", "deck-1")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBDeckRepository_ListDeckKanji(t *testing.T) {
	repo, mock := newMockDeckRepository(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM decks WHERE id = ? AND user_id = ?")).
		WithArgs("deck-1", "user-1").
		WillReturnRows(sqlmock.NewRows(deckColumns()).
			AddRow("deck-1", "user-1", "Nature", 2, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil))

	rows := sqlmock.NewRows(deckKanjiColumns()).
		AddRow("deck-1", "user-1", "%E6%A3%AE", "森", "もり", []byte(`["Forest"]`), int64(200)).
		AddRow("deck-1", "user-1", "%E6%9E%97", "林", "はやし", []byte(`["Woods","Grove"]`), int64(100))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM deck_kanji WHERE deck_id = ? AND user_id = ? ORDER BY date_added DESC")).
		WithArgs("deck-1", "user-1").
		WillReturnRows(rows)

	got, err := repo.ListDeckKanji(ctx, "user-1", "deck-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "森", got[0].Character)
	assert.Equal(t, MeaningList{"Forest"}, got[0].Meanings)
	assert.Equal(t, "林", got[1].Character)
	assert.Equal(t, MeaningList{"Woods", "Grove"}, got[1].Meanings)
	assert.Greater(t, got[0].DateAdded, got[1].DateAdded)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBDeckRepository_AddKanjiToDeck(t *testing.T) {
	member := Member{
		Character: "森",
		Reading:   "もり",
		Meanings:  []string{"Forest"},
		Slug:      "%E6%A3%AE",
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
		wantAdded bool
		wantKanji string
	}{
		{
			name: "new member inserted and counted",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT * FROM decks WHERE id = ? AND user_id = ?")).
					WithArgs("deck-1", "user-1").
					WillReturnRows(sqlmock.NewRows(deckColumns()).
						AddRow("deck-1", "user-1", "Nature", 0, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil))
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT * FROM deck_kanji WHERE deck_id = ? AND slug = ?")).
					WithArgs("deck-1", member.Slug).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectExec(regexp.QuoteMeta(
					"INSERT INTO deck_kanji (deck_id, user_id, slug, `character`, reading, meanings, date_added) VALUES (?, ?, ?, ?, ?, ?, ?)")).
					WithArgs("deck-1", "user-1", member.Slug, "森", "もり", []byte(`["Forest"]`), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(
					"UPDATE decks SET kanji_count = kanji_count + 1 WHERE id = ? AND user_id = ?")).
					WithArgs("deck-1", "user-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantAdded: true,
			wantKanji: "森",
		},
		{
			name: "repeat add reports existing without recounting",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT * FROM decks WHERE id = ? AND user_id = ?")).
					WithArgs("deck-1", "user-1").
					WillReturnRows(sqlmock.NewRows(deckColumns()).
						AddRow("deck-1", "user-1", "Nature", 1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil))
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT * FROM deck_kanji WHERE deck_id = ? AND slug = ?")).
					WithArgs("deck-1", member.Slug).
					WillReturnRows(sqlmock.NewRows(deckKanjiColumns()).
						AddRow("deck-1", "user-1", member.Slug, "森", "もり", []byte(`["Forest"]`), int64(100)))
				mock.ExpectCommit()
			},
			wantAdded: false,
			wantKanji: "森",
		},
		{
			name: "deck not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT * FROM decks WHERE id = ? AND user_id = ?")).
					WithArgs("deck-1", "user-1").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: ErrDeckNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockDeckRepository(t)
			tc.setupMock(mock)

			got, added, err := repo.AddKanjiToDeck(context.Background(), "user-1", "deck-1", member)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAdded, added)
			assert.Equal(t, tc.wantKanji, got.Character)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBDeckRepository_RemoveKanjiFromDeck(t *testing.T) {
	repo, mock := newMockDeckRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM decks WHERE id = ? AND user_id = ?")).
		WithArgs("deck-1", "user-1").
		WillReturnRows(sqlmock.NewRows(deckColumns()).
			AddRow("deck-1", "user-1", "Nature", 2, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil))
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM deck_kanji WHERE deck_id = ? AND user_id = ? AND slug = ?")).
		WithArgs("deck-1", "user-1", "%E6%A3%AE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE decks SET kanji_count = GREATEST(kanji_count - 1, 0) WHERE id = ? AND user_id = ?")).
		WithArgs("deck-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.RemoveKanjiFromDeck(context.Background(), "user-1", "deck-1", "%E6%A3%AE"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBDeckRepository_RemoveKanjiFromDeck_absentSlugIsNoop(t *testing.T) {
	repo, mock := newMockDeckRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM decks WHERE id = ? AND user_id = ?")).
		WithArgs("deck-1", "user-1").
		WillReturnRows(sqlmock.NewRows(deckColumns()).
			AddRow("deck-1", "user-1", "Nature", 2, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil))
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM deck_kanji WHERE deck_id = ? AND user_id = ? AND slug = ?")).
		WithArgs("deck-1", "user-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.RemoveKanjiFromDeck(context.Background(), "user-1", "deck-1", "missing"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBDeckRepository_MarkDeckStudied(t *testing.T) {
	repo, mock := newMockDeckRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE decks SET last_studied_at = ? WHERE id = ? AND user_id = ?")).
		WithArgs(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), "deck-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkDeckStudied(context.Background(), "user-1", "deck-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBDeckRepository_MarkDeckStudied_notFound(t *testing.T) {
	repo, mock := newMockDeckRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE decks SET last_studied_at = ? WHERE id = ? AND user_id = ?")).
		WithArgs(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), "missing", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkDeckStudied(context.Background(), "user-1", "missing")
	require.ErrorIs(t, err, ErrDeckNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
