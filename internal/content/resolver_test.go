package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stealthwork/kanjistudy/internal/kanji"
	mock_store "github.com/stealthwork/kanjistudy/internal/mocks/store"
	"github.com/stealthwork/kanjistudy/internal/store"
)

func TestResolver_Resolve(t *testing.T) {
	catalog, err := kanji.LoadCatalog()
	require.NoError(t, err)

	tests := map[string]struct {
		source    Source
		setupMock func(decks *mock_store.MockDeckRepository, favorites *mock_store.MockFavoriteRepository)
		want      []string
		wantErr   string
	}{
		"chapter from the catalog": {
			source: ChapterSource("n5", 12),
			want:   []string{"林", "森", "畑", "岩"},
		},
		"unknown chapter": {
			source:  ChapterSource("n5", 99),
			wantErr: `unknown chapter 99 in level "n5"`,
		},
		"unknown level": {
			source:  ChapterSource("n9", 1),
			wantErr: `unknown level "n9"`,
		},
		"deck members": {
			source: DeckSource("deck-1"),
			setupMock: func(decks *mock_store.MockDeckRepository, _ *mock_store.MockFavoriteRepository) {
				decks.EXPECT().MarkDeckStudied(gomock.Any(), "user-1", "deck-1").Return(nil)
				decks.EXPECT().ListDeckKanji(gomock.Any(), "user-1", "deck-1").Return([]store.DeckKanji{
					{Character: "森", Reading: "もり", Meanings: store.MeaningList{"forest"}},
					{Character: "林", Reading: "はやし", Meanings: store.MeaningList{"woods"}},
				}, nil)
			},
			want: []string{"森", "林"},
		},
		"deck fetch failure": {
			source: DeckSource("deck-1"),
			setupMock: func(decks *mock_store.MockDeckRepository, _ *mock_store.MockFavoriteRepository) {
				decks.EXPECT().MarkDeckStudied(gomock.Any(), "user-1", "deck-1").Return(nil)
				decks.EXPECT().ListDeckKanji(gomock.Any(), "user-1", "deck-1").
					Return(nil, errors.New("connection refused"))
			},
			wantErr: "connection refused",
		},
		"missing deck is not marked studied": {
			source: DeckSource("deck-9"),
			setupMock: func(decks *mock_store.MockDeckRepository, _ *mock_store.MockFavoriteRepository) {
				decks.EXPECT().MarkDeckStudied(gomock.Any(), "user-1", "deck-9").
					Return(store.ErrDeckNotFound)
			},
			wantErr: store.ErrDeckNotFound.Error(),
		},
		"favorites": {
			source: FavoritesSource(),
			setupMock: func(_ *mock_store.MockDeckRepository, favorites *mock_store.MockFavoriteRepository) {
				favorites.EXPECT().ListFavorites(gomock.Any(), "user-1").Return([]store.Favorite{
					{Character: "岩", Reading: "いわ", Meanings: store.MeaningList{"rock"}},
				}, nil)
			},
			want: []string{"岩"},
		},
		"empty favorites": {
			source: FavoritesSource(),
			setupMock: func(_ *mock_store.MockDeckRepository, favorites *mock_store.MockFavoriteRepository) {
				favorites.EXPECT().ListFavorites(gomock.Any(), "user-1").Return(nil, nil)
			},
			want: []string{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			decks := mock_store.NewMockDeckRepository(ctrl)
			favorites := mock_store.NewMockFavoriteRepository(ctrl)
			if tc.setupMock != nil {
				tc.setupMock(decks, favorites)
			}

			resolver := NewResolver(catalog, decks, favorites)
			entries, err := resolver.Resolve(context.Background(), "user-1", tc.source)
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			characters := make([]string, 0, len(entries))
			for _, entry := range entries {
				characters = append(characters, entry.Character)
			}
			assert.Equal(t, tc.want, characters)
		})
	}
}

func TestResolver_storedRowsBecomeSingleReadingEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	decks := mock_store.NewMockDeckRepository(ctrl)
	favorites := mock_store.NewMockFavoriteRepository(ctrl)
	decks.EXPECT().MarkDeckStudied(gomock.Any(), "user-1", "deck-1").Return(nil)
	decks.EXPECT().ListDeckKanji(gomock.Any(), "user-1", "deck-1").Return([]store.DeckKanji{
		{Character: "森", Reading: "もり", Meanings: store.MeaningList{"forest", "woods"}},
		{Character: "畑", Meanings: store.MeaningList{"field"}},
	}, nil)

	catalog, err := kanji.LoadCatalog()
	require.NoError(t, err)

	entries, err := NewResolver(catalog, decks, favorites).Resolve(context.Background(), "user-1", DeckSource("deck-1"))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "もり", entries[0].PrimaryReading())
	assert.Equal(t, "forest", entries[0].PrimaryMeaning())
	assert.Empty(t, entries[1].Readings, "rows without a reading stay unplayable")
}
