package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stealthwork/kanjistudy/internal/dictionary"
	mock_dictionary "github.com/stealthwork/kanjistudy/internal/mocks/dictionary"
	mock_store "github.com/stealthwork/kanjistudy/internal/mocks/store"
	"github.com/stealthwork/kanjistudy/internal/store"
)

func newTestFavoritesCLI(t *testing.T, input string, out *bytes.Buffer) (*FavoritesCLI, *mock_store.MockFavoriteRepository, *mock_dictionary.MockSearcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	favorites := mock_store.NewMockFavoriteRepository(ctrl)
	searcher := mock_dictionary.NewMockSearcher(ctrl)
	return &FavoritesCLI{
		InteractiveCLI: newTestInteractiveCLI(t, input, out),
		userID:         "user-1",
		favorites:      favorites,
		searcher:       searcher,
	}, favorites, searcher
}

func TestFavoritesCLI_Toggle(t *testing.T) {
	word := dictionary.Word{
		Slug:     "%E5%B2%A9",
		Japanese: []dictionary.Japanese{{Word: "岩", Reading: "いわ"}},
		Senses:   []dictionary.Sense{{EnglishDefinitions: []string{"rock"}}},
	}

	tests := map[string]struct {
		setupMock func(favorites *mock_store.MockFavoriteRepository)
		want      string
	}{
		"favorites when absent": {
			setupMock: func(favorites *mock_store.MockFavoriteRepository) {
				favorites.EXPECT().ToggleFavorite(gomock.Any(), "user-1", word.ToMember()).
					Return(true, &store.Favorite{Character: "岩"}, nil)
			},
			want: "Added 岩 to favorites.",
		},
		"unfavorites when present": {
			setupMock: func(favorites *mock_store.MockFavoriteRepository) {
				favorites.EXPECT().ToggleFavorite(gomock.Any(), "user-1", word.ToMember()).
					Return(false, nil, nil)
			},
			want: "Removed 岩 from favorites.",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			cli, favorites, searcher := newTestFavoritesCLI(t, "", &out)
			searcher.EXPECT().Search(gomock.Any(), "岩").
				Return(&dictionary.Response{Data: []dictionary.Word{word}}, nil)
			tc.setupMock(favorites)

			require.NoError(t, cli.Toggle(context.Background(), "岩"))
			assert.Contains(t, out.String(), tc.want)
		})
	}
}

func TestFavoritesCLI_List(t *testing.T) {
	var out bytes.Buffer
	cli, favorites, _ := newTestFavoritesCLI(t, "", &out)
	favorites.EXPECT().ListFavorites(gomock.Any(), "user-1").Return([]store.Favorite{
		{Character: "岩", Reading: "いわ", Meanings: store.MeaningList{"rock", "crag"}},
	}, nil)

	require.NoError(t, cli.List(context.Background()))
	assert.Contains(t, out.String(), "岩  いわ  rock, crag")
}

func TestFavoritesCLI_Remove_declined(t *testing.T) {
	var out bytes.Buffer
	cli, _, _ := newTestFavoritesCLI(t, "n\n", &out)

	require.NoError(t, cli.Remove(context.Background(), "岩"))
	assert.Contains(t, out.String(), "Aborted.")
}

func TestFavoritesCLI_Remove_confirmed(t *testing.T) {
	var out bytes.Buffer
	cli, favorites, _ := newTestFavoritesCLI(t, "y\n", &out)
	favorites.EXPECT().RemoveFavorite(gomock.Any(), "user-1", "岩").Return(nil)

	require.NoError(t, cli.Remove(context.Background(), "岩"))
	assert.Contains(t, out.String(), "Removed 岩 from favorites.")
}

func TestSearchCLI_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mock_dictionary.NewMockSearcher(ctrl)
	searcher.EXPECT().Search(gomock.Any(), "forest").Return(&dictionary.Response{
		Data: []dictionary.Word{
			{
				JLPT:     []string{"jlpt-n5"},
				Japanese: []dictionary.Japanese{{Word: "森", Reading: "もり"}},
				Senses:   []dictionary.Sense{{EnglishDefinitions: []string{"forest"}}},
			},
			{
				Japanese: []dictionary.Japanese{{Reading: "もり"}},
			},
		},
	}, nil)

	var out bytes.Buffer
	cli := &SearchCLI{
		InteractiveCLI: newTestInteractiveCLI(t, "", &out),
		searcher:       searcher,
	}

	require.NoError(t, cli.Search(context.Background(), "forest"))
	assert.Contains(t, out.String(), "森  もり  forest  [jlpt-n5]")
	assert.Contains(t, out.String(), "もり", "kana-only results fall back to the reading")
}
