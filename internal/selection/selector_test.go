package selection

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stealthwork/kanjistudy/internal/kanji"
	"github.com/stealthwork/kanjistudy/internal/settings"
)

func testCatalog() *kanji.Catalog {
	return &kanji.Catalog{
		Levels: []kanji.Level{
			{
				ID:   "n5",
				Name: "JLPT N5",
				Chapters: []kanji.Chapter{
					{Number: 10, Title: "Food and Drink"},
					{Number: 12, Title: "Nature"},
				},
			},
			{
				ID:       "n4",
				Name:     "JLPT N4",
				Chapters: []kanji.Chapter{{Number: 1, Title: "Weather"}},
			},
			{
				ID:   "n3",
				Name: "JLPT N3",
			},
		},
	}
}

func testStore(t *testing.T) *settings.Store {
	t.Helper()
	return settings.NewStore(filepath.Join(t.TempDir(), "settings.yml"))
}

func TestSelector_selectLevelResetsChapter(t *testing.T) {
	selector, err := NewSelector(testCatalog(), testStore(t))
	require.NoError(t, err)
	assert.False(t, selector.Complete())

	require.NoError(t, selector.SelectLevel("n5"))
	require.NoError(t, selector.SelectChapter(12))
	assert.True(t, selector.Complete())

	require.NoError(t, selector.SelectLevel("n5"))
	assert.Equal(t, 0, selector.Chapter(), "changing level discards the chapter")
	assert.False(t, selector.Complete())
}

func TestSelector_singleChapterLevelAutoSelects(t *testing.T) {
	selector, err := NewSelector(testCatalog(), testStore(t))
	require.NoError(t, err)

	require.NoError(t, selector.SelectLevel("n4"))
	assert.Equal(t, 1, selector.Chapter())
	assert.True(t, selector.Complete())
}

func TestSelector_singleLevelCatalogAutoSelects(t *testing.T) {
	catalog := &kanji.Catalog{
		Levels: []kanji.Level{{
			ID:       "n4",
			Chapters: []kanji.Chapter{{Number: 1}},
		}},
	}

	selector, err := NewSelector(catalog, testStore(t))
	require.NoError(t, err)
	assert.Equal(t, "n4", selector.LevelID())
	assert.Equal(t, 1, selector.Chapter())
}

func TestSelector_validation(t *testing.T) {
	selector, err := NewSelector(testCatalog(), testStore(t))
	require.NoError(t, err)

	assert.ErrorContains(t, selector.SelectChapter(10), "select a level first")
	assert.ErrorContains(t, selector.SelectLevel("n9"), `unknown level "n9"`)

	require.NoError(t, selector.SelectLevel("n5"))
	assert.ErrorContains(t, selector.SelectChapter(99), `unknown chapter 99 in level "n5"`)
}

func TestSelector_randomizeSkipsEmptyLevels(t *testing.T) {
	selector, err := NewSelector(testCatalog(), testStore(t),
		WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		require.NoError(t, selector.Randomize())
		assert.NotEqual(t, "n3", selector.LevelID(), "levels without chapters are never picked")
		assert.True(t, selector.Complete())
	}
}

func TestSelector_selectionPersistsAcrossInstances(t *testing.T) {
	store := testStore(t)

	first, err := NewSelector(testCatalog(), store)
	require.NoError(t, err)
	require.NoError(t, first.SelectLevel("n5"))
	require.NoError(t, first.SelectChapter(10))

	second, err := NewSelector(testCatalog(), store)
	require.NoError(t, err)
	assert.Equal(t, "n5", second.LevelID())
	assert.Equal(t, 10, second.Chapter())
}

func TestSelector_staleSavedSelectionIsDiscarded(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(settings.Settings{
		Language:        "en",
		SelectedLevel:   "n2",
		SelectedChapter: 42,
	}))

	selector, err := NewSelector(testCatalog(), store)
	require.NoError(t, err)
	assert.Empty(t, selector.LevelID())
	assert.Equal(t, 0, selector.Chapter())
}

func TestSelector_persistKeepsOtherPreferences(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(settings.Settings{Language: "ja", ShowRomaji: true}))

	selector, err := NewSelector(testCatalog(), store)
	require.NoError(t, err)
	require.NoError(t, selector.SelectLevel("n5"))

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "ja", saved.Language)
	assert.Equal(t, "n5", saved.SelectedLevel)
}
