package kanji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, catalog.Levels)

	for _, level := range catalog.Levels {
		assert.NotEmpty(t, level.ID)
		assert.NotEmpty(t, level.Name)

		seen := map[int]bool{}
		for _, chapter := range level.Chapters {
			assert.Falsef(t, seen[chapter.Number], "chapter %d duplicated in level %s", chapter.Number, level.ID)
			seen[chapter.Number] = true
			assert.NotEmpty(t, chapter.Entries)

			for _, entry := range chapter.Entries {
				assert.NotEmpty(t, entry.Character)
				assert.NotEmpty(t, entry.Meanings)
				assert.NotEmpty(t, entry.Readings)
			}
		}
	}
}

func TestCatalog_ChapterEntries(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	tests := []struct {
		name       string
		levelID    string
		chapter    int
		wantKanji  []string
		wantErrMsg string
	}{
		{
			name:      "nature chapter",
			levelID:   "n5",
			chapter:   12,
			wantKanji: []string{"林", "森", "畑", "岩"},
		},
		{
			name:       "unknown level",
			levelID:    "n1",
			chapter:    1,
			wantErrMsg: `unknown level "n1"`,
		},
		{
			name:       "unknown chapter",
			levelID:    "n5",
			chapter:    99,
			wantErrMsg: `unknown chapter 99 in level "n5"`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := catalog.ChapterEntries(tc.levelID, tc.chapter)
			if tc.wantErrMsg != "" {
				require.EqualError(t, err, tc.wantErrMsg)
				return
			}
			require.NoError(t, err)

			var got []string
			for _, entry := range entries {
				got = append(got, entry.Character)
			}
			assert.Equal(t, tc.wantKanji, got)
		})
	}
}

func TestCatalog_AllEntries(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	all := catalog.AllEntries()

	var want int
	for _, level := range catalog.Levels {
		for _, chapter := range level.Chapters {
			want += len(chapter.Entries)
		}
	}
	assert.Len(t, all, want)
}

func TestEntry_Slug(t *testing.T) {
	entry := Entry{Character: "林"}
	assert.Equal(t, "%E6%9E%97", entry.Slug())
}

func TestEntry_PrimaryMeaning(t *testing.T) {
	assert.Equal(t, "Woods", Entry{Meanings: []string{"Woods", "Grove"}}.PrimaryMeaning())
	assert.Equal(t, "", Entry{}.PrimaryMeaning())
}
