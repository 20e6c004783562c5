package kanji

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/catalog.json
var catalogJSON []byte

// Catalog is the default kanji set, organized by JLPT level and chapter.
type Catalog struct {
	Levels []Level `json:"levels"`
}

// LoadCatalog decodes the embedded default catalog.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(catalogJSON, &c); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(catalog) > %w", err)
	}
	return &c, nil
}

// Level returns the level with the given id, or nil.
func (c *Catalog) Level(id string) *Level {
	for i := range c.Levels {
		if c.Levels[i].ID == id {
			return &c.Levels[i]
		}
	}
	return nil
}

// ChapterEntries returns the entries of one chapter.
func (c *Catalog) ChapterEntries(levelID string, chapterNumber int) ([]Entry, error) {
	level := c.Level(levelID)
	if level == nil {
		return nil, fmt.Errorf("unknown level %q", levelID)
	}
	chapter := level.Chapter(chapterNumber)
	if chapter == nil {
		return nil, fmt.Errorf("unknown chapter %d in level %q", chapterNumber, levelID)
	}
	return chapter.Entries, nil
}

// AllEntries flattens every chapter of every level into one ordered list.
func (c *Catalog) AllEntries() []Entry {
	var entries []Entry
	for _, level := range c.Levels {
		for _, chapter := range level.Chapters {
			entries = append(entries, chapter.Entries...)
		}
	}
	return entries
}
