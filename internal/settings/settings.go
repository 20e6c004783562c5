// Package settings persists small on-device preferences between runs.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the user's persisted preferences. Zero values are replaced
// by defaults on load; callers mutate the struct and call Store.Save.
type Settings struct {
	Language        string `yaml:"preferred_language"`
	ShowRomaji      bool   `yaml:"show_romaji"`
	SelectedLevel   string `yaml:"selected_level"`
	SelectedChapter int    `yaml:"selected_chapter"`
}

// Defaults returns the settings used before the user has saved anything.
func Defaults() Settings {
	return Settings{
		Language:   "en",
		ShowRomaji: true,
	}
}

// Store reads and writes settings at a fixed file path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the settings file. A missing file is not an error; it yields
// the defaults.
func (s *Store) Load() (Settings, error) {
	contents, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}

	settings := Defaults()
	if err := yaml.Unmarshal(contents, &settings); err != nil {
		return Defaults(), fmt.Errorf("yaml.Unmarshal(%s) > %w", s.path, err)
	}
	if settings.Language == "" {
		settings.Language = "en"
	}
	return settings, nil
}

// Save writes the settings file, creating parent directories as needed.
func (s *Store) Save(settings Settings) error {
	contents, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}
