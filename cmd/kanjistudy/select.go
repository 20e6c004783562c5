package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stealthwork/kanjistudy/internal/kanji"
	"github.com/stealthwork/kanjistudy/internal/selection"
	"github.com/stealthwork/kanjistudy/internal/settings"
)

func newSelectCommand() *cobra.Command {
	var random bool
	command := &cobra.Command{
		Use:   "select [level] [chapter]",
		Short: "Choose the JLPT level and chapter to study",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			catalog, err := kanji.LoadCatalog()
			if err != nil {
				return fmt.Errorf("kanji.LoadCatalog > %w", err)
			}
			selector, err := selection.NewSelector(catalog, settings.NewStore(cfg.Settings.FilePath))
			if err != nil {
				return fmt.Errorf("selection.NewSelector > %w", err)
			}

			switch {
			case random:
				if err := selector.Randomize(); err != nil {
					return fmt.Errorf("selector.Randomize > %w", err)
				}
			case len(args) >= 1:
				if err := selector.SelectLevel(args[0]); err != nil {
					return fmt.Errorf("selector.SelectLevel > %w", err)
				}
				if len(args) == 2 {
					number, err := strconv.Atoi(args[1])
					if err != nil {
						return fmt.Errorf("chapter must be a number: %w", err)
					}
					if err := selector.SelectChapter(number); err != nil {
						return fmt.Errorf("selector.SelectChapter > %w", err)
					}
				}
			}

			printSelection(catalog, selector)
			return nil
		},
	}
	command.Flags().BoolVar(&random, "random", false, "pick a random level and chapter")

	return command
}

func printSelection(catalog *kanji.Catalog, selector *selection.Selector) {
	if selector.LevelID() == "" {
		fmt.Println("No level selected yet. Available levels:")
		for _, level := range catalog.Levels {
			fmt.Printf("  %s  %s\n", level.ID, level.Name)
		}
		return
	}

	level := catalog.Level(selector.LevelID())
	if selector.Complete() {
		chapter := level.Chapter(selector.Chapter())
		fmt.Printf("Studying %s, chapter %d: %s (%d kanji)\n",
			level.Name, chapter.Number, chapter.Title, len(chapter.Entries))
		return
	}

	fmt.Printf("Level %s selected. Pick a chapter:\n", level.Name)
	for _, chapter := range level.Chapters {
		fmt.Printf("  %d  %s (%d kanji)\n", chapter.Number, chapter.Title, len(chapter.Entries))
	}
}
