package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stealthwork/kanjistudy/internal/export"
	"github.com/stealthwork/kanjistudy/internal/kanji"
)

func newExportCommand() *cobra.Command {
	var (
		source  sourceFlags
		output  string
		title   string
		makePDF bool
	)
	command := &cobra.Command{
		Use:   "export",
		Short: "Export the selected kanji as a markdown study sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			entries, err := source.resolveEntries(ctx, cfg)
			if err != nil {
				return err
			}

			if title == "" {
				title = sheetTitle(source)
			}

			sheet := export.Sheet{Title: title, Entries: entries}
			if err := export.WriteMarkdown(sheet, output); err != nil {
				return fmt.Errorf("export.WriteMarkdown > %w", err)
			}
			fmt.Printf("Wrote %d kanji to %s\n", len(entries), output)

			if makePDF {
				pdfPath, err := export.ConvertMarkdownToPDF(output)
				if err != nil {
					return fmt.Errorf("export.ConvertMarkdownToPDF > %w", err)
				}
				fmt.Printf("Wrote %s\n", pdfPath)
			}
			return nil
		},
	}
	source.register(command)
	command.Flags().StringVar(&output, "out", "kanji.md", "output markdown file path")
	command.Flags().StringVar(&title, "title", "", "sheet title (default derived from the source)")
	command.Flags().BoolVar(&makePDF, "pdf", false, "also convert the sheet to PDF")

	return command
}

func sheetTitle(source sourceFlags) string {
	switch {
	case source.deckID != "":
		return fmt.Sprintf("Deck %s", source.deckID)
	case source.favorites:
		return "Favorite kanji"
	case source.levelID != "":
		if catalog, err := kanji.LoadCatalog(); err == nil {
			if level := catalog.Level(source.levelID); level != nil {
				if chapter := level.Chapter(source.chapter); chapter != nil {
					return fmt.Sprintf("%s chapter %d: %s", level.Name, chapter.Number, chapter.Title)
				}
			}
		}
	}
	return "Kanji study sheet"
}
