// Package export renders study sheets for decks and chapters as markdown,
// with optional PDF conversion.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/stealthwork/kanjistudy/internal/kanji"
)

// Sheet is the content of one study sheet.
type Sheet struct {
	Title   string
	Entries []kanji.Entry
}

// Markdown renders the sheet as a markdown document: one section per kanji
// with meanings, readings, and examples.
func (s Sheet) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", s.Title)

	for _, entry := range s.Entries {
		fmt.Fprintf(&b, "\n## %s\n\n", entry.Character)
		if len(entry.Meanings) > 0 {
			fmt.Fprintf(&b, "%s\n", strings.Join(entry.Meanings, ", "))
		}
		for _, reading := range entry.Readings {
			fmt.Fprintf(&b, "\n- %s", reading.Hiragana)
			if reading.Romaji != "" {
				fmt.Fprintf(&b, " (%s)", reading.Romaji)
			}
			if reading.ReadingType != "" {
				fmt.Fprintf(&b, " *%s*", reading.ReadingType)
			}
			b.WriteString("\n")
			if reading.Example != nil {
				fmt.Fprintf(&b, "  - %s / %s / %s\n",
					reading.Example.Japanese,
					reading.Example.Hiragana,
					reading.Example.English,
				)
			}
		}
	}
	return b.String()
}

// WriteMarkdown writes the sheet to a markdown file.
func WriteMarkdown(sheet Sheet, path string) error {
	if err := os.WriteFile(path, []byte(sheet.Markdown()), 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}

// ConvertMarkdownToPDF converts a markdown study sheet to PDF next to the
// source file and returns the PDF path.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
