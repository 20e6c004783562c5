package cli

import (
	"context"
	"fmt"

	"github.com/stealthwork/kanjistudy/internal/dictionary"
)

// SearchCLI prints dictionary search results.
type SearchCLI struct {
	*InteractiveCLI
	searcher dictionary.Searcher
}

// NewSearchCLI creates the search command handler.
func NewSearchCLI(searcher dictionary.Searcher) *SearchCLI {
	return &SearchCLI{
		InteractiveCLI: newInteractiveCLI(),
		searcher:       searcher,
	}
}

// Search looks the query up and prints every result.
func (r *SearchCLI) Search(ctx context.Context, query string) error {
	response, err := r.searcher.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("searcher.Search(%s) > %w", query, err)
	}
	if len(response.Data) == 0 {
		fmt.Fprintf(r.stdoutWriter, "No results for %q.\n", query)
		return nil
	}

	for _, word := range response.Data {
		line := fmt.Sprintf("%s  %s  %s",
			r.bold.Sprintf("%s", word.Character()),
			word.Reading(),
			r.italic.Sprintf("%s", joinMeanings(word.Meanings())),
		)
		if tag := word.LevelTag(); tag != "" {
			line += fmt.Sprintf("  [%s]", tag)
		}
		fmt.Fprintln(r.stdoutWriter, line)
	}
	return nil
}
