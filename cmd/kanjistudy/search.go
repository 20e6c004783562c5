package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stealthwork/kanjistudy/internal/cli"
	"github.com/stealthwork/kanjistudy/internal/dictionary"
)

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the Jisho dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			searchCLI := cli.NewSearchCLI(dictionary.NewClient(cfg.Dictionary))
			return searchCLI.Search(context.Background(), args[0])
		},
	}
}
