package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stealthwork/kanjistudy/internal/cli"
)

func newGameCommand() *cobra.Command {
	var source sourceFlags
	command := &cobra.Command{
		Use:   "game",
		Short: "Kanji matching game over the selected kanji",
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

			gameCLI, err := cli.NewGameCLI(entries)
			if err != nil {
				return err
			}

			fmt.Println("Match each reading and meaning to its kanji. Type 'q' to quit.")
			return gameCLI.Run(ctx, gameCLI)
		},
	}
	source.register(command)

	return command
}
