package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/stealthwork/kanjistudy/internal/kanji"
	"github.com/stealthwork/kanjistudy/internal/session"
)

// GameCLI runs the interactive matching game: pick the kanji that matches
// the shown reading and meaning.
type GameCLI struct {
	*InteractiveCLI
	game *session.Game
}

// NewGameCLI creates a game session over the entry list.
func NewGameCLI(entries []kanji.Entry) (*GameCLI, error) {
	game, err := session.NewGame(entries)
	if err != nil {
		return nil, fmt.Errorf("session.NewGame > %w", err)
	}
	game.StartRound()
	return &GameCLI{
		InteractiveCLI: newInteractiveCLI(),
		game:           game,
	}, nil
}

func (r *GameCLI) Session(ctx context.Context) error {
	question := r.game.Question()
	choices := r.game.Choices()

	fmt.Fprintf(r.stdoutWriter, "\nScore: %d/%d (%s)\n", r.game.Score(), r.game.Attempts(), r.game.AccuracyDisplay())
	fmt.Fprintf(r.stdoutWriter, "Which kanji reads %s and means %s?\n",
		r.bold.Sprintf("%s", question.Kana),
		r.italic.Sprintf("%s", question.Meaning),
	)
	for i, choice := range choices {
		fmt.Fprintf(r.stdoutWriter, "  %d. %s\n", i+1, choice)
	}
	fmt.Fprint(r.stdoutWriter, "(1-4, q: quit) > ")

	command, err := r.readLine()
	if err != nil {
		return err
	}
	if command == "q" {
		r.game.Stop()
		fmt.Fprintf(r.stdoutWriter, "Final score: %d/%d (%s)\n",
			r.game.Score(), r.game.Attempts(), r.game.AccuracyDisplay())
		return errEnd
	}

	i, err := strconv.Atoi(command)
	if err != nil || i < 1 || i > len(choices) {
		fmt.Fprintln(r.stdoutWriter, "Pick a number between 1 and 4.")
		return nil
	}

	if r.game.SubmitAnswer(choices[i-1]) {
		fmt.Print("✅ ")
		color.Green("Correct! %s reads %s.", choices[i-1], question.Kana)
		// Let the feedback clear fire and deal the next round.
		r.waitFor(session.StatusReady)
	} else {
		fmt.Print("❌ ")
		color.Red("Not %s. Try again!", choices[i-1])
		r.waitFor(session.StatusReady)
	}
	return nil
}

// waitFor blocks until the game's delayed feedback clear has run.
func (r *GameCLI) waitFor(status session.Status) {
	for i := 0; i < 100; i++ {
		if r.game.Status() == status {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
}
