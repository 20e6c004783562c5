package session

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/stealthwork/kanjistudy/internal/kanji"
)

const (
	// ChoiceCount is the number of answers presented per round.
	ChoiceCount = 4

	correctFeedbackDelay = 500 * time.Millisecond
	wrongFeedbackDelay   = 820 * time.Millisecond
)

// ErrInsufficientContent is returned when the content list has fewer than
// ChoiceCount distinct characters, which makes distractor generation
// impossible. It is a static condition, not a request failure.
var ErrInsufficientContent = errors.New("need at least 4 distinct kanji to play")

// Status is the game state machine's current state.
type Status int

const (
	StatusUninitialized Status = iota
	// StatusReady accepts answers for the current question.
	StatusReady
	// StatusAwaitingNextRound shows the correct highlight until the delay
	// elapses and a fresh round starts.
	StatusAwaitingNextRound
	// StatusAwaitingRetry shows the wrong highlight until the delay elapses;
	// the question stays and may be answered again.
	StatusAwaitingRetry
)

// Question asks which character matches the shown reading.
type Question struct {
	Character string
	Kana      string
	Meaning   string
	Example   *kanji.Example
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithRand injects the random source. Tests pass a seeded source.
func WithRand(rng *rand.Rand) GameOption {
	return func(g *Game) { g.rng = rng }
}

// WithScheduler injects the feedback-delay scheduler.
func WithScheduler(s Scheduler) GameOption {
	return func(g *Game) { g.scheduler = s }
}

// Game is the matching-game state machine: question generation, choice
// selection, answer evaluation, scoring, and transient feedback handling.
type Game struct {
	entries   []kanji.Entry
	rng       *rand.Rand
	scheduler Scheduler

	mu               sync.Mutex
	status           Status
	question         Question
	choices          []string
	score            int
	attempts         int
	correctHighlight string
	wrongHighlight   string

	// feedbackSeq guards against a stale timer clearing a newer highlight:
	// each armed clear captures the sequence it was armed for.
	feedbackSeq   int
	pendingCancel CancelFunc
}

// NewGame validates the content list and prepares a game. The first round
// starts on StartRound.
func NewGame(entries []kanji.Entry, opts ...GameOption) (*Game, error) {
	distinct := map[string]bool{}
	for _, entry := range entries {
		if len(entry.Readings) > 0 {
			distinct[entry.Character] = true
		}
	}
	if len(distinct) < ChoiceCount {
		return nil, ErrInsufficientContent
	}

	g := &Game{
		entries:   entries,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		scheduler: TimerScheduler{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// StartRound generates a fresh question and choice set, discarding any
// pending feedback.
func (g *Game) StartRound() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.startRoundLocked()
}

func (g *Game) startRoundLocked() {
	if g.pendingCancel != nil {
		g.pendingCancel()
		g.pendingCancel = nil
	}
	// Supersede any clear still in flight.
	g.feedbackSeq++

	g.question = g.randomQuestion()
	g.choices = g.generateChoices(g.question.Character)
	g.correctHighlight = ""
	g.wrongHighlight = ""
	g.status = StatusReady
}

func (g *Game) randomQuestion() Question {
	for {
		entry := g.entries[g.rng.Intn(len(g.entries))]
		if len(entry.Readings) == 0 {
			continue
		}
		reading := entry.Readings[g.rng.Intn(len(entry.Readings))]
		return Question{
			Character: entry.Character,
			Kana:      reading.Hiragana,
			Meaning:   entry.PrimaryMeaning(),
			Example:   reading.Example,
		}
	}
}

// generateChoices returns exactly ChoiceCount unique characters including
// the correct one, in unpredictable order.
func (g *Game) generateChoices(correct string) []string {
	choices := []string{correct}
	seen := map[string]bool{correct: true}

	for len(choices) < ChoiceCount {
		candidate := g.entries[g.rng.Intn(len(g.entries))].Character
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		choices = append(choices, candidate)
	}

	// Fisher-Yates so the correct answer's position is not predictable.
	for i := len(choices) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		choices[i], choices[j] = choices[j], choices[i]
	}
	return choices
}

// SubmitAnswer evaluates a choice. Attempts always increment; the score
// increments only on a match. A correct answer shows its highlight and
// advances to a fresh round after a short delay; a wrong answer shows its
// highlight, clears it after a delay, and leaves the question in place for
// another try.
func (g *Game) SubmitAnswer(choice string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status == StatusUninitialized {
		return false
	}

	g.attempts++
	correct := choice == g.question.Character
	if correct {
		g.score++
		g.correctHighlight = choice
		g.wrongHighlight = ""
		g.status = StatusAwaitingNextRound
		g.armFeedbackClear(correctFeedbackDelay, true)
	} else {
		g.wrongHighlight = choice
		g.status = StatusAwaitingRetry
		g.armFeedbackClear(wrongFeedbackDelay, false)
	}
	return correct
}

// armFeedbackClear schedules the highlight clear for the submit that just
// happened. The callback only applies if no newer submit or round has
// superseded it.
func (g *Game) armFeedbackClear(delay time.Duration, advance bool) {
	if g.pendingCancel != nil {
		g.pendingCancel()
	}
	g.feedbackSeq++
	seq := g.feedbackSeq

	g.pendingCancel = g.scheduler.AfterFunc(delay, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.feedbackSeq != seq {
			return
		}
		g.pendingCancel = nil
		g.correctHighlight = ""
		g.wrongHighlight = ""
		if advance {
			g.startRoundLocked()
		} else {
			g.status = StatusReady
		}
	})
}

// Stop cancels any pending feedback clear. Call on teardown.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pendingCancel != nil {
		g.pendingCancel()
		g.pendingCancel = nil
	}
	g.feedbackSeq++
}

// Status returns the current state.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Question returns the current question.
func (g *Game) Question() Question {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.question
}

// Choices returns the current answer set.
func (g *Game) Choices() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.choices...)
}

// Score returns the number of correct answers.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// Attempts returns the number of submitted answers.
func (g *Game) Attempts() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attempts
}

// CorrectHighlight returns the transiently highlighted correct choice, or
// an empty string.
func (g *Game) CorrectHighlight() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.correctHighlight
}

// WrongHighlight returns the transiently highlighted wrong choice, or an
// empty string.
func (g *Game) WrongHighlight() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.wrongHighlight
}

// Accuracy returns the hit rate as a percentage. Zero attempts is 0%, not
// a division by zero.
func (g *Game) Accuracy() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.attempts == 0 {
		return 0
	}
	return float64(g.score) / float64(g.attempts) * 100
}

// AccuracyDisplay formats the accuracy with one fractional digit.
func (g *Game) AccuracyDisplay() string {
	return fmt.Sprintf("%.1f%%", g.Accuracy())
}
