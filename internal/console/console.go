// Package console runs an interactive game in the terminal.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/loveletter/card"
	"github.com/lox/loveletter/internal/codec"
	"github.com/lox/loveletter/internal/game"
	"github.com/lox/loveletter/internal/session"
	"github.com/lox/loveletter/internal/tui"
)

// Prompt labels
const (
	LabelDiscard = "Discard Card"
	LabelTarget  = "Player Target"
	LabelGuess   = "Guessed Card"
)

// Prompter asks the user for a seat number or a card
type Prompter interface {
	PromptInt(label string) (int, error)
	PromptCard(label string) (card.Card, error)
}

// Runner drives one session from preloaded actions and user input
type Runner struct {
	session  *session.Session
	prompter Prompter
	renderer *tui.Renderer
	out      io.Writer
	logger   *log.Logger
	player   int
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithRenderer sets the renderer used for state output
func WithRenderer(renderer *tui.Renderer) Option {
	return func(r *Runner) {
		r.renderer = renderer
	}
}

// WithPlayerIndex sets the seat whose rewards are reported at the end
func WithPlayerIndex(i int) Option {
	return func(r *Runner) {
		r.player = i
	}
}

// New creates a runner writing to out
func New(s *session.Session, prompter Prompter, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		session:  s,
		prompter: prompter,
		out:      out,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	if r.renderer == nil {
		r.renderer = tui.NewRenderer(out, false)
	}
	return r
}

// Replay applies preloaded actions without prompting. Rejected actions are
// logged and skipped.
func (r *Runner) Replay(actions []game.PlayerAction) {
	for i, a := range actions {
		r.session.SkipEliminated()
		if r.session.State().Over() {
			r.logger.Warn("Game over before replay finished", "applied", i, "total", len(actions))
			return
		}
		if _, err := r.session.Submit(a); err != nil {
			r.logger.Warn("Skipping replay action", "index", i, "action", a, "error", err)
		}
	}
}

// Run replays actions then prompts for moves until the game is over or ctx
// is cancelled. It returns tui.ErrAborted if the user quits a prompt.
func (r *Runner) Run(ctx context.Context, replay []game.PlayerAction) error {
	r.Replay(replay)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.session.SkipEliminated()
		g := r.session.State()
		if g.Over() {
			break
		}

		if err := r.show(g); err != nil {
			return err
		}

		action, err := r.readAction()
		if errors.Is(err, errEntry) {
			fmt.Fprintln(r.out, r.renderer.Error("Invalid Entry - Exit with Ctrl-C"))
			continue
		}
		if err != nil {
			return err
		}

		next, err := r.session.Submit(action)
		if err != nil {
			fmt.Fprintln(r.out, r.renderer.Error(err.Error()))
			continue
		}
		if next.TurnIndex() == g.TurnIndex() {
			fmt.Fprintln(r.out, r.renderer.Error("Invalid move: "+action.String()))
		}
	}

	return r.Show()
}

// Show prints the current state, followed by the rewards and the winner
// once the game is over.
func (r *Runner) Show() error {
	g := r.session.State()
	if err := r.show(g); err != nil {
		return err
	}
	if g.Over() {
		fmt.Fprintln(r.out, r.renderer.Result(g, r.session.Rewards(r.player)))
	}
	return nil
}

func (r *Runner) show(g game.Game) error {
	replay, err := codec.FormatReplay(r.session.Actions())
	if err != nil {
		return fmt.Errorf("format replay: %w", err)
	}
	fmt.Fprintln(r.out, r.renderer.Game(g, replay))
	return nil
}

var errEntry = errors.New("invalid entry")

func (r *Runner) readAction() (game.PlayerAction, error) {
	discard, err := r.readCard(LabelDiscard)
	if err != nil {
		return game.PlayerAction{}, err
	}
	target, err := r.prompter.PromptInt(LabelTarget)
	if err != nil {
		return game.PlayerAction{}, err
	}
	if discard != card.Guard {
		return game.NewAction(discard, target), nil
	}
	guess, err := r.readCard(LabelGuess)
	if err != nil {
		return game.PlayerAction{}, err
	}
	return game.NewGuardAction(target, guess), nil
}

func (r *Runner) readCard(label string) (card.Card, error) {
	c, err := r.prompter.PromptCard(label)
	if err != nil {
		return card.NoCard, err
	}
	if !c.Valid() {
		return card.NoCard, errEntry
	}
	return c, nil
}
