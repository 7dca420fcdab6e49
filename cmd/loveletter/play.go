package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/loveletter/internal/codec"
	"github.com/lox/loveletter/internal/console"
	"github.com/lox/loveletter/internal/game"
	"github.com/lox/loveletter/internal/session"
	"github.com/lox/loveletter/internal/tui"
)

// PlayCmd plays an interactive game
type PlayCmd struct {
	Seed        int64  `default:"451" help:"Deck shuffle seed"`
	Replay      string `help:"Comma-separated action bytes to apply before prompting"`
	Players     int    `short:"p" default:"4" help:"Number of players (2-4)"`
	PlayerIndex int    `name:"player-index" default:"1" help:"Seat whose rewards are reported"`
	Strict      bool   `help:"Report illegal moves as errors"`
	NoColor     bool   `name:"no-color" help:"Disable colored output"`
}

func (c *PlayCmd) Run(g *Globals) error {
	logger, closeLog, err := setupLogger(g)
	if err != nil {
		return err
	}
	defer closeLog()

	if c.PlayerIndex < 0 || c.PlayerIndex >= c.Players {
		return fmt.Errorf("player index %d out of range for %d players", c.PlayerIndex, c.Players)
	}
	actions, err := codec.ParseReplay(c.Replay)
	if err != nil {
		return fmt.Errorf("invalid replay: %w", err)
	}

	start, err := game.New(c.Players, c.Seed)
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	s := session.New(start, session.WithStrict(c.Strict), session.WithLogger(logger))
	renderer := tui.NewRenderer(os.Stdout, !c.NoColor)
	runner := console.New(s, tui.NewPrompter(os.Stdin, os.Stdout, renderer), os.Stdout,
		console.WithRenderer(renderer),
		console.WithLogger(logger.WithPrefix("console")),
		console.WithPlayerIndex(c.PlayerIndex))

	logger.Debug("Starting game", "seed", c.Seed, "players", c.Players, "session", s.ID)
	fmt.Println(renderer.Title("Love Letter"))

	err = runner.Run(ctx, actions)
	if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
		logger.Info("Game abandoned", "turn", s.State().TurnIndex())
		return nil
	}
	return err
}

// ReplayCmd applies a replay without prompting
type ReplayCmd struct {
	Seed        int64  `default:"451" help:"Deck shuffle seed"`
	Actions     string `required:"" help:"Comma-separated action bytes"`
	Players     int    `short:"p" default:"4" help:"Number of players (2-4)"`
	PlayerIndex int    `name:"player-index" default:"1" help:"Seat whose rewards are reported"`
	Strict      bool   `help:"Log illegal actions as errors instead of ignoring them"`
	NoColor     bool   `name:"no-color" help:"Disable colored output"`
}

func (c *ReplayCmd) Run(g *Globals) error {
	logger, closeLog, err := setupLogger(g)
	if err != nil {
		return err
	}
	defer closeLog()

	return c.replay(os.Stdout, logger)
}

func (c *ReplayCmd) replay(out io.Writer, logger *log.Logger) error {
	actions, err := codec.ParseReplay(c.Actions)
	if err != nil {
		return fmt.Errorf("invalid replay: %w", err)
	}
	start, err := game.New(c.Players, c.Seed)
	if err != nil {
		return err
	}

	s := session.New(start, session.WithStrict(c.Strict), session.WithLogger(logger))
	runner := console.New(s, nil, out,
		console.WithRenderer(tui.NewRenderer(out, !c.NoColor)),
		console.WithLogger(logger.WithPrefix("replay")),
		console.WithPlayerIndex(c.PlayerIndex))

	runner.Replay(actions)
	return runner.Show()
}
