// Package simulator plays many independent games concurrently and collects
// statistics, checking the engine's bookkeeping on every move.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/loveletter/card"
	"github.com/lox/loveletter/internal/game"
	"github.com/lox/loveletter/internal/randutil"
	"github.com/lox/loveletter/internal/statistics"
)

// ErrInvariant is returned when a move breaks the engine's bookkeeping
var ErrInvariant = errors.New("invariant violated")

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Players int
	Seed    int64
	Workers int
	Timeout time.Duration // per game
	Policy  Policy
	Clock   quartz.Clock
	Logger  *log.Logger
}

// Simulator runs Love Letter game simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Timeout <= 0 {
		config.Timeout = time.Second
	}
	if config.Policy == nil {
		config.Policy = RandomPolicy{}
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	config.Logger = config.Logger.WithPrefix("simulator")
	return &Simulator{config: config}
}

// Run plays every game and returns the aggregated statistics. Game i is
// seeded with Seed+i, so results do not depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]statistics.GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	s.config.Logger.Info("Starting simulation",
		"games", s.config.Games,
		"players", s.config.Players,
		"seed", s.config.Seed,
		"workers", s.config.Workers)

	for i := range s.config.Games {
		seed := s.config.Seed + int64(i)
		g.Go(func() error {
			result, err := s.playGameWithTimeout(ctx, seed)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete",
		"games", stats.Games,
		"meanTurns", fmt.Sprintf("%.2f", stats.Mean()),
		"ties", stats.Ties)
	return stats, nil
}

// playGameWithTimeout runs a single game, abandoning it once the timeout
// fires on the simulator's clock.
func (s *Simulator) playGameWithTimeout(ctx context.Context, seed int64) (statistics.GameResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timedOut := make(chan struct{})
	timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
		close(timedOut)
		cancel()
	})
	defer timer.Stop()

	result, err := s.PlayGame(ctx, seed)
	if err != nil {
		select {
		case <-timedOut:
			return result, fmt.Errorf("game timed out after %v (seed: %d): %w", s.config.Timeout, seed, err)
		default:
		}
	}
	return result, err
}

// PlayGame plays one game to completion with the configured policy
func (s *Simulator) PlayGame(ctx context.Context, seed int64) (statistics.GameResult, error) {
	start := s.config.Clock.Now()
	rng := randutil.New(seed)

	g, err := game.New(s.config.Players, seed)
	if err != nil {
		return statistics.GameResult{}, err
	}

	eliminations := make(map[card.Card]int)
	heldOut := g.HeldOut()

	for g.Active() {
		if err := ctx.Err(); err != nil {
			return statistics.GameResult{Seed: seed}, err
		}

		var action game.PlayerAction
		if g.IsCurrentPlayerPlaying() {
			action = s.config.Policy.Choose(g, g.LegalActions(), rng)
		} else {
			action = game.Blank()
		}

		next, err := g.Move(action, true)
		if err != nil {
			return statistics.GameResult{Seed: seed}, fmt.Errorf("seed %d turn %d: %w", seed, g.TurnIndex(), err)
		}
		if err := checkMove(g, next, action, heldOut); err != nil {
			return statistics.GameResult{Seed: seed}, fmt.Errorf("seed %d turn %d: %w", seed, g.TurnIndex(), err)
		}

		if out := g.PlayingCount() - next.PlayingCount(); out > 0 {
			eliminations[action.Discard] += out
		}
		g = next
	}

	winner, ok := g.Winner()
	if !ok {
		winner = -1
	}

	s.config.Logger.Debug("Game finished", "seed", seed, "turns", g.TurnIndex(), "winner", winner)

	return statistics.GameResult{
		Seed:         seed,
		Players:      s.config.Players,
		Winner:       winner,
		Turns:        g.TurnIndex(),
		Exhausted:    g.PlayingCount() > 1,
		Eliminations: eliminations,
		Duration:     s.config.Clock.Since(start),
	}, nil
}

// checkMove verifies the bookkeeping between two consecutive states
func checkMove(before, after game.Game, action game.PlayerAction, heldOut card.Card) error {
	if after.TurnIndex() != before.TurnIndex()+1 {
		return fmt.Errorf("%w: turn %d followed by %d", ErrInvariant, before.TurnIndex(), after.TurnIndex())
	}
	if after.HeldOut() != heldOut {
		return fmt.Errorf("%w: held-out card changed from %s to %s", ErrInvariant, heldOut, after.HeldOut())
	}

	shrink := len(before.Deck()) - len(after.Deck())
	switch {
	case action.IsBlank() && shrink != 0:
		return fmt.Errorf("%w: pass changed the deck by %d", ErrInvariant, shrink)
	case !action.IsBlank() && (shrink < 1 || shrink > 2):
		return fmt.Errorf("%w: %v changed the deck by %d", ErrInvariant, action, shrink)
	}

	if after.PlayingCount() > before.PlayingCount() {
		return fmt.Errorf("%w: eliminated player returned", ErrInvariant)
	}
	return nil
}
