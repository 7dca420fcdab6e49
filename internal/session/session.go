// Package session owns the canonical state of one game and its in-memory
// action log.
package session

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/loveletter/internal/game"
)

// Reward values reported per turn
const (
	RewardMove    = 0
	RewardInvalid = -1
	RewardWin     = 30
	RewardLoss    = -10
)

// ErrNothingToUndo is returned by Undo at the initial state
var ErrNothingToUndo = errors.New("nothing to undo")

// Entry is one accepted move in the action log
type Entry struct {
	Turn   int
	Player int
	Action game.PlayerAction // as submitted; the engine's copy is in the player history
	At     time.Time

	reward int // index into Session.rewards, -1 for a pass
}

// Session serialises moves on a single game. Concurrent Submit calls are
// applied one at a time and each sees the state left by the previous one.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	history []game.Game // history[len-1] is the current state
	log     []Entry
	rewards []int
	strict  bool

	clock  quartz.Clock
	logger *log.Logger
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the clock used to timestamp log entries
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithLogger sets the session logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithStrict makes Submit return an error for illegal actions instead of
// silently ignoring them.
func WithStrict(strict bool) Option {
	return func(s *Session) {
		s.strict = strict
	}
}

// New starts a session at the given state
func New(g game.Game, opts ...Option) *Session {
	s := &Session{
		ID:      uuid.New(),
		history: []game.Game{g},
		clock:   quartz.NewReal(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("session").With("session", s.ID.String()[:8])
	return s
}

// State returns the current game
func (s *Session) State() game.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

func (s *Session) current() game.Game {
	return s.history[len(s.history)-1]
}

// Submit applies an action for the current player. An accepted action is
// logged and the new state returned. A rejected action leaves the state
// unchanged; in strict mode the error is returned and counted as an invalid
// move, otherwise it is dropped silently.
func (s *Session) Submit(action game.PlayerAction) (game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.current()
	player := g.CurrentPlayerIndex()
	next, err := g.Move(action, s.strict)
	if err != nil {
		s.rewards = append(s.rewards, RewardInvalid)
		s.logger.Warn("Rejected action", "turn", g.TurnIndex(), "player", player, "action", action, "error", err)
		return g, fmt.Errorf("player %d: %w", player, err)
	}
	if next.TurnIndex() == g.TurnIndex() {
		s.logger.Debug("Ignored invalid action", "turn", g.TurnIndex(), "player", player, "action", action)
		return g, nil
	}

	entry := Entry{
		Turn:   g.TurnIndex(),
		Player: player,
		Action: action,
		At:     s.clock.Now(),
		reward: -1,
	}
	if !action.IsBlank() {
		entry.reward = len(s.rewards)
		s.rewards = append(s.rewards, RewardMove)
	}
	s.history = append(s.history, next)
	s.log = append(s.log, entry)

	s.logger.Debug("Applied action",
		"turn", g.TurnIndex(),
		"player", player,
		"action", action,
		"deck", len(next.Deck()),
		"playing", next.PlayingCount())

	if next.Over() {
		winner, ok := next.Winner()
		s.logger.Info("Game over", "turns", next.TurnIndex(), "winner", winner, "decided", ok)
	}
	return next, nil
}

// SkipEliminated passes the turn while the current player is eliminated
// and the game is still running. It returns the number of turns skipped.
func (s *Session) SkipEliminated() int {
	skipped := 0
	for {
		g := s.State()
		if g.Over() || g.IsCurrentPlayerPlaying() {
			return skipped
		}
		if _, err := s.Submit(game.Blank()); err != nil {
			return skipped
		}
		skipped++
	}
}

// Undo discards the most recent accepted move and its reward. Rewards for
// rejected actions are kept.
func (s *Session) Undo() (game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) < 2 {
		return s.current(), ErrNothingToUndo
	}
	s.history = s.history[:len(s.history)-1]
	undone := s.log[len(s.log)-1]
	s.log = s.log[:len(s.log)-1]
	if undone.reward >= 0 {
		s.rewards = slices.Delete(s.rewards, undone.reward, undone.reward+1)
	}
	s.logger.Debug("Undid action", "turn", undone.Turn, "player", undone.Player)
	return s.current(), nil
}

// Log returns a copy of the accepted moves, oldest first
func (s *Session) Log() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.log)
}

// Actions returns the submitted actions of every accepted move that was not
// a pass, suitable for codec.FormatReplay.
func (s *Session) Actions() []game.PlayerAction {
	s.mu.Lock()
	defer s.mu.Unlock()

	actions := make([]game.PlayerAction, 0, len(s.log))
	for _, e := range s.log {
		if !e.Action.IsBlank() {
			actions = append(actions, e.Action)
		}
	}
	return actions
}

// Rewards returns the per-turn rewards and, once the game is over, the
// final reward for player.
func (s *Session) Rewards(player int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	rewards := slices.Clone(s.rewards)
	g := s.current()
	if !g.Over() {
		return rewards
	}
	if winner, ok := g.Winner(); ok && winner == player {
		return append(rewards, RewardWin)
	}
	return append(rewards, RewardLoss)
}
