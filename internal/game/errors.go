package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned by a strict Move when the action is illegal
	ErrInvalidMove = errors.New("invalid move")

	// ErrGameOver is returned by a strict Move on a finished game
	ErrGameOver = errors.New("game is over")

	// ErrPlayerCount is returned by New for an unsupported number of players
	ErrPlayerCount = errors.New("player count must be between 2 and 4")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidMove, fmt.Sprintf(format, args...))
}
