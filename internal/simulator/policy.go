package simulator

import (
	rand "math/rand/v2"

	"github.com/lox/loveletter/internal/game"
)

// Policy picks one of the legal actions for the current player
type Policy interface {
	Choose(g game.Game, legal []game.PlayerAction, rng *rand.Rand) game.PlayerAction
}

// PolicyFunc adapts a function to the Policy interface
type PolicyFunc func(g game.Game, legal []game.PlayerAction, rng *rand.Rand) game.PlayerAction

// Choose calls f
func (f PolicyFunc) Choose(g game.Game, legal []game.PlayerAction, rng *rand.Rand) game.PlayerAction {
	return f(g, legal, rng)
}

// RandomPolicy picks uniformly among the legal actions
type RandomPolicy struct{}

// Choose implements Policy
func (RandomPolicy) Choose(_ game.Game, legal []game.PlayerAction, rng *rand.Rand) game.PlayerAction {
	return legal[rng.IntN(len(legal))]
}
