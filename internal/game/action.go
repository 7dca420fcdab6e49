package game

import (
	"fmt"

	"github.com/lox/loveletter/card"
)

// PlayerAction is a proposed move. Revealed is never read from the caller;
// the engine records what a Priest saw there when the action is logged.
type PlayerAction struct {
	Discard  card.Card
	Target   int
	Guess    card.Card // Guard only
	Revealed card.Card
}

// NewAction creates an action without a guess
func NewAction(discard card.Card, target int) PlayerAction {
	return PlayerAction{Discard: discard, Target: target}
}

// NewGuardAction creates a Guard action guessing the target's card
func NewGuardAction(target int, guess card.Card) PlayerAction {
	return PlayerAction{Discard: card.Guard, Target: target, Guess: guess}
}

// Blank returns the only action an eliminated player may take
func Blank() PlayerAction {
	return PlayerAction{}
}

// IsBlank reports whether a is the blank pass action
func (a PlayerAction) IsBlank() bool {
	return a == PlayerAction{}
}

func (a PlayerAction) String() string {
	switch {
	case a.IsBlank():
		return "pass"
	case a.Discard == card.Guard:
		return fmt.Sprintf("%s -> P%d (guess %s)", a.Discard, a.Target, a.Guess)
	case a.Discard == card.Priest && a.Revealed != card.NoCard:
		return fmt.Sprintf("%s -> P%d (saw %s)", a.Discard, a.Target, a.Revealed)
	default:
		return fmt.Sprintf("%s -> P%d", a.Discard, a.Target)
	}
}

// logged strips caller-supplied knowledge so only the engine fills Revealed
func (a PlayerAction) logged(revealed card.Card) PlayerAction {
	a.Revealed = revealed
	return a
}
