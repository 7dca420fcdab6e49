package game

import (
	"fmt"

	"github.com/lox/loveletter/card"
)

// IsActionValid tests if an action is legal for the current player
func (g Game) IsActionValid(action PlayerAction) bool {
	return g.Validate(action) == nil
}

// Validate returns nil if the action is legal for the current player, or an
// error naming the rule it breaks.
func (g Game) Validate(action PlayerAction) error {
	if g.Over() {
		return fmt.Errorf("%w: %w", ErrInvalidMove, ErrGameOver)
	}

	turn := g.CurrentPlayerIndex()
	player := g.players[turn]

	// An eliminated player can only pass
	if !player.IsPlaying() {
		if !action.IsBlank() {
			return invalid("player %d is eliminated and must pass", turn)
		}
		return nil
	}

	drawn := g.deck[0]
	if action.Discard != player.HandCard && action.Discard != drawn {
		return invalid("%s is not in hand [%s %s]", action.Discard, player.HandCard, drawn)
	}

	// Countess must be discarded alongside a King or Prince
	kept := remainingCard(action.Discard, player.HandCard, drawn)
	if kept == card.Countess && (action.Discard == card.King || action.Discard == card.Prince) {
		return invalid("%s cannot be played while holding the Countess", action.Discard)
	}

	if action.Target < 0 || action.Target >= len(g.players) {
		return invalid("target %d out of range", action.Target)
	}
	if !g.players[action.Target].IsPlaying() {
		return invalid("target %d is eliminated", action.Target)
	}

	if action.Target == turn && card.OnlyOther(action.Discard) {
		return invalid("%s must target another player", action.Discard)
	}
	if action.Target != turn && card.OnlySelf(action.Discard) {
		return invalid("%s can only target yourself", action.Discard)
	}

	if action.Discard == card.Guard {
		if action.Guess == card.Guard || action.Guess == card.NoCard || !action.Guess.Valid() {
			return invalid("guard cannot guess %s", action.Guess)
		}
	}

	return nil
}
