package game

import (
	"github.com/lox/loveletter/card"
)

// LegalActions lists every action the current player may take, in a stable
// order. It is empty once the game is over.
func (g Game) LegalActions() []PlayerAction {
	if g.Over() {
		return nil
	}
	player := g.CurrentPlayer()
	if !player.IsPlaying() {
		return []PlayerAction{Blank()}
	}

	discards := []card.Card{player.HandCard}
	if drawn := g.deck[0]; drawn != player.HandCard {
		discards = append(discards, drawn)
	}

	var actions []PlayerAction
	for _, discard := range discards {
		for target := range g.players {
			if discard != card.Guard {
				if a := NewAction(discard, target); g.IsActionValid(a) {
					actions = append(actions, a)
				}
				continue
			}
			for _, guess := range card.Ranks {
				if a := NewGuardAction(target, guess); g.IsActionValid(a) {
					actions = append(actions, a)
				}
			}
		}
	}
	return actions
}

// Drawn returns the card the current player draws this turn
func (g Game) Drawn() card.Card {
	if len(g.deck) == 0 {
		return card.NoCard
	}
	return g.deck[0]
}
