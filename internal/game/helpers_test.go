package game

import (
	"github.com/lox/loveletter/card"
)

// seats creates fresh players holding the given cards
func seats(hands ...card.Card) []Player {
	players := make([]Player, len(hands))
	for i, h := range hands {
		players[i] = NewPlayer(h)
	}
	return players
}

// position builds a game where player 0 is to act and draws deck[0]
func position(deck []card.Card, hands ...card.Card) Game {
	return NewFromState(deck, seats(hands...), 0)
}

// snapshot deep-copies g so later mutation would be detectable
func snapshot(g Game) Game {
	return NewFromState(g.Deck(), g.Players(), g.TurnIndex())
}
