package game

import (
	"github.com/lox/loveletter/card"
)

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	deck []card.Card // If provided, dealt in order instead of shuffling
}

// WithDeck deals from an ordered deck instead of shuffling. The first cards
// go to the players in seat order and the last card is held out.
func WithDeck(deck []card.Card) Option {
	return func(c *gameConfig) {
		c.deck = deck
	}
}
