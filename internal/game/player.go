package game

import (
	"github.com/lox/loveletter/card"
)

// Player is one seat's hidden hand, Handmaid protection and action history.
// A player holding card.NoCard is eliminated.
type Player struct {
	HandCard  card.Card
	Protected bool
	Actions   []PlayerAction // oldest first
}

// NewPlayer creates an unprotected player with no history
func NewPlayer(hand card.Card) Player {
	return Player{HandCard: hand}
}

// IsPlaying returns true if the player has not been eliminated
func (p Player) IsPlaying() bool {
	return p.HandCard != card.NoCard
}

// LastAction returns the most recent action, if any
func (p Player) LastAction() (PlayerAction, bool) {
	if len(p.Actions) == 0 {
		return PlayerAction{}, false
	}
	return p.Actions[len(p.Actions)-1], true
}

// DiscardTotal sums the ranks of every card the player has played
func (p Player) DiscardTotal() int {
	total := 0
	for _, a := range p.Actions {
		total += int(a.Discard)
	}
	return total
}

// move records the player's own turn. Protection from an earlier Handmaid
// expires here and is granted again only by playing another Handmaid.
func (p Player) move(hand card.Card, action PlayerAction) Player {
	actions := make([]PlayerAction, len(p.Actions), len(p.Actions)+1)
	copy(actions, p.Actions)
	return Player{
		HandCard:  hand,
		Protected: action.Discard == card.Handmaid,
		Actions:   append(actions, action),
	}
}

// forceDiscard eliminates the player without a replacement card
func (p Player) forceDiscard() Player {
	return Player{HandCard: card.NoCard, Actions: p.Actions}
}

// withHand replaces the hand card, keeping protection and history
func (p Player) withHand(c card.Card) Player {
	p.HandCard = c
	return p
}
