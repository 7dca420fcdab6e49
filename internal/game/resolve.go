package game

import (
	"fmt"

	"github.com/lox/loveletter/card"
)

// resolve applies a validated action
func (g Game) resolve(action PlayerAction) Game {
	turn := g.CurrentPlayerIndex()
	player := g.players[turn]

	// Eliminated players pass without touching the deck
	if !player.IsPlaying() {
		return g.next(g.deck, g.players)
	}

	kept := remainingCard(action.Discard, player.HandCard, g.deck[0])
	deck := g.deck[1:]
	logged := action.logged(card.NoCard)

	switch action.Discard {
	case card.Princess:
		return g.movePrincess(logged, kept, deck)
	case card.Guard:
		return g.moveGuard(logged, kept, deck)
	case card.Priest:
		return g.movePriest(logged, kept, deck)
	case card.Baron:
		return g.moveBaron(logged, kept, deck)
	case card.Handmaid, card.Countess:
		return g.moveStatus(logged, kept, deck)
	case card.Prince:
		return g.movePrince(logged, kept, deck)
	case card.King:
		return g.moveKing(logged, kept, deck)
	case card.NoCard:
	}
	panic(fmt.Sprintf("no resolver for %s", action.Discard))
}

func (g Game) moveGuard(action PlayerAction, kept card.Card, deck []card.Card) Game {
	turn := g.CurrentPlayerIndex()
	players := setPlayer(g.players, g.players[turn].move(kept, action), turn)

	target := g.players[action.Target]
	if !target.Protected && target.HandCard == action.Guess {
		players = setPlayer(players, target.forceDiscard(), action.Target)
	}

	return g.next(deck, players)
}

func (g Game) movePriest(action PlayerAction, kept card.Card, deck []card.Card) Game {
	turn := g.CurrentPlayerIndex()

	target := g.players[action.Target]
	revealed := card.NoCard
	if !target.Protected {
		revealed = target.HandCard
	}

	player := g.players[turn].move(kept, action.logged(revealed))
	return g.next(deck, setPlayer(g.players, player, turn))
}

func (g Game) moveBaron(action PlayerAction, kept card.Card, deck []card.Card) Game {
	turn := g.CurrentPlayerIndex()
	player := g.players[turn].move(kept, action)
	players := setPlayer(g.players, player, turn)

	target := g.players[action.Target]
	switch {
	case kept > target.HandCard:
		if !target.Protected {
			players = setPlayer(players, target.forceDiscard(), action.Target)
		}
	case kept < target.HandCard:
		// Protection shields the target only, never the player who lost
		players = setPlayer(players, player.forceDiscard(), turn)
	}

	return g.next(deck, players)
}

// moveStatus covers Handmaid and Countess, whose only effect is on the
// player's own record.
func (g Game) moveStatus(action PlayerAction, kept card.Card, deck []card.Card) Game {
	turn := g.CurrentPlayerIndex()
	player := g.players[turn].move(kept, action)
	return g.next(deck, setPlayer(g.players, player, turn))
}

func (g Game) movePrince(action PlayerAction, kept card.Card, deck []card.Card) Game {
	turn := g.CurrentPlayerIndex()
	players := setPlayer(g.players, g.players[turn].move(kept, action), turn)

	target := players[action.Target]
	if action.Target != turn && target.Protected {
		return g.next(deck, players)
	}

	switch {
	case target.HandCard == card.Princess:
		players = setPlayer(players, target.forceDiscard(), action.Target)
	case len(deck) > 1:
		players = setPlayer(players, target.withHand(deck[0]), action.Target)
		deck = deck[1:]
	default:
		// Only the held-out card is left. The target keeps its card and the
		// round ends on deck exhaustion.
	}

	return g.next(deck, players)
}

// moveKing swaps hands. Protection does not stop the swap.
func (g Game) moveKing(action PlayerAction, kept card.Card, deck []card.Card) Game {
	turn := g.CurrentPlayerIndex()
	target := g.players[action.Target]

	player := g.players[turn].move(target.HandCard, action)
	players := setPlayer(g.players, player, turn)
	players = setPlayer(players, target.withHand(kept), action.Target)

	return g.next(deck, players)
}

// movePrincess eliminates the player: the kept card replaces the hand and
// is immediately discarded as well.
func (g Game) movePrincess(action PlayerAction, kept card.Card, deck []card.Card) Game {
	turn := g.CurrentPlayerIndex()
	player := g.players[turn].move(kept, action).forceDiscard()
	return g.next(deck, setPlayer(g.players, player, turn))
}
