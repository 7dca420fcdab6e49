package game

import (
	"fmt"
	"slices"

	"github.com/lox/loveletter/card"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

// Game is an immutable snapshot of a Love Letter round
type Game struct {
	deck      []card.Card // deck[len-1] is held out
	players   []Player
	turnIndex int
}

// New deals a fresh game for playerCount players from a deck shuffled with
// seed. The same seed always produces the same game.
//
//	g, err := New(4, 451)
//	g, err := New(2, 0, WithDeck(orderedDeck))
func New(playerCount int, seed int64, opts ...Option) (Game, error) {
	if playerCount < MinPlayers || playerCount > MaxPlayers {
		return Game{}, fmt.Errorf("%w: got %d", ErrPlayerCount, playerCount)
	}

	cfg := &gameConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var deck []card.Card
	if cfg.deck != nil {
		if len(cfg.deck) <= playerCount {
			return Game{}, fmt.Errorf("deck of %d cards cannot deal %d players and hold one out", len(cfg.deck), playerCount)
		}
		for i, c := range cfg.deck {
			if c == card.NoCard || !c.Valid() {
				return Game{}, fmt.Errorf("deck position %d: invalid card %s", i, c)
			}
		}
		deck = slices.Clone(cfg.deck)
	} else {
		deck = card.ShuffleDeck(seed)
	}

	players := make([]Player, playerCount)
	for i := range players {
		players[i] = NewPlayer(deck[i])
	}

	return Game{
		deck:      deck[playerCount:],
		players:   players,
		turnIndex: 0,
	}, nil
}

// NewFromState builds a game from an explicit position. The inputs are
// copied, so later changes to them do not affect the returned Game.
func NewFromState(deck []card.Card, players []Player, turnIndex int) Game {
	ps := make([]Player, len(players))
	for i, p := range players {
		p.Actions = slices.Clone(p.Actions)
		ps[i] = p
	}
	return Game{
		deck:      slices.Clone(deck),
		players:   ps,
		turnIndex: turnIndex,
	}
}

// Deck returns a copy of the undealt cards. The last card is held out.
func (g Game) Deck() []card.Card {
	return slices.Clone(g.deck)
}

// HeldOut returns the card set aside at the deal
func (g Game) HeldOut() card.Card {
	if len(g.deck) == 0 {
		return card.NoCard
	}
	return g.deck[len(g.deck)-1]
}

// Players returns a copy of the player list, action histories included
func (g Game) Players() []Player {
	players := make([]Player, len(g.players))
	for i := range g.players {
		players[i] = g.Player(i)
	}
	return players
}

// Player returns a copy of the player in seat i
func (g Game) Player(i int) Player {
	p := g.players[i]
	p.Actions = slices.Clone(p.Actions)
	return p
}

// PlayerCount returns the number of seats, eliminated players included
func (g Game) PlayerCount() int {
	return len(g.players)
}

// TurnIndex returns the number of resolved moves so far
func (g Game) TurnIndex() int {
	return g.turnIndex
}

// Round returns the current round number
func (g Game) Round() int {
	return g.turnIndex / len(g.players)
}

// CurrentPlayerIndex returns the seat whose turn it is
func (g Game) CurrentPlayerIndex() int {
	return g.turnIndex % len(g.players)
}

// CurrentPlayer returns the player whose turn it is
func (g Game) CurrentPlayer() Player {
	return g.players[g.CurrentPlayerIndex()]
}

// IsCurrentPlayerPlaying returns true unless the current player is eliminated
func (g Game) IsCurrentPlayerPlaying() bool {
	return g.CurrentPlayer().IsPlaying()
}

// PlayingCount returns the number of players not yet eliminated
func (g Game) PlayingCount() int {
	n := 0
	for _, p := range g.players {
		if p.IsPlaying() {
			n++
		}
	}
	return n
}

// DeckExhausted returns true once only the held-out card is left
func (g Game) DeckExhausted() bool {
	return len(g.deck) < 2
}

// Active returns true while more than one player remains and there is a
// card left to draw.
func (g Game) Active() bool {
	return g.PlayingCount() > 1 && !g.DeckExhausted()
}

// Over returns true once the game accepts no further moves
func (g Game) Over() bool {
	return !g.Active()
}

// Winner returns the winning seat of a finished game. With one player left
// that player wins. When the deck runs out the highest hand wins, ties going
// to the larger discard total; a tie on both has no winner.
func (g Game) Winner() (int, bool) {
	if g.Active() {
		return -1, false
	}

	winner := -1
	tied := false
	for i, p := range g.players {
		if !p.IsPlaying() {
			continue
		}
		if winner < 0 {
			winner = i
			continue
		}
		switch compareShowdown(p, g.players[winner]) {
		case 1:
			winner, tied = i, false
		case 0:
			tied = true
		}
	}

	if winner < 0 || tied {
		return -1, false
	}
	return winner, true
}

func compareShowdown(a, b Player) int {
	switch {
	case a.HandCard > b.HandCard:
		return 1
	case a.HandCard < b.HandCard:
		return -1
	case a.DiscardTotal() > b.DiscardTotal():
		return 1
	case a.DiscardTotal() < b.DiscardTotal():
		return -1
	}
	return 0
}

// Move applies the current player's action and returns the next state.
//
// An illegal action, or any action on a finished game, leaves the game
// unchanged: the receiver is returned with a nil error, or with an error
// wrapping ErrInvalidMove when strict is true.
func (g Game) Move(action PlayerAction, strict bool) (Game, error) {
	if err := g.Validate(action); err != nil {
		if strict {
			return g, err
		}
		return g, nil
	}
	return g.resolve(action), nil
}

// SkipEliminatedPlayer passes the turn of an eliminated current player
func (g Game) SkipEliminatedPlayer() Game {
	next, _ := g.Move(Blank(), false)
	return next
}

// next advances the turn with the given deck and players
func (g Game) next(deck []card.Card, players []Player) Game {
	return Game{
		deck:      deck,
		players:   players,
		turnIndex: g.turnIndex + 1,
	}
}

// setPlayer returns a fresh copy of players with p in seat i
func setPlayer(players []Player, p Player, i int) []Player {
	out := slices.Clone(players)
	out[i] = p
	return out
}

// remainingCard is the card kept after discarding one of held and drawn.
// With a pair the other copy stays in hand.
func remainingCard(discard, held, drawn card.Card) card.Card {
	if discard == held {
		return drawn
	}
	return held
}
