package game

import (
	"testing"

	"github.com/lox/loveletter/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerMoveDoesNotAlias(t *testing.T) {
	t.Parallel()
	p := Player{HandCard: card.Guard, Actions: make([]PlayerAction, 1, 8)}

	a := p.move(card.Priest, NewAction(card.Handmaid, 0))
	b := p.move(card.Baron, NewAction(card.Countess, 0))

	require.Len(t, a.Actions, 2)
	require.Len(t, b.Actions, 2)
	assert.Equal(t, card.Handmaid, a.Actions[1].Discard)
	assert.Equal(t, card.Countess, b.Actions[1].Discard)
	assert.Len(t, p.Actions, 1)
}

func TestPlayerProtection(t *testing.T) {
	t.Parallel()
	p := NewPlayer(card.Guard)

	p = p.move(card.Guard, NewAction(card.Handmaid, 0))
	assert.True(t, p.Protected)

	p = p.move(card.Guard, NewAction(card.Countess, 0))
	assert.False(t, p.Protected)

	p = p.move(card.Guard, NewAction(card.Handmaid, 0)).forceDiscard()
	assert.False(t, p.Protected)
	assert.False(t, p.IsPlaying())
	assert.Len(t, p.Actions, 3)
}

func TestPlayerQueries(t *testing.T) {
	t.Parallel()
	p := NewPlayer(card.King)
	_, ok := p.LastAction()
	assert.False(t, ok)
	assert.Zero(t, p.DiscardTotal())

	p.Actions = []PlayerAction{NewGuardAction(1, card.Priest), NewAction(card.Prince, 2)}
	last, ok := p.LastAction()
	require.True(t, ok)
	assert.Equal(t, card.Prince, last.Discard)
	assert.Equal(t, 6, p.DiscardTotal())
}

func TestActionString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "pass", Blank().String())
	assert.Equal(t, "Guard -> P2 (guess Baron)", NewGuardAction(2, card.Baron).String())
	assert.Equal(t, "King -> P1", NewAction(card.King, 1).String())

	seen := NewAction(card.Priest, 3)
	seen.Revealed = card.Countess
	assert.Equal(t, "Priest -> P3 (saw Countess)", seen.String())
}
