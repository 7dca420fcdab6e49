// Package codec converts actions and players to and from the compact byte
// form used for logging and replay.
//
// An action is three bytes: [discard, target, guess]. A player is
// [hand, actionCount] followed by three bytes per action. Revealed cards
// and protection are not part of the compact form.
package codec

import (
	"errors"
	"fmt"
	"math"

	"github.com/lox/loveletter/card"
	"github.com/lox/loveletter/internal/game"
)

// ActionSize is the number of bytes in an encoded action
const ActionSize = 3

// ErrMalformed is returned when input cannot be decoded
var ErrMalformed = errors.New("malformed encoding")

// EncodeAction encodes an action as [discard, target, guess]
func EncodeAction(a game.PlayerAction) ([ActionSize]byte, error) {
	if !a.Discard.Valid() || !a.Guess.Valid() {
		return [ActionSize]byte{}, fmt.Errorf("cannot encode %v: invalid card", a)
	}
	if a.Target < 0 || a.Target > math.MaxUint8 {
		return [ActionSize]byte{}, fmt.Errorf("cannot encode target %d", a.Target)
	}
	return [ActionSize]byte{byte(a.Discard), byte(a.Target), byte(a.Guess)}, nil
}

// DecodeAction decodes exactly one encoded action
func DecodeAction(data []byte) (game.PlayerAction, error) {
	if len(data) != ActionSize {
		return game.PlayerAction{}, fmt.Errorf("%w: action needs %d bytes, got %d", ErrMalformed, ActionSize, len(data))
	}
	discard, guess := card.Card(data[0]), card.Card(data[2])
	if !discard.Valid() {
		return game.PlayerAction{}, fmt.Errorf("%w: discard %d", ErrMalformed, data[0])
	}
	if !guess.Valid() {
		return game.PlayerAction{}, fmt.Errorf("%w: guess %d", ErrMalformed, data[2])
	}
	return game.PlayerAction{
		Discard: discard,
		Target:  int(data[1]),
		Guess:   guess,
	}, nil
}

// EncodeActions concatenates the encodings of actions
func EncodeActions(actions []game.PlayerAction) ([]byte, error) {
	out := make([]byte, 0, len(actions)*ActionSize)
	for i, a := range actions {
		b, err := EncodeAction(a)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		out = append(out, b[:]...)
	}
	return out, nil
}

// DecodeActions splits data into consecutive encoded actions
func DecodeActions(data []byte) ([]game.PlayerAction, error) {
	if len(data)%ActionSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of actions", ErrMalformed, len(data))
	}
	actions := make([]game.PlayerAction, 0, len(data)/ActionSize)
	for i := 0; i < len(data); i += ActionSize {
		a, err := DecodeAction(data[i : i+ActionSize])
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i/ActionSize, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// EncodePlayer encodes a player as [hand, actionCount, actions...]
func EncodePlayer(p game.Player) ([]byte, error) {
	if !p.HandCard.Valid() {
		return nil, fmt.Errorf("cannot encode hand %s", p.HandCard)
	}
	if len(p.Actions) > math.MaxUint8 {
		return nil, fmt.Errorf("cannot encode %d actions", len(p.Actions))
	}
	actions, err := EncodeActions(p.Actions)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 2+len(actions))
	out = append(out, byte(p.HandCard), byte(len(p.Actions)))
	return append(out, actions...), nil
}

// DecodePlayer decodes an encoded player. The action count must match the
// remaining bytes exactly.
func DecodePlayer(data []byte) (game.Player, error) {
	if len(data) < 2 {
		return game.Player{}, fmt.Errorf("%w: player needs at least 2 bytes, got %d", ErrMalformed, len(data))
	}
	hand := card.Card(data[0])
	if !hand.Valid() {
		return game.Player{}, fmt.Errorf("%w: hand %d", ErrMalformed, data[0])
	}
	count := int(data[1])
	if want := 2 + count*ActionSize; len(data) != want {
		return game.Player{}, fmt.Errorf("%w: %d actions need %d bytes, got %d", ErrMalformed, count, want, len(data))
	}

	p := game.NewPlayer(hand)
	if count > 0 {
		actions, err := DecodeActions(data[2:])
		if err != nil {
			return game.Player{}, err
		}
		p.Actions = actions
	}
	return p, nil
}
