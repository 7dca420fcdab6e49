// Package card defines the Love Letter card ranks and the fixed deck
// composition they are drawn from.
package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Card is a card rank. The numeric value is the card's strength and is the
// ordering used by Baron comparisons.
type Card uint8

// Card ranks. NoCard is never part of the deck; it marks the empty hand of
// an eliminated player.
const (
	NoCard Card = iota
	Guard
	Priest
	Baron
	Handmaid
	Prince
	King
	Countess
	Princess
)

// DeckSize is the number of cards in a full deck
const DeckSize = 16

var names = [...]string{
	NoCard:   "NoCard",
	Guard:    "Guard",
	Priest:   "Priest",
	Baron:    "Baron",
	Handmaid: "Handmaid",
	Prince:   "Prince",
	King:     "King",
	Countess: "Countess",
	Princess: "Princess",
}

// counts is the number of copies of each rank in a deck
var counts = [...]int{
	NoCard:   0,
	Guard:    5,
	Priest:   2,
	Baron:    2,
	Handmaid: 2,
	Prince:   2,
	King:     2,
	Countess: 1,
	Princess: 1,
}

// Ranks lists the ranks that make up a deck, weakest first
var Ranks = []Card{Guard, Priest, Baron, Handmaid, Prince, King, Countess, Princess}

// Valid reports whether c is a known rank, including NoCard
func (c Card) Valid() bool {
	return c <= Princess
}

// String returns the card's name
func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Card(%d)", uint8(c))
	}
	return names[c]
}

// Count returns how many copies of c a full deck holds
func Count(c Card) int {
	if !c.Valid() {
		return 0
	}
	return counts[c]
}

// OnlyOther reports whether c must target a player other than the one
// playing it.
func OnlyOther(c Card) bool {
	switch c {
	case Guard, Priest, Baron, King:
		return true
	}
	return false
}

// OnlySelf reports whether c targets only the player playing it, or has no
// target at all. NoCard is never a legal discard for a player still in the
// round.
func OnlySelf(c Card) bool {
	switch c {
	case NoCard, Handmaid, Countess, Princess:
		return true
	}
	return false
}

// Parse converts a rank name ("guard", "Princess") or number ("1") into a Card.
func Parse(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > int(Princess) {
			return NoCard, fmt.Errorf("card number out of range: %d", n)
		}
		return Card(n), nil
	}
	for c, name := range names {
		if strings.EqualFold(name, s) {
			return Card(c), nil
		}
	}
	return NoCard, fmt.Errorf("unknown card: %q", s)
}
