package card

import (
	rand "math/rand/v2"

	"github.com/lox/loveletter/internal/randutil"
)

// NewDeck returns the full deck in rank order, unshuffled
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, c := range Ranks {
		for range counts[c] {
			deck = append(deck, c)
		}
	}
	return deck
}

// Shuffle returns a shuffled deck using Fisher-Yates with an explicit RNG
func Shuffle(rng *rand.Rand) []Card {
	if rng == nil {
		panic("rng is required for shuffling")
	}
	deck := NewDeck()
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// ShuffleDeck returns the deck shuffled by a fresh RNG seeded with seed.
// The same seed always produces the same order.
func ShuffleDeck(seed int64) []Card {
	return Shuffle(randutil.New(seed))
}

// Composition counts the ranks present in cards
func Composition(cards []Card) map[Card]int {
	comp := make(map[Card]int, len(Ranks))
	for _, c := range cards {
		comp[c]++
	}
	return comp
}
