// Package game implements the Love Letter state transition engine.
//
// The main type is Game, an immutable snapshot of a round: the undealt deck
// (whose last card is held out and never drawn), the players and the turn
// counter. Move never edits the receiver; it returns the next state, or the
// same state when the action is rejected.
//
// # Basic Usage
//
//	g, err := game.New(4, 451)
//	if err != nil {
//	    return err
//	}
//	for g.Active() {
//	    if !g.IsCurrentPlayerPlaying() {
//	        g = g.SkipEliminatedPlayer()
//	        continue
//	    }
//	    action := chooseAction(g.LegalActions())
//	    g, err = g.Move(action, true)
//	    if err != nil {
//	        // errors.Is(err, game.ErrInvalidMove)
//	    }
//	}
//	winner, ok := g.Winner()
//
// # Deterministic Testing
//
// The deck is shuffled from an explicit seed, so the same seed always deals
// the same game. Tests that need exact hands can supply an ordered deck:
//
//	g, _ := game.New(2, 0, game.WithDeck(deck))
//
// or build an arbitrary mid-game position with NewFromState.
//
// # Concurrency
//
// Game values are never mutated, so any number of goroutines may read or
// call Move on the same value. Deciding which resulting state becomes the
// canonical one is up to the caller (see internal/session).
package game
