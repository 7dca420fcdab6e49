package statistics

import (
	"math"
	"testing"

	"github.com/lox/loveletter/card"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.WinRate(0) != 0 {
		t.Errorf("Expected win rate of 0 for empty stats, got %f", stats.WinRate(0))
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for empty stats")
	}
}

func TestStatistics_Add(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Seed: 1, Players: 4, Winner: 2, Turns: 10,
		Eliminations: map[card.Card]int{card.Guard: 2, card.Baron: 1}})
	stats.Add(GameResult{Seed: 2, Players: 2, Winner: -1, Turns: 14, Exhausted: true})
	stats.Add(GameResult{Seed: 3, Players: 3, Winner: 2, Turns: 12,
		Eliminations: map[card.Card]int{card.Guard: 1}})

	if stats.Games != 3 {
		t.Fatalf("Expected 3 games, got %d", stats.Games)
	}
	if stats.Mean() != 12 {
		t.Errorf("Expected mean of 12, got %f", stats.Mean())
	}
	if stats.Variance() != 4 {
		t.Errorf("Expected variance of 4, got %f", stats.Variance())
	}
	if stats.Median() != 12 {
		t.Errorf("Expected median of 12, got %f", stats.Median())
	}
	if stats.SeatWins[2] != 2 || stats.Ties != 1 || stats.Exhausted != 1 {
		t.Errorf("Unexpected counters: wins=%v ties=%d exhausted=%d", stats.SeatWins, stats.Ties, stats.Exhausted)
	}
	if stats.SeatGames != [MaxSeats]int{3, 3, 2, 1} {
		t.Errorf("Unexpected seat games: %v", stats.SeatGames)
	}
	if math.Abs(stats.WinRate(2)-1.0) > 1e-9 {
		t.Errorf("Expected seat 2 win rate 1.0, got %f", stats.WinRate(2))
	}
	if stats.Eliminations[card.Guard] != 3 || stats.Eliminations[card.Baron] != 1 {
		t.Errorf("Unexpected eliminations: %v", stats.Eliminations)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}

	low, high := stats.ConfidenceInterval95()
	if !(low < stats.Mean() && stats.Mean() < high) {
		t.Errorf("Mean %f outside interval [%f, %f]", stats.Mean(), low, high)
	}
}

func TestStatistics_ValidateMismatch(t *testing.T) {
	stats := &Statistics{Games: 2, Values: []float64{1, 2}, SeatWins: [MaxSeats]int{1}}
	if err := stats.Validate(); err == nil {
		t.Error("Expected wins mismatch to fail validation")
	}
}
