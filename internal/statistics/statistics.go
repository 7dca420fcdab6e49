package statistics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lox/loveletter/card"
)

// MaxSeats is the largest table the statistics track per seat
const MaxSeats = 4

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	Seed         int64             // RNG seed for this game (for replay)
	Players      int               // Number of seats
	Winner       int               // Winning seat, -1 for a tie
	Turns        int               // Resolved moves including passes
	Exhausted    bool              // Game ended because the deck ran out
	Eliminations map[card.Card]int // Players knocked out, by the card that was played
	Duration     time.Duration     // Wall time spent playing
}

// Statistics tracks aggregate results over many simulated games
type Statistics struct {
	Games     int
	SumTurns  float64
	SumTurns2 float64   // Sum of squares for variance calculation
	Values    []float64 // Turns per game for median/percentile calculation

	SeatWins  [MaxSeats]int
	SeatGames [MaxSeats]int // Games in which the seat was dealt in
	Ties      int
	Exhausted int // Games decided by comparing hands at the end of the deck

	Eliminations map[card.Card]int
	TotalTime    time.Duration
}

// Mean returns the mean number of turns per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of turns per game
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of turns per game
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a game result into the statistics
func (s *Statistics) Add(result GameResult) {
	turns := float64(result.Turns)
	s.Games++
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Values = append(s.Values, turns)
	s.TotalTime += result.Duration

	for seat := 0; seat < result.Players && seat < MaxSeats; seat++ {
		s.SeatGames[seat]++
	}
	if result.Winner >= 0 && result.Winner < MaxSeats {
		s.SeatWins[result.Winner]++
	} else {
		s.Ties++
	}
	if result.Exhausted {
		s.Exhausted++
	}

	if len(result.Eliminations) > 0 && s.Eliminations == nil {
		s.Eliminations = make(map[card.Card]int)
	}
	for c, n := range result.Eliminations {
		s.Eliminations[c] += n
	}
}

// Median returns the median number of turns per game
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the turns value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the fraction of games the seat was dealt into that it won
func (s *Statistics) WinRate(seat int) float64 {
	if seat < 0 || seat >= MaxSeats || s.SeatGames[seat] == 0 {
		return 0
	}
	return float64(s.SeatWins[seat]) / float64(s.SeatGames[seat])
}

// Validate checks that the counters are consistent
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	wins := s.Ties
	for _, w := range s.SeatWins {
		wins += w
	}
	if wins != s.Games {
		return fmt.Errorf("wins plus ties (%d) does not match games count (%d)", wins, s.Games)
	}

	if s.Exhausted > s.Games {
		return fmt.Errorf("exhausted games (%d) exceeds games count (%d)", s.Exhausted, s.Games)
	}

	return nil
}
