package main

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/loveletter/card"
	"github.com/lox/loveletter/internal/codec"
	"github.com/lox/loveletter/internal/config"
	"github.com/lox/loveletter/internal/statistics"
)

func TestReplayCommandInitialState(t *testing.T) {
	cmd := &ReplayCmd{Seed: 451, Players: 4, PlayerIndex: 1, NoColor: true}

	var out bytes.Buffer
	require.NoError(t, cmd.replay(&out, log.New(io.Discard)))
	assert.Contains(t, out.String(), "Turn 0 | Round 0 | Deck 12")
	assert.NotContains(t, out.String(), "Game Over")
}

func TestReplayCommandMalformed(t *testing.T) {
	cmd := &ReplayCmd{Seed: 451, Players: 4, Actions: "1,2", NoColor: true}

	err := cmd.replay(io.Discard, log.New(io.Discard))
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestSimulateFlagsOverrideConfig(t *testing.T) {
	seed := int64(7)
	cmd := &SimulateCmd{Games: 10, Seed: &seed}
	cfg := config.Default()

	cmd.apply(cfg)
	assert.Equal(t, 10, cfg.Simulation.Games)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, config.Default().Simulation.Players, cfg.Simulation.Players)
	assert.Equal(t, config.Default().Simulation.Workers, cfg.Simulation.Workers)
}

func TestPrintResults(t *testing.T) {
	stats := &statistics.Statistics{}
	stats.Add(statistics.GameResult{Players: 2, Winner: 0, Turns: 3, Eliminations: map[card.Card]int{card.Guard: 1}})
	stats.Add(statistics.GameResult{Players: 2, Winner: 1, Turns: 5, Eliminations: map[card.Card]int{card.Baron: 1}})

	var out bytes.Buffer
	printResults(&out, stats, 2, time.Second)

	assert.Contains(t, out.String(), "Games: 2")
	assert.Contains(t, out.String(), "Player 0:     1 (50.0%)")
	assert.Contains(t, out.String(), "Guard")
	assert.Contains(t, out.String(), "Baron")
}
