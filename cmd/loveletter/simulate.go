package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/lox/loveletter/card"
	"github.com/lox/loveletter/internal/config"
	"github.com/lox/loveletter/internal/simulator"
	"github.com/lox/loveletter/internal/statistics"
)

// SimulateCmd plays random games in parallel. Flags override the config file.
type SimulateCmd struct {
	Config  string `short:"c" default:"simulate.hcl" help:"HCL configuration file" type:"path"`
	Games   int    `short:"n" help:"Number of games to play"`
	Players int    `short:"p" help:"Players per game (2-4)"`
	Seed    *int64 `help:"Seed of the first game"`
	Workers int    `short:"w" help:"Concurrent games"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if g.LogFile == "" {
		g.LogFile = cfg.Log.File
	}
	logger, closeLog, err := setupLogger(g)
	if err != nil {
		return err
	}
	defer closeLog()
	if !g.Debug {
		level, _ := cfg.LogLevel()
		logger.SetLevel(level)
	}

	timeout, _ := cfg.GameTimeout()
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	sim := simulator.New(simulator.Config{
		Games:   cfg.Simulation.Games,
		Players: cfg.Simulation.Players,
		Seed:    cfg.Simulation.Seed,
		Workers: cfg.Simulation.Workers,
		Timeout: timeout,
		Logger:  logger,
	})

	fmt.Printf("Starting simulation: %d games, %d players (seed: %d)\n",
		cfg.Simulation.Games, cfg.Simulation.Players, cfg.Simulation.Seed)

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	printResults(os.Stdout, stats, cfg.Simulation.Players, time.Since(start))
	return nil
}

func (c *SimulateCmd) apply(cfg *config.Config) {
	if c.Games > 0 {
		cfg.Simulation.Games = c.Games
	}
	if c.Players > 0 {
		cfg.Simulation.Players = c.Players
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = *c.Seed
	}
	if c.Workers > 0 {
		cfg.Simulation.Workers = c.Workers
	}
}

func printResults(w io.Writer, stats *statistics.Statistics, players int, elapsed time.Duration) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== SIMULATION RESULTS ===\n")
	fmt.Fprintf(w, "Games: %d in %s (%.0f games/sec)\n",
		stats.Games, elapsed.Round(time.Millisecond), float64(stats.Games)/elapsed.Seconds())
	fmt.Fprintf(w, "Turns: %.2f ± %.2f SE (median %.0f, 95%% CI [%.2f, %.2f])\n",
		stats.Mean(), stats.StdError(), stats.Median(), low, high)
	fmt.Fprintf(w, "Ties: %d  Deck exhausted: %d\n", stats.Ties, stats.Exhausted)

	fmt.Fprintf(w, "\nWins by seat:\n")
	for seat := range players {
		fmt.Fprintf(w, "  Player %d: %5d (%.1f%%)\n", seat, stats.SeatWins[seat], stats.WinRate(seat)*100)
	}

	fmt.Fprintf(w, "\nEliminations by card:\n")
	ranks := slices.Clone(card.Ranks)
	slices.SortFunc(ranks, func(a, b card.Card) int {
		return stats.Eliminations[b] - stats.Eliminations[a]
	})
	for _, c := range ranks {
		if n := stats.Eliminations[c]; n > 0 {
			fmt.Fprintf(w, "  %-9s %d\n", c, n)
		}
	}
}
