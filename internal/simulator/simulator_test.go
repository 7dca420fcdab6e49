package simulator

import (
	"context"
	"io"
	rand "math/rand/v2"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/loveletter/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRunCollectsStatistics(t *testing.T) {
	t.Parallel()
	sim := New(Config{
		Games:   200,
		Players: 4,
		Seed:    451,
		Workers: 4,
		Clock:   quartz.NewMock(t),
		Logger:  quietLogger(),
	})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, stats.Validate())

	assert.Equal(t, 200, stats.Games)
	assert.Equal(t, [4]int{200, 200, 200, 200}, stats.SeatGames)
	assert.Greater(t, stats.Mean(), 0.0)
	assert.NotEmpty(t, stats.Eliminations)
}

func TestRunIsIndependentOfWorkers(t *testing.T) {
	t.Parallel()
	run := func(workers int) [4]int {
		sim := New(Config{Games: 50, Players: 3, Seed: 9, Workers: workers, Logger: quietLogger()})
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		return stats.SeatWins
	}
	assert.Equal(t, run(1), run(8))
}

func TestPlayGameDeterministic(t *testing.T) {
	t.Parallel()
	sim := New(Config{Players: 2, Clock: quartz.NewMock(t), Logger: quietLogger()})

	a, err := sim.PlayGame(context.Background(), 77)
	require.NoError(t, err)
	b, err := sim.PlayGame(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(77), a.Seed)
	assert.Zero(t, a.Duration, "mock clock does not advance")
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(Config{Games: 5, Players: 2, Logger: quietLogger()})
	_, err := sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGameTimeout(t *testing.T) {
	t.Parallel()
	mClock := quartz.NewMock(t)
	timeout := 2 * time.Second

	// The first decision takes the whole time budget. Four players cannot
	// finish in a single move, so the game is still running afterwards.
	calls := 0
	slow := PolicyFunc(func(g game.Game, legal []game.PlayerAction, rng *rand.Rand) game.PlayerAction {
		if calls == 0 {
			mClock.Advance(timeout).MustWait(context.Background())
		}
		calls++
		return legal[0]
	})

	sim := New(Config{
		Games:   1,
		Players: 4,
		Workers: 1,
		Timeout: timeout,
		Policy:  slow,
		Clock:   mClock,
		Logger:  quietLogger(),
	})

	_, err := sim.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckMove(t *testing.T) {
	t.Parallel()
	g, err := game.New(2, 3)
	require.NoError(t, err)

	action := g.LegalActions()[0]
	next, err := g.Move(action, true)
	require.NoError(t, err)
	assert.NoError(t, checkMove(g, next, action, g.HeldOut()))

	assert.ErrorIs(t, checkMove(g, g, action, g.HeldOut()), ErrInvariant)
	assert.ErrorIs(t, checkMove(next, g, action, g.HeldOut()), ErrInvariant)
}
