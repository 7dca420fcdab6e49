package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func draw(seed int64, n int) []uint64 {
	r := New(seed)
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.Uint64()
	}
	return out
}

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, draw(451, 8), draw(451, 8))
}

func TestAdjacentSeedsDiffer(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, draw(0, 4), draw(1, 4))
	assert.NotEqual(t, draw(-1, 4), draw(1, 4))
}
