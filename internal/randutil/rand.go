// Package randutil derives reproducible random sources from game seeds.
package randutil

import rand "math/rand/v2"

const weyl = 0x9e3779b97f4a7c15

// New returns a PCG source for seed. Nearby seeds such as those of
// consecutive simulated games are spread apart by a splitmix64 finaliser.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+weyl)))
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
