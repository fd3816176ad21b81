package sim

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource is the only randomness the simulator sees. Callers pass it in
// explicitly so that seeded runs are reproducible.
type RandomSource interface {
	IntN(n int) int // uniform in [0, n)
}

// crypto random : default generation method
type cryptoRNG struct{}

func (cryptoRNG) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// back to math/rand/v2
		return rand.IntN(n)
	}
	// 53 bits => [0, 1)
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	f := float64(u) / (1 << 53)
	return int(f * float64(n))
}

// DefaultRNG is used when no seed is given. Runs are not reproducible.
func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG
type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a PCG-backed source; the same seed yields the same
// sequence of draws.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) IntN(n int) int { return s.r.IntN(n) }
