package common

import (
	"math"
	"math/rand"
	"time"
)

// Rand is the single shared random source for gameplay decisions. Seeding it
// makes a whole encounter reproducible.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a source with the given seed. A zero seed uses the clock.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform integer in [0, n). n <= 0 yields 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Between returns a uniform integer in [min, max], both inclusive.
func (r *Rand) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

// Float64 returns a uniform float in [0, 1).
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// Direction returns a uniform heading in [0, 2π).
func (r *Rand) Direction() float64 {
	return r.rng.Float64() * 2 * math.Pi
}
