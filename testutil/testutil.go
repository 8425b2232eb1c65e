package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/unitgo"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Float64Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Magnitude returns a nonzero magnitude in [-1000, 1000), biased away from
// zero so division-based properties stay finite.
func (r *RNG) Magnitude() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		v := -1000 + r.rand.Float64()*2000
		if math.Abs(v) > 1e-3 {
			return v
		}
	}
}

// Dimension returns a random exponent vector with integer exponents in
// [-3, 3].
func (r *RNG) Dimension() unitgo.Dimension {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp := func() int { return r.rand.Intn(7) - 3 }
	return unitgo.Dim(exp(), exp(), exp(), exp(), exp(), exp(), exp(), exp())
}

// Quantity returns a random-magnitude quantity of dimension d.
func (r *RNG) Quantity(d unitgo.Dimension) unitgo.Quantity {
	return unitgo.New(r.Magnitude(), d)
}

// Length returns a random Length in [-1000, 1000) meters.
func (r *RNG) Length() unitgo.Quantity {
	return unitgo.Meters(r.Magnitude())
}

// Angle returns a random Angle in [-2π, 2π).
func (r *RNG) Angle() unitgo.Quantity {
	return unitgo.Radians(r.Float64Range(-2*math.Pi, 2*math.Pi))
}
