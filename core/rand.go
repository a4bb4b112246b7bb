package core

import (
	"math/rand"
	"sync"
)

// Rand is the random source used by every simulation entity
// Tests pass a seeded source to make spawns reproducible
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. Safe for use from multiple goroutines
func NewRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// Range returns a uniform value in [lo, hi)
func Range(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// IntRange returns a uniform integer in [lo, hi] inclusive
func IntRange(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Signed returns a uniform value in [-mag, mag)
func Signed(r Rand, mag float64) float64 {
	return (r.Float64()*2 - 1) * mag
}
