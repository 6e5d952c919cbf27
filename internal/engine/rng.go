package engine

import (
	"math/rand"
	"sync"
)

// Rand is the random source used for damage rolls, starting positions and
// starter selection. Battles and the matchmaker receive it injected so
// tests can supply deterministic sequences; *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// LockedRand wraps a *rand.Rand with a mutex so one generator can serve
// concurrent battles. *rand.Rand itself is not goroutine-safe.
type LockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func NewLockedRand(src *rand.Rand) *LockedRand {
	return &LockedRand{src: src}
}

func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}
