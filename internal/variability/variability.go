// Package variability provides the randomness behind simulated document
// extraction, savings insights and mailbox scans.
//
// Everything random in Billtrail draws from a Source so that callers can
// seed it or replace it with a fixed sequence in tests.
package variability

import (
	"math/rand/v2"
	"sync"
)

// Source is a source of pseudo-random values.
type Source interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// locked is a Source that is safe for concurrent use.
type locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a goroutine-safe Source seeded with seed.
func New(seed uint64) Source {
	return &locked{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Random returns a goroutine-safe Source with a random seed.
func Random() Source {
	return New(rand.Uint64())
}

func (l *locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Fixed is a Source that replays fixed values. It is meant for tests.
//
// Ints and Floats are consumed in order and wrap around when exhausted.
// Values returned by IntN are reduced modulo n. With no values, IntN returns 0
// and Float64 returns 0.
type Fixed struct {
	mu     sync.Mutex
	Ints   []int
	Floats []float64
	i, f   int
}

func (s *Fixed) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Ints) == 0 {
		return 0
	}

	v := s.Ints[s.i%len(s.Ints)]
	s.i++
	return ((v % n) + n) % n
}

func (s *Fixed) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Floats) == 0 {
		return 0
	}

	v := s.Floats[s.f%len(s.Floats)]
	s.f++
	return v
}
