package selector

import (
	"math/rand/v2"
	"sync"
)

// Source draws a uniform integer in [0, n). n is always positive.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// NewSource returns the process-wide generator, safe for concurrent use.
func NewSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic source for reproducible runs.
func NewSeededSource(seed1, seed2 uint64) Source {
	return NewLockedSource(rand.New(rand.NewPCG(seed1, seed2)))
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource serializes access to a source that is not goroutine safe.
func NewLockedSource(src Source) Source {
	return &lockedSource{src: src}
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}
