package generation

import (
	"golang.org/x/sync/semaphore"
)

// Guard allows one generation or import at a time. A second caller is
// refused with ErrBusy instead of waiting.
type Guard struct {
	sem *semaphore.Weighted
}

func NewGuard() *Guard {
	return &Guard{sem: semaphore.NewWeighted(1)}
}

// Do runs fn while holding the guard.
func (g *Guard) Do(fn func() error) error {
	if !g.sem.TryAcquire(1) {
		return ErrBusy
	}
	defer g.sem.Release(1)
	return fn()
}

// Busy reports whether an operation currently holds the guard.
func (g *Guard) Busy() bool {
	if !g.sem.TryAcquire(1) {
		return true
	}
	g.sem.Release(1)
	return false
}
