// Package stage implements the one-slot stage register latch that sits
// between two adjacent pipeline stages.
package stage

// Register is a single-slot latch holding a payload of type T between two
// adjacent stages. Read() is stable for the whole cycle; Write() stages a
// new value; Clock() atomically replaces the latched value with the
// staged one. A nil payload represents a bubble.
type Register[T any] struct {
	latched T
	staged  T
}

// Read returns the currently latched payload. It is stable between clock
// edges: calling Read() any number of times in a cycle returns the same
// value.
func (r *Register[T]) Read() T {
	return r.latched
}

// Write stages a new payload regardless of the register's current state.
// It takes effect only at the next Clock(). Skipping Clock() for a stall
// does not discard it: the staged value stays until the next Write()
// replaces it or a later Clock() latches it.
func (r *Register[T]) Write(v T) {
	r.staged = v
}

// Clock atomically replaces the latched payload with the staged one and
// clears the staged slot. A stall for this register's cycle must skip
// calling Clock() so the latched value, and hence Read() next cycle, is
// unchanged.
func (r *Register[T]) Clock() {
	r.latched = r.staged
	var zero T
	r.staged = zero
}
