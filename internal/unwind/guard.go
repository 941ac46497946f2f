package unwind

import (
	"fmt"
	"os"
)

// Guard writes a fallback value into a slot when the surrounding scope
// exits while the guard is still armed. Pair Arm with a deferred
// Release; defer runs on both normal return and panic unwinding, so the
// repair happens on every exit path unless Disarm ran first.
type Guard[T any] struct {
	dest     *T
	fallback func() T
	armed    bool
}

// Arm returns an armed guard that will write fallback() into dest on
// Release.
//
//	g := unwind.Arm(dest, fallback)
//	defer g.Release()
func Arm[T any](dest *T, fallback func() T) *Guard[T] {
	return &Guard[T]{dest: dest, fallback: fallback, armed: true}
}

// Disarm marks the protected region as completed, so Release does
// nothing. Call it only once, immediately after the protected region
// finishes normally; nothing that can panic may run between the region's
// last statement and Disarm.
func (g *Guard[T]) Disarm() {
	g.armed = false
	g.fallback = nil
}

// Release fires the repair action if the guard is still armed: the
// fallback runs and its result is written into the slot, exactly once.
// A second Release, or Release after Disarm, is a no-op.
//
// If the fallback itself panics there is no value to repair the slot
// with while a panic is already unwinding, so the process terminates
// instead of propagating a second panic.
func (g *Guard[T]) Release() {
	if !g.armed {
		return
	}
	g.armed = false

	defer func() {
		if r := recover(); r != nil {
			Fatalf("replacewith: fallback panicked while repairing slot during unwind: %v", r)
		}
	}()
	*g.dest = g.fallback()
}

// Fatalf writes a diagnostic to stderr and terminates the process
// immediately. It never returns; deferred functions do not run and no
// panic trace is printed.
func Fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
