// Package unwind provides the scope-exit guard backing the replace
// operations.
//
// This package uses ONLY the Go standard library. Keeping the guard
// dependency-free keeps the repair path free of code that could itself
// fail while a panic is already unwinding.
//
// Core invariants:
//   - An armed guard's repair action runs exactly once on Release
//   - A disarmed guard's Release is a no-op
//   - A repair action that panics terminates the process
package unwind
