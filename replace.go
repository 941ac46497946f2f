package replacewith

import "github.com/comalice/replacewith/internal/unwind"

// Replace takes the value at dest, applies f to it, and stores the
// result back at dest.
//
// If f panics, fallback is called and its result is stored at dest
// before the panic continues to the caller, so the slot never holds a
// stale value while outer deferred functions run. fallback is called
// only on the panic path, at most once, and must not panic itself:
// a panicking fallback terminates the process (see the package doc).
func Replace[T any](dest *T, fallback func() T, f func(T) T) {
	old := *dest
	g := unwind.Arm(dest, fallback)
	defer g.Release()
	v := f(old)
	g.Disarm()
	*dest = v
}

// ReplaceOrZero is Replace with the zero value of T as the fallback.
// Useful when T's zero value is a valid empty state.
func ReplaceOrZero[T any](dest *T, f func(T) T) {
	Replace(dest, func() (zero T) { return }, f)
}

// ReplaceOrAbort is Replace for callers with no sensible recovery
// value: if f panics, the process terminates instead of unwinding
// further. This also spares T from needing a meaningful zero value.
func ReplaceOrAbort[T any](dest *T, f func(T) T) {
	Replace(dest, abortFallback[T], f)
}

// ReplaceOrAbortUnchecked stores f(*dest) at dest with no panic
// protection at all.
//
// It is valid only when the caller guarantees that no panic ever
// unwinds past this call, for example because every panic in the
// program is fatal, or because f cannot panic. Nothing enforces the
// guarantee; if f does panic and something up the stack recovers, the
// slot is left holding the stale pre-transform value, which is exactly
// the hazard the checked variants exist to prevent. When in doubt use
// ReplaceOrAbort.
func ReplaceOrAbortUnchecked[T any](dest *T, f func(T) T) {
	*dest = f(*dest)
}

// ReplaceAndReturn is Replace for transforms that compute a byproduct
// alongside the replacement value. The byproduct is returned on the
// normal path; on the panic path the slot is repaired with fallback()
// and the panic continues as in Replace.
func ReplaceAndReturn[T, U any](dest *T, fallback func() T, f func(T) (T, U)) U {
	old := *dest
	g := unwind.Arm(dest, fallback)
	defer g.Release()
	v, out := f(old)
	g.Disarm()
	*dest = v
	return out
}

// ReplaceOrAbortAndReturn is ReplaceAndReturn with the abort-on-panic
// policy of ReplaceOrAbort.
func ReplaceOrAbortAndReturn[T, U any](dest *T, f func(T) (T, U)) U {
	return ReplaceAndReturn(dest, abortFallback[T], f)
}

// abortFallback terminates the process. Because it never returns, the
// panic that triggered it never resumes propagating.
func abortFallback[T any]() T {
	unwind.Fatalf("replacewith: transform panicked with no fallback value; aborting")
	panic("unreachable")
}
