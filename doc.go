// Package replacewith takes temporary ownership of the value stored
// behind a pointer and replaces it with a value computed from the old
// one, keeping the location valid even when the computation panics.
//
// # Motivation
//
// The obvious way to update a value in place from its old value is
//
//	old := *dest
//	*dest = compute(old)
//
// which is fine until compute panics. If anything up the stack
// recovers, or a deferred function inspects shared state during the
// unwind, *dest still holds old even though the caller's logic had
// already handed it off to compute. For state machine values this means
// re-observing a state that was logically consumed; for values carrying
// owned resources it means a later cleanup can run against a value the
// transform already tore down.
//
// Replace closes that window: it runs the transform under a scope-exit
// guard, and if the transform panics, a caller-supplied fallback value
// is written into the slot before the panic continues. From every
// vantage point that can run code after the call, normal or unwinding,
// the slot holds a valid value.
//
// # Choosing a variant
//
//   - Replace: explicit fallback producer, called only on the panic
//     path.
//   - ReplaceOrZero: fallback is T's zero value.
//   - ReplaceOrAbort: no recovery value exists; terminate the process
//     rather than unwind past the call.
//   - ReplaceOrAbortUnchecked: no guard at all; caller guarantees no
//     panic unwinds past the call.
//   - ReplaceAndReturn / ReplaceOrAbortAndReturn: the transform also
//     computes a byproduct, returned on the normal path.
//
// # Example
//
// A poller flipping a tagged value between two variants, moving the
// payload rather than copying it:
//
//	type conn struct {
//		live bool
//		addr string
//	}
//
//	func (c *conn) poll() {
//		replacewith.ReplaceOrAbort(c, func(c conn) conn {
//			return conn{live: !c.live, addr: c.addr}
//		})
//	}
//
// # Panic behavior
//
// The fallback must not panic. It runs while a panic is already
// unwinding, and there is no slot state that makes two overlapping
// failures recoverable, so a panicking fallback terminates the process
// with a diagnostic on stderr. The same applies to ReplaceOrAbort by
// construction: its fallback never returns, so the original panic never
// resumes propagating.
//
// All operations are single-threaded: the caller must ensure nothing
// else accesses *dest for the duration of the call.
package replacewith
