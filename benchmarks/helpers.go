// Package benchmarks provides shared helpers for replace benchmark tests.
package benchmarks

// payload is large enough that copying it through the slot dominates
// over call overhead, exposing per-variant protection cost at scale.
type payload struct {
	buf [4096]byte
	gen int
}

func bump(p payload) payload {
	p.gen++
	p.buf[p.gen%len(p.buf)]++
	return p
}

func zeroPayload() payload { return payload{} }

func incr(v int) int { return v + 1 }

func zeroInt() int { return 0 }

// replaceWithRecover is a reference implementation built on recover and
// re-panic instead of a scope-exit guard, benchmarked as the baseline
// the guard design avoids.
func replaceWithRecover[T any](dest *T, fallback func() T, f func(T) T) {
	old := *dest
	var v T
	func() {
		defer func() {
			if r := recover(); r != nil {
				*dest = fallback()
				panic(r)
			}
		}()
		v = f(old)
	}()
	*dest = v
}
