package benchmarks

import (
	"testing"

	"github.com/comalice/replacewith"
)

func BenchmarkReplaceInt(b *testing.B) {
	slot := 0
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		replacewith.Replace(&slot, zeroInt, incr)
	}
	if slot != b.N {
		b.Fatalf("got slot=%d want %d", slot, b.N)
	}
}

func BenchmarkReplaceRecoverInt(b *testing.B) {
	slot := 0
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		replaceWithRecover(&slot, zeroInt, incr)
	}
	if slot != b.N {
		b.Fatalf("got slot=%d want %d", slot, b.N)
	}
}

func BenchmarkReplaceUncheckedInt(b *testing.B) {
	slot := 0
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		replacewith.ReplaceOrAbortUnchecked(&slot, incr)
	}
	if slot != b.N {
		b.Fatalf("got slot=%d want %d", slot, b.N)
	}
}

func BenchmarkReplacePayload(b *testing.B) {
	var slot payload
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		replacewith.Replace(&slot, zeroPayload, bump)
	}
}

func BenchmarkReplaceRecoverPayload(b *testing.B) {
	var slot payload
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		replaceWithRecover(&slot, zeroPayload, bump)
	}
}

func BenchmarkReplaceUncheckedPayload(b *testing.B) {
	var slot payload
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		replacewith.ReplaceOrAbortUnchecked(&slot, bump)
	}
}
