package core_test

import (
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/katalvlaran/mx2/builder"
	"github.com/katalvlaran/mx2/core"
)

func benchSeed(b *testing.B, rows, cols int) *net {
	b.Helper()
	n, err := builder.BuildNetwork(nil, builder.Honeycomb(rows, cols))
	if err != nil {
		b.Fatal(err)
	}

	return n
}

func BenchmarkCalculateBoundary(b *testing.B) {
	n := benchSeed(b, 12, 12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := n.CalculateBoundary(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindLocalRegion(b *testing.B) {
	n := benchSeed(b, 12, 12)
	mid := n.RingCount() / 2
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := n.FindLocalRegion(mid, 2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTrialRing(b *testing.B) {
	n := benchSeed(b, 6, 6)
	path, err := n.BoundarySection(n.Boundary().Units[0], true)
	if err != nil {
		b.Fatal(err)
	}
	g := core.Grower[v2.Vec]{Builder: builder.NewRingBuilder(), Optimizer: &recordingOptimizer{}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := n.TrialRing(g, len(path)+4, path, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCalculateRingStatistics(b *testing.B) {
	n := benchSeed(b, 12, 12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := n.CalculateRingStatistics(); err != nil {
			b.Fatal(err)
		}
	}
}
