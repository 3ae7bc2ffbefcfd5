package plangraph_test

import (
	"testing"

	"github.com/katalvlaran/lvlplan/plangraph"
)

// BenchmarkFill_AirCargo measures saturating the air cargo graph from its
// initial state, one fresh graph per iteration.
func BenchmarkFill_AirCargo(b *testing.B) {
	p := airCargo(b)
	d, err := plangraph.Compile(p)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := d.NewGraph(p.Initial)
		g.Fill(-1)
	}
}

// BenchmarkHeuristics_AirCargo measures each estimate on its own graph.
func BenchmarkHeuristics_AirCargo(b *testing.B) {
	p := airCargo(b)
	d, err := plangraph.Compile(p)
	if err != nil {
		b.Fatal(err)
	}

	for _, h := range plangraph.Heuristics() {
		b.Run(h.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				g, _ := d.NewGraph(p.Initial)
				_, _ = g.Estimate(h)
			}
		})
	}
}

// BenchmarkFill_IgnoreMutexes isolates the cost of expansion without mutexes.
func BenchmarkFill_IgnoreMutexes(b *testing.B) {
	p := airCargo(b)
	d, err := plangraph.Compile(p)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := d.NewGraph(p.Initial, plangraph.WithIgnoreMutexes())
		g.Fill(-1)
	}
}
