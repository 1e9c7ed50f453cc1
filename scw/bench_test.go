// SPDX-License-Identifier: MIT

package scw_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/scw/scw"
)

func benchStream(n, d int, seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	xs := make([][]float64, n)
	ys := make([]int, n)
	for i := range xs {
		x := make([]float64, d)
		var s float64
		for j := range x {
			x[j] = rng.Float64()*2 - 1
			s += x[j]
		}
		xs[i] = x
		ys[i] = scw.Negative
		if s > 0 {
			ys[i] = scw.Positive
		}
	}

	return xs, ys
}

func benchmarkStep(b *testing.B, d int) {
	p, _ := scw.NewParams(1, 0.9)
	st, _ := scw.NewState(d)
	xs, ys := benchStream(256, d, 7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i % len(xs)
		next, _, err := scw.Step(p, st, xs[k], ys[k])
		if err != nil {
			b.Fatal(err)
		}
		st = next
	}
}

func BenchmarkStep_8(b *testing.B)  { benchmarkStep(b, 8) }
func BenchmarkStep_32(b *testing.B) { benchmarkStep(b, 32) }
func BenchmarkStep_64(b *testing.B) { benchmarkStep(b, 64) }

func BenchmarkModel_Evaluate(b *testing.B) {
	m, _ := scw.New(1, 0.9)
	xs, ys := benchStream(1024, 32, 11)
	if err := m.TrainBatch(xs, ys); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Evaluate(xs, ys); err != nil {
			b.Fatal(err)
		}
	}
}
