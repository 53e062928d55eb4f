package kdtree

import (
	"math/rand"
	"sort"
	"testing"
)

func TestMedianParity(t *testing.T) {
	type spec struct {
		values      []float32
		parityCount int
		exp         float32
	}
	specs := []spec{
		// Even global count averages the 2nd and 3rd order statistics
		{[]float32{4, 1, 3, 2}, 4, 2.5},
		// Odd global count picks the lower median of the local values
		{[]float32{4, 1, 3, 2}, 5, 2},
		{[]float32{5, 1, 3}, 3, 3},
		// Global parity is even but the local slice is odd
		{[]float32{5, 1, 3}, 10, 4},
		{[]float32{7}, 2, 7},
		{[]float32{2, 2, 2, 2}, 4, 2},
	}

	for _, pivot := range []PivotStrategy{PivotTarget, PivotMedianOfThree} {
		for idx, s := range specs {
			values := append([]float32(nil), s.values...)
			if got := Median(values, s.parityCount, pivot); got != s.exp {
				t.Fatalf("[%s spec %d] expected median %f; got %f", pivot, idx, s.exp, got)
			}
		}
	}
}

func TestSelectKthMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, pivot := range []PivotStrategy{PivotTarget, PivotMedianOfThree} {
		for iter := 0; iter < 200; iter++ {
			n := 1 + rng.Intn(64)
			values := make([]float32, n)
			for i := range values {
				// Small value range to force plenty of duplicates
				values[i] = float32(rng.Intn(16))
			}

			sorted := append([]float32(nil), values...)
			sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

			k := rng.Intn(n)
			if got := SelectKth(append([]float32(nil), values...), k, pivot); got != sorted[k] {
				t.Fatalf("[%s iter %d] expected order statistic %d of %v to be %f; got %f", pivot, iter, k, values, sorted[k], got)
			}
		}
	}
}

func TestSelectKthSortedInput(t *testing.T) {
	values := make([]float32, 1000)
	for i := range values {
		values[i] = float32(i)
	}

	for _, pivot := range []PivotStrategy{PivotTarget, PivotMedianOfThree} {
		for _, k := range []int{0, 1, 499, 500, 999} {
			in := append([]float32(nil), values...)
			if got := SelectKth(in, k, pivot); got != float32(k) {
				t.Fatalf("[%s] expected %d; got %f", pivot, k, got)
			}
		}
	}
}

func TestSelectKthOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected SelectKth to panic for out of range k")
		}
	}()
	SelectKth([]float32{1, 2, 3}, 3, PivotTarget)
}

func TestMedianIndex(t *testing.T) {
	specs := map[int]int{1: 0, 2: 0, 3: 1, 4: 1, 5: 2, 12: 5}
	for n, exp := range specs {
		if got := medianIndex(n); got != exp {
			t.Fatalf("expected median index for %d values to be %d; got %d", n, exp, got)
		}
	}
}

func benchmarkSelect(b *testing.B, pivot PivotStrategy, sorted bool) {
	rng := rand.New(rand.NewSource(1))
	values := make([]float32, 4096)
	for i := range values {
		if sorted {
			values[i] = float32(i)
		} else {
			values[i] = rng.Float32()
		}
	}
	scratch := make([]float32, len(values))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(scratch, values)
		Median(scratch, len(scratch), pivot)
	}
}

func BenchmarkMedianTargetRandom(b *testing.B) { benchmarkSelect(b, PivotTarget, false) }
func BenchmarkMedianTargetSorted(b *testing.B) { benchmarkSelect(b, PivotTarget, true) }
func BenchmarkMedianMedian3Random(b *testing.B) { benchmarkSelect(b, PivotMedianOfThree, false) }
func BenchmarkMedianMedian3Sorted(b *testing.B) { benchmarkSelect(b, PivotMedianOfThree, true) }
