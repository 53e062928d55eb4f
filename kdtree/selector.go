package kdtree

import "fmt"

// SelectKth returns the k-th smallest (0-based) value of values using
// iterative Hoare partitioning. The slice is reordered in place. It panics if
// k is out of range.
func SelectKth(values []float32, k int, pivot PivotStrategy) float32 {
	if k < 0 || k >= len(values) {
		panic(fmt.Sprintf("kdtree: order statistic %d out of range [0, %d)", k, len(values)))
	}

	left, right := 0, len(values)-1
	for left < right {
		i, j := left, right
		partition(values, &i, &j, pivotValue(values, left, right, k, pivot))

		if j < k {
			left = i
		}
		if k < i {
			right = j
		}
	}

	return values[k]
}

// Move values below pivot to the front of [i, j] and values above it to the
// back. On return i > j; everything in [left, j] is <= pivot and everything
// in [i, right] is >= pivot.
func partition(values []float32, i, j *int, pivot float32) {
	for *i <= *j {
		for values[*i] < pivot {
			*i++
		}
		for pivot < values[*j] {
			*j--
		}
		if *i <= *j {
			values[*i], values[*j] = values[*j], values[*i]
			*i++
			*j--
		}
	}
}

func pivotValue(values []float32, left, right, k int, pivot PivotStrategy) float32 {
	if pivot != PivotMedianOfThree {
		return values[k]
	}

	a, b, c := values[left], values[left+(right-left)/2], values[right]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}
	return b
}

// Get the index of the lower median for n values.
func medianIndex(n int) int {
	if n%2 == 0 {
		return n/2 - 1
	}
	return (n - 1) / 2
}

// Median selects the split threshold for values. When parityCount is even the
// lower median is averaged with the next order statistic. The builder passes
// the total triangle count as parityCount unless Options.LocalParity is set,
// so the two only agree at the root. Median panics on an empty slice.
func Median(values []float32, parityCount int, pivot PivotStrategy) float32 {
	mid := medianIndex(len(values))
	median := SelectKth(values, mid, pivot)

	if parityCount%2 == 0 && mid+1 < len(values) {
		median = (median + SelectKth(values, mid+1, pivot)) / 2
	}

	return median
}
