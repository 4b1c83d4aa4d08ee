package mathx

import (
	"fmt"
	"math"
	"slices"
)

func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: mean", ErrEmptyInput)
	}
	return sum(xs) / float64(len(xs)), nil
}

func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: median", ErrEmptyInput)
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// Mode returns the most frequent value; ties go to the smallest value.
func Mode(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: mode", ErrEmptyInput)
	}
	counts := make(map[float64]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	best, bestCount := math.Inf(1), 0
	for x, n := range counts {
		if n > bestCount || (n == bestCount && x < best) {
			best, bestCount = x, n
		}
	}
	return best, nil
}

// Variance is the population variance of xs.
func Variance(xs []float64) (float64, error) {
	m, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return ss / float64(len(xs)), nil
}

// SampleVariance uses Bessel's correction and needs at least two values.
func SampleVariance(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: sample variance needs 2 values, got %d", ErrEmptyInput, len(xs))
	}
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	n := float64(len(xs))
	return v * n / (n - 1), nil
}

// StdDev is the population standard deviation of xs.
func StdDev(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Correlation returns Pearson's correlation coefficient of xs and ys.
func Correlation(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	mx, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	my, _ := Mean(ys)

	var sxy, sxx, syy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, fmt.Errorf("%w: correlation", ErrZeroVariance)
	}
	return sxy / math.Sqrt(sxx*syy), nil
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}
