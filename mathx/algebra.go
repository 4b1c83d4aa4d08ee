package mathx

import (
	"fmt"
	"math"
)

// SolveLinear solves a*x + b = 0.
func SolveLinear(a, b float64) (float64, error) {
	if a == 0 {
		return 0, fmt.Errorf("%w: %gx + %g = 0", ErrNoSolution, a, b)
	}
	return -b / a, nil
}

// SolveQuadratic returns the real roots of a*x^2 + b*x + c = 0 in ascending
// order: none for a negative discriminant, one for a double root.
func SolveQuadratic(a, b, c float64) ([]float64, error) {
	if a == 0 {
		return nil, fmt.Errorf("%w: %gx^2 + %gx + %g", ErrNotQuadratic, a, b, c)
	}
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return []float64{}, nil
	case disc == 0:
		return []float64{-b / (2 * a)}, nil
	}
	sq := math.Sqrt(disc)
	r1, r2 := (-b-sq)/(2*a), (-b+sq)/(2*a)
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}, nil
}

// Power computes base^exp by squaring. Negative exponents yield the
// reciprocal.
func Power(base float64, exp int) float64 {
	if exp < 0 {
		return 1 / Power(base, -exp)
	}
	result := 1.0
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
