package mathx

import (
	"fmt"
	"math"
)

// Vector is a point in n-dimensional space.
type Vector []float64

func sameLen(op string, a, b Vector) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %s of %d-vector and %d-vector", ErrDimensionMismatch, op, len(a), len(b))
	}
	return nil
}

func (v Vector) Add(w Vector) (Vector, error) {
	if err := sameLen("add", v, w); err != nil {
		return nil, err
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out, nil
}

func (v Vector) Sub(w Vector) (Vector, error) {
	if err := sameLen("sub", v, w); err != nil {
		return nil, err
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out, nil
}

func (v Vector) Scale(k float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * k
	}
	return out
}

func (v Vector) Dot(w Vector) (float64, error) {
	if err := sameLen("dot", v, w); err != nil {
		return 0, err
	}
	var total float64
	for i := range v {
		total += v[i] * w[i]
	}
	return total, nil
}

// Cross is only defined for 3-vectors.
func (v Vector) Cross(w Vector) (Vector, error) {
	if len(v) != 3 || len(w) != 3 {
		return nil, fmt.Errorf("%w: cross of %d-vector and %d-vector, want 3 and 3", ErrDimensionMismatch, len(v), len(w))
	}
	return Vector{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}, nil
}

func (v Vector) Magnitude() float64 {
	var ss float64
	for _, x := range v {
		ss += x * x
	}
	return math.Sqrt(ss)
}

// Normalize returns the unit vector in the direction of v.
func (v Vector) Normalize() (Vector, error) {
	m := v.Magnitude()
	if m == 0 {
		return nil, fmt.Errorf("%w: %v", ErrZeroVector, []float64(v))
	}
	return v.Scale(1 / m), nil
}
