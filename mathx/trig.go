package mathx

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Hypotenuse returns the length of the hypotenuse of a right triangle.
func Hypotenuse(a, b float64) float64 {
	return math.Hypot(a, b)
}

// LawOfCosines returns the side opposite angle gammaDeg, given the two
// adjacent sides.
func LawOfCosines(a, b, gammaDeg float64) (float64, error) {
	if a <= 0 || b <= 0 {
		return 0, fmt.Errorf("%w: a=%g b=%g", ErrInvalidTriangle, a, b)
	}
	gamma := DegreesToRadians(gammaDeg)
	return math.Sqrt(a*a + b*b - 2*a*b*math.Cos(gamma)), nil
}

// AngleBetween returns the angle in degrees opposite side c of the triangle
// with sides a, b, c.
func AngleBetween(a, b, c float64) (float64, error) {
	if a <= 0 || b <= 0 || c <= 0 || a+b <= c || a+c <= b || b+c <= a {
		return 0, fmt.Errorf("%w: a=%g b=%g c=%g", ErrInvalidTriangle, a, b, c)
	}
	cos := (a*a + b*b - c*c) / (2 * a * b)
	return RadiansToDegrees(math.Acos(cos)), nil
}

// RoundTo rounds x to the given number of decimal places, half away from
// zero, on the decimal representation of x rather than its binary one, so
// RoundTo(2.675, 2) is 2.68.
func RoundTo(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}
