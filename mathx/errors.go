package mathx

import "errors"

var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrZeroVector        = errors.New("cannot normalize zero vector")
	ErrLengthMismatch    = errors.New("series lengths differ")
	ErrEmptyInput        = errors.New("empty input")
	ErrNotSquare         = errors.New("matrix is not square")
	ErrNotQuadratic      = errors.New("leading coefficient is zero")
	ErrNoSolution        = errors.New("equation has no solution")
	ErrNegativeInput     = errors.New("negative input")
	ErrInvalidTriangle   = errors.New("invalid triangle sides")
	ErrZeroVariance      = errors.New("series has zero variance")
)
