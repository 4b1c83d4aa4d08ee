package main

import (
	"math"

	"github.com/on-the-ground/memo_ive_go/mathx"
)

// pair is one workload measured both directly and through a Calculator.
type pair struct {
	name     string
	plain    func() error
	memoized func() error
}

func pairs(calc *mathx.Calculator, n, matrixSize int) []pair {
	series := make([]float64, n)
	for i := range series {
		series[i] = math.Sin(float64(i))
	}
	a, b := mathx.Zeros(matrixSize, matrixSize), mathx.Zeros(matrixSize, matrixSize)
	for i := 0; i < matrixSize; i++ {
		for j := 0; j < matrixSize; j++ {
			a[i][j] = float64(i + j)
			b[i][j] = float64(i - j)
		}
	}

	return []pair{
		{
			name: "sieve",
			plain: func() error {
				_ = mathx.Primes(n)
				return nil
			},
			memoized: func() error {
				_ = calc.Primes(n)
				return nil
			},
		},
		{
			name: "matmul",
			plain: func() error {
				_, err := a.Multiply(b)
				return err
			},
			memoized: func() error {
				_, err := calc.Multiply(a, b)
				return err
			},
		},
		{
			name: "stddev",
			plain: func() error {
				_, err := mathx.StdDev(series)
				return err
			},
			memoized: func() error {
				_, err := calc.StdDev(series)
				return err
			},
		},
	}
}
