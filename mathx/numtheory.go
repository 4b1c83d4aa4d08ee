package mathx

import (
	"fmt"
	"math/big"
)

// GCD returns the greatest common divisor of a and b, always non-negative.
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b. LCM(0, x) is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return abs(a / GCD(a, b) * b)
}

func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Primes returns every prime <= n using the sieve of Eratosthenes.
func Primes(n int) []int {
	if n < 2 {
		return []int{}
	}
	composite := make([]bool, n+1)
	for i := 2; i*i <= n; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	primes := make([]int, 0, n/2)
	for i := 2; i <= n; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// PrimeFactors returns the prime factorization of n in ascending order,
// with repetition. n < 2 has no factors.
func PrimeFactors(n int) []int {
	factors := []int{}
	for p := 2; p*p <= n; p++ {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// Factorial returns n! as an arbitrary-precision integer.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: factorial of %d", ErrNegativeInput, n)
	}
	return new(big.Int).MulRange(1, int64(n)), nil
}

// Fibonacci returns the n-th Fibonacci number, F(0) = 0, F(1) = 1.
func Fibonacci(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: fibonacci index %d", ErrNegativeInput, n)
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
