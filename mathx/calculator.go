package mathx

import (
	"math/big"
	"slices"

	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/on-the-ground/memo_ive_go/purefn"
	"go.uber.org/zap"
)

// CalculatorConfig configures the caches a Calculator builds for itself.
type CalculatorConfig struct {
	Cache    memo.Config
	Logger   *zap.Logger
	HashKeys bool
}

// Calculator memoizes the expensive routines of this package.
//
// Every Calculator owns its caches; nothing is shared at package level.
// Results are copied on the way out, so callers may modify what they get
// back without corrupting the cache.
type Calculator struct {
	primes   *memo.Cache[[]int]
	products *memo.Cache[Matrix]
	stats    *memo.Cache[float64]
	shared   *memo.Cache[any]

	fibonacci   func(int) (*big.Int, error)
	factorial   func(int) (*big.Int, error)
	correlation func(Vector, Vector) (float64, error)
}

type statKey struct {
	Op string    `json:"op"`
	Xs []float64 `json:"xs"`
}

type productKey struct {
	A Matrix `json:"a"`
	B Matrix `json:"b"`
}

func NewCalculator(cfg CalculatorConfig) *Calculator {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := func(name string) []memo.Option {
		o := []memo.Option{memo.WithLogger(logger.With(zap.String("cache", name)))}
		if cfg.HashKeys {
			o = append(o, memo.WithHashedKeys())
		}
		return o
	}

	c := &Calculator{
		primes:   memo.New[[]int](cfg.Cache, opts("primes")...),
		products: memo.New[Matrix](cfg.Cache, opts("products")...),
		stats:    memo.New[float64](cfg.Cache, opts("stats")...),
		shared:   memo.New[any](cfg.Cache, opts("shared")...),
	}
	c.fibonacci = purefn.MemoizeErrI1O1(Fibonacci,
		purefn.WithCache(c.shared), purefn.WithName("fibonacci"), purefn.WithOwner(c))
	c.factorial = purefn.MemoizeErrI1O1(Factorial,
		purefn.WithCache(c.shared), purefn.WithName("factorial"), purefn.WithOwner(c))
	c.correlation = purefn.MemoizeErrI2O1(func(xs, ys Vector) (float64, error) {
		return Correlation(xs, ys)
	}, purefn.WithCache(c.shared), purefn.WithName("correlation"), purefn.WithOwner(c))
	return c
}

func (c *Calculator) Primes(n int) []int {
	if v, ok := c.primes.Get(n); ok {
		return slices.Clone(v)
	}
	v := Primes(n)
	c.primes.Set(n, v)
	return slices.Clone(v)
}

func (c *Calculator) Multiply(a, b Matrix) (Matrix, error) {
	key := productKey{A: a, B: b}
	if v, ok := c.products.Get(key); ok {
		return cloneMatrix(v), nil
	}
	v, err := a.Multiply(b)
	if err != nil {
		return nil, err
	}
	c.products.Set(key, v)
	return cloneMatrix(v), nil
}

func (c *Calculator) Mean(xs []float64) (float64, error) {
	return c.stat("mean", xs, Mean)
}

func (c *Calculator) Variance(xs []float64) (float64, error) {
	return c.stat("variance", xs, Variance)
}

func (c *Calculator) StdDev(xs []float64) (float64, error) {
	return c.stat("stddev", xs, StdDev)
}

func (c *Calculator) Median(xs []float64) (float64, error) {
	return c.stat("median", xs, Median)
}

func (c *Calculator) Correlation(xs, ys []float64) (float64, error) {
	return c.correlation(xs, ys)
}

func (c *Calculator) Fibonacci(n int) (*big.Int, error) {
	v, err := c.fibonacci(n)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(v), nil
}

func (c *Calculator) Factorial(n int) (*big.Int, error) {
	v, err := c.factorial(n)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(v), nil
}

// PurgeExpired sweeps every cache the Calculator owns.
func (c *Calculator) PurgeExpired() int {
	return c.primes.PurgeExpired() +
		c.products.PurgeExpired() +
		c.stats.PurgeExpired() +
		c.shared.PurgeExpired()
}

func (c *Calculator) Clear() {
	c.primes.Clear()
	c.products.Clear()
	c.stats.Clear()
	c.shared.Clear()
}

// CacheStats reports per-cache counters keyed by cache name.
func (c *Calculator) CacheStats() map[string]memo.Stats {
	return map[string]memo.Stats{
		"primes":   c.primes.Stats(),
		"products": c.products.Stats(),
		"stats":    c.stats.Stats(),
		"shared":   c.shared.Stats(),
	}
}

func (c *Calculator) stat(op string, xs []float64, fn func([]float64) (float64, error)) (float64, error) {
	key := statKey{Op: op, Xs: xs}
	if v, ok := c.stats.Get(key); ok {
		return v, nil
	}
	v, err := fn(xs)
	if err != nil {
		return 0, err
	}
	c.stats.Set(key, v)
	return v, nil
}

func cloneMatrix(m Matrix) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = slices.Clone(row)
	}
	return out
}
