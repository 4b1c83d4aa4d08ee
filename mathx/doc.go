// Package mathx collects small numeric routines: number theory, algebra,
// trigonometry, statistics, vectors and matrices.
//
// The free functions are plain and uncached. Calculator wraps the expensive
// ones (prime sieves, matrix products, statistical aggregates) with caches it
// owns, so two Calculators never share results.
//
// Invalid input is reported with the sentinel errors below, wrapped with the
// offending sizes; callers should match them with errors.Is.
package mathx
