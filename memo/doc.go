// Package memo provides a bounded, time-expiring memoization cache.
//
// Entries are indexed by a string derived from an arbitrary key value (see
// DeriveKey), expire lazily once older than the configured TTL, and are
// evicted oldest-inserted-first when the cache is full. Eviction ignores
// access recency: this is not an LRU.
//
// A Cache is meant for a single owner. It does no locking; guard it
// externally if it must be shared between goroutines.
//
// Example:
//
//	c := memo.New[[]int](memo.Config{TTL: time.Minute, MaxEntries: 64})
//	c.Set(100, primes)
//	if v, ok := c.Get(100); ok {
//	    ...
//	}
package memo
