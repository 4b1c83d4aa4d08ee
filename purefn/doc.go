// Package purefn memoizes pure functions on top of a memo.Cache.
//
// Memoizing a function forces the question of whether it is really pure:
// the wrapper assumes that equal arguments always produce equal results,
// for as long as the cache's TTL lets a result live.
//
// Each wrapper has an identity (WithName, or a random uuid by default) and an
// optional owner (WithOwner). The cache key of a call is the triple
// {identity, owner, arguments}, canonicalized by memo.DeriveKey, so many
// wrappers can share one cache (WithCache) without seeing each other's
// results.
//
// Features:
//   - MemoizeI1O1 to MemoizeI3O1, MemoizeI1O2 and MemoizeI2O2: typed memoizers for common arities.
//   - MemoizeErrI1O1 and MemoizeErrI2O1: errors pass through and are never cached.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package purefn
