package purefn

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func MemoizeI1O2[I1, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...Option,
) func(I1) (O1, O2) {
	m := newMemoizer(opts)
	return func(i1 I1) (O1, O2) {
		res := memoized(m, []any{i1}, func() result[O1, O2] {
			v1, v2 := pureFn(i1)
			return result[O1, O2]{O1: v1, O2: v2}
		})
		return res.O1, res.O2
	}
}

func MemoizeI2O2[I1, I2, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...Option,
) func(I1, I2) (O1, O2) {
	m := newMemoizer(opts)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := memoized(m, []any{i1, i2}, func() result[O1, O2] {
			v1, v2 := pureFn(i1, i2)
			return result[O1, O2]{O1: v1, O2: v2}
		})
		return res.O1, res.O2
	}
}

// MemoizeErrI1O1 caches successful results only. A failed call is retried
// the next time the same arguments come in.
func MemoizeErrI1O1[I1, O1 any](
	fn func(I1) (O1, error),
	opts ...Option,
) func(I1) (O1, error) {
	m := newMemoizer(opts)
	return func(i1 I1) (O1, error) {
		return memoizedErr(m, []any{i1}, func() (O1, error) {
			return fn(i1)
		})
	}
}

// MemoizeErrI2O1 is the two-argument form of MemoizeErrI1O1.
func MemoizeErrI2O1[I1, I2, O1 any](
	fn func(I1, I2) (O1, error),
	opts ...Option,
) func(I1, I2) (O1, error) {
	m := newMemoizer(opts)
	return func(i1 I1, i2 I2) (O1, error) {
		return memoizedErr(m, []any{i1, i2}, func() (O1, error) {
			return fn(i1, i2)
		})
	}
}

func memoizedErr[O any](m *memoizer, args []any, compute func() (O, error)) (O, error) {
	key := m.keyOf(args)
	if b, ok := lookup[O](m, key); ok {
		return b.v, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	m.cache.Set(key, boxed[O]{v: v})
	return v, nil
}
