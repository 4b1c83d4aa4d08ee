package purefn

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

type Option func(*memoizer)

// WithName sets the function identity used in cache keys.
// Two wrappers with the same name, owner and cache share results.
func WithName(name string) Option {
	return func(m *memoizer) {
		m.name = name
	}
}

// WithOwner scopes results to an owning value, the way a method's receiver
// scopes its calls. Pointer owners are identified by address, other owners
// by their derived key.
func WithOwner(owner any) Option {
	return func(m *memoizer) {
		m.owner = ownerKey(owner)
	}
}

// WithCache stores results in a caller-provided cache, typically shared.
func WithCache(c *memo.Cache[any]) Option {
	return func(m *memoizer) {
		m.cache = c
	}
}

// WithConfig builds a private cache for the wrapper.
func WithConfig(cfg memo.Config, opts ...memo.Option) Option {
	return func(m *memoizer) {
		m.cache = memo.New[any](cfg, opts...)
	}
}

// callKey is the structured cache key of one call.
type callKey struct {
	Fn    string `json:"fn"`
	Owner string `json:"owner,omitempty"`
	Args  []any  `json:"args"`
}

type memoizer struct {
	name  string
	owner string
	cache *memo.Cache[any]
}

func newMemoizer(opts []Option) *memoizer {
	m := &memoizer{name: uuid.NewString()}
	for _, opt := range opts {
		opt(m)
	}
	if m.cache == nil {
		m.cache = memo.New[any](memo.Config{})
	}
	return m
}

func (m *memoizer) keyOf(args []any) callKey {
	normalized := make([]any, len(args))
	for i, arg := range args {
		normalized[i] = argKey(arg)
	}
	return callKey{Fn: m.name, Owner: m.owner, Args: normalized}
}

// boxed wraps every stored result so that a nil interface result is still a
// typed cache value.
type boxed[O any] struct {
	v O
}

func lookup[O any](m *memoizer, key callKey) (boxed[O], bool) {
	return helper.GetTypedValueOf2[boxed[O]](func() (any, bool) {
		return m.cache.Get(key)
	})
}

// memoized returns the cached result for args, computing and storing it on a
// miss. A cached value of the wrong type counts as a miss.
func memoized[O any](m *memoizer, args []any, compute func() O) O {
	key := m.keyOf(args)
	if b, ok := lookup[O](m, key); ok {
		return b.v
	}
	v := compute()
	m.cache.Set(key, boxed[O]{v: v})
	return v
}

func argKey(arg any) any {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	return arg
}

func ownerKey(owner any) string {
	if owner == nil {
		return ""
	}
	if reflect.ValueOf(owner).Kind() == reflect.Pointer {
		return fmt.Sprintf("%T@%p", owner, owner)
	}
	return fmt.Sprintf("%T:%s", owner, memo.MustDeriveKey(owner))
}

func MemoizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
	opts ...Option,
) func(I1) O1 {
	m := newMemoizer(opts)
	return func(i1 I1) O1 {
		return memoized(m, []any{i1}, func() O1 {
			return pureFn(i1)
		})
	}
}

func MemoizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
	opts ...Option,
) func(I1, I2) O1 {
	m := newMemoizer(opts)
	return func(i1 I1, i2 I2) O1 {
		return memoized(m, []any{i1, i2}, func() O1 {
			return pureFn(i1, i2)
		})
	}
}

func MemoizeI3O1[I1, I2, I3, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...Option,
) func(I1, I2, I3) O1 {
	m := newMemoizer(opts)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return memoized(m, []any{i1, i2, i3}, func() O1 {
			return pureFn(i1, i2, i3)
		})
	}
}
