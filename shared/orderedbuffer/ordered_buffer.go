package orderedbuffer

import (
	"slices"
	"sort"
)

type CompareFunc[T any] func(a, b T) int

// OrderedBoundedBuffer keeps at most maxBufLen values sorted ascending by
// compare. Once full, each insert pushes out the smallest value, so the
// buffer ends up holding the maxBufLen largest values seen.
type OrderedBoundedBuffer[T any] struct {
	data      []T
	maxBufLen int
	compare   CompareFunc[T]
}

func NewOrderedBoundedBuffer[T any](maxBufLen int, cmp CompareFunc[T]) *OrderedBoundedBuffer[T] {
	if maxBufLen <= 0 {
		panic("maxBufLen should be greater than 0")
	}
	return &OrderedBoundedBuffer[T]{
		data:      make([]T, 0, maxBufLen+1),
		maxBufLen: maxBufLen,
		compare:   cmp,
	}
}

// Insert adds val in order. If that overflows the buffer, the smallest value
// is removed and returned with evicted set to true.
func (b *OrderedBoundedBuffer[T]) Insert(val T) (out T, evicted bool) {
	idx := sort.Search(len(b.data), func(i int) bool {
		return b.compare(val, b.data[i]) < 0
	})
	b.data = slices.Insert(b.data, idx, val)

	if len(b.data) > b.maxBufLen {
		out = b.data[0]
		b.data = slices.Delete(b.data, 0, 1)
		evicted = true
	}
	return
}

// Items returns a copy of the buffered values, smallest first.
func (b *OrderedBoundedBuffer[T]) Items() []T {
	return slices.Clone(b.data)
}

func (b *OrderedBoundedBuffer[T]) Len() int {
	return len(b.data)
}
