// Package seq defines the sized/indexable protocol and the generic operations
// that work on anything implementing it.
package seq

import (
	"cmp"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmpty           = errors.New("sequence is empty")
)

// Sized is implemented by collections with a known length
type Sized interface {
	Len() int
}

// Indexable is a sized collection with positional access. Index is only
// called with 0 <= i < Len().
type Indexable[T any] interface {
	Sized
	Index(i int) T
}

// Get returns the element at position i. Negative positions count from the end.
func Get[T any](x Indexable[T], i int) (T, error) {
	n := x.Len()
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, n)
	}
	return x.Index(j), nil
}

// All iterates x from start to end
func All[T any](x Indexable[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < x.Len(); i++ {
			if !yield(x.Index(i)) {
				return
			}
		}
	}
}

// Backward iterates x from end to start
func Backward[T any](x Indexable[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := x.Len() - 1; i >= 0; i-- {
			if !yield(x.Index(i)) {
				return
			}
		}
	}
}

// Collect copies x into a new slice
func Collect[T any](x Indexable[T]) []T {
	return slices.Collect(All(x))
}

// Choice picks a uniformly random element of x
func Choice[T any](x Indexable[T], r *rand.Rand) (T, error) {
	n := x.Len()
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return x.Index(r.IntN(n)), nil
}

// Contains reports whether v is in x. It scans x in order.
func Contains[T comparable](x Indexable[T], v T) bool {
	for e := range All(x) {
		if e == v {
			return true
		}
	}
	return false
}

// SortedBy returns the elements of x stably sorted by key. x is not modified.
func SortedBy[T any, K cmp.Ordered](x Indexable[T], key func(T) K) []T {
	out := Collect(x)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}
