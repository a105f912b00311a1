package seq

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Number is the set of element types SumBy can add up.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Map applies fn to every element. The result always has len(in) elements
// and is never nil.
func Map[A any, B any](in []A, fn func(A) B) []B {
	return lo.Map(in, func(v A, _ int) B {
		return fn(v)
	})
}

// Filter returns the elements predicate accepts. in is not modified.
func Filter[T any](in []T, predicate func(T) bool) []T {
	return lo.Filter(in, func(v T, _ int) bool {
		return predicate(v)
	})
}

// FoldLeft threads an accumulator through in, first element first.
func FoldLeft[A any, B any](in []A, init B, fn func(B, A) B) B {
	return lo.Reduce(in, func(acc B, v A, _ int) B {
		return fn(acc, v)
	}, init)
}

// Reduce folds in onto its first element. There is nothing to fold into
// when in is empty, and ok is false.
func Reduce[T any](in []T, fn func(T, T) T) (T, bool) {
	if len(in) == 0 {
		var zero T
		return zero, false
	}
	return FoldLeft(in[1:], in[0], fn), true
}

// Find returns the first element satisfying predicate.
func Find[T any](in []T, predicate func(T) bool) (T, bool) {
	return lo.Find(in, predicate)
}

// Any reports whether some element satisfies predicate, stopping at the first.
func Any[T any](in []T, predicate func(T) bool) bool {
	return lo.ContainsBy(in, predicate)
}

// All reports whether every element satisfies predicate.
func All[T any](in []T, predicate func(T) bool) bool {
	return lo.EveryBy(in, predicate)
}

// DistinctBy keeps the first element for each key, preserving order.
func DistinctBy[T any, K comparable](in []T, key func(T) K) []T {
	return lo.UniqBy(in, key)
}

// CountBy counts the elements satisfying predicate.
func CountBy[T any](in []T, predicate func(T) bool) int {
	return lo.CountBy(in, predicate)
}

// SumBy adds up the numbers extracted by key. An empty slice sums to zero.
//
// Example:
//
//	total := seq.SumBy(persons, Person.GetAge)
func SumBy[T any, N Number](in []T, key func(T) N) N {
	return lo.SumBy(in, key)
}

// ForEach calls fn with every element in order. Mutations only stick when T
// is a pointer or reference type.
func ForEach[T any](in []T, fn func(T)) {
	lo.ForEach(in, func(v T, _ int) {
		fn(v)
	})
}

// ForEachErr calls fn with every element in order and stops at the first
// error, which is returned annotated with the failing index. Elements after
// it are not visited.
func ForEachErr[T any](in []T, fn func(T) error) error {
	for i, v := range in {
		if err := fn(v); err != nil {
			return errors.Wrapf(err, "element %d", i)
		}
	}
	return nil
}

// RemoveIf returns the elements for which predicate is false, in their
// original order. in is left untouched.
func RemoveIf[T any](in []T, predicate func(T) bool) []T {
	return lo.Reject(in, func(v T, _ int) bool {
		return predicate(v)
	})
}
