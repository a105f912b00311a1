// Package seq offers eager slice helpers and lazy, pull-based pipelines.
//
// Eager helpers take a slice and return a new one. Lazy pipelines start from
// an Iterator, stack intermediate stages (MapIter, FilterIter, Take, Sorted,
// Distinct) and do no work until a terminal operation such as ForEach,
// ToSlice, Count or FindFirst pulls values through.
package seq

import (
	"cmp"
	"slices"
)

// Iterator is a lazy, pull-based, single-use sequence. The zero value is
// empty.
type Iterator[T any] struct {
	next func() (T, bool)
}

// Next pulls one value; ok is false once the sequence is exhausted.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// FromSlice reads values in place. No stage writes back, so one slice can
// feed any number of pipelines.
func FromSlice[T any](values []T) Iterator[T] {
	rest := values
	return Iterator[T]{
		next: func() (v T, ok bool) {
			if len(rest) == 0 {
				return v, false
			}
			v, rest = rest[0], rest[1:]
			return v, true
		},
	}
}

// Of iterates over its arguments.
func Of[T any](values ...T) Iterator[T] {
	return FromSlice(values)
}

// MapIter applies fn to each value as it is pulled.
func MapIter[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	return Iterator[B]{
		next: func() (out B, ok bool) {
			if v, more := it.Next(); more {
				return fn(v), true
			}
			return out, false
		},
	}
}

// FilterIter skips values predicate rejects, pulling upstream until one
// passes or the upstream runs dry.
func FilterIter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			v, ok := it.Next()
			for ok && !predicate(v) {
				v, ok = it.Next()
			}
			return v, ok
		},
	}
}

// PeekIter calls fn with each value as it flows past.
func PeekIter[T any](it Iterator[T], fn func(T)) Iterator[T] {
	return MapIter(it, func(v T) T {
		fn(v)
		return v
	})
}

// Take stops after n values and never pulls the upstream again once it has.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	left := n
	return Iterator[T]{
		next: func() (T, bool) {
			if left <= 0 {
				var zero T
				return zero, false
			}
			left--
			return it.Next()
		},
	}
}

// Drop discards the first n values, lazily on the first pull.
func Drop[T any](it Iterator[T], n int) Iterator[T] {
	pending := n
	return Iterator[T]{
		next: func() (T, bool) {
			for ; pending > 0; pending-- {
				if _, ok := it.Next(); !ok {
					pending = 0
					break
				}
			}
			return it.Next()
		},
	}
}

// Sorted yields values ordered by compare. Equal values keep their upstream
// order. The upstream is drained on the first pull.
func Sorted[T any](it Iterator[T], compare func(a, b T) int) Iterator[T] {
	var buf []T
	loaded := false
	idx := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if !loaded {
				buf = ToSlice(it)
				slices.SortStableFunc(buf, compare)
				loaded = true
			}
			if idx >= len(buf) {
				var zero T
				return zero, false
			}
			v := buf[idx]
			idx++
			return v, true
		},
	}
}

// SortedNatural sorts by the natural order of T. Strings compare bytewise, so
// upper-case letters sort before lower-case ones.
func SortedNatural[T cmp.Ordered](it Iterator[T]) Iterator[T] {
	return Sorted(it, cmp.Compare[T])
}

// Distinct drops values equal to one already yielded.
func Distinct[T comparable](it Iterator[T]) Iterator[T] {
	seen := make(map[T]struct{})
	return FilterIter(it, func(v T) bool {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
		return true
	})
}
