package seq

import (
	"strings"

	"github.com/charmingruby/lambdasheet/option"
)

// ForEach drains the iterator, calling fn with every value.
func (it Iterator[T]) ForEach(fn func(T)) {
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		fn(v)
	}
}

// Count drains the iterator and returns how many values it produced.
func (it Iterator[T]) Count() int {
	n := 0
	it.ForEach(func(T) { n++ })
	return n
}

// AnyMatch reports whether some value satisfies predicate. It stops pulling
// at the first match.
func (it Iterator[T]) AnyMatch(predicate func(T) bool) bool {
	return FilterIter(it, predicate).FindFirst().IsSome()
}

// AllMatch reports whether every value satisfies predicate. It stops at the
// first failure; an empty iterator matches.
func (it Iterator[T]) AllMatch(predicate func(T) bool) bool {
	return !it.AnyMatch(func(v T) bool { return !predicate(v) })
}

// NoneMatch reports whether no value satisfies predicate.
func (it Iterator[T]) NoneMatch(predicate func(T) bool) bool {
	return !it.AnyMatch(predicate)
}

// FindFirst pulls a single value. The result is empty when the iterator is
// exhausted.
func (it Iterator[T]) FindFirst() option.Option[T] {
	v, ok := it.Next()
	return option.FromOk(v, ok)
}

// Reduce drains the iterator, folding every value onto the first one. The
// result is empty when there were no values.
func (it Iterator[T]) Reduce(fn func(T, T) T) option.Option[T] {
	acc, ok := it.Next()
	if !ok {
		return option.None[T]()
	}
	it.ForEach(func(v T) {
		acc = fn(acc, v)
	})
	return option.Some(acc)
}

// ToSlice drains the iterator into a new slice. The result is never nil.
func ToSlice[T any](it Iterator[T]) []T {
	out := []T{}
	it.ForEach(func(v T) {
		out = append(out, v)
	})
	return out
}

// ToArray drains the iterator into a slice whose length and capacity both
// equal the number of values produced.
func ToArray[T any](it Iterator[T]) []T {
	buf := ToSlice(it)
	return buf[:len(buf):len(buf)]
}

// Joining drains a string iterator, separating values with sep.
func Joining(it Iterator[string], sep string) string {
	var b strings.Builder
	first := true
	it.ForEach(func(s string) {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(s)
	})
	return b.String()
}
