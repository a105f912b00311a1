package fp

import "cmp"

// Predicate reports whether a value passes a test.
//
// Example:
//
//	adult := Predicate[int](func(age int) bool { return age >= 18 })
type Predicate[T any] func(T) bool

// Test evaluates the predicate against v.
func (p Predicate[T]) Test(v T) bool {
	return p(v)
}

// And returns a predicate that holds when both p and other hold. other is
// not evaluated when p fails.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) && other(v)
	}
}

// Or returns a predicate that holds when either p or other holds. other is
// not evaluated when p succeeds.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) || other(v)
	}
}

// Negate inverts p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// Consumer accepts a value and returns nothing; it exists for its side effect.
type Consumer[T any] func(T)

// Accept runs the consumer with v.
func (c Consumer[T]) Accept(v T) {
	c(v)
}

// AndThen returns a consumer running c and then next with the same value.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(v T) {
		c(v)
		next(v)
	}
}

// Function turns an A into a B.
type Function[A any, B any] func(A) B

// Apply runs the function with a.
func (f Function[A, B]) Apply(a A) B {
	return f(a)
}

// AndThen chains f and g. Go methods cannot introduce type parameters, so
// this is a free function.
//
// Example:
//
//	ageLabel := AndThen(ageNextYear, strconv.Itoa)
func AndThen[A any, B any, C any](f Function[A, B], g Function[B, C]) Function[A, C] {
	return func(a A) C {
		return g(f(a))
	}
}

// Supplier produces a value on demand.
type Supplier[T any] func() T

// Get invokes the supplier.
func (s Supplier[T]) Get() T {
	return s()
}

// Comparator defines a total order: negative when a sorts before b, zero when
// they are equal, positive otherwise.
type Comparator[T any] func(a, b T) int

// Compare runs the comparator.
func (c Comparator[T]) Compare(a, b T) int {
	return c(a, b)
}

// Reversed returns the opposite ordering.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// ComparingInt64 orders values by an int64 key, returning exactly -1, 0 or 1.
//
// Example:
//
//	byWhen := ComparingInt64(func(e Event) int64 { return e.When })
func ComparingInt64[T any](key func(T) int64) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}
