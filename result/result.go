// Package result provides a value-or-error container, the Result counterpart
// of Go's (T, error) pair. It is used where a value has to travel with its
// failure, for example a comparison that failed fast on a nil argument.
//
// Example:
//
//	res := result.Try(func() int { return cmp(a, b) })
//	if res.IsErr() {
//		return res.Err()
//	}
package result

import "github.com/pkg/errors"

// Result is either a value or an error, never both.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure. A nil err is replaced with a placeholder so a failed
// Result can never look successful.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: nil error")
	}
	return Result[T]{err: err}
}

// FromTuple converts a (value, error) pair.
//
// Example:
//
//	age, err := strconv.Atoi("18")
//	res := result.FromTuple(age, err)
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// Try runs fn and captures a panic carrying an error as a failed Result.
// Panics with non-error values are re-raised untouched.
func Try[T any](fn func() T) (res Result[T]) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if !ok {
			panic(r)
		}
		res = Err[T](err)
	}()
	return Ok(fn())
}

// IsOk reports success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the failure, or nil.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value, or fallback on failure.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// Map transforms a successful value and passes failures through.
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err == nil {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}
