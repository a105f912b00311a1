// Package option implements Option, a container that either holds a value or
// is explicitly empty. It is what lookups such as seq.FindFirst return instead
// of a nil pointer or a magic zero value.
package option

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/mo"

	"github.com/charmingruby/lambdasheet/result"
)

// ErrEmpty is returned by ToResult when no error factory is supplied.
var ErrEmpty = errors.New("option: no value present")

// Option holds a value of type T or nothing. The zero value is empty. The
// value is stored inline, so Some of a nil pointer is still present.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from the comma-ok idiom.
//
// Example:
//
//	v, ok := os.LookupEnv("PORT")
//	port := option.FromOk(v, ok)
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr treats a nil pointer as empty and copies the pointee otherwise.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromMo converts a samber/mo Option.
func FromMo[T any](o mo.Option[T]) Option[T] {
	v, ok := o.Get()
	return FromOk(v, ok)
}

// ToMo converts to a samber/mo Option for callers built on that library.
func (o Option[T]) ToMo() mo.Option[T] {
	if !o.ok {
		return mo.None[T]()
	}
	return mo.Some(o.value)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// MustGet returns the value and panics with ErrEmpty when there is none.
// Calling it on an empty Option is a programming error.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic(errors.WithStack(ErrEmpty))
	}
	return o.value
}

// GetOrElse returns the value, or fallback when empty. It never fails.
//
// Example:
//
//	word := seq.FindFirst(it).GetOrElse("not found")
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// GetOrElseFunc is GetOrElse with a lazily computed fallback.
func (o Option[T]) GetOrElseFunc(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// OrElse returns o when present, otherwise other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// IfPresent calls fn with the value when there is one.
func (o Option[T]) IfPresent(fn func(T)) {
	if o.ok {
		fn(o.value)
	}
}

// Filter empties the Option when the value fails predicate.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToPtr returns a pointer to a copy of the value, or nil when empty.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// ToResult turns an empty Option into an error Result. errFactory may be nil,
// in which case ErrEmpty is used.
func (o Option[T]) ToResult(errFactory func() error) result.Result[T] {
	if o.ok {
		return result.Ok(o.value)
	}
	var err error
	if errFactory != nil {
		err = errFactory()
	}
	if err == nil {
		err = ErrEmpty
	}
	return result.Err[T](err)
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies fn to a present value.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap chains an Option-returning function.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// Fold collapses o into a U.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}
