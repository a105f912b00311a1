package fp

import "github.com/pkg/errors"

// ErrNullArgument is raised when a required pointer argument is nil.
var ErrNullArgument = errors.New("null argument")

// RequireNonNil panics with ErrNullArgument, annotated with name, when v is
// nil. It returns v so calls can be inlined into expressions.
//
// Example:
//
//	e := RequireNonNil(event, "event")
func RequireNonNil[T any](v *T, name string) *T {
	if v == nil {
		panic(errors.Wrap(ErrNullArgument, name))
	}
	return v
}
