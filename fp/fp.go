// Package fp provides the functional shapes used across lambdasheet: the
// one-method callback types (Predicate, Consumer, Function, Supplier,
// Comparator) and a few composition helpers.
//
// Example:
//
//	shout := fp.Pipe("go",
//		strings.ToUpper,
//		func(s string) string { return s + "!" },
//	)
package fp

// Identity returns v unchanged.
//
// Example:
//
//	same := Identity("word")
func Identity[T any](v T) T {
	return v
}

// Constant returns a Supplier that always yields v.
//
// Example:
//
//	fallback := Constant("not found")
//	fmt.Println(fallback())
func Constant[T any](v T) Supplier[T] {
	return func() T {
		return v
	}
}

// Pipe feeds value through fns from left to right.
//
// Example:
//
//	age := Pipe(17,
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	out := value
	for _, fn := range fns {
		out = fn(out)
	}
	return out
}

// Compose returns the right-to-left composition of fns. Compose(f, g)(x) is
// f(g(x)).
//
// Example:
//
//	label := Compose(strings.ToUpper, strings.TrimSpace)
//	fmt.Println(label("  red "))
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		out := value
		for i := len(fns) - 1; i >= 0; i-- {
			out = fns[i](out)
		}
		return out
	}
}
