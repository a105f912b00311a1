package option_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/charmingruby/lambdasheet/option"
)

func build(value int, present bool) option.Option[int] {
	if present {
		return option.Some(value)
	}
	return option.None[int]()
}

func TestOptionLaws(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }
	half := func(x int) option.Option[int] {
		if x%2 == 0 {
			return option.Some(x / 2)
		}
		return option.None[int]()
	}
	shift := func(x int) option.Option[int] { return option.Some(x + 3) }

	properties := gopter.NewProperties(nil)

	properties.Property("map identity", prop.ForAll(func(v int, present bool) bool {
		opt := build(v, present)
		return equalOption(option.Map(opt, func(x int) int { return x }), opt)
	}, gen.Int(), gen.Bool()))

	properties.Property("map composition", prop.ForAll(func(v int, present bool) bool {
		opt := build(v, present)
		chained := option.Map(option.Map(opt, inc), double)
		fused := option.Map(opt, func(x int) int { return double(inc(x)) })
		return equalOption(chained, fused)
	}, gen.Int(), gen.Bool()))

	properties.Property("flatMap left identity", prop.ForAll(func(v int) bool {
		return equalOption(option.FlatMap(option.Some(v), half), half(v))
	}, gen.Int()))

	properties.Property("flatMap right identity", prop.ForAll(func(v int, present bool) bool {
		opt := build(v, present)
		return equalOption(option.FlatMap(opt, option.Some[int]), opt)
	}, gen.Int(), gen.Bool()))

	properties.Property("flatMap associativity", prop.ForAll(func(v int) bool {
		left := option.FlatMap(option.FlatMap(option.Some(v), half), shift)
		right := option.FlatMap(option.Some(v), func(x int) option.Option[int] {
			return option.FlatMap(half(x), shift)
		})
		return equalOption(left, right)
	}, gen.Int()))

	properties.Property("getOrElse returns value or fallback", prop.ForAll(func(v, fallback int, present bool) bool {
		got := build(v, present).GetOrElse(fallback)
		if present {
			return got == v
		}
		return got == fallback
	}, gen.Int(), gen.Int(), gen.Bool()))

	properties.TestingRun(t)
}

func equalOption[T comparable](a, b option.Option[T]) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}
	return !aok || av == bv
}
