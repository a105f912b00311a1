package cheatsheet

import (
	"strings"
	"unicode/utf8"

	"github.com/charmingruby/lambdasheet/option"
	"github.com/charmingruby/lambdasheet/seq"
)

// NotFound is the fallback printed when a lookup finds nothing.
const NotFound = "not found"

// CollectUpper materializes the upper-cased words into a new slice.
func CollectUpper(words []string) []string {
	return seq.ToSlice(Uppercased(words))
}

// UpperArray is CollectUpper sized exactly to the number of words.
func UpperArray(words []string) []string {
	return seq.ToArray(Uppercased(words))
}

// CountShort counts words of at most three characters.
func CountShort(words []string) int {
	return seq.FilterIter(seq.FromSlice(words), func(s string) bool {
		return utf8.RuneCountInString(s) <= 3
	}).Count()
}

// AnyStartsWith reports whether a word starts with prefix, stopping at the
// first one that does.
func AnyStartsWith(words []string, prefix string) bool {
	return seq.FromSlice(words).AnyMatch(func(s string) bool {
		return strings.HasPrefix(s, prefix)
	})
}

// FindFirstStartingWith returns the first word starting with prefix.
func FindFirstStartingWith(words []string, prefix string) option.Option[string] {
	return seq.FilterIter(seq.FromSlice(words), func(s string) bool {
		return strings.HasPrefix(s, prefix)
	}).FindFirst()
}

// TerminalOperations forces pipelines over Words into concrete values and
// prints one per line.
func (r *Runner) TerminalOperations() error {
	const demo = "terminal operations"
	p := r.begin(demo)

	words := Words()
	p.println(CollectUpper(words))
	p.println(UpperArray(words))
	p.println(CountShort(words))
	p.println(AnyStartsWith(words, "c"))
	p.println(FindFirstStartingWith(words, "c").MustGet())
	p.println(FindFirstStartingWith(words, "x").GetOrElse(NotFound))

	return r.finish(demo, p.err)
}
