package cheatsheet

import (
	"strings"
	"unicode/utf8"

	"github.com/charmingruby/lambdasheet/seq"
)

// Uppercased maps every word to upper case.
func Uppercased(words []string) seq.Iterator[string] {
	return seq.MapIter(seq.FromSlice(words), strings.ToUpper)
}

// EvenLength keeps words with an even number of characters.
func EvenLength(words []string) seq.Iterator[string] {
	return seq.FilterIter(seq.FromSlice(words), func(s string) bool {
		return utf8.RuneCountInString(s)&1 == 0
	})
}

// FirstFive keeps at most the first five words.
func FirstFive(words []string) seq.Iterator[string] {
	return seq.Take(seq.FromSlice(words), 5)
}

// SortedWords orders words bytewise.
func SortedWords(words []string) seq.Iterator[string] {
	return seq.SortedNatural(seq.FromSlice(words))
}

// DistinctInitials maps words to their first character and drops repeats,
// keeping first appearances in order.
func DistinctInitials(words []string) seq.Iterator[string] {
	return seq.Distinct(seq.MapIter(seq.FromSlice(words), firstChar))
}

func firstChar(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// StreamOperations prints five independent lazy pipelines over Words. Each
// pipeline prints its values followed by a space, then ends the line.
func (r *Runner) StreamOperations() error {
	const demo = "stream operations"
	p := r.begin(demo)

	words := Words()
	pipelines := []func([]string) seq.Iterator[string]{
		Uppercased,
		EvenLength,
		FirstFive,
		SortedWords,
		DistinctInitials,
	}
	for _, pipeline := range pipelines {
		pipeline(words).ForEach(func(s string) {
			p.printf("%s ", s)
		})
		p.println()
	}

	return r.finish(demo, p.err)
}
