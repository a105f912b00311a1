package cheatsheet

import "strings"

// Phrase is the sentence the pipeline demonstrations work on.
const Phrase = "Every problem in computer science can be solved by adding another level of indirection"

// Words splits Phrase on single spaces. Every call returns a fresh slice.
func Words() []string {
	return strings.Split(Phrase, " ")
}
