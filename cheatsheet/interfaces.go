package cheatsheet

import (
	"slices"

	"github.com/charmingruby/lambdasheet/fp"
)

var bandNames = []string{"Tommy", "Ozzy", "Bill", "Geezer"}

// BandNames lists what NameSupplier can return.
func BandNames() []string {
	return slices.Clone(bandNames)
}

// Over18 is the predicate shape: it tests a person.
func Over18(p Person) bool {
	return p.Age >= 18
}

// Stringify is the consumer shape. It renders p and throws the text away.
func Stringify(p Person) {
	_ = p.String()
}

// AgeNextYear is the function shape: Person in, int out.
func AgeNextYear(p Person) int {
	return p.Age + 1
}

// NameSupplier is the supplier shape: each call returns one of BandNames
// chosen by src.
func NameSupplier(src fp.RandSource) fp.Supplier[string] {
	return fp.Pick(src, bandNames...)
}

// FunctionalInterfaces evaluates a predicate, a consumer, a function and a
// supplier.
func (r *Runner) FunctionalInterfaces() error {
	const demo = "functional interfaces"
	p := r.begin(demo)

	var over18 fp.Predicate[Person] = Over18
	var describe fp.Consumer[Person] = Stringify
	var ageNextYear fp.Function[Person, int] = AgeNextYear
	nameSupplier := NameSupplier(r.rand)

	for _, person := range []Person{{Name: "Joey", Age: 17}, {Name: "Phil", Age: 27}} {
		describe.Accept(person)
		p.printf("%s over 18: %t\n", person, over18.Test(person))
		p.printf("%s age next year: %d\n", person, ageNextYear.Apply(person))
	}
	p.printf("supplied name: %s\n", nameSupplier.Get())

	return r.finish(demo, p.err)
}
