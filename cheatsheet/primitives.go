package cheatsheet

import "github.com/charmingruby/lambdasheet/seq"

// SumAges adds up the ages of persons; no persons sum to 0.
func SumAges(persons []Person) int {
	return seq.SumBy(persons, Person.GetAge)
}

// Primitives sums ages extracted with a method expression.
func (r *Runner) Primitives() error {
	const demo = "primitives"
	p := r.begin(demo)

	persons := []Person{{Name: "Joey", Age: 18}, {Name: "Phil", Age: 27}}
	p.println(SumAges(persons))

	return r.finish(demo, p.err)
}
