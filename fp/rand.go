package fp

import "math/rand/v2"

// RandSource picks an index in [0, n).
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// GlobalRand returns a RandSource backed by the process-wide generator. It is
// not seeded by the caller, so results are not reproducible.
func GlobalRand() RandSource {
	return globalRand{}
}

// SeededRand returns a deterministic RandSource for the given seed.
func SeededRand(seed uint64) RandSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pick returns a Supplier choosing uniformly among values using src. values
// must not be empty.
//
// Example:
//
//	name := Pick(GlobalRand(), "Tommy", "Ozzy")
//	fmt.Println(name())
func Pick[T any](src RandSource, values ...T) Supplier[T] {
	return func() T {
		return values[src.IntN(len(values))]
	}
}
