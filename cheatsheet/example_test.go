package cheatsheet_test

import (
	"os"

	"github.com/charmingruby/lambdasheet/cheatsheet"
)

func ExampleRunner_TerminalOperations() {
	r := cheatsheet.New(cheatsheet.WithOutput(os.Stdout))
	_ = r.TerminalOperations()
	// Output:
	// [EVERY PROBLEM IN COMPUTER SCIENCE CAN BE SOLVED BY ADDING ANOTHER LEVEL OF INDIRECTION]
	// [EVERY PROBLEM IN COMPUTER SCIENCE CAN BE SOLVED BY ADDING ANOTHER LEVEL OF INDIRECTION]
	// 5
	// true
	// computer
	// not found
}

func ExampleRunner_Primitives() {
	_ = cheatsheet.New().Primitives()
	// Output:
	// 45
}
