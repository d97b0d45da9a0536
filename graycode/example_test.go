package graycode_test

import (
	"fmt"

	"github.com/katalvlaran/bosonperm/graycode"
)

// ExampleSequencer walks the power set of {0,1,2} one flip at a time.
func ExampleSequencer() {
	seq, err := graycode.New(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for {
		st, ok := seq.Next()
		if !ok {
			break
		}
		op := "-"
		if st.Include {
			op = "+"
		}
		fmt.Printf("%s%d -> %03b\n", op, st.Index, st.Code)
	}
	// Output:
	// +0 -> 001
	// +1 -> 011
	// -0 -> 010
	// +2 -> 110
	// +0 -> 111
	// -1 -> 101
	// -0 -> 100
}
