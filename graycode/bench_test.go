package graycode_test

import (
	"testing"

	"github.com/katalvlaran/bosonperm/graycode"
)

// BenchmarkSequencer_n20 walks the full 2²⁰−1 step sequence; the point
// of the package is that each step stays O(1).
func BenchmarkSequencer_n20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		seq, err := graycode.New(20)
		if err != nil {
			b.Fatal(err)
		}
		var flips int
		for {
			if _, ok := seq.Next(); !ok {
				break
			}
			flips++
		}
		if flips != int(seq.Len()) {
			b.Fatalf("walked %d of %d steps", flips, seq.Len())
		}
	}
}
