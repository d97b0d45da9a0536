package graycode_test

import (
	"math/bits"
	"testing"

	"github.com/katalvlaran/bosonperm/graycode"
	"github.com/stretchr/testify/require"
)

// TestCode_KnownPrefix pins the canonical reflected Gray sequence.
func TestCode_KnownPrefix(t *testing.T) {
	want := []uint64{0, 1, 3, 2, 6, 7, 5, 4}
	for k, w := range want {
		require.Equal(t, w, graycode.Code(uint64(k)), "gray(%d)", k)
	}
}

// TestNew_BadOrder verifies the order bounds.
func TestNew_BadOrder(t *testing.T) {
	_, err := graycode.New(0)
	require.ErrorIs(t, err, graycode.ErrBadOrder)

	_, err = graycode.New(-3)
	require.ErrorIs(t, err, graycode.ErrBadOrder)

	_, err = graycode.New(graycode.MaxOrder + 1)
	require.ErrorIs(t, err, graycode.ErrBadOrder)
}

// TestSequencer_FullWalk checks, for a small order, that the walk
// visits every nonzero code exactly once, that consecutive codes differ
// in a single bit, and that the reported flip matches the codes.
func TestSequencer_FullWalk(t *testing.T) {
	const n = 5
	seq, err := graycode.New(n)
	require.NoError(t, err)
	require.Equal(t, n, seq.Order())
	require.Equal(t, uint64(1<<n-1), seq.Len())

	seen := map[uint64]bool{0: true} // start subset is empty
	prev := uint64(0)
	steps := 0
	for {
		st, ok := seq.Next()
		if !ok {
			break
		}
		steps++

		diff := prev ^ st.Code
		require.Equal(t, 1, bits.OnesCount64(diff), "step %d: exactly one bit must flip", steps)
		require.Equal(t, bits.TrailingZeros64(diff), st.Index, "step %d: flip index", steps)
		require.Equal(t, st.Code&diff != 0, st.Include, "step %d: flip direction", steps)
		require.False(t, seen[st.Code], "step %d: code %b revisited", steps, st.Code)

		seen[st.Code] = true
		prev = st.Code
	}

	require.Equal(t, int(seq.Len()), steps)
	require.Len(t, seen, 1<<n, "walk must cover the whole power set")
}

// TestSequencer_Exhausted ensures Next keeps returning false after the
// final step.
func TestSequencer_Exhausted(t *testing.T) {
	seq, err := graycode.New(1)
	require.NoError(t, err)

	st, ok := seq.Next()
	require.True(t, ok)
	require.Equal(t, 0, st.Index)
	require.True(t, st.Include)

	_, ok = seq.Next()
	require.False(t, ok)
	_, ok = seq.Next()
	require.False(t, ok)
}
