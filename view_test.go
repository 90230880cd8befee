package intarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	t.Run("First", func(t *testing.T) {
		backing := []int32{4, 5, 6}
		v := Of(backing[:2])
		require.Equal(t, 2, v.Len())
		require.Equal(t, int32(4), v.First())
	})
	t.Run("Tail", func(t *testing.T) {
		v := Of([]int32{7, 8, 9}).Tail()
		require.Equal(t, []int32{8, 9}, v.Slice())

		v = v.Tail()
		require.Equal(t, 1, v.Len())
		require.Equal(t, int32(9), v.First())

		v = v.Tail()
		require.True(t, v.Empty())
		require.Empty(t, v.Slice())
	})
	t.Run("Aliasing", func(t *testing.T) {
		backing := []int32{7, 8, 9}
		tail := Of(backing).Tail()
		backing[2] = 42
		require.Equal(t, int32(42), tail.At(1))
	})
	t.Run("Empty", func(t *testing.T) {
		for _, v := range []View{{}, Of(nil), Of([]int32{}), Of([]int32{1}).Tail()} {
			require.True(t, v.Empty())
			require.PanicsWithError(t, "empty view", func() { v.First() })
			require.PanicsWithError(t, "empty view", func() { v.Tail() })
		}
	})
	t.Run("Capacity", func(t *testing.T) {
		backing := []int32{1, 2, 3, 4}
		v := Of(backing[:2])
		require.Equal(t, 2, cap(v.Slice()))
	})
}
