package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetByteSlice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetByteSlice(2048)
		defer cleanup()

		require.Equal(t, 2048, len(slice))
		require.GreaterOrEqual(t, cap(slice), 2048)
	})

	t.Run("reuses pooled slice when capacity sufficient", func(t *testing.T) {
		slice1, cleanup1 := GetByteSlice(1024)
		ptr1 := &slice1[0]
		cleanup1()

		slice2, cleanup2 := GetByteSlice(1024)
		defer cleanup2()
		ptr2 := &slice2[0]

		require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
	})

	t.Run("grows beyond pooled capacity", func(t *testing.T) {
		slice, cleanup := GetByteSlice(8192)
		defer cleanup()

		require.Equal(t, 8192, len(slice))
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetByteSlice(0)
		defer cleanup()

		require.Empty(t, slice)
	})
}
