package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint64Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetUint64Slice(100)
		defer cleanup()

		require.Len(t, slice, 100)
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("allocates new slice when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetUint64Slice(10)
		cleanup1()

		slice, cleanup2 := GetUint64Slice(1000)
		defer cleanup2()

		require.Len(t, slice, 1000)
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetUint64Slice(0)
		defer cleanup()

		require.Empty(t, slice)
	})
}

func TestGetUint32Slice(t *testing.T) {
	slice, cleanup := GetUint32Slice(64)
	defer cleanup()

	require.Len(t, slice, 64)
	for i := range slice {
		slice[i] = uint32(i)
	}
	require.Equal(t, uint32(63), slice[63])
}

func TestSlicePoolConcurrency(t *testing.T) {
	const goroutines = 100
	done := make(chan bool, goroutines)

	for range goroutines {
		go func() {
			slice, cleanup := GetUint64Slice(50)
			defer cleanup()

			for j := range slice {
				slice[j] = uint64(j)
			}

			done <- true
		}()
	}

	for range goroutines {
		<-done
	}
}
