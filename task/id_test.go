package task

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDAllocSequential(t *testing.T) {
	var a idAllocator
	for i := 0; i < 5; i++ {
		require.Equal(t, i, a.alloc())
	}
}

func TestIDRecycle(t *testing.T) {
	var a idAllocator
	for i := 0; i < 4; i++ {
		a.alloc()
	}
	a.release(1)
	a.release(3)

	// released ids come back before new ones are minted
	require.Equal(t, 3, a.alloc())
	require.Equal(t, 1, a.alloc())
	require.Equal(t, 4, a.alloc())
}

func TestIDReleaseMisuse(t *testing.T) {
	var a idAllocator
	a.alloc()

	require.Panics(t, func() { a.release(7) })

	a.release(0)
	require.Panics(t, func() { a.release(0) })
}
