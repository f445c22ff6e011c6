package task

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	var q runQueue
	require.True(t, q.empty())
	require.Nil(t, q.pop())

	a := &Task{id: 0}
	b := &Task{id: 1}
	c := &Task{id: 2}
	q.push(a)
	q.push(b)
	q.push(c)
	require.False(t, q.empty())

	require.Same(t, a, q.pop())
	require.Same(t, b, q.pop())

	// interleave a push with the drain
	q.push(a)
	require.Same(t, c, q.pop())
	require.Same(t, a, q.pop())
	require.True(t, q.empty())
	require.Nil(t, q.pop())
}
