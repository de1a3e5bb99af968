package listedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesSeed(t *testing.T) {
	seed := []string{"a", "b"}
	l := New(seed, 0)
	seed[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, l.Items())

	items := l.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, l.Items())
}

func TestAppend_RespectsCap(t *testing.T) {
	l := New([]string{"a", "b"}, 3)
	require.NoError(t, l.Append("c"))
	require.ErrorIs(t, l.Append("d"), ErrFull)
	assert.Equal(t, []string{"a", "b", "c"}, l.Items())

	unbounded := New[string](nil, 0)
	for i := 0; i < 50; i++ {
		require.NoError(t, unbounded.Append("x"))
	}
	assert.Equal(t, 50, unbounded.Len())
}

func TestRemoveAt(t *testing.T) {
	l := New([]string{"a", "b", "c"}, 0)
	require.NoError(t, l.RemoveAt(1))
	assert.Equal(t, []string{"a", "c"}, l.Items())

	require.ErrorIs(t, l.RemoveAt(2), ErrIndex)
	require.ErrorIs(t, l.RemoveAt(-1), ErrIndex)
}

func TestMoveUpDown_EdgesAreNoOps(t *testing.T) {
	l := New([]string{"a", "b", "c"}, 0)

	require.NoError(t, l.MoveUp(0))
	assert.Equal(t, []string{"a", "b", "c"}, l.Items())

	require.NoError(t, l.MoveDown(2))
	assert.Equal(t, []string{"a", "b", "c"}, l.Items())

	require.NoError(t, l.MoveUp(2))
	assert.Equal(t, []string{"a", "c", "b"}, l.Items())

	require.NoError(t, l.MoveDown(0))
	assert.Equal(t, []string{"c", "a", "b"}, l.Items())

	require.ErrorIs(t, l.MoveUp(3), ErrIndex)
	require.ErrorIs(t, l.MoveDown(-1), ErrIndex)
}

func TestReorder(t *testing.T) {
	l := New([]string{"a", "b", "c", "d"}, 0)

	require.NoError(t, l.Reorder(0, 2))
	assert.Equal(t, []string{"b", "c", "a", "d"}, l.Items())

	require.NoError(t, l.Reorder(3, 0))
	assert.Equal(t, []string{"d", "b", "c", "a"}, l.Items())

	require.NoError(t, l.Reorder(1, 1))
	assert.Equal(t, []string{"d", "b", "c", "a"}, l.Items())

	require.ErrorIs(t, l.Reorder(0, 4), ErrIndex)
	require.ErrorIs(t, l.Reorder(4, 0), ErrIndex)
}
