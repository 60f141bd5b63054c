package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListCursorScrollsWithIndex(t *testing.T) {
	c := NewListCursor(3).Clamp(10)

	c = c.Move(1).Move(1)
	require.Equal(t, 2, c.Index())
	require.Equal(t, 0, c.Offset())

	c = c.Move(1)
	require.Equal(t, 3, c.Index())
	require.Equal(t, 1, c.Offset())

	start, end := c.Window()
	require.Equal(t, 1, start)
	require.Equal(t, 4, end)
	require.True(t, c.HasAbove())
	require.True(t, c.HasBelow())
}

func TestListCursorStopsAtEnds(t *testing.T) {
	c := NewListCursor(3).Clamp(5)

	c = c.Move(-4)
	require.Equal(t, 0, c.Index())

	c = c.End()
	require.Equal(t, 4, c.Index())
	require.Equal(t, 2, c.Offset())
	require.False(t, c.HasBelow())

	c = c.Move(10)
	require.Equal(t, 4, c.Index())

	c = c.Home()
	require.Equal(t, 0, c.Index())
	require.Equal(t, 0, c.Offset())
}

func TestListCursorPaging(t *testing.T) {
	c := NewListCursor(4).Clamp(10)

	c = c.PageDown()
	require.Equal(t, 4, c.Index())
	c = c.PageDown().PageDown()
	require.Equal(t, 9, c.Index())
	c = c.PageUp()
	require.Equal(t, 5, c.Index())
}

func TestListCursorClampAfterShrink(t *testing.T) {
	c := NewListCursor(3).Clamp(10).End()
	require.Equal(t, 9, c.Index())

	c = c.Clamp(2)
	require.Equal(t, 1, c.Index())
	require.Equal(t, 0, c.Offset())

	c = c.Clamp(0)
	require.Equal(t, 0, c.Index())
	start, end := c.Window()
	require.Equal(t, 0, start)
	require.Equal(t, 0, end)
}

func TestListCursorSetHeight(t *testing.T) {
	c := NewListCursor(2).Clamp(6).Move(5)
	require.Equal(t, 4, c.Offset())

	c = c.SetHeight(6)
	require.Equal(t, 0, c.Offset())
	require.Equal(t, 5, c.Index())

	require.Equal(t, 1, NewListCursor(0).Height())
}
