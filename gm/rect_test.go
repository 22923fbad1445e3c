package gm

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectWithPoints(t *testing.T) {
	r := RectWithPoints(Vec{X: 10, Y: 0}, Vec{X: 0, Y: 5})
	require.Equal(t, Rect{Min: Vec{X: 0, Y: 0}, Max: Vec{X: 10, Y: 5}}, r)
	require.True(t, r.IsNormalized())
}

func TestRect_Edges(t *testing.T) {
	r := RectOf(1, 2, 10, 20)
	require.Equal(t, 1.0, r.Left())
	require.Equal(t, 2.0, r.Top())
	require.Equal(t, 11.0, r.Right())
	require.Equal(t, 22.0, r.Bottom())
	require.Equal(t, 10.0, r.Width())
	require.Equal(t, 20.0, r.Height())
	require.Equal(t, Vec{X: 6, Y: 12}, r.Center())
}

func TestRect_Normalized(t *testing.T) {
	r := RectOf(10, 10, -4, -6)
	require.False(t, r.IsNormalized())

	n := r.Normalized()
	require.Equal(t, RectOf(6, 4, 4, 6), n)
	require.True(t, n.IsNormalized())

	// already normalized rects are kept as is
	require.Equal(t, n, n.Normalized())
}

func TestRect_Contains(t *testing.T) {
	r := RectOf(0, 0, 10, 10)
	require.True(t, r.Contains(Vec{X: 5, Y: 5}))
	require.True(t, r.Contains(Vec{X: 10, Y: 10}))
	require.False(t, r.Contains(Vec{X: 11, Y: 5}))
}

func TestRect_ToImageRectangle(t *testing.T) {
	r := RectOf(0.5, 1.2, 9.6, 3)
	require.Equal(t, image.Rect(0, 1, 11, 5), r.ToImageRectangle())
}
