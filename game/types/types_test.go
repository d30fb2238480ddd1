package types

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestDirectionDelta(t *testing.T) {
	require.Equal(t, Point{X: 0, Y: -1}, Up.Delta())
	require.Equal(t, Point{X: 0, Y: 1}, Down.Delta())
	require.Equal(t, Point{X: -1, Y: 0}, Left.Delta())
	require.Equal(t, Point{X: 1, Y: 0}, Right.Delta())
}

func TestDirectionOpposite(t *testing.T) {
	require.Equal(t, Down, Up.Opposite())
	require.Equal(t, Up, Down.Opposite())
	require.Equal(t, Right, Left.Opposite())
	require.Equal(t, Left, Right.Opposite())
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 5, Y: 5}
	require.Equal(t, Point{X: 6, Y: 5}, p.Add(Right))
	require.Equal(t, Point{X: 5, Y: 4}, p.Add(Up))
}

func TestGridWrap(t *testing.T) {
	grid := Grid{Width: 40, Height: 30}

	require.Equal(t, Point{X: 0, Y: 10}, grid.Wrap(Point{X: 40, Y: 10}))
	require.Equal(t, Point{X: 39, Y: 10}, grid.Wrap(Point{X: -1, Y: 10}))
	require.Equal(t, Point{X: 10, Y: 0}, grid.Wrap(Point{X: 10, Y: 30}))
	require.Equal(t, Point{X: 10, Y: 29}, grid.Wrap(Point{X: 10, Y: -1}))
	require.Equal(t, Point{X: 10, Y: 10}, grid.Wrap(Point{X: 10, Y: 10}))
}

func TestGridCenter(t *testing.T) {
	require.Equal(t, Point{X: 20, Y: 15}, Grid{Width: 40, Height: 30}.Center())
}

func TestGridRandomPointInBounds(t *testing.T) {
	grid := Grid{Width: 7, Height: 3}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		p := grid.RandomPoint(rng)
		require.GreaterOrEqual(t, p.X, 0)
		require.Less(t, p.X, grid.Width)
		require.GreaterOrEqual(t, p.Y, 0)
		require.Less(t, p.Y, grid.Height)
	}
}
