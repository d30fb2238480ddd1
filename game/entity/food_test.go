package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/VRtech7066/VRD-4/game/types"
)

func TestFoodRespawnStaysInBounds(t *testing.T) {
	grid := types.Grid{Width: 8, Height: 5}
	rng := rand.New(rand.NewSource(42))
	food := NewFood(grid, rng)

	for i := 0; i < 500; i++ {
		food.Respawn(grid, rng)
		require.GreaterOrEqual(t, food.Pos.X, 0)
		require.Less(t, food.Pos.X, grid.Width)
		require.GreaterOrEqual(t, food.Pos.Y, 0)
		require.Less(t, food.Pos.Y, grid.Height)
	}
}

func TestFoodRespawnMovesEventually(t *testing.T) {
	grid := types.Grid{Width: 40, Height: 30}
	rng := rand.New(rand.NewSource(7))
	food := NewFood(grid, rng)

	start := food.Pos
	moved := false
	for i := 0; i < 10; i++ {
		food.Respawn(grid, rng)
		if food.Pos != start {
			moved = true
			break
		}
	}
	require.True(t, moved)
}
