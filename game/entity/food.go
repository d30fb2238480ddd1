package entity

import (
	"golang.org/x/exp/rand"

	"github.com/VRtech7066/VRD-4/game/types"
)

// Food occupies a single grid cell.
type Food struct {
	Pos types.Point
}

func NewFood(grid types.Grid, rng *rand.Rand) *Food {
	return &Food{Pos: grid.RandomPoint(rng)}
}

// Respawn moves the food to a uniformly random cell. The cell may land on the
// snake body; the snake then simply eats it on the spot next tick.
func (f *Food) Respawn(grid types.Grid, rng *rand.Rand) {
	f.Pos = grid.RandomPoint(rng)
}
