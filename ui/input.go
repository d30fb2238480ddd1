package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/VRtech7066/VRD-4/game"
)

// Input translates raylib key presses into game commands, polled once per
// frame. Arrows and WASD steer, Space or Enter starts, Q asks to quit and
// closing the window always terminates.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Poll() []game.Command {
	var cmds []game.Command

	if rl.WindowShouldClose() {
		cmds = append(cmds, game.CommandClose)
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		cmds = append(cmds, game.CommandQuit)
	}

	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		cmds = append(cmds, game.CommandUp)
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		cmds = append(cmds, game.CommandDown)
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		cmds = append(cmds, game.CommandLeft)
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		cmds = append(cmds, game.CommandRight)
	}

	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
		cmds = append(cmds, game.CommandStart)
	}

	return cmds
}
