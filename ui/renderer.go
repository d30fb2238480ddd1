package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/VRtech7066/VRD-4/game"
	"github.com/VRtech7066/VRD-4/game/types"
)

const borderPadding = 10 // Padding around game area

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	r.layoutGrid(g.Grid)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch g.State() {
	case game.StateMenu:
		r.drawMenu()
	case game.StatePlaying:
		r.drawBoard(g)
	case game.StateGameOver:
		r.drawBoard(g)
		r.drawGameOver(g)
	}

	rl.EndDrawing()
}

// layoutGrid recomputes cell size and offsets from the current window size,
// so a resized window just rescales the board.
func (r *Renderer) layoutGrid(grid types.Grid) {
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2)

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)

	// Center the board in the window
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2
}

func (r *Renderer) cellRect(p types.Point) (x, y int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

func (r *Renderer) drawBoard(g *game.Game) {
	fontSize := r.screenHeight / 45 // Dynamic font size

	// Grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	// Grid lines
	for x := 0; x < g.Grid.Width; x++ {
		for y := 0; y < g.Grid.Height; y++ {
			cx, cy := r.cellRect(types.Point{X: x, Y: y})
			rl.DrawRectangleLines(cx, cy, r.cellSize, r.cellSize, rl.Gray)
		}
	}

	// Snake body, head drawn brighter
	for i, p := range g.Snake().Body {
		color := rl.Green
		if i == 0 {
			color = rl.Lime
		}
		cx, cy := r.cellRect(p)
		rl.DrawRectangle(cx, cy, r.cellSize, r.cellSize, color)
		rl.DrawRectangleLines(cx, cy, r.cellSize, r.cellSize, rl.White)
	}

	// Food
	fx, fy := r.cellRect(g.Food().Pos)
	rl.DrawRectangle(fx, fy, r.cellSize, r.cellSize, rl.Red)
	rl.DrawRectangleLines(fx, fy, r.cellSize, r.cellSize, rl.Yellow)

	// Scores
	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), borderPadding, borderPadding, fontSize, rl.White)

	highLabel := fmt.Sprintf("High Score: %d", g.HighScore())
	rl.DrawText(highLabel, r.screenWidth-rl.MeasureText(highLabel, fontSize)-borderPadding, borderPadding, fontSize, rl.Yellow)

	// Session stats line
	if g.Stats.GamesPlayed() > 0 {
		statsLabel := fmt.Sprintf("Games: %d  Avg: %.1f  Best: %d",
			g.Stats.GamesPlayed(), g.Stats.AverageScore(), g.Stats.BestScore())
		rl.DrawText(statsLabel, borderPadding, r.screenHeight-fontSize-borderPadding, fontSize, rl.LightGray)
	}
}

func (r *Renderer) drawMenu() {
	titleSize := r.screenHeight / 10
	textSize := r.screenHeight / 25

	r.drawCentered("SNAKE", r.screenHeight/4, titleSize, rl.Green)
	r.drawCentered("Classic Arcade Game", r.screenHeight/4+titleSize+20, textSize, rl.Yellow)
	r.drawCentered("Press SPACE to Start", r.screenHeight*2/3, textSize, rl.White)
}

func (r *Renderer) drawGameOver(g *game.Game) {
	titleSize := r.screenHeight / 10
	textSize := r.screenHeight / 25

	// Dim the finished board underneath
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Fade(rl.Black, 0.8))

	r.drawCentered("GAME OVER", r.screenHeight/4, titleSize, rl.Red)
	r.drawCentered(fmt.Sprintf("Score: %d", g.Score()), r.screenHeight/4+titleSize+20, textSize, rl.Yellow)
	r.drawCentered("Press SPACE to Restart or Q to Quit", r.screenHeight*2/3, textSize, rl.White)
}

func (r *Renderer) drawCentered(text string, y, fontSize int32, color rl.Color) {
	x := (r.screenWidth - rl.MeasureText(text, fontSize)) / 2
	rl.DrawText(text, x, y, fontSize, color)
}
