package main

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/VRtech7066/VRD-4/game"
	"github.com/VRtech7066/VRD-4/game/types"
	"github.com/VRtech7066/VRD-4/ui"
)

var (
	speed      int
	gridWidth  int
	gridHeight int
	cellSize   int
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "snake is a classic single-screen arcade snake game",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %v", logLevel, err)
		}
		log.SetLevel(level)

		if gridWidth < 2 || gridHeight < 2 {
			return fmt.Errorf("grid must be at least 2x2, got %dx%d", gridWidth, gridHeight)
		}
		if speed < 1 {
			return fmt.Errorf("speed must be at least 1ms, got %d", speed)
		}
		if cellSize < 1 {
			return fmt.Errorf("cell size must be at least 1px, got %d", cellSize)
		}

		run()
		return nil
	},
	SilenceUsage: true,
}

func run() {
	rl.InitWindow(int32(gridWidth*cellSize), int32(gridHeight*cellSize), "Snake - Classic Arcade")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	grid := types.Grid{Width: gridWidth, Height: gridHeight}
	g := game.NewGame(grid, time.Duration(speed)*time.Millisecond, rng)

	log.WithFields(log.Fields{
		"session": g.Stats.UUID,
		"grid":    fmt.Sprintf("%dx%d", grid.Width, grid.Height),
		"tick":    g.TickEvery(),
	}).Info("session started")

	g.Run(ui.NewInput(), ui.NewRenderer())

	log.WithFields(g.Stats.Fields()).Info("session ended")
}

func main() {
	rootCmd.Flags().IntVar(&speed, "speed", 100, "milliseconds per game tick (lower = faster)")
	rootCmd.Flags().IntVar(&gridWidth, "width", 40, "grid width in cells")
	rootCmd.Flags().IntVar(&gridHeight, "height", 30, "grid height in cells")
	rootCmd.Flags().IntVar(&cellSize, "cell-size", 20, "initial cell size in pixels")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
