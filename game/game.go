package game

import (
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/VRtech7066/VRD-4/game/entity"
	"github.com/VRtech7066/VRD-4/game/types"
)

// FoodScore is the number of points awarded per food eaten.
const FoodScore = 10

// State is the current screen of the game.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	default:
		return "game over"
	}
}

// Command is a discrete input event delivered by the input source.
type Command int

const (
	CommandUp Command = iota
	CommandDown
	CommandLeft
	CommandRight
	CommandStart
	// CommandQuit is the quit key; it only takes effect on the game-over
	// screen. CommandClose is the window being closed and always terminates.
	CommandQuit
	CommandClose
)

// InputSource delivers the commands that occurred since the previous frame.
type InputSource interface {
	Poll() []Command
}

// Renderer draws the current game state. The core never looks at the result.
type Renderer interface {
	Draw(*Game)
}

// Game owns the state machine, the entities and the scores. All mutation
// happens on the loop goroutine; there is no locking.
type Game struct {
	Grid  types.Grid
	Stats *SessionStats

	snake      *entity.Snake
	food       *entity.Food
	state      State
	score      int
	highScore  int
	rng        *rand.Rand
	running    bool
	tickEvery  time.Duration
	roundStart time.Time
}

func NewGame(grid types.Grid, tickEvery time.Duration, rng *rand.Rand) *Game {
	g := &Game{
		Grid:      grid,
		Stats:     NewSessionStats(),
		state:     StateMenu,
		rng:       rng,
		running:   true,
		tickEvery: tickEvery,
	}
	g.snake = entity.NewSnake(grid.Center())
	g.food = entity.NewFood(grid, rng)
	return g
}

func (g *Game) State() State { return g.state }

func (g *Game) Score() int { return g.score }

func (g *Game) HighScore() int { return g.highScore }

func (g *Game) Snake() *entity.Snake { return g.snake }

func (g *Game) Food() *entity.Food { return g.food }

func (g *Game) Running() bool { return g.running }

func (g *Game) TickEvery() time.Duration { return g.tickEvery }

// HandleCommand applies one input event to the state machine. Closing the
// window terminates from every state; the other commands depend on the
// current screen.
func (g *Game) HandleCommand(cmd Command) {
	if cmd == CommandClose {
		g.running = false
		return
	}

	switch g.state {
	case StateMenu:
		if cmd == CommandStart {
			g.startRound()
		}
	case StateGameOver:
		switch cmd {
		case CommandStart:
			g.startRound()
		case CommandQuit:
			g.running = false
		}
	case StatePlaying:
		switch cmd {
		case CommandUp:
			g.snake.SetDirection(types.Up)
		case CommandDown:
			g.snake.SetDirection(types.Down)
		case CommandLeft:
			g.snake.SetDirection(types.Left)
		case CommandRight:
			g.snake.SetDirection(types.Right)
		}
	}
}

// startRound resets snake, food and score and enters StatePlaying.
func (g *Game) startRound() {
	g.snake = entity.NewSnake(g.Grid.Center())
	g.food = entity.NewFood(g.Grid, g.rng)
	g.score = 0
	g.roundStart = time.Now()
	g.state = StatePlaying

	log.WithFields(log.Fields{
		"session": g.Stats.UUID,
		"round":   g.Stats.GamesPlayed() + 1,
	}).Info("round started")
}

// Tick runs one update step. Outside StatePlaying it is a no-op.
//
// The food check runs before the collision check, so a snake growing into its
// own tail still banks the points for the food it just ate.
func (g *Game) Tick() {
	if g.state != StatePlaying {
		return
	}

	g.snake.Advance(g.Grid)

	if g.snake.Head() == g.food.Pos {
		g.snake.Grow()
		g.food.Respawn(g.Grid, g.rng)
		g.score += FoodScore
	}

	if g.snake.SelfCollision() {
		g.endRound()
	}
}

func (g *Game) endRound() {
	now := time.Now()
	if g.score > g.highScore {
		g.highScore = g.score
		log.WithFields(log.Fields{
			"session":   g.Stats.UUID,
			"highScore": g.highScore,
		}).Info("new high score")
	}

	g.Stats.AddRound(RoundRecord{
		Score:     g.score,
		Length:    g.snake.Len(),
		StartTime: g.roundStart,
		EndTime:   now,
	})
	g.state = StateGameOver

	log.WithFields(log.Fields{
		"session":  g.Stats.UUID,
		"score":    g.score,
		"length":   g.snake.Len(),
		"duration": now.Sub(g.roundStart).Seconds(),
	}).Info("game over")
}

// Run drives the cooperative loop: poll input, advance the game at the fixed
// tick rate, draw every frame. Frame pacing is left to the renderer. Returns
// once a quit command has been handled.
func (g *Game) Run(in InputSource, r Renderer) {
	lastUpdate := time.Now()

	for g.running {
		for _, cmd := range in.Poll() {
			g.HandleCommand(cmd)
		}

		if time.Since(lastUpdate) >= g.tickEvery {
			g.Tick()
			lastUpdate = time.Now()
		}

		r.Draw(g)
	}
}
