package entity

import (
	"github.com/VRtech7066/VRD-4/game/types"
)

// Snake holds the body segments (head first), the committed heading and the
// heading requested for the next move. The two are kept separate so that two
// key presses inside one tick cannot turn the snake back onto itself.
type Snake struct {
	Body          []types.Point
	direction     types.Direction
	nextDirection types.Direction
	growPending   bool
}

func NewSnake(start types.Point) *Snake {
	return &Snake{
		Body:          []types.Point{start},
		direction:     types.Right,
		nextDirection: types.Right,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Heading returns the direction committed by the last Advance.
func (s *Snake) Heading() types.Direction {
	return s.direction
}

// SetDirection records the heading for the next Advance. A 180-degree turn
// onto the current heading is silently ignored.
func (s *Snake) SetDirection(d types.Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.nextDirection = d
}

// Advance moves the snake one cell: the requested heading is committed, the
// new head is prepended (wrapped on the grid torus), and unless a growth is
// pending the tail is dropped. Exactly one cell of structural change per call.
func (s *Snake) Advance(grid types.Grid) {
	s.direction = s.nextDirection
	newHead := grid.Wrap(s.Head().Add(s.direction))
	s.Body = append([]types.Point{newHead}, s.Body...)

	if s.growPending {
		s.growPending = false
	} else {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow marks the snake to keep its tail on the next Advance.
func (s *Snake) Grow() {
	s.growPending = true
}

// SelfCollision reports whether the head occupies the same cell as any other
// body segment.
func (s *Snake) SelfCollision() bool {
	head := s.Head()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}
