package types

import (
	"golang.org/x/exp/rand"
)

// Point is a cell coordinate on the game grid.
type Point struct {
	X, Y int
}

// Add returns the point one step away from p in direction d, without wrapping.
func (p Point) Add(d Direction) Point {
	delta := d.Delta()
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Direction is a cardinal movement direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta converts a Direction into a unit displacement vector.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse of d: Up<->Down, Left<->Right.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Wrap maps p back onto the grid, re-entering from the opposite edge when a
// coordinate has stepped past a border. Correct for negative coordinates.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// RandomPoint returns a uniformly random cell in [0, Width) x [0, Height).
func (g Grid) RandomPoint(rng *rand.Rand) Point {
	return Point{
		X: rng.Intn(g.Width),
		Y: rng.Intn(g.Height),
	}
}
