package types

import "fmt"

// Defaults taken from the classic 640x480 board with 20px cells.
const (
	DefaultCellSize = 20
	DefaultWidth    = 640 / DefaultCellSize // 32 cells
	DefaultHeight   = 480 / DefaultCellSize // 24 cells
	DefaultSpeed    = 20                    // ticks per second
)

// Point is a cell position on the grid
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the middle cell, used as the default start position.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// WrapAdd moves p one cell in direction d, reappearing on the opposite edge
// when it leaves the board.
func (g Grid) WrapAdd(p Point, d Direction) Point {
	return WrapAdd(p, d, g.Width, g.Height)
}

// WrapAdd is the raw-dimension form of Grid.WrapAdd.
func WrapAdd(p Point, d Direction, width, height int) Point {
	delta := d.ToPoint()
	return Point{
		X: wrap(p.X+delta.X, width),
		Y: wrap(p.Y+delta.Y, height),
	}
}

// wrap keeps v in [0,n); Go's % keeps the sign of the dividend.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
