package entity

import (
	"wrap-snake/game/types"
)

// Rand is the subset of a random source the entities need.
// *golang.org/x/exp/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Snake struct {
	Body         []types.Point // head first
	Direction    types.Direction
	Pending      types.Direction // None when no turn was requested
	TargetLength int
	Vacated      *types.Point // tail dropped by the last Advance
	Start        types.Point
}

func NewSnake(start types.Point) *Snake {
	return &Snake{
		Body:         []types.Point{start},
		Direction:    types.Right, // Start moving right
		Pending:      types.None,
		TargetLength: 1,
		Start:        start,
	}
}

// SetPendingDirection queues d for the next Advance. A request to reverse
// into the current direction of travel is dropped.
func (s *Snake) SetPendingDirection(d types.Direction) bool {
	if !d.Valid() || d == s.Direction.Opposite() {
		return false
	}
	s.Pending = d
	return true
}

// Advance moves the head one cell along the (possibly updated) direction and
// drops the tail unless the snake is still growing towards TargetLength.
func (s *Snake) Advance(grid types.Grid) {
	if s.Pending != types.None {
		s.Direction = s.Pending
		s.Pending = types.None
	}

	newHead := grid.WrapAdd(s.Head(), s.Direction)
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	s.Vacated = nil
	if len(s.Body) > s.TargetLength {
		tail := s.Body[len(s.Body)-1]
		s.Body = s.Body[:len(s.Body)-1]
		s.Vacated = &tail
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// HasSelfCollision reports whether the head shares a cell with any other
// segment.
func (s *Snake) HasSelfCollision() bool {
	head := s.Head()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

func (s *Snake) Grow() {
	s.TargetLength++
}

// Reset puts the snake back on its start cell with length 1 and a random
// heading.
func (s *Snake) Reset(rng Rand) {
	s.TargetLength = 1
	s.Body = []types.Point{s.Start}
	s.Pending = types.None
	s.Vacated = nil
	s.Direction = types.Directions[rng.Intn(len(types.Directions))]
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() map[types.Point]struct{} {
	occupied := make(map[types.Point]struct{}, len(s.Body))
	for _, p := range s.Body {
		occupied[p] = struct{}{}
	}
	return occupied
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
