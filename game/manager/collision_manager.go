package manager

import (
	"wrap-snake/game/entity"
	"wrap-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Collision is the outcome of resolving one move.
type Collision int

const (
	NoCollision Collision = iota
	FoodCollision
	SelfCollision
)

func (c Collision) String() string {
	switch c {
	case FoodCollision:
		return "food"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Resolve classifies the snake's position after Advance. Food wins over a
// self-bite; the body has already dropped its tail when this runs.
func (cm *CollisionManager) Resolve(snake *entity.Snake, food types.Point) Collision {
	if cm.IsFoodCollision(snake.Head(), food) {
		return FoodCollision
	}
	if snake.HasSelfCollision() {
		return SelfCollision
	}
	return NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is free for the food item.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied map[types.Point]struct{}) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	_, taken := occupied[pos]
	return !taken
}

// countInBounds returns how many distinct board cells occupied covers.
func (cm *CollisionManager) countInBounds(occupied map[types.Point]struct{}) int {
	n := 0
	for p := range occupied {
		if cm.grid.Contains(p) {
			n++
		}
	}
	return n
}
