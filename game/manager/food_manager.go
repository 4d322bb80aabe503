package manager

import (
	"errors"
	"fmt"

	"wrap-snake/game/entity"
	"wrap-snake/game/types"
)

var (
	// ErrBoardFull is returned when every cell is occupied and no spot is
	// left for the food.
	ErrBoardFull = errors.New("no free cell for food")
	// ErrOutOfBounds is returned when a position lies outside the board.
	ErrOutOfBounds = errors.New("position out of bounds")
)

type FoodManager struct {
	grid         types.Grid
	food         entity.Food
	rng          entity.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng entity.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Relocate moves the food to a uniformly random cell outside occupied.
// The previous position is kept when the board has no free cell.
func (fm *FoodManager) Relocate(occupied map[types.Point]struct{}) error {
	if fm.collisionMgr.countInBounds(occupied) >= fm.grid.Area() {
		return fmt.Errorf("relocate on %dx%d board: %w", fm.grid.Width, fm.grid.Height, ErrBoardFull)
	}

	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			fm.food.Position = food
			return nil
		}
	}
}

// Place puts the food on p directly.
func (fm *FoodManager) Place(p types.Point) error {
	if !fm.grid.Contains(p) {
		return fmt.Errorf("place food at %v: %w", p, ErrOutOfBounds)
	}
	fm.food.Position = p
	return nil
}

func (fm *FoodManager) Position() types.Point {
	return fm.food.Position
}

func (fm *FoodManager) Food() entity.Food {
	return fm.food
}
