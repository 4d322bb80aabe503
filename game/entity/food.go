package entity

import "wrap-snake/game/types"

// Food is the single consumable on the board.
type Food struct {
	Position types.Point
}
