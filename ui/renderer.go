package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"wrap-snake/game"
	"wrap-snake/game/manager"
	"wrap-snake/game/types"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 30 // status line under the board
	graphHeight   = 80 // recent-rounds bar graph
	maxScores     = 50 // rounds shown in the graph
)

var (
	snakeColor  = rl.Color{R: 0, G: 228, B: 48, A: 255}
	headColor   = rl.Color{R: 0, G: 255, B: 62, A: 255}
	borderColor = rl.Color{R: 93, G: 216, B: 228, A: 255}
)

// Renderer draws a full frame each call. raylib is immediate mode, so the
// incremental hints in game.StepResult are not needed here.
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

// WindowSize returns the window size that fits a board of the given cell
// size with the HUD and graph underneath.
func WindowSize(grid types.Grid, cellSize int) (int32, int32) {
	w := int32(grid.Width*cellSize) + borderPadding*2
	h := int32(grid.Height*cellSize) + borderPadding*4 + hudHeight + graphHeight
	return w, h
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 4) - hudHeight - graphHeight

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = max(min(cellW, cellH), 1)

	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)

	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = borderPadding
}

func (r *Renderer) Draw(snap game.Snapshot, history []manager.RoundRecord) {
	r.UpdateDimensions()
	r.layout(snap.Grid)

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	// Draw grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Black)

	// Draw food
	r.drawCell(snap.Food, rl.Red)

	// Draw snake body, tail first so the head ends on top
	for j := len(snap.Segments) - 1; j > 0; j-- {
		r.drawCell(snap.Segments[j], snakeColor)
	}
	if len(snap.Segments) > 0 {
		r.drawCell(snap.Segments[0], headColor)
		r.drawHeadIndicator(snap.Segments[0], snap.Direction)
	}

	r.drawHUD(snap)
	r.drawStatsGraph(history)
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	x := r.offsetX + int32(p.X)*r.cellSize
	y := r.offsetY + int32(p.Y)*r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, borderColor)
}

func (r *Renderer) drawHeadIndicator(p types.Point, dir types.Direction) {
	headX := float32(r.offsetX + int32(p.X)*r.cellSize)
	headY := float32(r.offsetY + int32(p.Y)*r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2

	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawHUD(snap game.Snapshot) {
	fontSize := int32(20)
	y := r.offsetY + r.totalGridHeight + borderPadding
	rl.DrawText(snap.Status(), borderPadding, y, fontSize, rl.White)
	if snap.Filled {
		msg := "Board full! Press R to restart"
		w := rl.MeasureText(msg, fontSize)
		rl.DrawText(msg, (r.screenWidth-w)/2, r.offsetY+r.totalGridHeight/2, fontSize, rl.Yellow)
	}
}

// drawStatsGraph shows the length reached in the most recent rounds.
func (r *Renderer) drawStatsGraph(history []manager.RoundRecord) {
	graphWidth := r.screenWidth - (borderPadding * 2)
	graphY := r.screenHeight - graphHeight - borderPadding

	rl.DrawRectangle(borderPadding, graphY, graphWidth, graphHeight, rl.DarkGray)
	if len(history) == 0 {
		return
	}
	if len(history) > maxScores {
		history = history[len(history)-maxScores:]
	}

	maxScore := 1
	for _, rec := range history {
		maxScore = max(maxScore, rec.Score)
	}

	const (
		barWidth = int32(6)
		barAlpha = uint8(180)
	)
	scaleY := float32(graphHeight-10) / float32(maxScore)
	spacing := graphWidth / int32(maxScores)

	for i, rec := range history {
		h := int32(float32(rec.Score) * scaleY)
		x := borderPadding + int32(i)*spacing + (spacing-barWidth)/2
		rl.DrawRectangle(x, graphY+graphHeight-h, barWidth, h, rl.Color{R: 0, G: barAlpha, B: 0, A: barAlpha})
	}
}

// RaylibDirection maps a raylib key code to a direction, or types.None.
func RaylibDirection(key int32) types.Direction {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return types.Up
	case rl.KeyRight, rl.KeyD:
		return types.Right
	case rl.KeyDown, rl.KeyS:
		return types.Down
	case rl.KeyLeft, rl.KeyA:
		return types.Left
	default:
		return types.None
	}
}

var raylibDirectionKeys = []int32{
	rl.KeyUp, rl.KeyRight, rl.KeyDown, rl.KeyLeft,
	rl.KeyW, rl.KeyD, rl.KeyS, rl.KeyA,
}

// PollRaylibDirection returns the directions whose keys were pressed since
// the last frame, in key-table order.
func PollRaylibDirection() []types.Direction {
	var dirs []types.Direction
	for _, key := range raylibDirectionKeys {
		if rl.IsKeyPressed(key) {
			dirs = append(dirs, RaylibDirection(key))
		}
	}
	return dirs
}
