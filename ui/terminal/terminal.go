// Package terminal draws the board on a tcell screen. Ordinary steps touch
// only the cells that changed; a collision repaints everything.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"wrap-snake/game"
	"wrap-snake/game/types"
)

// Screen is the part of tcell.Screen the renderer uses.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
	Size() (int, int)
}

const cellWidth = 2 // terminal columns per board cell

var (
	styleEmpty  = tcell.StyleDefault
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

type Renderer struct {
	screen Screen
	grid   types.Grid
}

func NewRenderer(screen Screen, grid types.Grid) *Renderer {
	return &Renderer{screen: screen, grid: grid}
}

// DrawFull clears the screen and paints the whole board.
func (r *Renderer) DrawFull(snap game.Snapshot) {
	r.screen.Clear()
	r.drawBorder()

	r.drawCell(snap.Food, '●', styleFood)
	for i := len(snap.Segments) - 1; i > 0; i-- {
		r.drawCell(snap.Segments[i], '█', styleBody)
	}
	if len(snap.Segments) > 0 {
		r.drawCell(snap.Segments[0], '█', styleHead)
	}

	r.drawStatus(snap)
	r.screen.Show()
}

// Apply redraws after one step. snap must be taken after the step.
func (r *Renderer) Apply(res game.StepResult, snap game.Snapshot) {
	if res.ClearBoard {
		r.DrawFull(snap)
		return
	}

	if res.Vacated != nil && *res.Vacated != res.Head {
		r.drawCell(*res.Vacated, ' ', styleEmpty)
	}
	// the old head is now a body segment
	if len(snap.Segments) > 1 {
		r.drawCell(snap.Segments[1], '█', styleBody)
	}
	r.drawCell(res.Head, '█', styleHead)
	r.drawCell(res.Food, '●', styleFood)

	r.drawStatus(snap)
	r.screen.Show()
}

// Message writes a line under the status line.
func (r *Renderer) Message(text string) {
	r.drawText(0, r.grid.Height+3, text, styleStatus)
	r.screen.Show()
}

func (r *Renderer) drawCell(p types.Point, ch rune, style tcell.Style) {
	x, y := screenPos(p)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// screenPos maps a board cell to its leftmost terminal column and row,
// inside the border.
func screenPos(p types.Point) (int, int) {
	return 1 + p.X*cellWidth, 1 + p.Y
}

func (r *Renderer) drawBorder() {
	right := 1 + r.grid.Width*cellWidth
	bottom := 1 + r.grid.Height
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, styleBorder)
		r.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(0, 0, '┌', nil, styleBorder)
	r.screen.SetContent(right, 0, '┐', nil, styleBorder)
	r.screen.SetContent(0, bottom, '└', nil, styleBorder)
	r.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r *Renderer) drawStatus(snap game.Snapshot) {
	y := r.grid.Height + 2
	width, _ := r.screen.Size()
	line := snap.Status()
	r.drawText(0, y, line, styleStatus)
	// blank out leftovers from a longer previous line
	for x := len([]rune(line)); x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, styleEmpty)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Fits reports whether the board and status lines fit on the screen.
func (r *Renderer) Fits() bool {
	w, h := r.screen.Size()
	return w >= r.grid.Width*cellWidth+2 && h >= r.grid.Height+4
}

// Action is what a key press asks the host to do.
type Action int

const (
	ActionNone Action = iota
	ActionTurn
	ActionRestart
	ActionQuit
)

// Key maps a tcell key event (its key code and rune) to an action. Arrows,
// WASD and hjkl steer.
func Key(key tcell.Key, ch rune) (Action, types.Direction) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, types.None
	case tcell.KeyUp:
		return ActionTurn, types.Up
	case tcell.KeyRight:
		return ActionTurn, types.Right
	case tcell.KeyDown:
		return ActionTurn, types.Down
	case tcell.KeyLeft:
		return ActionTurn, types.Left
	case tcell.KeyRune:
		switch ch {
		case 'w', 'k':
			return ActionTurn, types.Up
		case 'd', 'l':
			return ActionTurn, types.Right
		case 's', 'j':
			return ActionTurn, types.Down
		case 'a', 'h':
			return ActionTurn, types.Left
		case 'r':
			return ActionRestart, types.None
		case 'q':
			return ActionQuit, types.None
		}
	}
	return ActionNone, types.None
}
