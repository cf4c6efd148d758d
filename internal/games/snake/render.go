package snake

import (
	"fmt"

	"github.com/vovakirdan/snaky/internal/core"
	"github.com/vovakirdan/snaky/internal/engine"
)

// Glyphs drawn for each cell state.
const (
	runeEmpty    = ' '
	runeFood     = '*'
	runeBody     = 'o'
	runeHead     = 'O'
	runeDeadBody = 'x'
	runeDeadHead = 'X'
)

// cellLook maps a cell state to its glyph and color.
func cellLook(state engine.CellState) (rune, core.Color) {
	switch state {
	case engine.CellFood:
		return runeFood, core.ColorBrightRed
	case engine.CellSnake:
		return runeBody, core.ColorGreen
	case engine.CellEmpty:
		return runeEmpty, core.ColorDefault
	default:
		return '#', core.ColorGray
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(core.NewRect(g.offsetX-1, g.offsetY-1, g.boardW+2, g.boardH+2), core.ColorGray)
	g.renderBoard(dst)
	g.renderSnake(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case !g.started:
		g.renderOverlay(dst, "Snake", "Press an arrow key to start")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	size := 0
	if g.player != nil {
		size = g.player.Size()
	}
	speed := g.cfg.Speed.MoveEveryTicks - g.moveEveryTicks + 1
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  Speed: %d", g.score, size, speed)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDimGray)
}

// renderBoard maps every engine cell to a glyph.
func (g *Game) renderBoard(dst *core.Screen) {
	for y := 0; y < g.boardH; y++ {
		for x := 0; x < g.boardW; x++ {
			r, c := cellLook(g.engine.Cell(x, y))
			dst.SetColored(g.offsetX+x, g.offsetY+y, r, c)
		}
	}
}

// renderSnake highlights the player's head, or its remains after death.
// Dead cells are already released on the grid, so they come from deadBody.
func (g *Game) renderSnake(dst *core.Screen) {
	if g.player == nil {
		return
	}
	if g.player.Alive() {
		h := g.player.Head()
		dst.SetColored(g.offsetX+h.X, g.offsetY+h.Y, runeHead, core.ColorBrightGreen)
		return
	}
	for _, p := range g.deadBody {
		dst.SetColored(g.offsetX+p.X, g.offsetY+p.Y, runeDeadBody, core.ColorRed)
	}
	// The head that hit something may lie on the border or on another cell
	h := g.player.Head()
	dst.SetColored(g.offsetX+h.X, g.offsetY+h.Y, runeDeadHead, core.ColorBrightRed)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)

	dst.DrawBox(box, core.ColorYellow)
	dst.DrawRect(box.Inset(1), ' ')
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
}
