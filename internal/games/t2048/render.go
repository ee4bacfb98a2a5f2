package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// tileColor picks a color by tile magnitude.
func tileColor(value int) core.Color {
	switch {
	case value <= 2:
		return core.ColorWhite
	case value <= 4:
		return core.ColorBrightWhite
	case value <= 8:
		return core.ColorYellow
	case value <= 16:
		return core.ColorOrange
	case value <= 32:
		return core.ColorRed
	case value <= 64:
		return core.ColorBrightRed
	case value <= 256:
		return core.ColorBrightYellow
	case value <= 1024:
		return core.ColorBrightGreen
	case value <= 2048:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightCyan
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.session == nil {
		g.renderTooSmall(dst)
		return
	}

	size := g.session.Grid().Size()
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))

	dst.DrawTextCentered(boardY+boardH+1, g.Controls())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score, best score and target.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.session.CurrentScore()))

	best := fmt.Sprintf("Best: %d", g.session.HighScore())
	bestX := max(boardX+boardW-len(best), boardX)
	dst.DrawText(bestX, 1, best)

	var info string
	if target := g.session.Rules().Target; target > 0 {
		info = fmt.Sprintf("Target: %d", target)
	} else {
		info = fmt.Sprintf("Max: %d", g.session.Grid().MaxTile())
	}
	if g.last.ScoreGained > 0 {
		info += fmt.Sprintf("  +%d", g.last.ScoreGained)
	}
	dst.DrawText(boardX+(boardW-len(info))/2, 2, info)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	grid := g.session.Grid()
	size := grid.Size()

	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	for _, t := range grid.Tiles() {
		cellX := boardX + t.Col*cellWidth + 1
		cellY := boardY + t.Row*cellHeight + 1

		valStr := strconv.Itoa(t.Value)
		padLeft := max((cellWidth-1-len(valStr))/2, 0)
		dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(t.Value))
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.session.IsGameOver():
		maxStr := fmt.Sprintf("Max tile: %d", g.session.Grid().MaxTile())
		g.drawOverlay(dst, board, "GAME OVER", maxStr, "Press R to restart")
	case g.showWin:
		targetStr := fmt.Sprintf("%d reached!", g.session.Rules().Target)
		g.drawOverlay(dst, board, "YOU WIN!", targetStr, "Move to keep going")
	}
}

// drawOverlay draws a text box centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.CenteredIn(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
