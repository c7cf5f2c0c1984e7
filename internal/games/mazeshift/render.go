package mazeshift

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mazeshift/internal/core"
)

// blinkMs is the half-period of the shift warning blink.
const blinkMs = 100

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	if g.tooSmall {
		w, h := g.requiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.renderHUD(dst)
	board := g.boardRect(dst)
	dst.DrawBox(board, g.borderColor())
	g.renderWalls(dst, board)
	g.renderItems(dst, board)
	g.renderSnake(dst, board)
	g.renderStatus(dst, board.Bottom())

	switch {
	case g.state.GameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %.0f  (%s)  R to restart", g.state.Score, g.state.DeathCause))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardRect returns the bordered board area, centered horizontally under the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	grid := g.engine.cfg.Grid
	w := grid.Size*grid.CellSize + 2
	return core.NewRect((dst.Width()-w)/2, 1, w, grid.Size+2)
}

// cellOrigin returns the screen column and row of a grid cell.
func (g *Game) cellOrigin(board core.Rect, p core.Point) (int, int) {
	return board.X + 1 + p.X*g.engine.cfg.Grid.CellSize, board.Y + 1 + p.Y
}

// fillCell paints every column of a grid cell.
func (g *Game) fillCell(dst *core.Screen, board core.Rect, p core.Point, r rune, c core.Color) {
	x, y := g.cellOrigin(board, p)
	for i := 0; i < g.engine.cfg.Grid.CellSize; i++ {
		dst.SetWithColor(x+i, y, r, c)
	}
}

// blinkOn reports whether the warning cue is lit this frame.
func (g *Game) blinkOn() bool {
	return g.state.ShiftWarning() && (g.state.ShiftWarningMs/blinkMs)%2 == 0
}

func (g *Game) borderColor() core.Color {
	if g.blinkOn() {
		return core.ColorYellow
	}
	return core.ColorGray
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.state
	hud := fmt.Sprintf(" %s  Score: %.0f  Length: %d  x%.1f  Time: %s",
		g.Title(), s.Score, s.Length(), s.FlowMultiplier, formatMs(s.ElapsedMs))
	dst.DrawText(0, 0, hud)
}

func (g *Game) renderWalls(dst *core.Screen, board core.Rect) {
	color := core.ColorGray
	glyph := '█'
	if g.blinkOn() {
		color = core.ColorYellow
		glyph = '▓'
	}
	for _, p := range g.state.Terrain.Walls() {
		g.fillCell(dst, board, p, glyph, color)
	}
}

func (g *Game) renderItems(dst *core.Screen, board core.Rect) {
	for _, it := range g.state.Items {
		t := it.Kind.traits()
		glyph := t.glyph
		if it.Kind.Mobile() {
			glyph = facingGlyph(it.Facing)
		}
		x, y := g.cellOrigin(board, it.Pos)
		dst.SetWithColor(x, y, glyph, t.color)
	}
}

func facingGlyph(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return '^'
	case core.DirDown:
		return 'v'
	case core.DirLeft:
		return '<'
	default:
		return '>'
	}
}

func (g *Game) renderSnake(dst *core.Screen, board core.Rect) {
	body := core.ColorGreen
	head := core.ColorBrightGreen
	if g.state.PhaseWindowMoves > 0 {
		body, head = core.ColorMagenta, core.ColorBrightMagenta
	}
	if g.state.GameOver {
		head = core.ColorBrightRed
	}
	for i := len(g.state.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			g.fillCell(dst, board, g.state.Snake[i], '█', head)
		} else {
			g.fillCell(dst, board, g.state.Snake[i], '▒', body)
		}
	}
}

// renderStatus draws charges and timers below the board.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	s := g.state
	cfg := g.engine.cfg
	var parts []string
	parts = append(parts, "Phase "+gauge(s.PhaseCharges, cfg.Phase.MaxCharges, '◆', '◇'))
	parts = append(parts, "Burst "+gauge(s.BurstCharges, cfg.Burst.MaxCharges, '✦', '·'))
	if s.PhaseWindowMoves > 0 {
		parts = append(parts, fmt.Sprintf("Ghost %d", s.PhaseWindowMoves))
	}
	if s.SlowTimerMs > 0 {
		parts = append(parts, "Slow "+formatSeconds(s.SlowTimerMs))
	}
	if s.FlowTimerMs > 0 {
		parts = append(parts, "Flow "+formatSeconds(s.FlowTimerMs))
	}
	if s.ShiftWarning() {
		parts = append(parts, fmt.Sprintf("SHIFT %s %s!", shiftArrow(s.PendingShift), formatSeconds(s.ShiftWarningMs)))
	} else {
		parts = append(parts, "Shift "+formatSeconds(s.ShiftTimerMs))
	}

	line := " " + strings.Join(parts, "  ")
	color := core.ColorDefault
	if s.ShiftWarning() {
		color = core.ColorBrightYellow
	}
	dst.DrawTextColor(0, y, line, color)
}

func gauge(n, capacity int, full, empty rune) string {
	var b strings.Builder
	for i := 0; i < capacity; i++ {
		if i < n {
			b.WriteRune(full)
		} else {
			b.WriteRune(empty)
		}
	}
	return b.String()
}

func shiftArrow(d ShiftDirection) string {
	switch d {
	case ShiftLeft:
		return "←"
	case ShiftRight:
		return "→"
	case ShiftUp:
		return "↑"
	case ShiftDown:
		return "↓"
	default:
		return "?"
	}
}

func formatSeconds(ms int) string {
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}

func formatMs(ms int) string {
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawHLine(box.X+1, box.Y+2, boxW-2, '─')
	dst.DrawTextCentered(box.Y+3, line2)
}
