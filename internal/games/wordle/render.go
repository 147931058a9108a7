package wordle

import (
	"fmt"

	"github.com/vovakirdan/melodle/internal/core"
)

const (
	minScreenW = 36
	minScreenH = 20

	cellWidth = 4 // "[A]" plus a gap
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

func statusColor(s Status) core.Color {
	switch s {
	case StatusCorrect:
		return core.ColorGreen
	case StatusPresent:
		return core.ColorYellow
	case StatusAbsent:
		return core.ColorDarkGray
	default:
		return core.ColorWhite
	}
}

func keyColor(s Status) core.Color {
	switch s {
	case StatusCorrect:
		return core.ColorBrightGreen
	case StatusPresent:
		return core.ColorBrightYellow
	case StatusAbsent:
		return core.ColorDarkGray
	default:
		return core.ColorWhite
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(g.screenH/2, "Window too small")
		dst.DrawTextCentered(g.screenH/2+1, "Please resize terminal")
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst, 3)
	g.renderKeyboard(dst, 3+MaxRows+1)

	msgY := 3 + MaxRows + 1 + len(keyboardRows) + 1
	if g.feedback.text != "" {
		dst.DrawTextCenteredColored(msgY, g.feedback.text, g.feedback.color)
	}
	if !g.state.Playing() {
		dst.DrawTextCenteredColored(msgY+1, "Ctrl+R for a new word", core.ColorGray)
	}
	if g.notice.text != "" {
		dst.DrawTextCenteredColored(msgY+2, g.notice.text, g.notice.color)
	}

	help := "Enter submit  Bksp erase  Esc menu"
	if g.isOperator() {
		help = "Ctrl+N set word  Ctrl+X release  " + help
	}
	dst.DrawTextCenteredColored(g.screenH-1, help, core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, "W O R D L E", core.ColorBrightCyan)

	info := fmt.Sprintf("Row %d/%d", min(g.state.CurrentRow+1, MaxRows), MaxRows)
	dst.DrawText(1, 1, info)

	pot := "Pot: --"
	if g.hasPot {
		pot = fmt.Sprintf("Pot: %d", g.pot)
	}
	dst.DrawText(g.screenW-len(pot)-1, 1, pot)

	if g.pinned != "" {
		dst.DrawTextCenteredColored(1, "operator word", core.ColorMagenta)
	}
}

func (g *Game) renderGrid(dst *core.Screen, top int) {
	left := (g.screenW - WordLength*cellWidth) / 2
	for y, row := range g.state.DisplayRows() {
		for x, l := range row {
			ch := '·'
			if l.Letter != 0 {
				ch = l.Letter
			}
			c := statusColor(l.Status)
			px := left + x*cellWidth
			dst.SetCell(px, top+y, core.Cell{Rune: '[', Color: c})
			dst.SetCell(px+1, top+y, core.Cell{Rune: ch, Color: c})
			dst.SetCell(px+2, top+y, core.Cell{Rune: ']', Color: c})
		}
	}
}

func (g *Game) renderKeyboard(dst *core.Screen, top int) {
	for i, keys := range keyboardRows {
		width := len(keys)*2 - 1
		left := (g.screenW - width) / 2
		for j, k := range keys {
			dst.SetCell(left+j*2, top+i, core.Cell{Rune: k, Color: keyColor(g.state.KeyStatus(k))})
		}
	}
}
