package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudRows   = 2 // status line and separator
	frameSize = 2 // one border cell on each side
)

// MinScreenSize returns the smallest screen that can show the whole board
// with its frame and status line.
func (b Board) MinScreenSize() (w, h int) {
	return int(b.Width) + frameSize, int(b.Height) + frameSize + hudRows
}

// Render draws the game into dst, one screen cell per board cell.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	renderHUD(dst, snap)

	minW, minH := g.board.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	frame := core.NewRect((dst.Width()-minW)/2, hudRows, minW, minH-hudRows)
	dst.DrawBox(frame, core.ColorGray)
	ox, oy := frame.X+1, frame.Y+1

	dst.SetColor(ox+int(snap.Food.X), oy+int(snap.Food.Y), '*', core.ColorBrightRed)

	// Tail first so the head wins when the food or a segment shares its cell.
	for i := len(snap.Cells) - 1; i >= 0; i-- {
		c := snap.Cells[i]
		if i == 0 {
			dst.SetColor(ox+int(c.X), oy+int(c.Y), 'O', core.ColorBrightGreen)
		} else {
			dst.SetColor(ox+int(c.X), oy+int(c.Y), 'o', core.ColorGreen)
		}
	}

	switch snap.State {
	case StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case StateGameOver:
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score %d. Try again? Y/N", snap.Score))
	}
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	music := "off"
	if snap.MusicOn {
		music = "on"
	}
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d  Speed: %s  Music: %s",
		snap.Score, snap.Length, snap.Interval.Round(100_000), music)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorYellow)
}
