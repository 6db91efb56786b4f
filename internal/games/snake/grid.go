package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Position is a cell coordinate on the board.
// Moves through Board keep it within [0, Width) x [0, Height).
type Position struct {
	X, Y int16
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Board describes the playing field: its size in cells and the pixel size of
// one cell. The board wraps on every edge.
type Board struct {
	Width    int16
	Height   int16
	CellSize int
}

// NewBoard creates a board of the given dimensions.
func NewBoard(width, height, cellSize int) Board {
	return Board{
		Width:    int16(width),
		Height:   int16(height),
		CellSize: cellSize,
	}
}

// Move returns the position one cell away from pos in direction d,
// re-entering from the opposite edge when it would leave the board.
func (b Board) Move(pos Position, d Direction) Position {
	dx, dy := d.Delta()
	return Position{
		X: core.Wrap(pos.X+dx, b.Width),
		Y: core.Wrap(pos.Y+dy, b.Height),
	}
}

// CellToPixel returns the pixel rectangle covered by the cell at pos.
func (b Board) CellToPixel(pos Position) core.Rect {
	return core.NewRect(
		int(pos.X)*b.CellSize,
		int(pos.Y)*b.CellSize,
		b.CellSize,
		b.CellSize,
	)
}

// PixelSize returns the board size in pixels.
func (b Board) PixelSize() (w, h int) {
	return int(b.Width) * b.CellSize, int(b.Height) * b.CellSize
}

// Contains reports whether pos lies on the board.
func (b Board) Contains(pos Position) bool {
	return core.NewRect(0, 0, int(b.Width), int(b.Height)).Contains(int(pos.X), int(pos.Y))
}

// Start returns the spawn cell for a new snake: a quarter of the way across
// and half way down, which leaves room ahead since snakes start facing right.
func (b Board) Start() Position {
	return Position{X: b.Width / 4, Y: b.Height / 2}
}

// RandomPosition returns a uniformly random cell on the board.
func (b Board) RandomPosition(rng *rand.Rand) Position {
	return Position{
		X: int16(rng.Intn(int(b.Width))),
		Y: int16(rng.Intn(int(b.Height))),
	}
}

// Cells returns the number of cells on the board.
func (b Board) Cells() int {
	return int(b.Width) * int(b.Height)
}

// DefaultBoard returns the classic 56x30 board with 32px cells.
func DefaultBoard() Board {
	return NewBoard(56, 30, 32)
}
