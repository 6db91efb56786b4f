package snake

import "time"

// Snapshot captures the observable game state for rendering, determinism
// tests and logging.
type Snapshot struct {
	Tick      uint64     // simulation steps; paused and game-over ticks are not counted
	Cells     []Position // head first, tail last
	Head      Position
	Food      Position
	Score     int
	Length    int
	Direction Direction
	State     State
	Interval  time.Duration
	MusicOn   bool
	Board     Board
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.ticks,
		Cells:     g.snake.Segments(),
		Head:      g.snake.Head(),
		Food:      g.food.Pos,
		Score:     g.snake.Score(),
		Length:    g.snake.Len(),
		Direction: g.snake.Direction(),
		State:     g.state,
		Interval:  g.Interval(),
		MusicOn:   g.musicOn,
		Board:     g.board,
	}
}
