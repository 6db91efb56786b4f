// Package snake implements the grid snake game: a snake moving on a wrapping
// board, growing when it eats and ending the round when it bites itself.
//
// The package is pure simulation. Time enters through Update and input through
// HandleAction; what happened comes back as Events. Rendering into a
// core.Screen is provided for character-cell hosts.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config holds the tunable parameters of a game.
type Config struct {
	BoardWidth     int
	BoardHeight    int
	CellSize       int
	BaseIntervalMS float64
	SpeedFactor    float64
	MinIntervalMS  float64
	// AvoidSnake keeps respawned food off the snake's body.
	AvoidSnake bool
	MusicOn    bool
}

// DefaultConfig returns the classic setup: a 56x30 board of 32px cells
// starting at 100ms per tick.
func DefaultConfig() Config {
	return Config{
		BoardWidth:     56,
		BoardHeight:    30,
		CellSize:       32,
		BaseIntervalMS: 100,
		SpeedFactor:    8,
		MinIntervalMS:  0,
		AvoidSnake:     false,
		MusicOn:        true,
	}
}

// Game is one snake session. It is not safe for concurrent use; hosts drive
// it from a single goroutine.
type Game struct {
	cfg   Config
	board Board
	seed  int64
	rng   *rand.Rand

	snake   *Snake
	food    Food
	state   State
	sched   *Scheduler
	musicOn bool
	ticks   uint64

	events []Event
}

// New creates a game. A zero seed picks one from the clock.
func New(cfg Config, seed int64) *Game {
	g := &Game{cfg: cfg}
	g.Reset(seed)
	return g
}

// Reset discards the current round and starts over with a new seed.
func (g *Game) Reset(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
	g.board = NewBoard(g.cfg.BoardWidth, g.cfg.BoardHeight, g.cfg.CellSize)
	g.sched = NewScheduler(g.cfg.BaseIntervalMS, g.cfg.SpeedFactor, g.cfg.MinIntervalMS)
	g.musicOn = g.cfg.MusicOn
	g.ticks = 0
	g.events = nil
	g.newRound()
}

func (g *Game) newRound() {
	g.snake = NewSnake(g.board, g.board.Start())
	g.food.Respawn(g.board, g.rng, g.foodAvoid())
	g.state = StateGameOn
}

func (g *Game) foodAvoid() *Snake {
	if g.cfg.AvoidSnake {
		return g.snake
	}
	return nil
}

// HandleAction applies one player action. Actions that mean nothing in the
// current state are ignored.
func (g *Game) HandleAction(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionQuit:
		g.emit(Event{Kind: EventQuit, Score: g.snake.Score()})
		return
	case core.ActionMute:
		g.musicOn = !g.musicOn
		g.emit(Event{Kind: EventMusicToggled, MusicOn: g.musicOn})
		return
	case core.ActionPause:
		if next, ok := Transition(g.state, TriggerPause); ok {
			g.state = next
			if next == StateGameOn {
				// Resume a full interval after the unpause, not at once.
				g.sched.Reset()
			}
		}
		return
	}

	switch g.state {
	case StateGameOn:
		if d, ok := DirectionFromAction(a); ok {
			g.snake.RequestTurn(d)
		}
	case StateGameOver:
		switch a {
		case core.ActionConfirm:
			g.state, _ = Transition(g.state, TriggerConfirm)
		case core.ActionDecline:
			g.state, _ = Transition(g.state, TriggerDecline)
			g.emit(Event{Kind: EventQuit, Score: g.snake.Score()})
		}
	}
}

// Update runs a simulation tick if one is due at now and returns the events
// produced since the previous call.
func (g *Game) Update(now time.Time) []Event {
	if g.sched.Poll(now, g.snake.Score()) {
		g.Tick()
	}
	return g.drain()
}

// Step applies every action in frame in order, then calls Update.
func (g *Game) Step(now time.Time, frame core.InputFrame) []Event {
	for _, a := range frame.Actions() {
		g.HandleAction(a)
	}
	return g.Update(now)
}

// Tick advances the simulation by exactly one tick regardless of the clock.
// Ticks while paused or after game over do nothing and are not counted.
// Events are queued until the next Update or Events call.
func (g *Game) Tick() {
	switch g.state {
	case StateGameOn:
		g.ticks++
		switch g.snake.Advance(g.food.Pos) {
		case AteFood:
			g.snake.AddScore(1)
			g.food.Respawn(g.board, g.rng, g.foodAvoid())
			g.emit(Event{Kind: EventFoodEaten, Score: g.snake.Score(), Length: g.snake.Len()})
		case AteSelf:
			g.state, _ = Transition(g.state, TriggerSelfCollision)
			// The head overlaps a body segment, so it is not counted.
			g.emit(Event{Kind: EventGameOver, Score: g.snake.Score(), Length: g.snake.Len() - 1})
		}
	case StateRestarting:
		g.ticks++
		g.newRound()
		g.emit(Event{Kind: EventRestarted})
	}
}

// Events returns and clears the pending events.
func (g *Game) Events() []Event {
	return g.drain()
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) drain() []Event {
	out := g.events
	g.events = nil
	return out
}

// State returns the current lifecycle state.
func (g *Game) State() State { return g.state }

// Snake returns the current snake.
func (g *Game) Snake() *Snake { return g.snake }

// Food returns the current food.
func (g *Game) Food() Food { return g.food }

// Board returns the board geometry.
func (g *Game) Board() Board { return g.board }

// Score returns the current score.
func (g *Game) Score() int { return g.snake.Score() }

// MusicOn reports whether background music should play.
func (g *Game) MusicOn() bool { return g.musicOn }

// Seed returns the seed the current game was started with.
func (g *Game) Seed() int64 { return g.seed }

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration { return g.sched.Interval(g.snake.Score()) }

// Config returns the configuration the game was created with.
func (g *Game) Config() Config { return g.cfg }
