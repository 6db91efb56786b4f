package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options configure a game session.
type Options struct {
	Game       snake.Config
	Runtime    core.RuntimeConfig
	Difficulty string
	Player     string         // recorded with saved scores
	Store      *storage.Store // nil disables score saving
	Audio      audio.Sink     // nil means silent
	Logger     *log.Logger    // nil discards
}

// Model is the Bubble Tea model for one snake session.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	opts       Options
	keys       KeyMap
	help       help.Model
	input      core.InputFrame
	runID      uuid.UUID
	highScore  int
	scoreSaved bool
	quitting   bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a session. The game starts when the program calls Init.
func NewModel(opts Options) Model {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:   snake.New(opts.Game, opts.Runtime.Seed),
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
		runID:  uuid.New(),
	}
	m.layout()

	if opts.Store != nil {
		if high, err := opts.Store.HighScore(); err == nil {
			m.highScore = high
		} else {
			opts.Logger.Warn("could not read high score", "error", err)
		}
	}
	return m
}

// Init starts the music (if enabled) and the frame loop.
func (m Model) Init() tea.Cmd {
	m.opts.Audio.SetMusic(m.game.MusicOn())
	m.opts.Logger.Info("game started",
		"run", m.runID,
		"seed", m.game.Seed(),
		"board", boardLabel(m.game.Board()),
	)
	return frameCmd(m.opts.Runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.layout()
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// layout sizes the game screen to leave room for the help bar below it.
func (m *Model) layout() {
	helpRows := 1
	if m.help.ShowAll {
		for _, group := range m.keys.FullHelp() {
			helpRows = max(helpRows, len(group))
		}
	}
	m.help.Width = m.opts.Runtime.ScreenW
	m.screen.Resize(m.opts.Runtime.ScreenW, max(m.opts.Runtime.ScreenH-helpRows, 1))
}

// handleKey queues the key's action for the next frame. Help and screenshots
// are handled here since the game knows nothing about them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.input.Push(m.keys.Action(msg))
	return m, nil
}

// handleFrame feeds the frame's input to the game and reacts to its events.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	events := m.game.Step(now, m.input)
	m.input.Clear()

	for _, ev := range events {
		switch ev.Kind {
		case snake.EventFoodEaten:
			m.opts.Audio.PlayHit()
			m.opts.Logger.Debug("food eaten", "score", ev.Score, "length", ev.Length)

		case snake.EventMusicToggled:
			m.opts.Audio.SetMusic(ev.MusicOn)
			m.opts.Logger.Debug("music toggled", "on", ev.MusicOn)

		case snake.EventGameOver:
			m.opts.Logger.Info("game over", "run", m.runID, "score", ev.Score, "length", ev.Length)
			m.saveScore(ev.Score, ev.Length)

		case snake.EventRestarted:
			m.runID = uuid.New()
			m.scoreSaved = false
			m.opts.Logger.Info("game restarted", "run", m.runID)

		case snake.EventQuit:
			if m.game.State() != snake.StateGameOver {
				m.saveScore(m.game.Score(), m.game.Snake().Len())
			}
			m.opts.Audio.SetMusic(false)
			m.opts.Logger.Info("player quit", "run", m.runID, "score", ev.Score)
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, frameCmd(m.opts.Runtime.FrameRate)
}

// saveScore records the current run once. Empty runs are not recorded.
func (m *Model) saveScore(score, length int) {
	if m.scoreSaved || score <= 0 {
		return
	}
	m.scoreSaved = true
	if score > m.highScore {
		m.highScore = score
	}
	if m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		RunID:      m.runID,
		Player:     m.opts.Player,
		Score:      score,
		Length:     length,
		Board:      boardLabel(m.game.Board()),
		Difficulty: m.opts.Difficulty,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.opts.Logger.Warn("could not save score", "run", m.runID, "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.highScore > 0 {
		best := fmt.Sprintf("Best: %d ", m.highScore)
		m.screen.DrawText(m.screen.Width()-len(best), 0, best, core.ColorYellow)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the hosted game.
func (m Model) Game() *snake.Game {
	return m.game
}

// RunID returns the identifier of the current run.
func (m Model) RunID() uuid.UUID {
	return m.runID
}

func boardLabel(b snake.Board) string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
