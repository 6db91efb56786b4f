package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type recordingSink struct {
	hits  int
	music []bool
}

func (r *recordingSink) PlayHit()         { r.hits++ }
func (r *recordingSink) SetMusic(on bool) { r.music = append(r.music, on) }
func (r *recordingSink) Close()           {}

// tinyConfig is a 4x1 board with food kept off the snake. The snake fills it
// after two meals and then has to bite its own tail, whatever the seed.
func tinyConfig() snake.Config {
	cfg := snake.DefaultConfig()
	cfg.BoardWidth = 4
	cfg.BoardHeight = 1
	cfg.AvoidSnake = true
	return cfg
}

func newTestModel(t *testing.T, store *storage.Store, sink *recordingSink) Model {
	t.Helper()
	return NewModel(Options{
		Game:       tinyConfig(),
		Runtime:    core.RuntimeConfig{ScreenW: 40, ScreenH: 12, FrameRate: 60, Seed: 1},
		Difficulty: "normal",
		Player:     "tester",
		Store:      store,
		Audio:      sink,
	})
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// frames delivers n frames 100ms apart, starting at *now.
func frames(m Model, now *time.Time, n int) Model {
	for range n {
		m, _ = send(m, FrameMsg(*now))
		*now = now.Add(100 * time.Millisecond)
	}
	return m
}

func TestModelPlaysToGameOverAndSaves(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	sink := &recordingSink{}
	m := newTestModel(t, store, sink)
	m.Init()
	if len(sink.music) != 1 || !sink.music[0] {
		t.Fatalf("music calls = %v, want [true] on start", sink.music)
	}

	now := time.Unix(5000, 0)
	m = frames(m, &now, 8)

	if m.Game().State() != snake.StateGameOver {
		t.Fatalf("State() = %v, want game over", m.Game().State())
	}
	if sink.hits != 2 {
		t.Errorf("hit sounds = %d, want 2", sink.hits)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 2 || got.Length != 4 || got.Player != "tester" || got.Board != "4x1" || got.RunID != m.RunID() {
		t.Errorf("saved entry = %+v", got)
	}

	// More frames while game over must not save again.
	m = frames(m, &now, 3)
	if all, _ := store.AllScores(); len(all) != 1 {
		t.Errorf("score saved %d times, want once", len(all))
	}

	firstRun := m.RunID()
	m, _ = send(m, runeKey('y'))
	m = frames(m, &now, 2)
	if m.Game().State() != snake.StateGameOn {
		t.Fatalf("State() = %v after restart, want playing", m.Game().State())
	}
	if m.RunID() == firstRun {
		t.Error("restart kept the old run ID")
	}
}

func TestModelMusicToggleAndQuit(t *testing.T) {
	sink := &recordingSink{}
	m := newTestModel(t, nil, sink)
	now := time.Unix(5000, 0)

	m, _ = send(m, runeKey('m'))
	m = frames(m, &now, 1)
	if len(sink.music) != 1 || sink.music[0] {
		t.Errorf("music calls = %v, want [false]", sink.music)
	}

	m, _ = send(m, runeKey('q'))
	m, cmd := send(m, FrameMsg(now))
	if cmd == nil {
		t.Fatal("quit produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command returned %T, want tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil, &recordingSink{})
	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("view missing score:\n%s", view)
	}
	if !strings.Contains(view, "pause") {
		t.Errorf("view missing help bar:\n%s", view)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, nil, &recordingSink{})
	head := m.Game().Snake().Head()
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.Game().Snake().Head() != head {
		t.Error("resize reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScreenshotDirectoryFailureIsLogged(t *testing.T) {
	// A regular file where the home directory should be makes MkdirAll fail.
	home := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(home, nil, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	t.Setenv("HOME", home)

	var logs bytes.Buffer
	m := NewModel(Options{
		Game:    tinyConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 40, ScreenH: 12, FrameRate: 60, Seed: 1},
		Logger:  log.New(&logs),
	})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.Contains(logs.String(), "could not create screenshot directory") {
		t.Errorf("log = %q, want a screenshot directory warning", logs.String())
	}
	if m.Game().State() != snake.StateGameOn {
		t.Errorf("State() = %v after a failed screenshot, want playing", m.Game().State())
	}
}
