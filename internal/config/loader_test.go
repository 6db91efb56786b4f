package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(DefaultSnakeYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML invalid: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultSnakeConfig() %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults fail validation: %v", err)
	}
}

func TestLoadSnakeCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "board:\n  width: 20\n  height: 12\nfood:\n  avoid_snake: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Width != 20 || cfg.Board.Height != 12 {
		t.Errorf("board = %dx%d, want 20x12", cfg.Board.Width, cfg.Board.Height)
	}
	if !cfg.Food.AvoidSnake {
		t.Error("avoid_snake not applied")
	}
	// Keys missing from the file keep their defaults.
	if cfg.Speed.BaseIntervalMS != 100 || cfg.Board.CellSize != 32 {
		t.Errorf("defaults lost: speed=%+v cell=%d", cfg.Speed, cfg.Board.CellSize)
	}
}

func TestLoadSnakeCustomErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [oops"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"malformed", bad, "failed to parse"},
		{"invalid", invalid, "board must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSnake(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadSnake() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr bool
	}{
		{"defaults", func(*SnakeConfig) {}, false},
		{"narrow board", func(c *SnakeConfig) { c.Board.Width = 1 }, true},
		{"zero height", func(c *SnakeConfig) { c.Board.Height = 0 }, true},
		{"too wide", func(c *SnakeConfig) { c.Board.Width = 40000 }, true},
		{"widest board", func(c *SnakeConfig) { c.Board.Width = math.MaxInt16 }, false},
		{"tallest board", func(c *SnakeConfig) { c.Board.Height = math.MaxInt16 }, false},
		{"zero cell size", func(c *SnakeConfig) { c.Board.CellSize = 0 }, true},
		{"negative base", func(c *SnakeConfig) { c.Speed.BaseIntervalMS = -1 }, true},
		{"negative factor", func(c *SnakeConfig) { c.Speed.SpeedFactor = -2 }, true},
		{"zero factor", func(c *SnakeConfig) { c.Speed.SpeedFactor = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidBoardKeepsMovesOnBoard(t *testing.T) {
	for _, size := range []int{16384, 20000, math.MaxInt16} {
		cfg := DefaultSnakeConfig()
		cfg.Board.Width = size
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() width %d: %v", size, err)
		}

		gc := cfg.GameConfig()
		board := snake.NewBoard(gc.BoardWidth, gc.BoardHeight, gc.CellSize)
		from := snake.Position{X: int16(size - 1), Y: 5}
		if got := board.Move(from, snake.DirUp); !board.Contains(got) || got.X != from.X {
			t.Errorf("width %d: Move(%v, up) = %v", size, from, got)
		}
	}
}

func TestPresets(t *testing.T) {
	for _, p := range Presets() {
		t.Run(string(p), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, p)
			if err := cfg.Validate(); err != nil {
				t.Fatalf("preset %s invalid: %v", p, err)
			}
			if IsFixedPreset(p) != (cfg.Speed.SpeedFactor == 0) {
				t.Errorf("preset %s speed_factor = %g", p, cfg.Speed.SpeedFactor)
			}
		})
	}

	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyNormal)
	if cfg != DefaultSnakeConfig() {
		t.Error("normal preset changed the defaults")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q,%v, want %q,err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestGameConfigAndFit(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.FitToScreen(80, 24)
	if cfg.Board.Width != 56 || cfg.Board.Height != 20 {
		t.Errorf("FitToScreen(80,24) board = %dx%d, want 56x20", cfg.Board.Width, cfg.Board.Height)
	}
	gc := cfg.GameConfig()
	if gc.BoardWidth != 56 || gc.BoardHeight != 20 || gc.BaseIntervalMS != 100 || !gc.MusicOn {
		t.Errorf("GameConfig() = %+v", gc)
	}
	tiny := DefaultSnakeConfig()
	tiny.FitToScreen(3, 3)
	if tiny.Board.Width != 2 || tiny.Board.Height != 1 {
		t.Errorf("FitToScreen(3,3) board = %dx%d, want the 2x1 minimum", tiny.Board.Width, tiny.Board.Height)
	}

	wide := DefaultSnakeConfig()
	wide.FitToScreen(300, 100)
	if wide.Board.Width != 56 || wide.Board.Height != 30 {
		t.Errorf("FitToScreen(300,100) grew the board to %dx%d", wide.Board.Width, wide.Board.Height)
	}
}
