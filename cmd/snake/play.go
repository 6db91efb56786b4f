package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagMute bool
	flagFit  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  M            - Music on/off
  Y / N        - Play again / give up (after game over)
  Q/Esc        - Quit
  ?            - More keys

Difficulty options:
  easy   - Slower start, gentler speed-up, food never lands on the snake
  normal - 100ms per step, speeding up with the square root of the score
  hard   - Faster start
  fixed  - No speed-up at all

Examples:
  snake play
  snake play --difficulty easy
  snake play --fit --mute
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// The root command plays too, so it takes the same flags.
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().BoolVar(&flagMute, "mute", false, "Disable all sound")
		c.Flags().BoolVar(&flagFit, "fit", false, "Shrink the board to fit the terminal")
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if flagFit {
		cfg.FitToScreen(width, height-1) // one row for the help bar
		if err := cfg.Validate(); err != nil {
			closeLog()
			fmt.Fprintf(os.Stderr, "Error: terminal too small: %v\n", err)
			os.Exit(1)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sink audio.Sink = audio.Nop{}
	if !flagMute {
		player, audioErr := audio.NewPlayer()
		if audioErr != nil {
			logger.Warn("audio disabled", "error", audioErr)
		} else {
			sink = player
		}
	}

	runErr := tui.Run(tui.Options{
		Game: cfg.GameConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			FrameRate: flagFPS,
			Seed:      flagSeed,
		},
		Difficulty: string(preset),
		Player:     currentUser(),
		Store:      store,
		Audio:      sink,
		Logger:     logger,
	})

	sink.Close()
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
