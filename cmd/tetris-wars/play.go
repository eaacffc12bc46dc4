package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-wars/internal/games/tetris"
	"github.com/vovakirdan/tetris-wars/internal/platform/tui"
	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

var flagShape string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a shape directly",
	Long: `Start a piece without the menu.

Controls:
  Up/W        - Move one block up
  Down/S      - Move one block down
  Left/A      - Rotate a quarter turn counter-clockwise
  Right/D     - Rotate a quarter turn clockwise
  N           - Next shape
  R           - Respawn
  X           - Toggle bounding boxes
  P           - Pause
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Animation presets:
  smooth   - 20 steps per move
  snappy   - 8 steps per move
  instant  - 1 step per move

Examples:
  tetris-wars play
  tetris-wars play --shape I
  tetris-wars play --animation snappy
  tetris-wars play --log ./tetris.log
  tetris-wars play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagShape, "shape", "", "Shape to spawn: Z, S, O, L, J, I, T (default: from config)")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	playCmd.Flags().BoolVar(&flagNoJournal, "no-journal", false, "Do not record sessions")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagShape != "" {
		shape, err := tetromino.ParseShape(flagShape)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'tetris-wars shapes' to see available shapes.")
			os.Exit(1)
		}
		cfg.Spawn.Shape = shape.String()
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openJournal()
	game := tetris.New(cfg, gameOptions(store, logger)...)

	// Run the game
	runErr := tui.Run(game, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
