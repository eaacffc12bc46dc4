// tetris-wars drives a single tetromino around a bounded field in the terminal.
//
// Usage:
//
//	tetris-wars                  - Pick a shape from the menu and play
//	tetris-wars play             - Play the configured shape directly
//	tetris-wars shapes           - Show the shape catalog
//	tetris-wars simulate         - Run a command sequence headless
//	tetris-wars history [id]     - Show journaled sessions or one session's moves
//	tetris-wars serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set journal path (default: ~/.tetris-wars/journal.db)
//	--config <path>      - Use a custom tetris.yaml
//	--animation <name>   - Animation preset: smooth, snappy, instant
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetris-wars/internal/config"
	"github.com/vovakirdan/tetris-wars/internal/core"
	"github.com/vovakirdan/tetris-wars/internal/games/tetris"
	"github.com/vovakirdan/tetris-wars/internal/platform/tui"
	"github.com/vovakirdan/tetris-wars/internal/storage"
	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagAnimation string
	flagLogPath   string
	flagNoJournal bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris-wars",
	Short: "Tetris Wars - steer a tetromino in your terminal",
	Long: `Tetris Wars puts one tetromino in a bounded field. Move it up or down
a block at a time and turn it a quarter turn either way; the field edge
pushes it back when it overruns.

Without a subcommand a shape menu opens. After leaving a piece you return
to the menu to pick another.

Available commands:
  play      - Play the configured shape directly
  shapes    - Show the shape catalog
  simulate  - Run a command sequence without a terminal UI
  history   - Show journaled sessions
  serve     - Start SSH server for remote play

Examples:
  tetris-wars
  tetris-wars play --shape I
  tetris-wars simulate --shape T --commands down,right,down
  tetris-wars history
  tetris-wars serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris-wars/journal.db", "Path to move journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris.yaml")
	rootCmd.PersistentFlags().StringVar(&flagAnimation, "animation", "", "Animation preset: smooth, snappy, instant (default: from config)")

	rootCmd.Flags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.Flags().BoolVar(&flagNoJournal, "no-journal", false, "Do not record sessions")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads tetris.yaml and applies --animation on top of it.
func loadGameConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	if flagAnimation != "" {
		preset, err := config.ParseAnimationPreset(flagAnimation)
		if err != nil {
			return config.TetrisConfig{}, err
		}
		config.ApplyAnimationPreset(&cfg, preset)
	}
	return cfg, nil
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// openLogger returns a debug logger writing to --log, or a silent one.
// The terminal belongs to the TUI, so nothing is logged to stderr.
func openLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "tetris",
	})
	return logger, func() { f.Close() }, nil
}

// openJournal opens the journal unless --no-journal is set. Failure is a
// warning: the game still works without it.
func openJournal() *storage.Store {
	if flagNoJournal {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open journal: %v\n", err)
		return nil
	}
	return store
}

// gameOptions wires the journal and logger into a game.
func gameOptions(store *storage.Store, logger *log.Logger) []tetris.Option {
	opts := []tetris.Option{tetris.WithLogger(logger)}
	if store != nil {
		opts = append(opts, tetris.WithRecorder(store))
	}
	return opts
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openJournal()
	opts := gameOptions(store, logger)

	factory := func(shape tetromino.Shape) tui.Game {
		c := cfg
		c.Spawn.Shape = shape.String()
		return tetris.New(c, opts...)
	}

	runErr := tui.RunSession(factory, store, runtimeConfig(), cfg.Shape())

	// Cleanup
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
