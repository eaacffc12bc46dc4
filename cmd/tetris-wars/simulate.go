package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-wars/internal/config"
	"github.com/vovakirdan/tetris-wars/internal/core"
	"github.com/vovakirdan/tetris-wars/internal/games/tetris"
	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

var (
	flagSimShape    string
	flagSimCommands string
	flagSimTicks    int
	flagSimJournal  bool
	flagSimVerbose  bool
)

// maxSettleTicks bounds the wait for convergence when --ticks is 0.
const maxSettleTicks = 10000

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a command sequence without a terminal UI",
	Long: `Feed a comma-separated command sequence to a piece, one command per
frame, then keep ticking until the blocks settle. Prints how every command
was classified and the final pose.

Commands: up, down, left, right (or w, s, a, d).

Examples:
  tetris-wars simulate --commands down,down,right
  tetris-wars simulate --shape I --commands right,up,up --ticks 5
  tetris-wars simulate --commands up,up,up --journal`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimShape, "shape", "", "Shape to spawn (default: from config)")
	simulateCmd.Flags().StringVar(&flagSimCommands, "commands", "", "Comma-separated commands")
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 0, "Frames to run after the last command (0 = until settled)")
	simulateCmd.Flags().BoolVar(&flagSimJournal, "journal", false, "Record the run in the journal")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every move to stderr")
}

var commandNames = map[string]core.Action{
	"up":    core.ActionMoveUp,
	"w":     core.ActionMoveUp,
	"down":  core.ActionMoveDown,
	"s":     core.ActionMoveDown,
	"left":  core.ActionRotateLeft,
	"a":     core.ActionRotateLeft,
	"right": core.ActionRotateRight,
	"d":     core.ActionRotateRight,
}

// parseCommands splits a comma-separated command list. Empty items are skipped.
func parseCommands(s string) ([]core.Action, error) {
	var actions []core.Action
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		a, ok := commandNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown command %q (want up, down, left or right)", part)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// simulation is the outcome of a headless run.
type simulation struct {
	Moves     []tetromino.Move
	Ticks     int
	Pose      core.Motion
	Converged bool
	SessionID string
}

// simulate runs actions through a game, one per frame, then settles for
// ticks frames, or until converged when ticks is 0.
func simulate(cfg config.TetrisConfig, actions []core.Action, ticks int, opts ...tetris.Option) simulation {
	g := tetris.New(cfg, opts...)
	g.Reset(core.DefaultConfig())

	var res simulation
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
		g.Step(in)
		in.Clear()
		res.Ticks++
		if m, ok := g.LastMove(); ok {
			res.Moves = append(res.Moves, m)
		}
	}

	if ticks > 0 {
		for range ticks {
			g.Step(in)
			res.Ticks++
		}
	} else {
		for i := 0; i < maxSettleTicks && !g.Piece().Converged(); i++ {
			g.Step(in)
			res.Ticks++
		}
	}

	res.Pose = g.Piece().State().Pose()
	res.Converged = g.Piece().Converged()
	res.SessionID = g.SessionID()
	return res
}

func printSimulation(w io.Writer, shape tetromino.Shape, res simulation) {
	fmt.Fprintf(w, "Shape %s\n\n", shape)

	if len(res.Moves) > 0 {
		fmt.Fprintf(w, "  %-3s  %-12s  %-15s  %s\n", "#", "Action", "Result", "Pose")
		fmt.Fprintf(w, "  %-3s  %-12s  %-15s  %s\n", "-", "------", "------", "----")
		for i, m := range res.Moves {
			fmt.Fprintf(w, "  %-3d  %-12s  %-15s  %s\n", i+1, m.Action, m.Classification, formatPose(m.Pose))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Final pose: %s\n", formatPose(res.Pose))
	fmt.Fprintf(w, "Settled: %t after %d ticks\n", res.Converged, res.Ticks)
}

func formatPose(p core.Motion) string {
	return fmt.Sprintf("(%g, %g) %.0f°", p.Translation.X, p.Translation.Y, p.Angle*180/math.Pi)
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSimShape != "" {
		shape, err := tetromino.ParseShape(flagSimShape)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Spawn.Shape = shape.String()
	}

	actions, err := parseCommands(flagSimCommands)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := log.InfoLevel
	if flagSimVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "simulate"})

	opts := []tetris.Option{tetris.WithLogger(logger)}
	if flagSimJournal {
		store := openJournal()
		if store != nil {
			defer store.Close()
			opts = append(opts, tetris.WithRecorder(store))
		}
	}

	res := simulate(cfg, actions, flagSimTicks, opts...)
	printSimulation(os.Stdout, cfg.Shape(), res)
	if flagSimJournal {
		fmt.Printf("Journaled as %s\n", res.SessionID)
	}
}
