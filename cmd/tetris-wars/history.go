package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-wars/internal/platform/tui"
	"github.com/vovakirdan/tetris-wars/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [session]",
	Short: "Show journaled sessions",
	Long: `Without an argument, lists the most recent sessions. With a session id,
prints every move of that session and how often each classification came up.

Examples:
  tetris-wars history
  tetris-wars history --limit 5
  tetris-wars history 3f2a9c1e-...
  tetris-wars history --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of sessions or moves to show (0 = all moves)")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse the journal interactively")
}

func runHistory(_ *cobra.Command, args []string) {
	// Open journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryTUI {
		rc := runtimeConfig()
		if err := tui.RunJournal(store, rc.ScreenW, rc.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	if len(args) == 1 {
		err = printSession(os.Stdout, store, args[0], flagHistoryLimit)
	} else {
		err = printSessions(os.Stdout, store, flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printSessions(w io.Writer, store *storage.Store, limit int) error {
	sessions, err := store.RecentSessions(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Recent sessions")
	fmt.Fprintln(w)

	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'tetris-wars play' to record the first one!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-36s  %-5s  %-14s  %-5s  %s\n", "Session", "Shape", "Direction", "Moves", "Started")
	fmt.Fprintf(w, "  %-36s  %-5s  %-14s  %-5s  %s\n", "-------", "-----", "---------", "-----", "-------")

	for _, s := range sessions {
		fmt.Fprintf(w, "  %-36s  %-5s  %-14s  %-5d  %s\n",
			s.ID, s.Shape, s.Direction, s.MoveCount, s.StartedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSession(w io.Writer, store *storage.Store, id string, limit int) error {
	session, err := store.Session(id)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("unknown session %q", id)
	}

	moves, err := store.Moves(id, limit)
	if err != nil {
		return err
	}
	counts, err := store.ClassificationCounts(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Session %s\n", session.ID)
	fmt.Fprintf(w, "Shape %s, %s, started %s, %d moves\n",
		session.Shape, session.Direction, session.StartedAt.Format("2006-01-02 15:04"), session.MoveCount)
	fmt.Fprintln(w)

	if len(moves) > 0 {
		fmt.Fprintf(w, "  %-4s  %-12s  %-15s  %-16s  %s\n", "Seq", "Action", "Result", "Delta", "Pose")
		fmt.Fprintf(w, "  %-4s  %-12s  %-15s  %-16s  %s\n", "---", "------", "------", "-----", "----")
		for _, m := range moves {
			delta := fmt.Sprintf("(%g, %g) %.0f°", m.EffX, m.EffY, m.EffAngle*180/math.Pi)
			pose := fmt.Sprintf("(%g, %g) %.0f°", m.PoseX, m.PoseY, m.PoseAngle*180/math.Pi)
			fmt.Fprintf(w, "  %-4d  %-12s  %-15s  %-16s  %s\n", m.Seq, m.Action, m.Classification, delta, pose)
		}
		fmt.Fprintln(w)
	}

	for _, c := range []string{"unobstructed", "overrun_top", "overrun_bottom"} {
		fmt.Fprintf(w, "%-15s %d\n", c, counts[c])
	}
	return nil
}
