package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show the shape catalog",
	Long:  `Shows every shape with its cells and rotation pivot, in grid units.`,
	Args:  cobra.NoArgs,
	Run:   runShapes,
}

func runShapes(_ *cobra.Command, _ []string) {
	fmt.Println("Available shapes:")
	fmt.Println()

	for _, s := range tetromino.Shapes() {
		cells, pivot := tetromino.Layout(s)

		fmt.Printf("  %s  pivot (%g, %g)  cells", s, pivot.X, pivot.Y)
		for _, c := range cells {
			fmt.Printf(" (%g, %g)", c.X, c.Y)
		}
		fmt.Println()

		for _, row := range tetromino.Diagram(s) {
			fmt.Printf("     %s\n", row)
		}
		fmt.Println()
	}

	fmt.Println("Run 'tetris-wars play --shape <name>' to play one.")
}
