// Command concentric-square reads a size parameter from standard input
// and prints the concentric square ring pattern for it, preceded (for
// small sizes) by a map of the diagonal decomposition, and followed by
// worked examples for two extra sizes.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/devlunagariya/patterna/concentric"
	"github.com/devlunagariya/patterna/console"
)

const (
	// Hard-coded example sizes shown after the user's pattern.
	exampleSizeA = 3
	exampleSizeB = 5

	// Region maps are only shown up to this size to avoid clutter.
	regionPreviewLimit = 7
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concentric-square",
		Short: "Print a concentric square pattern built by diagonal decomposition",
		Long: `Reads a size parameter n from standard input and prints the
(2n-1)x(2n-1) grid of ring numbers: n on the border, descending to 1 at
the center. The board is split along the anti-diagonal so that each
half is served by a single distance formula.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

func run(cmd *cobra.Command, _ []string) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	console.Banner(out, "Concentric Square Pattern - Diagonal Decomposition")

	n, err := console.PromptInt(in, out, "Enter the size parameter n:")
	if err != nil {
		console.Errorln(out, "Invalid input. Please enter a positive integer.")
		return err
	}
	fmt.Fprintln(out)

	if n <= regionPreviewLimit {
		if rows, rerr := concentric.Regions(n); rerr == nil {
			fmt.Fprintln(out, "Region visualization (U = Upper-left, L = Lower-right):")
			console.WriteRows(out, rows)
			fmt.Fprintln(out)
		}
	}

	fmt.Fprintln(out, "Concentric square pattern:")
	printSquare(out, n)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples of other sizes:")
	fmt.Fprintln(out, "------------------------")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "n = %d:\n", exampleSizeA)
	printSquare(out, exampleSizeA)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "n = %d:\n", exampleSizeB)
	printSquare(out, exampleSizeB)

	return nil
}

// printSquare writes the pattern for n; a non-positive n prints the
// validation message instead of rows and the program carries on.
func printSquare(w io.Writer, n int) {
	rows, err := concentric.Render(n)
	if err != nil {
		console.Errorln(w, err.Error())
		return
	}
	console.WriteRows(w, rows)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
