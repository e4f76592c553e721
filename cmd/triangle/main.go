// Command triangle reads a height from standard input and prints a
// right triangle of asterisks for it, followed by worked examples for
// two extra heights. The rows are produced by a single counter riding
// the triangular numbers, not by nested loops.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/devlunagariya/patterna/console"
	"github.com/devlunagariya/patterna/triangle"
)

// Hard-coded example heights shown after the user's pattern.
const (
	exampleHeightA = 3
	exampleHeightB = 6
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "triangle",
		Short: "Print a right triangle driven by triangular numbers",
		Long: `Reads a height n from standard input and prints a right triangle of
asterisks: row k carries k glyphs. One running counter walks all
n(n+1)/2 glyphs and breaks rows at the triangular numbers.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

func run(cmd *cobra.Command, _ []string) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	console.Banner(out, "Right Triangle Pattern - Single Loop Implementation")

	n, err := console.PromptInt(in, out, "Enter the height of the triangle:")
	if err != nil {
		console.Errorln(out, "Invalid input. Please enter a positive integer.")
		return err
	}
	fmt.Fprintln(out)

	printTriangle(out, n)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples of other sizes:")
	fmt.Fprintln(out, "------------------------")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "n = %d:\n", exampleHeightA)
	printTriangle(out, exampleHeightA)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "n = %d:\n", exampleHeightB)
	printTriangle(out, exampleHeightB)

	return nil
}

// printTriangle writes the pattern for n; a non-positive n prints the
// validation message instead of rows and the program carries on.
func printTriangle(w io.Writer, n int) {
	rows, err := triangle.Render(n, triangle.DefaultOptions())
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
