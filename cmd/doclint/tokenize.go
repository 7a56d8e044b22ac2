package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"doclint/internal/diag"
	"doclint/internal/diagfmt"
	"doclint/internal/docparse"
	"doclint/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file",
	Short: "Dump the documentation token tree of a source file",
	Long:  `Tokenize parses one source file and prints its token and fragment structure, useful when debugging rule behavior`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	bag := diag.NewBag(100)
	tree := docparse.Parse(fileSet.Get(fileID), docparse.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:    useColor(cmd, os.Stderr),
			PathMode: "relative",
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTreePretty(os.Stdout, tree, fileSet)
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, tree)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
