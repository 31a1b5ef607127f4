package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dumpdiff/dumpdiff"
	"github.com/spf13/cobra"
)

// DiffOptions holds options for the diff command.
type DiffOptions struct {
	parseOptions
	Format string // pretty, json
	Color  bool
	Stats  bool
}

// NewDiffCommand creates the diff command.
func NewDiffCommand() *cobra.Command {
	opts := &DiffOptions{}
	cmd := &cobra.Command{
		Use:   "diff FILE1 FILE2",
		Short: "Structurally compare two object dumps",
		Long: `Diff parses both files and reports every divergence between the two
trees by dot-joined path: keys present on only one side and values that
differ at the same path. Nested objects are compared recursively; lists are
compared as whole values.

Exits 0 when the trees are equal, 1 when differences were found, 2 on error.`,
		Example: `  # human-readable report
  dumpdiff diff before.txt after.txt

  # machine-readable deltas
  dumpdiff diff --format json before.txt after.txt

  # colored output with a summary line
  dumpdiff diff --color --stats before.txt after.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts := opts.parserOptions()

			left, err := parseFile(cmd, args[0], popts)
			if err != nil {
				return err
			}
			right, err := parseFile(cmd, args[1], popts)
			if err != nil {
				return err
			}

			st := &dumpdiff.Stats{}
			deltas := dumpdiff.Diff(left, right, dumpdiff.OptionSetStats(st))

			switch opts.Format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(deltas); err != nil {
					return err
				}
			case "pretty":
				if err := dumpdiff.FormatPretty(cmd.OutOrStdout(), deltas, opts.Color); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want pretty or json)", opts.Format)
			}

			if opts.Stats {
				fmt.Fprint(cmd.ErrOrStderr(), dumpdiff.FormatPrettyStats(st))
			}

			if len(deltas) > 0 {
				return errDiffFound
			}
			return nil
		},
	}

	addParseFlags(cmd.Flags(), &opts.parseOptions)
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "pretty", "output format: pretty, json")
	cmd.Flags().BoolVar(&opts.Color, "color", false, "colorize pretty output")
	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "print a summary line to stderr")

	return cmd
}

func parseFile(cmd *cobra.Command, name string, opts []dumpdiff.ParseOption) (dumpdiff.Object, error) {
	input, err := readInput(cmd, name)
	if err != nil {
		return nil, err
	}
	// the parser treats the final character as the closing delimiter, so a
	// trailing newline from the file must go
	obj, err := dumpdiff.Parse(strings.TrimSpace(string(input)), opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return obj, nil
}
