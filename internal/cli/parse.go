package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dumpdiff/dumpdiff"
	"github.com/spf13/cobra"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	parseOptions
	Compact bool // single-line JSON
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse one object dump and print its tree as JSON",
		Long: `Parse reads a single object dump from a file (or stdin when the
argument is omitted or "-") and prints the parsed tree as JSON.`,
		Example: `  # from a file
  dumpdiff parse record.txt

  # from stdin
  echo 'Person[name=Alice, age=30]' | dumpdiff parse

  # reject unbalanced input
  dumpdiff parse --strict record.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			input, err := readInput(cmd, name)
			if err != nil {
				return err
			}

			// trailing newline would be taken for the closing delimiter
			obj, err := dumpdiff.Parse(strings.TrimSpace(string(input)), opts.parserOptions()...)
			if err != nil {
				return fmt.Errorf("parsing input: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !opts.Compact {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(obj)
		},
	}

	addParseFlags(cmd.Flags(), &opts.parseOptions)
	cmd.Flags().BoolVarP(&opts.Compact, "compact", "c", false, "single-line JSON output")

	return cmd
}
