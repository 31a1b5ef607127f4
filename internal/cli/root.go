// Package cli provides the dumpdiff command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dumpdiff/dumpdiff"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version information (set at build time).
var Version = "0.1.0"

// errDiffFound signals a successful run that found differences. The diff
// command exits 1 in that case, following diff-tool convention; it is not an
// error to report.
var errDiffFound = errors.New("differences found")

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dumpdiff",
		Short: "Parse and compare bracketed object dumps",
		Long: `dumpdiff works with the bracketed text that Java-style toString
implementations produce, e.g. Person[name=Alice, age=30].

The parse command turns one dump into a JSON tree; the diff command compares
two dumps and reports every divergence by path.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewParseCommand())
	rootCmd.AddCommand(NewDiffCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command and returns the process exit code:
// 0 clean, 1 when diff found differences, 2 on errors.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		if errors.Is(err, errDiffFound) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dumpdiff %s\n", Version)
		},
	}
}

// parseOptions holds the flags shared by every command that parses dump input
type parseOptions struct {
	Strict      bool   // fail on unbalanced brackets
	CollectBare string // synthetic key for bare object-scope entries
}

func addParseFlags(fs *pflag.FlagSet, opts *parseOptions) {
	fs.BoolVar(&opts.Strict, "strict", false, "fail on unbalanced brackets instead of best-effort parsing")
	fs.StringVar(&opts.CollectBare, "collect-bare", "", "collect bare object-scope entries under this key")
}

func (o *parseOptions) parserOptions() []dumpdiff.ParseOption {
	var opts []dumpdiff.ParseOption
	if o.Strict {
		opts = append(opts, dumpdiff.OptionStrict())
	}
	if o.CollectBare != "" {
		opts = append(opts, dumpdiff.OptionCollectBare(o.CollectBare))
	}
	return opts
}

// readInput reads a dump from the named file, or from stdin when name is
// empty or "-"
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}
