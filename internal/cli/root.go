// Package cli provides the command-line interface for cmakelint.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gouzil/cmake-lint/internal/cli/commands"
	"github.com/gouzil/cmake-lint/pkg/lint"
)

// Version information (set at build time).
var Version = "0.1.0"

// errViolationsFound signals the violations-found exit status without
// printing anything further; results were already rendered.
var errViolationsFound = errors.New("lint violations found")

// UsageError marks errors that must produce the usage exit status:
// bad flags, bad filter names, unreadable configuration.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

type rootOptions struct {
	cfgFile string
	output  string
	jobs    int
	verbose bool

	// verdict carries the run outcome out to Execute; it owns the
	// exit-status precedence (usage > violations > clean).
	verdict *lint.Verdict
}

func newRootOptions() *rootOptions {
	return &rootOptions{verdict: lint.NewVerdict()}
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newRootOptions())
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cmakelint [files...]",
		Short: "Static checks for CMake source files",
		Long: `cmakelint reports style and correctness problems in CMake sources
without executing the build: mismatched parens, bad command casing,
inconsistent indentation, line length and whitespace issues.

With no files given it lints CMakeLists.txt in the current directory.
Checks are toggled with filter specs, e.g. --filter=-whitespace/eol.
An in-file directive overrides everything else for that file:

    # lint_cmake: -readability/mixedcase,+syntax`,
		Example: `  # Lint the current project
  cmakelint

  # Lint specific files with a filter
  cmakelint --filter=-linelength,+whitespace cmake/FindFoo.cmake

  # List the available categories
  cmakelint categories`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, opts, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", `rc file to use; "None" disables config loading`)
	pf.String("filter", "", "comma-separated list of -category,+category filters to apply")
	pf.Int("spaces", 2, "indentation should be a multiple of N spaces")
	pf.Int("linelength", 80, "allowed line length")
	pf.Bool("quiet", false, "suppress the summary unless errors occurred")
	pf.StringVarP(&opts.output, "output", "o", "auto", "output format (auto|text|json)")
	pf.IntVar(&opts.jobs, "jobs", 1, "number of files to lint in parallel")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewCategoriesCommand())
	rootCmd.AddCommand(newWatchCmd(opts))

	return rootCmd
}

// Execute runs the CLI and returns the process exit status: 0 clean,
// 1 violations found, 32 usage error. The precedence lives in the
// verdict; anything other than the violations sentinel counts as a
// usage-level failure.
func Execute() int {
	opts := newRootOptions()
	cmd := newRootCmd(opts)
	if err := cmd.Execute(); err != nil && !errors.Is(err, errViolationsFound) {
		fmt.Fprintf(os.Stderr, "cmakelint: error: %v\n", err)
		opts.verdict.RecordUsageError()
	}
	return opts.verdict.ExitCode()
}

// newLogger builds the slog logger used for verbose diagnostics.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
