package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gouzil/cmake-lint/internal/cli/config"
	"github.com/gouzil/cmake-lint/internal/cli/output"
	"github.com/gouzil/cmake-lint/pkg/lint"
)

// defaultTarget is linted when no files are given on the command line.
const defaultTarget = "CMakeLists.txt"

// runSetup is everything runLint resolves before touching a file. The
// watch command shares it so both paths lint identically.
type runSetup struct {
	cfg      *config.Config
	analyzer *lint.Analyzer
	renderer *output.Renderer
	files    []string
	jobs     int
}

func runLint(cmd *cobra.Command, opts *rootOptions, args []string) error {
	setup, done, err := prepareRun(cmd, opts, args)
	if err != nil || done {
		return err
	}

	verdict, err := lintFiles(cmd, setup)
	if err != nil {
		return err
	}
	opts.verdict = verdict
	if err := render(setup, verdict); err != nil {
		return err
	}
	if verdict.ExitCode() == lint.ExitViolations {
		return errViolationsFound
	}
	return nil
}

// prepareRun loads configuration, resolves the filter layers and the
// file list, and builds the analyzer and renderer. done is true when
// the invocation was informational only (--filter="").
func prepareRun(cmd *cobra.Command, opts *rootOptions, args []string) (*runSetup, bool, error) {
	logger := newLogger(cmd, opts.verbose)

	cfg, err := config.Load(opts.cfgFile, cmd.Flags())
	if err != nil {
		return nil, false, &UsageError{Err: err}
	}
	logger.Debug("configuration resolved",
		"spaces", cfg.Spaces, "linelength", cfg.LineLength, "quiet", cfg.Quiet)

	cliFilter, _ := cmd.Flags().GetString("filter")
	if cmd.Flags().Changed("filter") && cliFilter == "" {
		// An explicitly empty filter asks for the category listing.
		fmt.Fprintln(cmd.ErrOrStderr(), "Filters:")
		for _, c := range lint.Categories() {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", c)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Run `cmakelint categories` for descriptions.")
		return nil, true, nil
	}

	configDs, err := lint.ParseDirectives(cfg.Filter)
	if err == nil {
		err = lint.ValidateDirectives(configDs)
	}
	if err != nil {
		return nil, false, &UsageError{Err: err}
	}
	cliDs, err := lint.ParseDirectives(cliFilter)
	if err == nil {
		err = lint.ValidateDirectives(cliDs)
	}
	if err != nil {
		return nil, false, &UsageError{Err: err}
	}

	files := args
	if len(files) == 0 {
		if _, statErr := os.Stat(defaultTarget); statErr != nil {
			return nil, false, &UsageError{Err: fmt.Errorf("no files were specified")}
		}
		files = []string{defaultTarget}
	}

	setup := &runSetup{
		cfg: cfg,
		analyzer: lint.NewAnalyzer(
			lint.Options{Spaces: cfg.Spaces, LineLength: cfg.LineLength},
			lint.Resolve(configDs, cliDs),
		),
		renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.output)),
		files:    files,
		jobs:     opts.jobs,
	}
	return setup, false, nil
}

// lintFiles analyzes every file, in parallel when jobs > 1, and folds
// the per-file results into a verdict in command-line order.
func lintFiles(cmd *cobra.Command, setup *runSetup) (*lint.Verdict, error) {
	type fileResult struct {
		skipped    bool
		violations []lint.Violation
	}
	results := make([]fileResult, len(setup.files))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, setup.jobs))
	for i, path := range setup.files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !isLintable(path) {
				results[i] = fileResult{skipped: true}
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return &UsageError{Err: err}
			}
			results[i] = fileResult{
				violations: setup.analyzer.AnalyzeFile(path, string(content)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	verdict := lint.NewVerdict()
	for i, path := range setup.files {
		if results[i].skipped {
			setup.renderer.Notice("Ignoring file: %s", path)
			continue
		}
		verdict.AddFile(path, results[i].violations)
	}
	return verdict, nil
}

// render writes the verdict in the selected output mode. The summary
// is suppressed for clean quiet runs.
func render(setup *runSetup, verdict *lint.Verdict) error {
	if setup.renderer.EffectiveMode() == output.ModeJSON {
		return setup.renderer.JSON(verdict.Results(), verdict.Total())
	}
	setup.renderer.Report(verdict.Results())
	if verdict.Total() > 0 || !setup.cfg.Quiet {
		setup.renderer.Summary(verdict.Total())
	}
	return nil
}

// isLintable reports whether the file looks like CMake source: a
// .cmake extension or any casing of CMakeLists.txt.
func isLintable(path string) bool {
	if strings.EqualFold(filepath.Ext(path), ".cmake") {
		return true
	}
	return strings.EqualFold(filepath.Base(path), defaultTarget)
}
