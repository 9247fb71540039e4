package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// newWatchCmd creates the watch command: lint the given files, then
// re-lint each one whenever it changes on disk.
func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [files...]",
		Short: "Re-lint files whenever they change",
		Long: `Lint the given files once, then watch them and re-run the checks on
every change. Useful while editing CMake sources. Exit status reflects
only startup: watch mode keeps running across clean and failing runs
until interrupted.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, args)
		},
	}
}

func runWatch(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := newLogger(cmd, opts.verbose)

	setup, done, err := prepareRun(cmd, opts, args)
	if err != nil || done {
		return err
	}

	lintOnce := func() {
		verdict, err := lintFiles(cmd, setup)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "cmakelint: error: %v\n", err)
			return
		}
		if err := render(setup, verdict); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "cmakelint: error: %v\n", err)
		}
	}
	lintOnce()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories, not files: editors replace files on save and
	// a per-file watch dies with the old inode.
	watched := make(map[string]bool, len(setup.files))
	for _, f := range setup.files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
		}
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Watching for changes. Press Ctrl-C to stop.")
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			logger.Debug("file changed", "path", event.Name)
			lintOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}
