package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"advent/internal/day"
	"advent/internal/errors"
	"advent/internal/exec"
	"advent/internal/fs"
	"advent/internal/watch"
)

// WatchOpts holds options for the watch command.
type WatchOpts struct {
	// Day is the raw day token; empty reruns every registered day.
	Day string

	// Example, P1, P2 pass through to the runner, as in run.
	Example bool
	P1      bool
	P2      bool
}

// Watch implements the `advent watch [day]` command: an initial run,
// then a rerun on every settled change under the source and input
// directories. Reruns are serialized. Cancel the context to stop.
func Watch(ctx context.Context, cr exec.CommandRunner, fsys fs.FS, cwd string, opts WatchOpts, logger *zap.Logger, stdout, stderr io.Writer) error {
	var d day.Day
	if opts.Day != "" {
		var err error
		d, err = day.Parse(opts.Day)
		if err != nil {
			return err
		}
	}

	root, cfg, err := resolveWorkspace(fsys, cwd)
	if err != nil {
		return err
	}

	argv := runnerArgv(cfg, d, opts.Example, opts.P1, opts.P2)

	// The initial run doubles as a preflight: a missing runner binary
	// aborts before any watches are registered. A failing run does not;
	// fixing it is what the watch loop is for.
	if err := runRunner(ctx, cr, root, argv, stdout, stderr); err != nil {
		if errors.GetCode(err) == errors.ERunnerNotFound {
			return err
		}
		printWatchError(stderr, err)
	}

	w, err := watch.New(watch.Options{
		Dirs:     []string{cfg.SourceDirPath(root), cfg.InputDirPath(root)},
		Suffixes: []string{".rs", ".txt"},
		Debounce: cfg.Debounce(),
	}, logger, func(runCtx context.Context, paths []string) {
		fmt.Fprintf(stderr, "changed: %s\n", relPaths(root, paths))
		if err := runRunner(runCtx, cr, root, argv, stdout, stderr); err != nil {
			printWatchError(stderr, err)
		}
	})
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to create watcher", err)
	}

	if err := w.Start(ctx); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "watching: %s, %s (debounce %s)\n", cfg.SourceDir, cfg.InputDir, cfg.Debounce())

	<-ctx.Done()
	w.Stop()
	fmt.Fprintln(stderr, "watch: stopped")
	return nil
}

// printWatchError reports a rerun failure without stopping the loop.
func printWatchError(w io.Writer, err error) {
	if ae, ok := errors.AsAdventError(err); ok {
		fmt.Fprintf(w, "error: %s: %s\n", ae.Code, ae.Msg)
		return
	}
	fmt.Fprintf(w, "error: %s\n", err.Error())
}

// relPaths renders changed paths workspace-relative, comma-joined.
func relPaths(root string, paths []string) string {
	rels := make([]string, len(paths))
	for i, p := range paths {
		if rel, err := filepath.Rel(root, p); err == nil {
			rels[i] = rel
		} else {
			rels[i] = p
		}
	}
	return strings.Join(rels, ", ")
}
