package commands

import (
	"context"
	"io"

	"advent/internal/fs"
	"advent/internal/render"
)

// ListOpts holds options for the list command.
type ListOpts struct {
	// JSON outputs machine-readable JSON.
	JSON bool
}

// List implements the `advent list` command: one row per known day with
// its derived status. This is a read-only command: no files are mutated.
func List(ctx context.Context, fsys fs.FS, cwd string, opts ListOpts, stdout, stderr io.Writer) error {
	root, cfg, err := resolveWorkspace(fsys, cwd)
	if err != nil {
		return err
	}

	summaries, err := collectSummaries(fsys, root, cfg)
	if err != nil {
		return err
	}

	if opts.JSON {
		return render.WriteListJSON(stdout, summaries)
	}
	return render.WriteListHuman(stdout, render.FormatHumanRows(summaries))
}
