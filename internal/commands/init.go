package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"advent/internal/errors"
	"advent/internal/fs"
	"advent/internal/scaffold"
)

// InitOpts holds options for the init command.
type InitOpts struct {
	// Dir is the directory to initialize (empty = cwd).
	Dir string

	// NoGitignore skips the .gitignore update.
	NoGitignore bool
}

// InitResult holds the result of the init command for output formatting.
type InitResult struct {
	Root           string
	FilesCreated   []string
	FilesSkipped   []string
	GitignoreState scaffold.GitignoreResult
}

// Init implements the `advent init` command: create the workspace layout
// (never overwriting existing files) and add the input directory to
// .gitignore (by default). Running init in a populated workspace is safe.
func Init(ctx context.Context, fsys fs.FS, cwd string, opts InitOpts, stdout, stderr io.Writer) error {
	dir := opts.Dir
	if dir == "" {
		dir = cwd
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrap(errors.EIO, "cannot resolve target directory", err)
	}

	// A pre-existing advent.yaml (or ADVENT_* overrides) shapes the layout.
	cfg, err := loadConfig(fsys, root)
	if err != nil {
		return err
	}

	layout, err := scaffold.CreateLayout(fsys, root, cfg)
	if err != nil {
		return err
	}

	var gitignoreState scaffold.GitignoreResult
	if opts.NoGitignore {
		gitignoreState = scaffold.GitignoreSkipped
	} else {
		gitignoreState, err = scaffold.EnsureGitignore(fsys, filepath.Join(root, ".gitignore"), cfg.InputDir+"/")
		if err != nil {
			return errors.Wrap(errors.EIO, "failed to update .gitignore", err)
		}
	}

	result := InitResult{
		Root:           root,
		FilesCreated:   layout.Created,
		FilesSkipped:   layout.Skipped,
		GitignoreState: gitignoreState,
	}
	writeInitOutput(stdout, result)

	if opts.NoGitignore {
		fmt.Fprintln(stdout, "warning: gitignore_skipped")
	}
	return nil
}

// writeInitOutput writes the stable key: value output for init, one line
// per file in layout order.
func writeInitOutput(w io.Writer, r InitResult) {
	fmt.Fprintf(w, "root: %s\n", r.Root)
	for _, rel := range r.FilesCreated {
		fmt.Fprintf(w, "created: %s\n", rel)
	}
	for _, rel := range r.FilesSkipped {
		fmt.Fprintf(w, "skipped: %s\n", rel)
	}
	fmt.Fprintf(w, "gitignore: %s\n", r.GitignoreState)
}
