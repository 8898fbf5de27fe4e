package commands

import (
	"context"
	"fmt"
	"io"

	"advent/internal/day"
	"advent/internal/dayservice"
	"advent/internal/errors"
	"advent/internal/fs"
	"advent/internal/pipeline"
)

// NewOpts holds options for the new command.
type NewOpts struct {
	// Day is the raw day token from the command line.
	Day string
}

// New implements the `advent new <day>` command: ensure the day's input
// files exist, copy the template over the day's source file, and splice
// the day's marker into the dispatch file.
func New(ctx context.Context, fsys fs.FS, cwd string, opts NewOpts, stdout, stderr io.Writer) error {
	d, err := day.Parse(opts.Day)
	if err != nil {
		return err
	}

	root, cfg, err := resolveWorkspace(fsys, cwd)
	if err != nil {
		return err
	}

	svc := dayservice.New(fsys, root, cfg)
	st, err := pipeline.NewPipeline(svc).Run(ctx, d)
	if err != nil {
		printNewError(stderr, err, st)
		return err
	}

	writeNewOutput(stdout, st)
	return nil
}

// writeNewOutput writes the stable key: value output for new.
func writeNewOutput(w io.Writer, st *pipeline.State) {
	fmt.Fprintf(w, "day: %s\n", st.Day)
	fmt.Fprintf(w, "input: %s (%s)\n", st.InputPath, createdStr(st.InputCreated))
	fmt.Fprintf(w, "example: %s (%s)\n", st.ExamplePath, createdStr(st.ExampleCreated))
	fmt.Fprintf(w, "source: %s (written)\n", st.SourcePath)
	fmt.Fprintf(w, "dispatch: %s (registered)\n", st.DispatchPath)
	fmt.Fprintf(w, "next: advent run %s\n", st.Day)
}

func createdStr(created bool) string {
	if created {
		return "created"
	}
	return "unchanged"
}

// printNewError reports which files the earlier steps already touched,
// so a rerun after fixing the problem is predictable.
func printNewError(w io.Writer, err error, st *pipeline.State) {
	ae, ok := errors.AsAdventError(err)
	if !ok {
		fmt.Fprintf(w, "error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(w, "error: %s: %s\n", ae.Code, ae.Msg)
	if st == nil {
		return
	}
	if st.InputPath != "" {
		fmt.Fprintf(w, "input: %s (%s)\n", st.InputPath, createdStr(st.InputCreated))
	}
	if st.ExamplePath != "" {
		fmt.Fprintf(w, "example: %s (%s)\n", st.ExamplePath, createdStr(st.ExampleCreated))
	}
	if st.SourcePath != "" {
		fmt.Fprintf(w, "source: %s (written)\n", st.SourcePath)
	}
}
