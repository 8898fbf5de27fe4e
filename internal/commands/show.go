package commands

import (
	"context"
	"io"

	"advent/internal/day"
	"advent/internal/dispatch"
	"advent/internal/exec"
	"advent/internal/fs"
	"advent/internal/render"
)

// ShowOpts holds options for the show command.
type ShowOpts struct {
	// Day is the raw day token from the command line.
	Day string

	// JSON outputs machine-readable JSON.
	JSON bool
}

// Show implements the `advent show <day>` command: detail for one day,
// including the exact runner invocation run would use. Works for any
// valid day; an unscaffolded one reports status missing. Read-only.
func Show(ctx context.Context, fsys fs.FS, cwd string, opts ShowOpts, stdout, stderr io.Writer) error {
	d, err := day.Parse(opts.Day)
	if err != nil {
		return err
	}

	root, cfg, err := resolveWorkspace(fsys, cwd)
	if err != nil {
		return err
	}

	registered, err := registeredDays(fsys, root, cfg)
	if err != nil {
		return err
	}

	summary := daySummary(fsys, root, cfg, d, dispatch.Contains(registered, d))
	argv := runnerArgv(cfg, d, false, false, false)

	if opts.JSON {
		return render.WriteShowJSON(stdout, &render.DayDetail{
			Day:        summary.Day,
			Status:     summary.Status,
			Registered: summary.Registered,
			RunFlag:    d.RunFlag(),
			RunArgv:    argv,
			Source:     summary.Source,
			Input:      summary.Input,
			Example:    summary.Example,
			Paths: render.PathsJSON{
				Root:     root,
				Dispatch: cfg.Dispatch,
				Template: cfg.Template,
			},
		})
	}

	return render.WriteShowHuman(stdout, render.ShowHumanData{
		Day:          summary.Day,
		Status:       summary.Status,
		Registered:   summary.Registered,
		RunFlag:      d.RunFlag(),
		RunArgv:      exec.QuoteArgv(argv),
		SourcePath:   summary.Source.Path,
		SourceState:  summary.Source.State,
		InputPath:    summary.Input.Path,
		InputState:   summary.Input.State,
		InputBytes:   summary.Input.Bytes,
		ExamplePath:  summary.Example.Path,
		ExampleState: summary.Example.State,
		ExampleBytes: summary.Example.Bytes,
		Root:         root,
		Dispatch:     cfg.Dispatch,
		Template:     cfg.Template,
	})
}
