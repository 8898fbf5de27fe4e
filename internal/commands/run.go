package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"advent/internal/config"
	"advent/internal/day"
	"advent/internal/errors"
	"advent/internal/exec"
	"advent/internal/fs"
)

// RunOpts holds options for the run command.
type RunOpts struct {
	// Day is the raw day token; empty runs every registered day.
	Day string

	// Example runs against the example input instead of the real input.
	Example bool

	// P1 and P2 select single problems; both (or neither) runs both.
	P1 bool
	P2 bool
}

// Run implements the `advent run [day]` command: build the runner argv
// from config and stream the harness output through.
func Run(ctx context.Context, cr exec.CommandRunner, fsys fs.FS, cwd string, opts RunOpts, stdout, stderr io.Writer) error {
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
	return runRunner(ctx, cr, root, argv, stdout, stderr)
}

// runnerArgv builds the runner invocation. A zero day omits the day
// selection flag, which makes the harness run every registered day.
// Config validation guarantees a non-empty command.
func runnerArgv(cfg config.Config, d day.Day, example, p1, p2 bool) []string {
	argv := append([]string{}, cfg.Runner.Command...)
	if d != 0 {
		argv = append(argv, d.RunFlag())
	}
	if example {
		argv = append(argv, "--example")
	}
	if p1 {
		argv = append(argv, "--p1")
	}
	if p2 {
		argv = append(argv, "--p2")
	}
	return argv
}

// runRunner executes argv from the workspace root, streaming output
// through, and maps failures onto the stable codes.
func runRunner(ctx context.Context, cr exec.CommandRunner, root string, argv []string, stdout, stderr io.Writer) error {
	result, err := cr.Run(ctx, argv[0], argv[1:], exec.RunOpts{
		Dir:    root,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		if exec.IsNotFound(err) {
			return errors.NewWithDetails(errors.ERunnerNotFound,
				"runner command not found: "+argv[0]+"; check runner.command in "+config.FileName,
				map[string]string{"command": argv[0]})
		}
		return errors.Wrap(errors.ERunnerFailed, "runner failed to start: "+argv[0], err)
	}
	if result.ExitCode != 0 {
		return errors.NewWithDetails(errors.ERunnerFailed,
			fmt.Sprintf("%s exited with status %d", argv[0], result.ExitCode),
			map[string]string{"exit_code": strconv.Itoa(result.ExitCode)})
	}
	return nil
}
