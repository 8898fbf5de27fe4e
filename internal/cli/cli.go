// Package cli builds the advent command tree and maps cobra's lifecycle
// onto the commands layer: global flags, logger setup, and the translation
// of cobra's own parse errors into coded usage errors.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent/internal/errors"
	"advent/internal/logging"
)

// state carries what every verb shares: the process streams, the global
// flag values, and the logger built in PersistentPreRunE.
type state struct {
	dir     string
	verbose bool
	logger  *zap.Logger
	stdout  io.Writer
	stderr  io.Writer
}

// workdir resolves the directory commands operate from: --dir when given,
// the process working directory otherwise.
func (st *state) workdir() (string, error) {
	if st.dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(errors.ENoWorkspace, "failed to get working directory", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(st.dir)
	if err != nil {
		return "", errors.Wrap(errors.ENoWorkspace, "failed to resolve --dir", err)
	}
	if fi, err := os.Stat(abs); err != nil || !fi.IsDir() {
		return "", errors.New(errors.EUsage, fmt.Sprintf("--dir %s is not a directory", st.dir))
	}
	return abs, nil
}

// Execute parses argv and runs the selected verb. Errors come back with
// stable codes; the caller maps them to an exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	st := &state{stdout: stdout, stderr: stderr}
	root := newRootCmd(st)
	if args == nil {
		// cobra treats nil args as "use os.Args".
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	if _, ok := errors.AsAdventError(err); ok {
		return err
	}
	// Anything uncoded came from cobra itself: unknown commands or
	// argument count mismatches.
	return errors.Wrap(errors.EUsage, "invalid usage", err)
}

func newRootCmd(st *state) *cobra.Command {
	root := &cobra.Command{
		Use:   "advent",
		Short: "advent scaffolds, tracks, and runs daily puzzle solutions",
		Long: `advent manages a daily-puzzle workspace: one source file, one input
file, and one example file per day, plus a dispatch file that routes
--day-N flags to the right solution.

typical season:
  advent init        lay out a fresh workspace
  advent new 2       scaffold day 2 and register it
  advent run 2       build and run day 2 against its input
  advent watch 2     rerun day 2 on every save`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(st.verbose)
			if err != nil {
				return errors.Wrap(errors.EInternal, "failed to initialize logger", err)
			}
			st.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.logger != nil {
				_ = st.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.EUsage, "no command specified")
		},
	}

	root.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&st.dir, "dir", "C", "", "run as if started in this directory")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.EUsage, "invalid flags", err)
	})

	root.AddCommand(
		newNewCmd(st),
		newInitCmd(st),
		newListCmd(st),
		newShowCmd(st),
		newRunCmd(st),
		newWatchCmd(st),
		newDoctorCmd(st),
		newVersionCmd(st),
	)
	return root
}
