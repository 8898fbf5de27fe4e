package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"advent/internal/commands"
	"advent/internal/exec"
	"advent/internal/fs"
	"advent/internal/version"
)

func newNewCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "new <day>",
		Short: "scaffold a day: input files, source file, dispatch entry",
		Long: `create the day's input and example files (kept if they already exist),
copy the template over the day's source file, and register the day in
the dispatch file right after the previous day's entry.

examples:
  advent new 5
  advent new 5 && advent run 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := st.workdir()
			if err != nil {
				return err
			}
			opts := commands.NewOpts{Day: args[0]}
			return commands.New(cmd.Context(), fs.NewRealFS(), cwd, opts, st.stdout, st.stderr)
		},
	}
}

func newInitCmd(st *state) *cobra.Command {
	var noGitignore bool
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "create the workspace layout",
		Long: `lay out a fresh puzzle workspace: config file, source and input
directories, dispatch file, template, and a runnable day 1.
existing files are never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := st.workdir()
			if err != nil {
				return err
			}
			opts := commands.InitOpts{NoGitignore: noGitignore}
			if len(args) == 1 {
				opts.Dir = args[0]
				if !filepath.IsAbs(opts.Dir) {
					opts.Dir = filepath.Join(cwd, opts.Dir)
				}
			}
			return commands.Init(cmd.Context(), fs.NewRealFS(), cwd, opts, st.stdout, st.stderr)
		},
	}
	cmd.Flags().BoolVar(&noGitignore, "no-gitignore", false, "do not modify .gitignore")
	return cmd
}

func newListCmd(st *state) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list every known day with its status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := st.workdir()
			if err != nil {
				return err
			}
			opts := commands.ListOpts{JSON: jsonOut}
			return commands.List(cmd.Context(), fs.NewRealFS(), cwd, opts, st.stdout, st.stderr)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")
	return cmd
}

func newShowCmd(st *state) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "show <day>",
		Short: "show one day's files, status, and runner invocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := st.workdir()
			if err != nil {
				return err
			}
			opts := commands.ShowOpts{Day: args[0], JSON: jsonOut}
			return commands.Show(cmd.Context(), fs.NewRealFS(), cwd, opts, st.stdout, st.stderr)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")
	return cmd
}

func newRunCmd(st *state) *cobra.Command {
	var example, p1, p2 bool
	cmd := &cobra.Command{
		Use:   "run [day]",
		Short: "build and run solutions through the configured runner",
		Long: `invoke the configured runner from the workspace root, forwarding the
day selection. with no day, every registered day runs.

examples:
  advent run 5
  advent run 5 --example --p1
  advent run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := st.workdir()
			if err != nil {
				return err
			}
			opts := commands.RunOpts{Example: example, P1: p1, P2: p2}
			if len(args) == 1 {
				opts.Day = args[0]
			}
			return commands.Run(cmd.Context(), exec.NewRealRunner(), fs.NewRealFS(), cwd, opts, st.stdout, st.stderr)
		},
	}
	cmd.Flags().BoolVarP(&example, "example", "x", false, "use the example input")
	cmd.Flags().BoolVar(&p1, "p1", false, "run problem 1 only")
	cmd.Flags().BoolVar(&p2, "p2", false, "run problem 2 only")
	return cmd
}

func newWatchCmd(st *state) *cobra.Command {
	var example, p1, p2 bool
	cmd := &cobra.Command{
		Use:   "watch [day]",
		Short: "rerun the runner whenever sources or inputs change",
		Long: `run once, then keep watching the source and input directories and
rerun on every change. ctrl-c stops the watch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := st.workdir()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := commands.WatchOpts{Example: example, P1: p1, P2: p2}
			if len(args) == 1 {
				opts.Day = args[0]
			}
			return commands.Watch(ctx, exec.NewRealRunner(), fs.NewRealFS(), cwd, opts, st.logger, st.stdout, st.stderr)
		},
	}
	cmd.Flags().BoolVarP(&example, "example", "x", false, "use the example input")
	cmd.Flags().BoolVar(&p1, "p1", false, "run problem 1 only")
	cmd.Flags().BoolVar(&p2, "p2", false, "run problem 2 only")
	return cmd
}

func newDoctorCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "check workspace health",
		Long: `run every workspace check and report ok/warn/fail per check.
warnings alone exit 0; the first failing check sets the exit code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := st.workdir()
			if err != nil {
				return err
			}
			return commands.Doctor(cmd.Context(), fs.NewRealFS(), cwd, st.stdout, st.stderr)
		},
	}
}

func newVersionCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the advent version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(st.stdout, "advent %s\n", version.Version)
			return nil
		},
	}
}
