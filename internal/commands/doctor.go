package commands

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"advent/internal/config"
	"advent/internal/day"
	"advent/internal/dispatch"
	"advent/internal/errors"
	"advent/internal/fs"
)

// Check levels, ordered ok < warn < fail.
const (
	levelOK   = "ok"
	levelWarn = "warn"
	levelFail = "fail"
)

// checkResult is one doctor report line.
type checkResult struct {
	Name   string
	Level  string
	Detail string
	Code   errors.Code // set when Level is fail
}

// Doctor implements the `advent doctor` command: read-only workspace
// checks, one report line each. Unlike the mutating commands it does not
// stop at the first problem; the report covers everything, and the
// returned error carries the first failing check's code. Warnings alone
// exit zero.
func Doctor(ctx context.Context, fsys fs.FS, cwd string, stdout, stderr io.Writer) error {
	root, cfg, err := resolveWorkspace(fsys, cwd)
	if err != nil {
		return err
	}

	dispatchCheck, days := checkDispatch(fsys, root, cfg)
	checks := []checkResult{
		dispatchCheck,
		checkDuplicates(days),
		fileCheck(fsys, "template", root, cfg.Template, levelFail, errors.EFileNotFound),
		fileCheck(fsys, "harness", root, filepath.Join(cfg.SourceDir, "helpers.rs"), levelWarn, ""),
		fileCheck(fsys, "manifest", root, "Cargo.toml", levelWarn, ""),
		checkInputDir(fsys, root, cfg),
		fileCheck(fsys, "empty_file", root, filepath.Join(cfg.InputDir, "empty.txt"), levelFail, errors.EFileNotFound),
		checkRunner(fsys, root, cfg),
	}

	writeDoctorReport(stdout, root, checks)

	var failed []string
	var code errors.Code
	for _, c := range checks {
		if c.Level == levelFail {
			failed = append(failed, c.Name)
			if code == "" {
				code = c.Code
			}
		}
	}
	if len(failed) > 0 {
		return errors.NewWithDetails(code,
			fmt.Sprintf("%d doctor check(s) failed", len(failed)),
			map[string]string{"failed": strings.Join(failed, ", ")})
	}
	return nil
}

// checkDispatch verifies the dispatch file exists and parses, and
// returns its registered days for the duplicate check.
func checkDispatch(fsys fs.FS, root string, cfg config.Config) (checkResult, []day.Day) {
	content, err := fsys.ReadFile(cfg.DispatchPath(root))
	if err != nil {
		return checkResult{
			Name:   "dispatch",
			Level:  levelFail,
			Detail: cfg.Dispatch + " missing; run 'advent init'",
			Code:   errors.EFileNotFound,
		}, nil
	}

	days := dispatch.Days(string(content))
	if len(days) == 0 {
		return checkResult{
			Name:   "dispatch",
			Level:  levelWarn,
			Detail: cfg.Dispatch + " has no day markers",
		}, nil
	}
	return checkResult{
		Name:   "dispatch",
		Level:  levelOK,
		Detail: fmt.Sprintf("%s, %d day(s) registered", cfg.Dispatch, len(days)),
	}, days
}

// checkDuplicates flags days registered more than once. The harness
// generates one function per marker, so a duplicate breaks the build.
func checkDuplicates(days []day.Day) checkResult {
	dupes := dispatch.Duplicates(days)
	if len(dupes) == 0 {
		return checkResult{Name: "duplicates", Level: levelOK, Detail: "none"}
	}
	markers := make([]string, len(dupes))
	for i, d := range dupes {
		markers[i] = d.Marker()
	}
	return checkResult{
		Name:   "duplicates",
		Level:  levelFail,
		Detail: "registered more than once: " + strings.Join(markers, ", "),
		Code:   errors.EConfig,
	}
}

// fileCheck reports on one expected workspace file. failLevel is the
// level to report when the file is missing.
func fileCheck(fsys fs.FS, name, root, rel, failLevel string, code errors.Code) checkResult {
	if exists, _ := statFile(fsys, filepath.Join(root, rel)); !exists {
		res := checkResult{Name: name, Level: failLevel, Detail: rel + " missing"}
		if failLevel == levelFail {
			res.Code = code
		}
		return res
	}
	return checkResult{Name: name, Level: levelOK, Detail: rel}
}

// checkInputDir verifies the input directory exists.
func checkInputDir(fsys fs.FS, root string, cfg config.Config) checkResult {
	info, err := fsys.Stat(cfg.InputDirPath(root))
	if err != nil || !info.IsDir() {
		return checkResult{
			Name:   "input_dir",
			Level:  levelFail,
			Detail: cfg.InputDir + " missing; run 'advent init'",
			Code:   errors.EFileNotFound,
		}
	}
	return checkResult{Name: "input_dir", Level: levelOK, Detail: cfg.InputDir}
}

// checkRunner verifies the runner command resolves, on PATH or as a
// path. A command with a path separator (or a "." prefix) is resolved
// relative to the workspace root and must be executable.
func checkRunner(fsys fs.FS, root string, cfg config.Config) checkResult {
	name := cfg.Runner.Command[0]

	if strings.Contains(name, string(filepath.Separator)) || strings.HasPrefix(name, ".") {
		abs := name
		if !filepath.IsAbs(name) {
			abs = filepath.Join(root, name)
		}
		info, err := fsys.Stat(abs)
		if err != nil {
			return checkResult{Name: "runner", Level: levelFail, Detail: name + " not found", Code: errors.ERunnerNotFound}
		}
		if info.Mode().Perm()&0111 == 0 {
			return checkResult{Name: "runner", Level: levelFail, Detail: name + " is not executable", Code: errors.ERunnerNotFound}
		}
		return checkResult{Name: "runner", Level: levelOK, Detail: name}
	}

	if _, err := exec.LookPath(name); err != nil {
		return checkResult{Name: "runner", Level: levelFail, Detail: name + " not found on PATH", Code: errors.ERunnerNotFound}
	}
	return checkResult{Name: "runner", Level: levelOK, Detail: name}
}

// writeDoctorReport writes the stable key: value doctor report.
func writeDoctorReport(w io.Writer, root string, checks []checkResult) {
	fmt.Fprintf(w, "root: %s\n", root)

	worst := levelOK
	for _, c := range checks {
		if c.Detail != "" {
			fmt.Fprintf(w, "%s: %s (%s)\n", c.Name, c.Level, c.Detail)
		} else {
			fmt.Fprintf(w, "%s: %s\n", c.Name, c.Level)
		}
		switch c.Level {
		case levelFail:
			worst = levelFail
		case levelWarn:
			if worst == levelOK {
				worst = levelWarn
			}
		}
	}

	fmt.Fprintf(w, "status: %s\n", worst)
}
