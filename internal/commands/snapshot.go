package commands

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"advent/internal/config"
	"advent/internal/day"
	"advent/internal/dispatch"
	"advent/internal/errors"
	"advent/internal/fs"
	"advent/internal/render"
	"advent/internal/status"
)

// dayFileRE matches scaffolded file names: day_7.rs, day_7.txt,
// day_7_example.txt.
var dayFileRE = regexp.MustCompile(`^day_(\d+)(?:_example)?\.(?:rs|txt)$`)

// registeredDays reads the dispatch file and returns its marker days in
// file order. A missing dispatch file reads as no registrations so the
// read-only commands still work in a half-initialized workspace.
func registeredDays(fsys fs.FS, root string, cfg config.Config) ([]day.Day, error) {
	content, err := fsys.ReadFile(cfg.DispatchPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.EIO, "cannot read "+cfg.Dispatch, err)
	}
	return dispatch.Days(string(content)), nil
}

// daysOnDisk returns the days named by scaffolded files in dir.
// A missing or unreadable directory reads as empty.
func daysOnDisk(fsys fs.FS, dir string) []day.Day {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []day.Day
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := dayFileRE.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			continue
		}
		out = append(out, day.Day(n))
	}
	return out
}

// collectSummaries scans the workspace and builds one summary per known
// day, sorted ascending. A day is known when the dispatch file registers
// it or any of its scaffolded files exist on disk.
func collectSummaries(fsys fs.FS, root string, cfg config.Config) ([]render.DaySummary, error) {
	registered, err := registeredDays(fsys, root, cfg)
	if err != nil {
		return nil, err
	}

	known := make(map[day.Day]bool)
	for _, d := range registered {
		known[d] = true
	}
	for _, d := range daysOnDisk(fsys, cfg.SourceDirPath(root)) {
		known[d] = true
	}
	for _, d := range daysOnDisk(fsys, cfg.InputDirPath(root)) {
		known[d] = true
	}

	days := make([]day.Day, 0, len(known))
	for d := range known {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	summaries := make([]render.DaySummary, 0, len(days))
	for _, d := range days {
		summaries = append(summaries, daySummary(fsys, root, cfg, d, dispatch.Contains(registered, d)))
	}
	return summaries, nil
}

// daySummary stats the day's files and derives its status.
func daySummary(fsys fs.FS, root string, cfg config.Config, d day.Day, registered bool) render.DaySummary {
	sourceRel := filepath.Join(cfg.SourceDir, d.SourceFile())
	inputRel := filepath.Join(cfg.InputDir, d.InputFile())
	exampleRel := filepath.Join(cfg.InputDir, d.ExampleFile())

	sourceExists, sourceBytes := statFile(fsys, filepath.Join(root, sourceRel))
	inputExists, inputBytes := statFile(fsys, filepath.Join(root, inputRel))
	exampleExists, exampleBytes := statFile(fsys, filepath.Join(root, exampleRel))

	derived := status.Derive(status.Snapshot{
		Registered:    registered,
		SourceExists:  sourceExists,
		InputExists:   inputExists,
		InputBytes:    inputBytes,
		ExampleExists: exampleExists,
		ExampleBytes:  exampleBytes,
	})

	return render.DaySummary{
		Day:        int(d),
		Status:     derived.Status,
		Registered: registered,
		Source: render.FileJSON{
			State: status.FileState(sourceExists, sourceBytes),
			Bytes: sourceBytes,
			Path:  sourceRel,
		},
		Input: render.FileJSON{
			State: status.FileState(inputExists, inputBytes),
			Bytes: inputBytes,
			Path:  inputRel,
		},
		Example: render.FileJSON{
			State: status.FileState(exampleExists, exampleBytes),
			Bytes: exampleBytes,
			Path:  exampleRel,
		},
	}
}

// statFile returns existence and size for a regular file.
// Errors read as missing.
func statFile(fsys fs.FS, path string) (bool, int64) {
	info, err := fsys.Stat(path)
	if err != nil || info.IsDir() {
		return false, 0
	}
	return true, info.Size()
}
