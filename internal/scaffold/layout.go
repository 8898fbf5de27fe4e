package scaffold

import (
	"os"
	"path/filepath"

	"advent/internal/config"
	"advent/internal/day"
	"advent/internal/errors"
	"advent/internal/fs"
)

// File is one workspace file to scaffold: a path relative to the
// workspace root and its initial content.
type File struct {
	RelPath string
	Content string
}

// Result reports which files were created or skipped, as root-relative
// paths in layout order.
type Result struct {
	Created []string
	Skipped []string
}

// Files returns the full workspace layout for the given config. Day 1 is
// seeded so the dispatch file always carries an anchor for day 2.
func Files(cfg config.Config) []File {
	one := day.Day(1)
	return []File{
		{RelPath: cfg.Dispatch, Content: DispatchTemplate},
		{RelPath: filepath.Join(cfg.SourceDir, "helpers.rs"), Content: HarnessTemplate},
		{RelPath: cfg.Template, Content: DayTemplate},
		{RelPath: filepath.Join(cfg.SourceDir, one.SourceFile()), Content: DayTemplate},
		{RelPath: "Cargo.toml", Content: ManifestTemplate},
		{RelPath: config.FileName, Content: ConfigTemplate},
		{RelPath: filepath.Join(cfg.InputDir, one.InputFile()), Content: ""},
		{RelPath: filepath.Join(cfg.InputDir, one.ExampleFile()), Content: ""},
		{RelPath: filepath.Join(cfg.InputDir, "empty.txt"), Content: ""},
	}
}

// CreateLayout writes the workspace layout under root. Existing files are
// never overwritten; they are reported in Skipped instead.
func CreateLayout(fsys fs.FS, root string, cfg config.Config) (Result, error) {
	dirs := []string{
		cfg.InputDirPath(root),
		cfg.SourceDirPath(root),
		filepath.Dir(cfg.DispatchPath(root)),
		filepath.Dir(cfg.TemplatePath(root)),
	}
	for _, dir := range dirs {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return Result{}, errors.Wrap(errors.EIO, "failed to create directory "+dir, err)
		}
	}

	var result Result
	for _, f := range Files(cfg) {
		path := filepath.Join(root, f.RelPath)
		if _, err := fsys.Stat(path); err == nil {
			result.Skipped = append(result.Skipped, f.RelPath)
			continue
		} else if !os.IsNotExist(err) {
			return Result{}, errors.Wrap(errors.EIO, "failed to stat "+f.RelPath, err)
		}

		if err := fsys.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return Result{}, errors.Wrap(errors.EIO, "failed to write "+f.RelPath, err)
		}
		result.Created = append(result.Created, f.RelPath)
	}
	return result, nil
}
