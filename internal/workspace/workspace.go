// Package workspace locates the puzzle workspace root from a working
// directory.
package workspace

import (
	"fmt"
	"path/filepath"

	"advent/internal/config"
	"advent/internal/errors"
	"advent/internal/fs"
)

// FindRoot walks up from cwd to the nearest directory that looks like a
// puzzle workspace: one holding an advent.yaml, or failing that the
// default layout (both an input/ and a src/ directory). Custom layouts
// therefore need advent.yaml at the root to be discoverable.
//
// Returns E_NO_WORKSPACE when the walk reaches the filesystem root
// without a match.
func FindRoot(fsys fs.FS, cwd string) (string, error) {
	if cwd == "" {
		return "", errors.New(errors.ENoWorkspace, "working directory is empty")
	}

	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", errors.Wrap(errors.ENoWorkspace, "cannot resolve working directory", err)
	}

	for {
		if isRoot(fsys, dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.ENoWorkspace,
				fmt.Sprintf("no advent workspace found above %s; run 'advent init' to create one", cwd))
		}
		dir = parent
	}
}

func isRoot(fsys fs.FS, dir string) bool {
	if fileExists(fsys, filepath.Join(dir, config.FileName)) {
		return true
	}
	def := config.Default()
	return dirExists(fsys, filepath.Join(dir, def.InputDir)) &&
		dirExists(fsys, filepath.Join(dir, def.SourceDir))
}

func fileExists(fsys fs.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(fsys fs.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}
