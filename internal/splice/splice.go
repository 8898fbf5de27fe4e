// Package splice implements the line-anchor splice operation: inserting
// a new line into a text file immediately after the first line that
// contains a literal anchor substring.
package splice

import (
	"fmt"
	"os"
	"strings"

	"advent/internal/errors"
	"advent/internal/fs"
)

// InsertAfter rewrites the file at path so that newLine appears
// immediately after the first line containing anchor.
//
// The anchor is a literal substring, matched against each line in order;
// the first match wins. The rewrite is atomic (temp file + rename in the
// same directory), and the file's trailing-newline convention and
// permission bits are preserved. On any failure, including a missing
// anchor, the original file is left byte-for-byte untouched.
func InsertAfter(fsys fs.FS, path, anchor, newLine string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.WrapWithDetails(errors.EFileNotFound,
				fmt.Sprintf("file not found: %s", path),
				err, map[string]string{"path": path})
		}
		return errors.Wrap(errors.EIO, fmt.Sprintf("cannot stat %s", path), err)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.EIO, fmt.Sprintf("cannot read %s", path), err)
	}

	out, found := insert(string(data), anchor, newLine)
	if !found {
		return errors.NewWithDetails(errors.EAnchorNotFound,
			fmt.Sprintf("anchor %q not found in %s", anchor, path),
			map[string]string{"path": path, "anchor": anchor})
	}

	if err := fs.WriteFileAtomic(fsys, path, []byte(out), info.Mode().Perm()); err != nil {
		return errors.Wrap(errors.EIO, fmt.Sprintf("cannot rewrite %s", path), err)
	}
	return nil
}

// insert splices newLine in after the first line containing anchor and
// reports whether an anchor line was found. Pure function of its inputs.
//
// Lines are the "\n"-separated segments of content; a trailing newline
// yields a final empty segment, which keeps the file's trailing-newline
// convention intact through the join.
func insert(content, anchor, newLine string) (string, bool) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.Contains(line, anchor) {
			out := make([]string, 0, len(lines)+1)
			out = append(out, lines[:i+1]...)
			out = append(out, newLine)
			out = append(out, lines[i+1:]...)
			return strings.Join(out, "\n"), true
		}
	}
	return "", false
}
