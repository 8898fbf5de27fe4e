package fs

import (
	"os"
)

// Touch ensures an empty file exists at path: created if absent,
// left byte-for-byte unchanged if present. Returns whether it was created.
func Touch(fs FS, path string) (created bool, err error) {
	_, err = fs.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}
	if err := fs.WriteFile(path, nil, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// CopyFile copies src to dst byte-for-byte, overwriting dst silently if
// it exists. The write is atomic so a crash mid-copy cannot truncate an
// existing destination.
func CopyFile(fs FS, src, dst string, perm os.FileMode) error {
	data, err := fs.ReadFile(src)
	if err != nil {
		return err
	}
	return WriteFileAtomic(fs, dst, data, perm)
}
