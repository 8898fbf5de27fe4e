package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTouch_CreatesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day_7.txt")
	fs := NewRealFS()

	created, err := Touch(fs, path)
	if err != nil {
		t.Fatalf("Touch failed: %v", err)
	}
	if !created {
		t.Error("created = false, want true")
	}

	info, err := fs.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}

func TestTouch_LeavesExistingFileUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day_7.txt")
	fs := NewRealFS()

	content := []byte("1000\n2000\n\n3000\n")
	if err := fs.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	created, err := Touch(fs, path)
	if err != nil {
		t.Fatalf("Touch failed: %v", err)
	}
	if created {
		t.Error("created = true, want false for existing file")
	}

	got, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("existing content changed: got %q, want %q", string(got), string(content))
	}
}

func TestTouch_MissingParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input", "day_7.txt")

	_, err := Touch(NewRealFS(), path)
	if err == nil {
		t.Fatal("Touch should fail when parent dir is missing")
	}
}

func TestCopyFile_ByteForByte(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "template.rs")
	dst := filepath.Join(dir, "day_3.rs")
	fs := NewRealFS()

	content := []byte("pub fn problem_1() {}\n\n/**** Problem 2 ******/\n")
	if err := fs.WriteFile(src, content, 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := CopyFile(fs, src, dst, 0644); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	got, err := fs.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("copy = %q, want %q", string(got), string(content))
	}
}

func TestCopyFile_OverwritesSilently(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "template.rs")
	dst := filepath.Join(dir, "day_3.rs")
	fs := NewRealFS()

	if err := fs.WriteFile(src, []byte("fresh template\n"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := fs.WriteFile(dst, []byte("half-solved puzzle\n"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := CopyFile(fs, src, dst, 0644); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	got, err := fs.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "fresh template\n" {
		t.Errorf("dst = %q, want overwritten template content", string(got))
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "template.rs")
	dst := filepath.Join(dir, "day_3.rs")

	err := CopyFile(NewRealFS(), src, dst, 0644)
	if err == nil {
		t.Fatal("CopyFile should fail when source is missing")
	}
	if !os.IsNotExist(err) {
		t.Errorf("err = %v, want IsNotExist", err)
	}
}
