package fsys

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOSQueries(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.txt")

	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fs := OS{}

	if !fs.FileExists(file) {
		t.Error("FileExists = false for a regular file")
	}

	if fs.FileExists(root) {
		t.Error("FileExists = true for a directory")
	}

	if !fs.DirExists(root) {
		t.Error("DirExists = false for a directory")
	}

	if fs.DirExists(file) {
		t.Error("DirExists = true for a regular file")
	}

	if fs.FileExists(filepath.Join(root, "missing")) {
		t.Error("FileExists = true for a missing path")
	}
}

func TestListDir(t *testing.T) {
	root := t.TempDir()

	if err := os.MkdirAll(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	for _, name := range []string{"b.txt", "a.txt"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}

	fs := OS{}

	names, err := fs.ListDir(root)
	if err != nil {
		t.Fatalf("ListDir failed: %v", err)
	}

	if got, want := strings.Join(names, ","), "a.txt,b.txt,sub"; got != want {
		t.Errorf("ListDir = %q, want %q", got, want)
	}

	if _, err := fs.ListDir(filepath.Join(root, "missing")); err == nil {
		t.Error("ListDir succeeded for a missing path")
	}

	if _, err := fs.ListDir(filepath.Join(root, "a.txt")); err == nil {
		t.Error("ListDir succeeded for a regular file")
	}
}

func TestAnythingExists(t *testing.T) {
	root := t.TempDir()
	link := filepath.Join(root, "dangling")

	if err := os.Symlink(filepath.Join(root, "missing"), link); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	// A dangling symlink still exists as a file system object.
	if !AnythingExists(link) {
		t.Error("AnythingExists = false for a dangling symlink")
	}

	if AnythingExists(filepath.Join(root, "nothing")) {
		t.Error("AnythingExists = true for a missing path")
	}
}

func TestFindFile(t *testing.T) {
	root := t.TempDir()

	for _, dir := range []string{"one", "two"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
	}

	target := filepath.Join(root, "two", "itf.api")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	searchList := []string{filepath.Join(root, "one"), filepath.Join(root, "two")}

	if got := FindFile(OS{}, "itf.api", searchList); got != target {
		t.Errorf("FindFile = %q, want %q", got, target)
	}

	if got := FindFile(OS{}, "missing.api", searchList); got != "" {
		t.Errorf("FindFile = %q, want empty", got)
	}

	// Absolute names bypass the search list.
	if got := FindFile(OS{}, target, nil); got != target {
		t.Errorf("FindFile absolute = %q, want %q", got, target)
	}

	if got := FindFile(OS{}, filepath.Join(root, "missing"), searchList); got != "" {
		t.Errorf("FindFile missing absolute = %q, want empty", got)
	}
}

func TestFindFileOrder(t *testing.T) {
	root := t.TempDir()

	var paths []string

	for _, dir := range []string{"one", "two"} {
		path := filepath.Join(root, dir, "same.api")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}

		if err := os.WriteFile(path, []byte(dir), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		paths = append(paths, path)
	}

	// The first directory in the search list wins.
	searchList := []string{filepath.Join(root, "one"), filepath.Join(root, "two")}

	if got := FindFile(OS{}, "same.api", searchList); got != paths[0] {
		t.Errorf("FindFile = %q, want %q", got, paths[0])
	}
}

func TestFindDirectory(t *testing.T) {
	root := t.TempDir()
	comp := filepath.Join(root, "components", "comp")

	if err := os.MkdirAll(comp, 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	searchList := []string{root, filepath.Join(root, "components")}

	if got := FindDirectory(OS{}, "comp", searchList); got != comp {
		t.Errorf("FindDirectory = %q, want %q", got, comp)
	}

	if got := FindDirectory(OS{}, "nope", searchList); got != "" {
		t.Errorf("FindDirectory = %q, want empty", got)
	}
}
