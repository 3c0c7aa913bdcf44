// Package fsys answers the file system queries the modeller makes while
// resolving the paths named in definition files.
package fsys

import (
	"os"

	"github.com/ardnew/mkdef/pkg"
)

// FS is the subset of file system queries used when resolving definition
// file references. The package-level functions use the host file system;
// tests substitute their own.
type FS interface {
	FileExists(path string) bool
	DirExists(path string) bool
	ListDir(path string) ([]string, error)
}

// OS is an FS backed by the host file system.
type OS struct{}

// FileExists reports whether path names an existing regular file.
func (OS) FileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether path names an existing directory.
func (OS) DirExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

// ListDir returns the names of the entries in the named directory, sorted
// by filename.
func (OS) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// AnythingExists reports whether path names any existing file system
// object, regardless of its type. Symlinks are not followed.
func AnythingExists(path string) bool {
	_, err := os.Lstat(path)

	return err == nil
}

// FileExists reports whether path names an existing regular file on the
// host file system.
func FileExists(path string) bool { return OS{}.FileExists(path) }

// DirExists reports whether path names an existing directory on the host
// file system.
func DirExists(path string) bool { return OS{}.DirExists(path) }

// ListDir returns the sorted entry names of a directory on the host file
// system.
func ListDir(path string) ([]string, error) { return OS{}.ListDir(path) }

// FindFile searches for a file with the given name. An absolute name is
// checked directly; otherwise each directory in the search list is tried
// in order. It returns the path of the first match, or "" when not found.
func FindFile(fs FS, name string, searchList []string) string {
	if pkg.IsAbsolute(name) {
		if fs.FileExists(name) {
			return name
		}

		return ""
	}

	for _, dir := range searchList {
		path := pkg.Combine(dir, name)
		if fs.FileExists(path) {
			return path
		}
	}

	return ""
}

// FindDirectory searches for a directory with the given name, using the
// same rules as FindFile.
func FindDirectory(fs FS, name string, searchList []string) string {
	if pkg.IsAbsolute(name) {
		if fs.DirExists(name) {
			return name
		}

		return ""
	}

	for _, dir := range searchList {
		path := pkg.Combine(dir, name)
		if fs.DirExists(path) {
			return path
		}
	}

	return ""
}
