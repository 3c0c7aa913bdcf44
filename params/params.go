// Package params holds the build parameters gathered from the command
// line, the environment, and the target configuration file.
package params

import (
	"os"
	"strings"

	"github.com/ardnew/mung"

	"github.com/ardnew/mkdef/fsys"
)

// Environment variables appended to the interface and source search paths
// given on the command line.
const (
	InterfacePathVar = "MKDEF_INTERFACE_PATH"
	SourcePathVar    = "MKDEF_SOURCE_PATH"
)

// Params holds the parameters of one build.
type Params struct {
	Verbose bool

	// Target selects the toolchain from the target configuration file.
	Target string

	// InterfaceDirs and SourceDirs are the search paths for .api files and
	// for component directories and sources, respectively.
	InterfaceDirs []string
	SourceDirs    []string

	LibOutputDir string
	OutputDir    string
	WorkingDir   string
	DebugDir     string

	CFlags   string
	CxxFlags string
	LdFlags  string

	CodeGenOnly bool
	BinPack     bool

	// Args is the full command line of this invocation, recorded in the
	// generated build script so it can regenerate itself when a definition
	// file changes.
	Args []string

	// Toolchain holds the cross-compilation tool paths for Target.
	Toolchain Toolchain

	// FS answers file existence queries during modelling.
	FS fsys.FS
}

// New creates build parameters with the host file system and the command
// line of the current process.
func New() *Params {
	return &Params{
		Target: "localhost",
		Args:   os.Args,
		FS:     fsys.OS{},
	}
}

// mergeSearchPath appends the directories listed in a colon-separated
// environment variable to the given search path, dropping empty entries.
func mergeSearchPath(dirs []string, envName string) []string {
	merged := mung.Make(
		mung.WithSubjectItems(os.Getenv(envName)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
		mung.WithFilter(func(dir string) bool { return dir != "" }),
	).String()

	if merged == "" {
		return nil
	}

	return strings.Split(merged, string(os.PathListSeparator))
}

// FinalizeSearchPaths appends the environment search paths to the
// command-line search paths, and makes sure the current directory is
// always searched first.
func (p *Params) FinalizeSearchPaths() {
	p.InterfaceDirs = mergeSearchPath(p.InterfaceDirs, InterfacePathVar)
	p.SourceDirs = mergeSearchPath(p.SourceDirs, SourcePathVar)

	if len(p.SourceDirs) == 0 || p.SourceDirs[0] != "." {
		p.SourceDirs = append([]string{"."}, p.SourceDirs...)
	}
}
