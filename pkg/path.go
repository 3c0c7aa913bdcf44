package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Prefix returns the base prefix string used to construct the path to the
// configuration directory and the prefix for environment variable identifiers.
//
// By default, Prefix is the base name of the executable file unless it matches
// one of the following substitution rules:
//   - "__debug_bin" (default output of the dlv debugger): replaced with cmd
//   - "^\.+" (dot-prefixed names): remove the dot prefix
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		exe, err := os.Executable()
		if err == nil {
			id = exe
		}

		ext := filepath.Ext(filepath.Base(id))
		id = strings.TrimSuffix(filepath.Base(id), ext)

		for rex, rep := range map[*regexp.Regexp]string{
			regexp.MustCompile(`^__debug_bin\d+$`): Name, // default output from dlv
			regexp.MustCompile(`^\.+`):             "",   // remove leading dot(s)
		} {
			id = rex.ReplaceAllString(id, rep)
		}

		return id
	},
)

// ConfigDir returns the configuration directory path.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err == nil {
				dir = filepath.Join(dir, ".config")
			} else {
				var err error
				dir, err = os.Getwd()
				if err != nil {
					dir = "."
				}
			}
		}

		return filepath.Join(dir, Prefix())
	},
)

// GetLastNode returns the last node of a file system path: the part after
// the final path separator, or the whole path when it has none.
func GetLastNode(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return path
	}

	return path[i+1:]
}

// GetContainingDir returns the path of the directory containing the file
// system object at the given path, without a trailing separator. It returns
// "" when the path has no separator, and "/" for root-level paths.
func GetContainingDir(path string) string {
	i := strings.LastIndexByte(path, '/')

	switch {
	case i < 0:
		return ""
	case i == 0:
		return "/"
	default:
		return path[:i]
	}
}

// IsAbsolute reports whether the path begins at the file system root.
func IsAbsolute(path string) bool {
	return strings.HasPrefix(path, "/")
}

// MakeAbsolute converts a path to an absolute path rooted at the current
// working directory, and cleans it. The path is returned unchanged if the
// working directory cannot be determined.
func MakeAbsolute(path string) string {
	if IsAbsolute(path) {
		return filepath.Clean(path)
	}

	wd, err := os.Getwd()
	if err != nil {
		return path
	}

	return filepath.Join(wd, path)
}

// Combine joins two path fragments with exactly one separator between them.
func Combine(base, node string) string {
	switch {
	case base == "":
		return node
	case node == "":
		return base
	}

	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(node, "/")
}

// HasSuffix reports whether the path ends with the given suffix.
func HasSuffix(path, suffix string) bool {
	return strings.HasSuffix(path, suffix)
}

// RemoveSuffix returns the path with the given suffix removed, or the path
// unchanged when it doesn't end with the suffix.
func RemoveSuffix(path, suffix string) string {
	return strings.TrimSuffix(path, suffix)
}

// Unquote strips one level of matching single or double quotes surrounding
// the string, if present.
func Unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}

	return s
}

// GetIdentifierSafeName converts a name into a C identifier by replacing
// every character that is not a letter, digit, or underscore with an
// underscore.
func GetIdentifierSafeName(name string) string {
	var sb strings.Builder

	sb.Grow(len(name))

	for i := range len(name) {
		c := name[i]

		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			sb.WriteByte(c)
		default:
			sb.WriteByte('_')
		}
	}

	return sb.String()
}
