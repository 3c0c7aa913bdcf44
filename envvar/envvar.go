// Package envvar expands environment variable references inside definition
// file values.
//
// Definition files may reference environment variables anywhere a file path
// or argument appears, using either $NAME or ${NAME}. The build tool also
// maintains a CURDIR variable that tracks the directory of the definition
// file currently being processed, so relative references resolve the way
// the author expects.
package envvar

import (
	"fmt"
	"os"
	"strings"
)

// CurDir is the name of the variable holding the directory of the
// definition file currently being processed.
const CurDir = "CURDIR"

// Get returns the value of an environment variable, empty when unset.
func Get(name string) string {
	return os.Getenv(name)
}

// Set assigns an environment variable for the remainder of the process.
func Set(name, value string) error {
	if err := os.Setenv(name, value); err != nil {
		return fmt.Errorf("failed to set environment variable %q: %w", name, err)
	}

	return nil
}

func isNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_'
}

// DoSubstitution replaces every $NAME and ${NAME} reference in the string
// with the value of the named environment variable. References to unset
// variables expand to the empty string.
func DoSubstitution(s string) (string, error) {
	var sb strings.Builder

	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c != '$' {
			sb.WriteByte(c)

			continue
		}

		i++
		if i >= len(s) {
			return "", fmt.Errorf("environment variable name missing after '$' in %q", s)
		}

		var name string

		if s[i] == '{' {
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("missing '}' in environment variable reference in %q", s)
			}

			name = s[i+1 : i+end]
			i += end
		} else {
			start := i
			for i < len(s) && isNameChar(s[i]) {
				i++
			}

			name = s[start:i]
			i--
		}

		if name == "" {
			return "", fmt.Errorf("environment variable name missing after '$' in %q", s)
		}

		sb.WriteString(os.Getenv(name))
	}

	return sb.String(), nil
}

// SetCurDir points CURDIR at the directory containing the given definition
// file and returns a function restoring its previous value. Definition
// files that reference other definition files nest, so the previous value
// must come back when processing of the inner file completes.
func SetCurDir(dir string) (restore func(), err error) {
	prev := os.Getenv(CurDir)

	if err := Set(CurDir, dir); err != nil {
		return nil, err
	}

	return func() { os.Setenv(CurDir, prev) }, nil
}
