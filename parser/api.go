package parser

import (
	"os"

	"github.com/ardnew/mkdef/tree"
)

// GetDependencies scans an IPC interface (.api) file for USETYPES
// declarations and calls handler with each dependency name, exactly as it
// appears in the file (the ".api" suffix is optional there). Comments are
// skipped so commented-out declarations are not reported.
//
// This is deliberately not a full interface-definition parser: the build
// graph only needs the include relationships between .api files.
func GetDependencies(path string, handler func(string) *tree.Error) *tree.Error {
	data, err := os.ReadFile(path)
	if err != nil {
		return tree.Errorf(tree.SemanticError,
			"Failed to open file '%s' for reading.", path).Wrap(err)
	}

	line, col := 1, 0

	advance := func(i int) int {
		if data[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}

		return i + 1
	}

	isWordChar := func(c byte) bool {
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == '_' || c == '.' || c == '/' || c == '-'
	}

	for i := 0; i < len(data); {
		switch c := data[i]; {
		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			for i < len(data) && data[i] != '\n' {
				i = advance(i)
			}

		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			i = advance(advance(i))

			for i < len(data) {
				if data[i] == '*' && i+1 < len(data) && data[i+1] == '/' {
					i = advance(advance(i))

					break
				}

				i = advance(i)
			}

		case isWordChar(c):
			start := i
			for i < len(data) && isWordChar(data[i]) {
				i = advance(i)
			}

			if string(data[start:i]) != "USETYPES" {
				continue
			}

			// Skip whitespace to the dependency name.
			for i < len(data) && isWhitespace(int(data[i])) {
				i = advance(i)
			}

			depStart := i
			for i < len(data) && isWordChar(data[i]) {
				i = advance(i)
			}

			if depStart == i {
				return tree.Errorf(tree.SyntaxError,
					"Missing interface name after USETYPES.").At(path, line, col)
			}

			if err := handler(string(data[depStart:i])); err != nil {
				return err
			}

		default:
			i = advance(i)
		}
	}

	return nil
}
