package parser

import (
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/mkdef/tree"
)

// suggestName returns the valid name most similar to an unrecognized one,
// or the empty string when nothing is close enough to be worth suggesting.
func suggestName(name string, valid []string) string {
	matches := fuzzy.Find(name, valid)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}

// errUnknownSection builds the diagnostic for an unrecognized top-level
// section name, appending a suggestion when a valid name is close.
func (l *Lexer) errUnknownSection(name string, valid []string) *tree.Error {
	msg := fmt.Sprintf("Unrecognized section name '%s'.", name)
	if s := suggestName(name, valid); s != "" {
		msg += fmt.Sprintf("  Did you mean '%s'?", s)
	}

	return tree.NewError(tree.SyntaxError, msg).At(l.file.Path, l.line, l.col)
}

// errUnknownSubsection builds the diagnostic for an unrecognized subsection
// name, appending a suggestion when a valid name is close.
func (l *Lexer) errUnknownSubsection(name, parent string, valid []string) *tree.Error {
	msg := fmt.Sprintf("Unexpected subsection name '%s' in '%s' section.", name, parent)
	if s := suggestName(name, valid); s != "" {
		msg += fmt.Sprintf("  Did you mean '%s'?", s)
	}

	return tree.NewError(tree.SyntaxError, msg).At(l.file.Path, l.line, l.col)
}
