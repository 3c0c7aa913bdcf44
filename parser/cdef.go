package parser

import (
	"github.com/ardnew/mkdef/tree"
)

// cdefSectionNames are the section names accepted at the top level of a
// .cdef file.
var cdefSectionNames = []string{
	"bundles", "cflags", "cxxflags", "javaPackage", "ldflags", "provides",
	"requires", "sources",
}

// ParseComponent parses a component definition (.cdef) file and returns its
// parse tree.
func ParseComponent(path string) (*tree.DefFile, *tree.Error) {
	l, err := OpenLexer(path)
	if err != nil {
		return nil, err
	}

	if err := ParseFile(l, parseCdefSection); err != nil {
		return nil, err
	}

	return l.File(), nil
}

// parseCdefSection parses one top-level section of a .cdef file.
func parseCdefSection(l *Lexer) (tree.Content, *tree.Error) {
	name, err := l.Pull(tree.Name)
	if err != nil {
		return nil, err
	}

	switch name.Text {
	case "cflags", "cxxflags", "ldflags":
		return ParseTokenListSection(l, name, tree.Arg)

	case "sources":
		return ParseTokenListSection(l, name, tree.FilePath)

	case "javaPackage":
		return ParseTokenListSection(l, name, tree.DottedName)

	case "bundles":
		return ParseComplexSection(l, name, ParseBundlesSubsection)

	case "provides":
		return ParseComplexSection(l, name, parseProvidesSubsection)

	case "requires":
		return ParseComplexSection(l, name, parseCdefRequiresSubsection)

	default:
		return nil, l.errUnknownSection(name.Text, cdefSectionNames)
	}
}

// parseProvidesSubsection parses one subsection of a "provides:" section.
func parseProvidesSubsection(l *Lexer) (tree.Content, *tree.Error) {
	name, err := l.Pull(tree.Name)
	if err != nil {
		return nil, err
	}

	switch name.Text {
	case "api":
		return ParseComplexSection(l, name, func(l *Lexer) (tree.Content, *tree.Error) {
			return parseApiItem(l, tree.ProvidedAPIItem, tree.ServerIPCOption)
		})

	default:
		return nil, l.errUnknownSubsection(name.Text, "provides", []string{"api"})
	}
}

// cdefRequiresSubsectionNames are the subsection names accepted inside a
// .cdef "requires:" section.
var cdefRequiresSubsectionNames = []string{
	"api", "component", "device", "dir", "file", "lib",
}

// parseCdefRequiresSubsection parses one subsection of a .cdef "requires:"
// section.
func parseCdefRequiresSubsection(l *Lexer) (tree.Content, *tree.Error) {
	name, err := l.Pull(tree.Name)
	if err != nil {
		return nil, err
	}

	switch name.Text {
	case "api":
		return ParseComplexSection(l, name, func(l *Lexer) (tree.Content, *tree.Error) {
			return parseApiItem(l, tree.RequiredAPIItem, tree.ClientIPCOption)
		})

	case "file":
		return ParseComplexSection(l, name, ParseRequiredFile)

	case "dir":
		return ParseComplexSection(l, name, ParseRequiredDir)

	case "device":
		return ParseComplexSection(l, name, ParseRequiredDevice)

	case "lib":
		return ParseTokenListSection(l, name, tree.FilePath)

	case "component":
		return ParseTokenListSection(l, name, tree.FilePath)

	default:
		return nil, l.errUnknownSubsection(name.Text, "requires", cdefRequiresSubsectionNames)
	}
}

// parseApiItem parses one API item inside a "provides: api:" or
// "requires: api:" subsection: "[alias =] apiFilePath" with optional
// trailing IPC option tokens. When an '=' follows the first file path it is
// retyped as a plain name and becomes the interface alias.
func parseApiItem(
	l *Lexer,
	tag tree.ItemTag,
	optionKind tree.Kind,
) (tree.Content, *tree.Error) {
	var alias *tree.Token

	apiFilePath, err := l.Pull(tree.FilePath)
	if err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if l.IsMatch(tree.Equals) {
		if err := apiFilePath.ConvertToName(); err != nil {
			return nil, err
		}

		alias = apiFilePath

		if _, err := l.Pull(tree.Equals); err != nil {
			return nil, err
		}

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}

		apiFilePath, err = l.Pull(tree.FilePath)
		if err != nil {
			return nil, err
		}

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}
	}

	first := apiFilePath
	if alias != nil {
		first = alias
	}

	item := tree.NewItem(tag, first)

	if alias != nil {
		item.AddContent(alias)
	}

	item.AddContent(apiFilePath)

	for l.IsMatch(optionKind) {
		option, err := l.Pull(optionKind)
		if err != nil {
			return nil, err
		}

		item.AddContent(option)

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}
	}

	return item, nil
}
