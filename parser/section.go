package parser

import (
	"github.com/ardnew/mkdef/tree"
)

// ItemParser parses one compound item from inside a complex section.
type ItemParser func(l *Lexer) (tree.Content, *tree.Error)

// SectionParser parses one top-level section, starting with its name token.
type SectionParser func(l *Lexer) (tree.Content, *tree.Error)

// SkipWhitespaceAndComments pulls whitespace and comment tokens and throws
// them away (although they still get added to the file's token arena).
func SkipWhitespaceAndComments(l *Lexer) *tree.Error {
	for {
		switch {
		case l.IsMatch(tree.Whitespace):
			if _, err := l.Pull(tree.Whitespace); err != nil {
				return err
			}

		case l.IsMatch(tree.Comment):
			if _, err := l.Pull(tree.Comment); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}

// ParseSimpleSection parses a "name : token" section whose single content
// token has the given kind.
func ParseSimpleSection(
	l *Lexer,
	name *tree.Token,
	kind tree.Kind,
) (*tree.SimpleSection, *tree.Error) {
	section := tree.NewSimpleSection(name)

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if _, err := l.Pull(tree.Colon); err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	content, err := l.Pull(kind)
	if err != nil {
		return nil, err
	}

	section.AddContent(content)

	return section, nil
}

// ParseSimpleNamedItem parses a "name = token" item whose single content
// token has the given kind.
func ParseSimpleNamedItem(
	l *Lexer,
	name *tree.Token,
	tag tree.ItemTag,
	kind tree.Kind,
) (*tree.Item, *tree.Error) {
	item := tree.NewItem(tag, name)

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if _, err := l.Pull(tree.Equals); err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	content, err := l.Pull(kind)
	if err != nil {
		return nil, err
	}

	item.AddContent(content)

	return item, nil
}

// ParseTokenListSection parses a "name : { token* }" section containing a
// list of tokens of the same kind inside curly braces. This includes
// "cflags:", "cxxflags:", "ldflags:", "sources:", "groups:", and more.
func ParseTokenListSection(
	l *Lexer,
	name *tree.Token,
	kind tree.Kind,
) (*tree.TokenListSection, *tree.Error) {
	section := tree.NewTokenListSection(name)

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if _, err := l.Pull(tree.Colon); err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if _, err := l.Pull(tree.OpenCurly); err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	for !l.IsMatch(tree.CloseCurly) {
		if l.IsMatch(tree.EndOfFile) {
			return nil, l.errSyntax(
				"Unexpected end-of-file before end of %s section starting at"+
					" line %d character %d.", name.Text, name.Line, name.Column)
		}

		content, err := l.Pull(kind)
		if err != nil {
			return nil, err
		}

		section.AddContent(content)

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}
	}

	// Pull out the '}' and make that the last token in the section.
	closing, err := l.Pull(tree.CloseCurly)
	if err != nil {
		return nil, err
	}

	section.SetLastToken(closing)

	return section, nil
}

// ParseTokenListNamedItem parses a "name = ( token* )" item containing a
// list of tokens of the same kind. This includes executables inside the
// "executables:" section.
func ParseTokenListNamedItem(
	l *Lexer,
	name *tree.Token,
	tag tree.ItemTag,
	kind tree.Kind,
) (*tree.Item, *tree.Error) {
	item := tree.NewItem(tag, name)

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if _, err := l.Pull(tree.Equals); err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if _, err := l.Pull(tree.OpenParen); err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	for !l.IsMatch(tree.CloseParen) {
		if l.IsMatch(tree.EndOfFile) {
			return nil, l.errSyntax(
				"Unexpected end-of-file before end of %s named '%s' starting at"+
					" line %d character %d.", tag, name.Text, name.Line, name.Column)
		}

		content, err := l.Pull(kind)
		if err != nil {
			return nil, err
		}

		item.AddContent(content)

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}
	}

	// Pull out the ')' and make that the last token in the item.
	closing, err := l.Pull(tree.CloseParen)
	if err != nil {
		return nil, err
	}

	item.SetLastToken(closing)

	return item, nil
}

// ParseComplexSection parses a "name : { item* }" section whose content
// contains compound items, not just tokens. The given item parser is called
// for each item found in the section.
func ParseComplexSection(
	l *Lexer,
	name *tree.Token,
	parseItem ItemParser,
) (*tree.ComplexSection, *tree.Error) {
	section := tree.NewComplexSection(name)

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if _, err := l.Pull(tree.Colon); err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if _, err := l.Pull(tree.OpenCurly); err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	for !l.IsMatch(tree.CloseCurly) {
		if l.IsMatch(tree.EndOfFile) {
			return nil, l.errSyntax(
				"Unexpected end-of-file before end of %s section starting at"+
					" line %d character %d.", name.Text, name.Line, name.Column)
		}

		item, err := parseItem(l)
		if err != nil {
			return nil, err
		}

		section.AddItem(item)

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}
	}

	// Pull out the '}' and make that the last token in the section.
	closing, err := l.Pull(tree.CloseCurly)
	if err != nil {
		return nil, err
	}

	section.SetLastToken(closing)

	return section, nil
}

// ParseSimpleNamedItemListSection parses a complex section containing a list
// of simple named items whose content tokens are all of the same kind. This
// includes environment variables inside an "envVars:" section.
func ParseSimpleNamedItemListSection(
	l *Lexer,
	name *tree.Token,
	tag tree.ItemTag,
	kind tree.Kind,
) (*tree.ComplexSection, *tree.Error) {
	return ParseComplexSection(l, name, func(l *Lexer) (tree.Content, *tree.Error) {
		itemName, err := l.Pull(tree.Name)
		if err != nil {
			return nil, err
		}

		return ParseSimpleNamedItem(l, itemName, tag, kind)
	})
}

// ParseFile parses a definition file: any combination of whitespace,
// comments, and sections, each section starting with a name handed to the
// given section parser.
func ParseFile(l *Lexer, parseSection SectionParser) *tree.Error {
	for !l.IsMatch(tree.EndOfFile) {
		switch {
		case l.IsMatch(tree.Whitespace):
			if _, err := l.Pull(tree.Whitespace); err != nil {
				return err
			}

		case l.IsMatch(tree.Comment):
			if _, err := l.Pull(tree.Comment); err != nil {
				return err
			}

		case l.IsMatch(tree.Name):
			section, err := parseSection(l)
			if err != nil {
				return err
			}

			l.file.Sections = append(l.file.Sections, section)

		default:
			return l.unexpectedChar("")
		}
	}

	return nil
}
