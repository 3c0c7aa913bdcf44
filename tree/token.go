package tree

// Token is one lexical unit of a definition file.
//
// Tokens are immutable once produced, except for the kind retyping done by
// [Token.ConvertToName] and [Token.ConvertToDottedName]. Every token lexed
// from a file, including whitespace and comments, lives in the owning
// [DefFile] arena in lexical order, so the original source can be
// reconstructed and diagnostics can walk backwards from any token.
type Token struct {
	File   *DefFile
	Kind   Kind
	Text   string
	Line   int // 1-based
	Column int // 0-based
	Prev   int // arena index of the preceding token, -1 for the first
}

// FirstToken implements [Content].
func (t *Token) FirstToken() *Token { return t }

// LastToken implements [Content].
func (t *Token) LastToken() *Token { return t }

func (t *Token) path() string {
	if t.File == nil {
		return ""
	}

	return t.File.Path
}

func isNameStartChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isNameChar(c byte) bool {
	return isNameStartChar(c) || (c >= '0' && c <= '9')
}

// ConvertToName retypes a token as [Name] if its text satisfies the stricter
// name grammar. Used where the grammar lexes a file path first and only later
// discovers the token plays the role of a name (e.g. interface aliases).
func (t *Token) ConvertToName() *Error {
	if len(t.Text) == 0 || !isNameStartChar(t.Text[0]) {
		return t.unexpectedCharErr(0,
			"at beginning of name. Names must start with a letter ('a'-'z' or 'A'-'Z')"+
				" or an underscore ('_').")
	}

	for i := 1; i < len(t.Text); i++ {
		if !isNameChar(t.Text[i]) {
			return t.unexpectedCharErr(i,
				"Names may only contain letters ('a'-'z' or 'A'-'Z'),"+
					" numbers ('0'-'9') and underscores ('_').")
		}
	}

	t.Kind = Name

	return nil
}

// ConvertToDottedName retypes a token as [DottedName], returning the number
// of dots in the name.
func (t *Token) ConvertToDottedName() (int, *Error) {
	if len(t.Text) == 0 || !isNameStartChar(t.Text[0]) {
		return 0, t.unexpectedCharErr(0,
			"at beginning of a dotted name. Dotted names must start with a letter"+
				" ('a'-'z' or 'A'-'Z') or an underscore ('_').")
	}

	dots := 0

	for i := 1; i < len(t.Text); i++ {
		switch {
		case t.Text[i] == '.':
			dots++

			if i+1 < len(t.Text) && t.Text[i+1] == '.' {
				return 0, t.unexpectedCharErr(i,
					"Can not have two consecutive dots, ('..') within a dotted name.")
			}

		case !isNameChar(t.Text[i]):
			return 0, t.unexpectedCharErr(i,
				"Dotted names may only contain letters ('a'-'z' or 'A'-'Z'),"+
					" numbers ('0'-'9'), underscores ('_') and periods ('.').")
		}
	}

	t.Kind = DottedName

	return dots, nil
}

func (t *Token) unexpectedCharErr(i int, detail string) *Error {
	c := byte(0)
	if i < len(t.Text) {
		c = t.Text[i]
	}

	return NewError(LexicalError, UnexpectedCharMessage(c, detail)).
		At(t.path(), t.Line, t.Column)
}
