package parser

import (
	"bytes"
	"os"

	"github.com/ardnew/mkdef/tree"
)

// eof is the pseudo-character returned when the input is exhausted.
const eof = -1

// Lexer pulls tokens from a definition file on demand. There is no token
// buffer: the parser asks for exactly the kind of token the grammar expects
// next, and the lexer either produces it or fails with a positioned error.
//
// Don't use unicode.IsLetter or friends here; definition file names are
// restricted to the portable ASCII subset regardless of locale.
type Lexer struct {
	file  *tree.DefFile
	input []byte
	pos   int
	line  int // 1-based
	col   int // 0-based
}

// NewLexer creates a lexer over the given input, producing tokens into the
// given parse tree.
func NewLexer(file *tree.DefFile, input []byte) *Lexer {
	return &Lexer{file: file, input: input, line: 1}
}

// OpenLexer reads the file at path and returns a lexer over its contents.
func OpenLexer(path string) (*Lexer, *tree.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, tree.Errorf(tree.SemanticError, "File not found: '%s'.", path)
		}

		return nil, tree.Errorf(tree.SemanticError,
			"Failed to open file '%s' for reading.", path).Wrap(err)
	}

	return NewLexer(tree.NewDefFile(path), data), nil
}

// File returns the parse tree the lexer appends tokens to.
func (l *Lexer) File() *tree.DefFile { return l.file }

func isWhitespace(c int) bool {
	// Vertical tabs and form feeds are not allowed in definition files.
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLower(c int) bool { return c >= 'a' && c <= 'z' }
func isUpper(c int) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c int) bool { return c >= '0' && c <= '9' }

func isHexDigit(c int) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isFileNameChar reports whether c is valid inside a [tree.FileName] token,
// quoting aside.
func isFileNameChar(c int) bool {
	switch {
	case isLower(c), isUpper(c), isDigit(c):
		return true
	}

	switch c {
	case '.', '_', '$', '-', ':', ';', '+', '=', '?':
		return true
	}

	return false
}

// isFilePathChar reports whether c is valid inside a [tree.FilePath] token:
// anything valid in a file name, plus the forward slash.
func isFilePathChar(c int) bool {
	return isFileNameChar(c) || c == '/'
}

// isArgChar reports whether c is valid inside an [tree.Arg] token: anything
// valid in a file path, plus the equals sign.
func isArgChar(c int) bool {
	return isFilePathChar(c) || c == '='
}

// cur returns the character at the current position, or eof.
func (l *Lexer) cur() int {
	if l.pos >= len(l.input) {
		return eof
	}

	return int(l.input[l.pos])
}

// peek returns the character n positions past the current one, or eof.
func (l *Lexer) peek(n int) int {
	if l.pos+n >= len(l.input) {
		return eof
	}

	return int(l.input[l.pos+n])
}

// advance consumes one character, updating the line and column counters.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}

	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}

	l.pos++
}

// errHere builds a lexical error positioned at the current location, in the
// same style a compiler reports errors.
func (l *Lexer) errHere(format string, args ...any) *tree.Error {
	return tree.Errorf(tree.LexicalError, format, args...).
		At(l.file.Path, l.line, l.col)
}

// errSyntax builds a syntax error positioned at the current location. The
// grammar parsers use it for structural diagnostics that are not tied to a
// single malformed token.
func (l *Lexer) errSyntax(format string, args ...any) *tree.Error {
	return tree.Errorf(tree.SyntaxError, format, args...).
		At(l.file.Path, l.line, l.col)
}

// unexpectedChar builds an "Unexpected character" lexical error for the
// current character, positioned at the current location.
func (l *Lexer) unexpectedChar(detail string) *tree.Error {
	c := byte(0)
	if n := l.cur(); n != eof {
		c = byte(n)
	}

	return tree.NewError(tree.LexicalError, tree.UnexpectedCharMessage(c, detail)).
		At(l.file.Path, l.line, l.col)
}

// IsMatch reports whether the next sequence of input could lex as the given
// kind of token. It never consumes input.
func (l *Lexer) IsMatch(kind tree.Kind) bool {
	c := l.cur()

	switch kind {
	case tree.EndOfFile:
		return c == eof

	case tree.OpenCurly:
		return c == '{'

	case tree.CloseCurly:
		return c == '}'

	case tree.OpenParen:
		return c == '('

	case tree.CloseParen:
		return c == ')'

	case tree.Colon:
		return c == ':'

	case tree.Equals:
		return c == '='

	case tree.Dot:
		return c == '.'

	case tree.Star:
		return c == '*'

	case tree.Arrow:
		return c == '-' && l.peek(1) == '>'

	case tree.Whitespace:
		return isWhitespace(c)

	case tree.Comment:
		return c == '/' && (l.peek(1) == '/' || l.peek(1) == '*')

	case tree.FilePermissions, tree.ServerIPCOption, tree.ClientIPCOption:
		return c == '['

	case tree.Arg:
		if c == '=' {
			return true
		}

		fallthrough

	case tree.FilePath:
		// A leading slash could open either a comment or a file path.
		if c == '/' {
			return l.peek(1) != '/' && l.peek(1) != '*'
		}

		fallthrough

	case tree.FileName:
		return isFileNameChar(c) || c == '\'' || c == '"'

	case tree.IPCAgent:
		if c == '<' {
			return true
		}

		fallthrough

	case tree.Name, tree.GroupName, tree.DottedName:
		return isLower(c) || isUpper(c) || c == '_'

	case tree.Integer:
		return isDigit(c)

	case tree.SignedInteger:
		return c == '+' || c == '-' || isDigit(c)

	case tree.Boolean:
		return l.isMatchBoolean()

	case tree.Float:
		return c == '+' || c == '-' || isDigit(c)

	case tree.String:
		return c == '"' || c == '\''

	case tree.MD5Hash:
		return isHexDigit(c)
	}

	return false
}

// isMatchBoolean reports whether one of the literal boolean values (true,
// false, on, or off) is waiting in the input.
func (l *Lexer) isMatchBoolean() bool {
	rest := l.input[min(l.pos, len(l.input)):]

	switch l.cur() {
	case 't':
		return bytes.HasPrefix(rest, []byte("true"))
	case 'f':
		return bytes.HasPrefix(rest, []byte("false"))
	case 'o':
		return bytes.HasPrefix(rest, []byte("on")) || bytes.HasPrefix(rest, []byte("off"))
	}

	return false
}

// Pull consumes the next token from the input, which must lex as the given
// kind. The token is appended to the parse tree's arena.
func (l *Lexer) Pull(kind tree.Kind) (*tree.Token, *tree.Error) {
	start := l.pos
	startLine, startCol := l.line, l.col

	var err *tree.Error

	switch kind {
	case tree.EndOfFile:
		if c := l.cur(); c != eof {
			err = l.errHere("Expected end-of-file, but found '%c'.", c)
		}

	case tree.OpenCurly:
		err = l.pullConstString("{")

	case tree.CloseCurly:
		err = l.pullConstString("}")

	case tree.OpenParen:
		err = l.pullConstString("(")

	case tree.CloseParen:
		err = l.pullConstString(")")

	case tree.Colon:
		err = l.pullConstString(":")

	case tree.Equals:
		err = l.pullConstString("=")

	case tree.Dot:
		err = l.pullConstString(".")

	case tree.Star:
		err = l.pullConstString("*")

	case tree.Arrow:
		err = l.pullConstString("->")

	case tree.Whitespace:
		err = l.pullWhitespace()

	case tree.Comment:
		err = l.pullComment(startLine, startCol)

	case tree.FilePermissions:
		err = l.pullFilePermissions()

	case tree.ServerIPCOption:
		err = l.pullServerIPCOption(start)

	case tree.ClientIPCOption:
		err = l.pullClientIPCOption(start)

	case tree.Arg:
		err = l.pullArg(start)

	case tree.FilePath:
		err = l.pullFilePath(start)

	case tree.FileName:
		err = l.pullFileName(start)

	case tree.Name:
		err = l.pullName()

	case tree.DottedName:
		err = l.pullDottedName()

	case tree.GroupName:
		err = l.pullGroupName()

	case tree.IPCAgent:
		err = l.pullIPCAgentName()

	case tree.Integer:
		err = l.pullInteger()

	case tree.SignedInteger:
		err = l.pullSignedInteger()

	case tree.Boolean:
		err = l.pullBoolean()

	case tree.Float:
		err = l.pullFloat()

	case tree.String:
		err = l.pullString()

	case tree.MD5Hash:
		err = l.pullMd5()
	}

	if err != nil {
		return nil, err
	}

	return l.file.Append(&tree.Token{
		Kind:   kind,
		Text:   string(l.input[start:l.pos]),
		Line:   startLine,
		Column: startCol,
	}), nil
}

// pullConstString consumes the given literal, which must match the input
// exactly.
func (l *Lexer) pullConstString(s string) *tree.Error {
	for i := 0; i < len(s); i++ {
		if l.cur() != int(s[i]) {
			return l.unexpectedChar(" Expected '" + s + "'")
		}

		l.advance()
	}

	return nil
}

func (l *Lexer) pullWhitespace() *tree.Error {
	start := l.pos

	for isWhitespace(l.cur()) {
		l.advance()
	}

	if start == l.pos {
		return l.errHere("Expected whitespace.")
	}

	return nil
}

func (l *Lexer) pullComment(startLine, startCol int) *tree.Error {
	if l.cur() != '/' {
		return l.errHere("Expected '/' at start of comment.")
	}

	l.advance()

	switch l.cur() {
	case '/':
		// C++ style comment, terminated by either new-line or end-of-file.
		l.advance()

		for l.cur() != '\n' && l.cur() != eof {
			l.advance()
		}

	case '*':
		// C style comment, terminated by the "*/" digraph.
		l.advance()

		for {
			switch l.cur() {
			case '*':
				l.advance()

				if l.cur() == '/' {
					l.advance()

					return nil
				}

			case eof:
				return l.errHere(
					"Unexpected end-of-file before end of comment starting at"+
						" line %d character %d.", startLine, startCol)

			default:
				l.advance()
			}
		}

	default:
		return l.errHere("Expected '/' or '*' at start of comment.")
	}

	return nil
}

func (l *Lexer) pullInteger() *tree.Error {
	if !isDigit(l.cur()) {
		return l.unexpectedChar("at beginning of integer.")
	}

	for isDigit(l.cur()) {
		l.advance()
	}

	if l.cur() == 'K' {
		l.advance()
	}

	return nil
}

func (l *Lexer) pullSignedInteger() *tree.Error {
	if c := l.cur(); c == '-' || c == '+' {
		l.advance()
	}

	return l.pullInteger()
}

func (l *Lexer) pullBoolean() *tree.Error {
	switch l.cur() {
	case 't':
		return l.pullConstString("true")

	case 'f':
		return l.pullConstString("false")

	case 'o':
		l.advance()

		switch l.cur() {
		case 'n':
			l.advance()

		case 'f':
			l.advance()

			if l.cur() != 'f' {
				return l.errHere(
					"Unexpected boolean value.  Only 'true', 'false', 'on', or 'off' allowed.")
			}

			l.advance()
		}

	default:
		return l.unexpectedChar(
			"at beginning of boolean value.  Only 'true', 'false', 'on', or 'off' allowed.")
	}

	return nil
}

func (l *Lexer) pullFloat() *tree.Error {
	if c := l.cur(); !isDigit(c) && c != '+' && c != '-' {
		return l.unexpectedChar("at beginning of floating point value.")
	}

	l.advance()

	for isDigit(l.cur()) {
		l.advance()
	}

	if l.cur() == '.' {
		l.advance()

		for isDigit(l.cur()) {
			l.advance()
		}
	}

	if c := l.cur(); c == 'e' || c == 'E' {
		l.advance()

		if c := l.cur(); !isDigit(c) && c != '+' && c != '-' {
			return l.unexpectedChar("in exponent part of floating point value.")
		}

		l.advance()

		for isDigit(l.cur()) {
			l.advance()
		}
	}

	return nil
}

func (l *Lexer) pullString() *tree.Error {
	if c := l.cur(); c == '"' || c == '\'' {
		return l.pullQuoted(byte(c))
	}

	return l.errHere("Expected string literal.")
}

func (l *Lexer) pullFilePermissions() *tree.Error {
	if l.cur() != '[' {
		return l.errHere("Expected '[' at start of file permissions.")
	}

	l.advance()

	// Must be something between the square brackets.
	if l.cur() == ']' {
		return l.errHere("Empty file permissions.")
	}

	for {
		switch c := l.cur(); {
		case c == eof:
			return l.errHere("Unexpected end-of-file before end of file permissions.")

		case c != 'r' && c != 'w' && c != 'x':
			return l.unexpectedChar("inside file permissions.")
		}

		l.advance()

		if l.cur() == ']' {
			break
		}
	}

	l.advance()

	return nil
}

func (l *Lexer) pullServerIPCOption(start int) *tree.Error {
	if err := l.pullIPCOption(); err != nil {
		return err
	}

	switch text := string(l.input[start:l.pos]); text {
	case "[manual-start]", "[async]", "[direct]":
		return nil
	default:
		return l.errHere("Invalid server-side IPC option: '%s'", text)
	}
}

func (l *Lexer) pullClientIPCOption(start int) *tree.Error {
	if err := l.pullIPCOption(); err != nil {
		return err
	}

	switch text := string(l.input[start:l.pos]); text {
	case "[manual-start]", "[types-only]", "[optional]":
		return nil
	default:
		return l.errHere("Invalid client-side IPC option: '%s'", text)
	}
}

func (l *Lexer) pullIPCOption() *tree.Error {
	if l.cur() != '[' {
		return l.errHere("Expected '[' at start of IPC option.")
	}

	l.advance()

	// Must be something between the square brackets.
	if l.cur() == ']' {
		return l.errHere("Empty IPC option.")
	}

	for {
		switch c := l.cur(); {
		case c == eof:
			return l.errHere("Unexpected end-of-file before end of IPC option.")

		case c != '-' && !isLower(c):
			return l.unexpectedChar("inside option.")
		}

		l.advance()

		if l.cur() == ']' {
			break
		}
	}

	l.advance()

	return nil
}

func (l *Lexer) pullArg(start int) *tree.Error {
	return l.pullPathLike(start, isArgChar, true, "argument")
}

func (l *Lexer) pullFilePath(start int) *tree.Error {
	return l.pullPathLike(start, isFilePathChar, true, "file path")
}

func (l *Lexer) pullFileName(start int) *tree.Error {
	return l.pullPathLike(start, isFileNameChar, false, "name")
}

// pullPathLike is the common body of the arg, file path, and file name
// pulls: a quoted string, or a run of characters from the kind's class with
// environment variable references allowed inside.
func (l *Lexer) pullPathLike(
	start int,
	isValid func(int) bool,
	breakOnComment bool,
	noun string,
) *tree.Error {
	if c := l.cur(); c == '"' || c == '\'' {
		return l.pullQuoted(byte(c))
	}

	for isValid(l.cur()) {
		if l.cur() == '$' {
			if err := l.pullEnvVar(); err != nil {
				return err
			}

			continue
		}

		if breakOnComment && l.cur() == '/' {
			if c := l.peek(1); c == '/' || c == '*' {
				break
			}
		}

		l.advance()
	}

	// If no characters matched, the first character is invalid for this
	// kind of token.
	if start == l.pos {
		if c := l.cur(); c != eof && isPrintable(c) {
			return l.errHere("Invalid character '%c' in %s.", c, noun)
		}

		return l.errHere("Invalid (non-printable) character in %s.", noun)
	}

	return nil
}

func isPrintable(c int) bool { return c >= 0x20 && c < 0x7f }

func (l *Lexer) pullName() *tree.Error {
	if c := l.cur(); isLower(c) || isUpper(c) || c == '_' {
		l.advance()
	} else {
		return l.unexpectedChar(
			"at beginning of name. Names must start with a letter ('a'-'z' or 'A'-'Z')" +
				" or an underscore ('_').")
	}

	for {
		if c := l.cur(); isLower(c) || isUpper(c) || isDigit(c) || c == '_' {
			l.advance()
		} else {
			return nil
		}
	}
}

func (l *Lexer) pullDottedName() *tree.Error {
	for {
		if err := l.pullName(); err != nil {
			return err
		}

		if l.cur() == '.' {
			l.advance()
		}

		if c := l.cur(); !isLower(c) && !isUpper(c) && c != '_' {
			return nil
		}
	}
}

func (l *Lexer) pullGroupName() *tree.Error {
	if c := l.cur(); isLower(c) || isUpper(c) || c == '_' {
		l.advance()
	} else {
		return l.unexpectedChar(
			"at beginning of group name. Group names must start with a letter" +
				" ('a'-'z' or 'A'-'Z') or an underscore ('_').")
	}

	for {
		if c := l.cur(); isLower(c) || isUpper(c) || isDigit(c) || c == '_' || c == '-' {
			l.advance()
		} else {
			return nil
		}
	}
}

func (l *Lexer) pullIPCAgentName() *tree.Error {
	switch c := l.cur(); {
	// User names are enclosed in angle brackets (e.g., "<username>").
	case c == '<':
		l.advance()

		for {
			if c := l.cur(); isLower(c) || isUpper(c) || isDigit(c) || c == '_' || c == '-' {
				l.advance()
			} else {
				break
			}
		}

		if l.cur() != '>' {
			return l.unexpectedChar("in user name.  Must be terminated with '>'.")
		}

		l.advance()

	// App names have the same rules as C identifiers.
	case isLower(c) || isUpper(c) || c == '_':
		l.advance()

		for {
			if c := l.cur(); isLower(c) || isUpper(c) || isDigit(c) || c == '_' {
				l.advance()
			} else {
				break
			}
		}

	default:
		return l.unexpectedChar(
			"at beginning of IPC agent name. App names must start with a letter" +
				" ('a'-'z' or 'A'-'Z') or an underscore ('_').  User names must be inside" +
				" angle brackets ('<username>').")
	}

	return nil
}

// pullQuoted consumes everything up to and including the first occurrence of
// quote, starting with the opening quote itself.
func (l *Lexer) pullQuoted(quote byte) *tree.Error {
	l.advance()

	for l.cur() != int(quote) {
		switch l.cur() {
		case eof:
			return l.errHere("Unexpected end-of-file before end of quoted string.")

		case '\n', '\r':
			return l.errHere("Unexpected end-of-line before end of quoted string.")
		}

		l.advance()
	}

	l.advance()

	return nil
}

// pullEnvVar consumes an environment variable reference ($NAME or ${NAME}).
// Substitution is not done here; the token text preserves the reference
// exactly as it appeared in the file.
func (l *Lexer) pullEnvVar() *tree.Error {
	l.advance() // the '$'

	hasCurlies := false
	if l.cur() == '{' {
		l.advance()

		hasCurlies = true
	}

	if c := l.cur(); isLower(c) || isUpper(c) || c == '_' {
		l.advance()
	} else {
		return l.unexpectedChar(
			"at beginning of environment variable name.  Must start with a letter" +
				" ('a'-'z' or 'A'-'Z') or an underscore ('_').")
	}

	for {
		if c := l.cur(); isLower(c) || isUpper(c) || isDigit(c) || c == '_' {
			l.advance()
		} else {
			break
		}
	}

	if hasCurlies {
		switch c := l.cur(); c {
		case '}':
			l.advance()

		case eof:
			return l.errHere("Unexpected end-of-file inside environment variable name.")

		default:
			return l.errHere("'}' expected.  '%c' found.", c)
		}
	}

	return nil
}

func (l *Lexer) pullMd5() *tree.Error {
	// There are always exactly 32 hexadecimal digits in an md5 sum.
	for i := 0; i < 32; i++ {
		if c := l.cur(); !isDigit(c) && (c < 'a' || c > 'f') {
			if isWhitespace(c) {
				return l.errHere("MD5 hash too short.")
			}

			return l.unexpectedChar("in MD5 hash.")
		}

		l.advance()
	}

	if c := l.cur(); isDigit(c) || (c >= 'a' && c <= 'f') {
		return l.errHere("MD5 hash too long.")
	}

	return nil
}
