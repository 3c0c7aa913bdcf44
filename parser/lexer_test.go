package parser

import (
	"strings"
	"testing"

	"github.com/ardnew/mkdef/tree"
)

func newTestLexer(input string) *Lexer {
	return NewLexer(tree.NewDefFile("test.adef"), []byte(input))
}

func TestLexerPull(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  tree.Kind
		text  string
	}{
		{"open curly", "{", tree.OpenCurly, "{"},
		{"close curly", "}", tree.CloseCurly, "}"},
		{"colon", ":", tree.Colon, ":"},
		{"equals", "=", tree.Equals, "="},
		{"arrow", "->", tree.Arrow, "->"},
		{"whitespace run", " \t\r\n x", tree.Whitespace, " \t\r\n "},
		{"line comment", "// hello\nnext", tree.Comment, "// hello"},
		{"block comment", "/* a\nb */x", tree.Comment, "/* a\nb */"},
		{"name", "fooBar_2 extra", tree.Name, "fooBar_2"},
		{"dotted name", "le.cfg extra", tree.DottedName, "le.cfg"},
		{"group name", "some-group extra", tree.GroupName, "some-group"},
		{"file name", "libComponent.so next", tree.FileName, "libComponent.so"},
		{"file path", "/usr/local/lib next", tree.FilePath, "/usr/local/lib"},
		{"file path stops at comment", "path/to/x// trailing", tree.FilePath, "path/to/x"},
		{"quoted file path", `"has spaces/in it" x`, tree.FilePath, `"has spaces/in it"`},
		{"path with env var", "${LEGATO_ROOT}/lib x", tree.FilePath, "${LEGATO_ROOT}/lib"},
		{"path with bare env var", "$HOME/bin x", tree.FilePath, "$HOME/bin"},
		{"arg with equals", "name=value next", tree.Arg, "name=value"},
		{"integer", "1024 x", tree.Integer, "1024"},
		{"integer with K suffix", "10K x", tree.Integer, "10K"},
		{"signed integer negative", "-42 x", tree.SignedInteger, "-42"},
		{"signed integer positive", "+7 x", tree.SignedInteger, "+7"},
		{"boolean true", "true x", tree.Boolean, "true"},
		{"boolean off", "off x", tree.Boolean, "off"},
		{"boolean on", "on x", tree.Boolean, "on"},
		{"float", "3.14 x", tree.Float, "3.14"},
		{"float with exponent", "1.5e-3 x", tree.Float, "1.5e-3"},
		{"string", `"hello" x`, tree.String, `"hello"`},
		{"single-quoted string", "'hi' x", tree.String, "'hi'"},
		{"file permissions", "[rwx] x", tree.FilePermissions, "[rwx]"},
		{"server option", "[manual-start] x", tree.ServerIPCOption, "[manual-start]"},
		{"client option", "[types-only] x", tree.ClientIPCOption, "[types-only]"},
		{"ipc agent app", "myApp.frd x", tree.IPCAgent, "myApp"},
		{"ipc agent user", "<root>.frd x", tree.IPCAgent, "<root>"},
		{"md5 hash", "0123456789abcdef0123456789abcdef x", tree.MD5Hash,
			"0123456789abcdef0123456789abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLexer(tt.input)

			if !l.IsMatch(tt.kind) {
				t.Fatalf("IsMatch(%v) = false for input %q", tt.kind, tt.input)
			}

			tok, err := l.Pull(tt.kind)
			if err != nil {
				t.Fatalf("Pull(%v) failed: %v", tt.kind, err)
			}

			if tok.Text != tt.text {
				t.Errorf("Pull(%v) text = %q, want %q", tt.kind, tok.Text, tt.text)
			}

			if tok.Kind != tt.kind {
				t.Errorf("Pull(%v) kind = %v", tt.kind, tok.Kind)
			}
		})
	}
}

func TestLexerPullErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    tree.Kind
		message string
	}{
		{"empty permissions", "[]", tree.FilePermissions, "Empty file permissions."},
		{"bad permission char", "[rq]", tree.FilePermissions, "Unexpected character"},
		{"unterminated permissions", "[rw", tree.FilePermissions,
			"Unexpected end-of-file"},
		{"bad server option", "[types-only]", tree.ServerIPCOption,
			"Invalid server-side IPC option"},
		{"bad client option", "[async]", tree.ClientIPCOption,
			"Invalid client-side IPC option"},
		{"unterminated block comment", "/* never ends", tree.Comment,
			"Unexpected end-of-file before end of comment"},
		{"unterminated string", `"no closing`, tree.String,
			"Unexpected end-of-file before end of quoted string."},
		{"newline in string", "\"line\nbreak\"", tree.String,
			"Unexpected end-of-line before end of quoted string."},
		{"bad boolean", "ofx", tree.Boolean, "Unexpected boolean value."},
		{"name starts with digit", "9lives", tree.Name, "Unexpected character"},
		{"md5 too short", "0123456789abcdef ", tree.MD5Hash, "MD5 hash too short."},
		{"md5 too long", "0123456789abcdef0123456789abcdef0", tree.MD5Hash,
			"MD5 hash too long."},
		{"unterminated env var", "${HOME/lib", tree.FilePath, "'}' expected."},
		{"unterminated user name", "<root.frd", tree.IPCAgent,
			"Must be terminated with '>'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLexer(tt.input)

			_, err := l.Pull(tt.kind)
			if err == nil {
				t.Fatalf("Pull(%v) on %q succeeded, want error", tt.kind, tt.input)
			}

			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.message)
			}
		})
	}
}

func TestLexerIsMatchDoesNotConsume(t *testing.T) {
	l := newTestLexer("sandboxed: true")

	for range 3 {
		if !l.IsMatch(tree.Name) {
			t.Fatal("IsMatch(Name) = false")
		}
	}

	tok, err := l.Pull(tree.Name)
	if err != nil {
		t.Fatalf("Pull failed after IsMatch: %v", err)
	}

	if tok.Text != "sandboxed" {
		t.Errorf("Pull text = %q, want %q", tok.Text, "sandboxed")
	}
}

func TestLexerIsMatchDisambiguatesSlash(t *testing.T) {
	// A leading slash opens a comment, not a file path.
	for _, input := range []string{"// comment", "/* comment */"} {
		l := newTestLexer(input)

		if l.IsMatch(tree.FilePath) {
			t.Errorf("IsMatch(FilePath) = true for %q", input)
		}

		if !l.IsMatch(tree.Comment) {
			t.Errorf("IsMatch(Comment) = false for %q", input)
		}
	}

	l := newTestLexer("/absolute/path")
	if !l.IsMatch(tree.FilePath) {
		t.Error("IsMatch(FilePath) = false for absolute path")
	}
}

func TestLexerPositions(t *testing.T) {
	l := newTestLexer("abc\ndef")

	if _, err := l.Pull(tree.Name); err != nil {
		t.Fatalf("Pull failed: %v", err)
	}

	if _, err := l.Pull(tree.Whitespace); err != nil {
		t.Fatalf("Pull failed: %v", err)
	}

	tok, err := l.Pull(tree.Name)
	if err != nil {
		t.Fatalf("Pull failed: %v", err)
	}

	if tok.Line != 2 || tok.Column != 0 {
		t.Errorf("token at line %d column %d, want line 2 column 0", tok.Line, tok.Column)
	}
}

func TestLexerTokenArena(t *testing.T) {
	l := newTestLexer("a b")

	for _, kind := range []tree.Kind{tree.Name, tree.Whitespace, tree.Name} {
		if _, err := l.Pull(kind); err != nil {
			t.Fatalf("Pull(%v) failed: %v", kind, err)
		}
	}

	file := l.File()
	if len(file.Tokens) != 3 {
		t.Fatalf("arena holds %d tokens, want 3", len(file.Tokens))
	}

	// Concatenating the arena reproduces the input.
	var sb strings.Builder
	for _, tok := range file.Tokens {
		sb.WriteString(tok.Text)
	}

	if sb.String() != "a b" {
		t.Errorf("arena text = %q, want %q", sb.String(), "a b")
	}

	if file.Tokens[0].Prev != -1 {
		t.Errorf("first token Prev = %d, want -1", file.Tokens[0].Prev)
	}

	if file.Tokens[2].Prev != 1 {
		t.Errorf("third token Prev = %d, want 1", file.Tokens[2].Prev)
	}
}

func TestOpenLexerMissingFile(t *testing.T) {
	_, err := OpenLexer("/nonexistent/missing.adef")
	if err == nil {
		t.Fatal("OpenLexer succeeded on missing file")
	}

	if !strings.Contains(err.Error(), "File not found: '/nonexistent/missing.adef'.") {
		t.Errorf("unexpected error: %v", err)
	}
}
